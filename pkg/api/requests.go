package api

// SubmitExecutionRequest is the body of POST /api/executions.
type SubmitExecutionRequest struct {
	AgentID       string         `json:"agentId"`
	Input         string         `json:"input"`
	Configuration map[string]any `json:"configuration,omitempty"`
	Environment   string         `json:"environment,omitempty"`
	Priority      string         `json:"priority,omitempty"`
	Trigger       string         `json:"trigger,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	TimeoutMs     int64          `json:"timeoutMs,omitempty"`
}

// CreateAgentRequest is the body of POST /api/agents.
type CreateAgentRequest struct {
	Name          string         `json:"name"`
	Framework     string         `json:"framework"`
	Configuration map[string]any `json:"configuration,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
}

// UpdateAgentRequest is the body of PUT /api/agents/:id. Absent fields
// leave the current value unchanged; framework is immutable.
type UpdateAgentRequest struct {
	Name          *string        `json:"name,omitempty"`
	Configuration map[string]any `json:"configuration,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	Active        *bool          `json:"active,omitempty"`
}

// CreateWebhookRequest is the body of POST /api/webhooks. Secret is
// optional; one is generated when absent.
type CreateWebhookRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Secret string   `json:"secret,omitempty"`
}

// UpdateWebhookRequest is the body of PUT /api/webhooks/:id.
type UpdateWebhookRequest struct {
	URL    *string  `json:"url,omitempty"`
	Events []string `json:"events,omitempty"`
	Active *bool    `json:"active,omitempty"`
}
