package api

import (
	"time"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

// SubmitExecutionResponse acknowledges an accepted submission.
type SubmitExecutionResponse struct {
	ExecutionID string `json:"executionId"`
	Status      string `json:"status"`
}

// ExecutionResponse is the wire representation of one execution row.
type ExecutionResponse struct {
	ID             string         `json:"id"`
	AgentID        string         `json:"agentId"`
	SubmitterID    string         `json:"submitterId"`
	State          string         `json:"state"`
	Priority       string         `json:"priority"`
	Input          string         `json:"input"`
	Output         map[string]any `json:"output,omitempty"`
	Error          string         `json:"error,omitempty"`
	Trigger        string         `json:"trigger"`
	Environment    string         `json:"environment"`
	ConfigOverride map[string]any `json:"configOverride,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	TimeoutMs      int64          `json:"timeoutMs"`
	PodID          string         `json:"podId,omitempty"`
	StartedAt      *time.Time     `json:"startedAt,omitempty"`
	CompletedAt    *time.Time     `json:"completedAt,omitempty"`
	DurationMs     *int64         `json:"durationMs,omitempty"`
	TokensUsed     *int           `json:"tokensUsed,omitempty"`
	CostUSD        *float64       `json:"costUsd,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func newExecutionResponse(row *ent.Execution) *ExecutionResponse {
	resp := &ExecutionResponse{
		ID:             row.ID,
		AgentID:        row.AgentID,
		SubmitterID:    row.SubmitterID,
		State:          string(row.State),
		Priority:       models.Priority(row.Priority).String(),
		Input:          row.Input,
		Output:         row.Output,
		Trigger:        string(row.Trigger),
		Environment:    row.Environment,
		ConfigOverride: row.ConfigOverride,
		Metadata:       row.Metadata,
		TimeoutMs:      row.TimeoutMs,
		StartedAt:      row.StartedAt,
		CompletedAt:    row.CompletedAt,
		DurationMs:     row.DurationMs,
		TokensUsed:     row.TokensUsed,
		CostUSD:        row.CostUsd,
		CreatedAt:      row.CreatedAt,
	}
	if row.Error != nil {
		resp.Error = *row.Error
	}
	if row.PodID != nil {
		resp.PodID = *row.PodID
	}
	return resp
}

// ExecutionDetailResponse is ExecutionResponse plus the most recent log
// lines, oldest first.
type ExecutionDetailResponse struct {
	*ExecutionResponse
	LogsTail []*LogEntry `json:"logsTail"`
}

// ExecutionListResponse is a paginated execution listing.
type ExecutionListResponse struct {
	Executions []*ExecutionResponse `json:"executions"`
	Total      int                  `json:"total"`
	Offset     int                  `json:"offset"`
	Limit      int                  `json:"limit"`
}

// CancelExecutionResponse reports the outcome of a cancel request.
// Cancelled is false when the run reached a terminal state first.
type CancelExecutionResponse struct {
	Cancelled bool   `json:"cancelled"`
	State     string `json:"state"`
}

// LogEntry is one execution log line.
type LogEntry struct {
	Sequence  int            `json:"sequence"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

func newLogEntry(l *ent.ExecutionLog) *LogEntry {
	return &LogEntry{
		Sequence:  l.Sequence,
		Level:     string(l.Level),
		Message:   l.Message,
		Metadata:  l.Metadata,
		Timestamp: l.CreatedAt,
	}
}

func newLogEntries(logs []*ent.ExecutionLog) []*LogEntry {
	out := make([]*LogEntry, len(logs))
	for i, l := range logs {
		out[i] = newLogEntry(l)
	}
	return out
}

// LogsPage is a paginated slice of execution logs ordered by sequence.
type LogsPage struct {
	Logs   []*LogEntry `json:"logs"`
	Total  int         `json:"total"`
	Offset int         `json:"offset"`
	Limit  int         `json:"limit"`
}

// AgentResponse is the wire representation of one agent row.
type AgentResponse struct {
	ID                   string         `json:"id"`
	OwnerID              string         `json:"ownerId"`
	Name                 string         `json:"name"`
	Framework            string         `json:"framework"`
	Configuration        map[string]any `json:"configuration,omitempty"`
	Tags                 []string       `json:"tags,omitempty"`
	Active               bool           `json:"active"`
	TotalExecutions      int64          `json:"totalExecutions"`
	SuccessfulExecutions int64          `json:"successfulExecutions"`
	FailedExecutions     int64          `json:"failedExecutions"`
	AvgDurationMs        float64        `json:"avgDurationMs"`
	LastExecutedAt       *time.Time     `json:"lastExecutedAt,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

func newAgentResponse(row *ent.Agent) *AgentResponse {
	return &AgentResponse{
		ID:                   row.ID,
		OwnerID:              row.OwnerID,
		Name:                 row.Name,
		Framework:            row.Framework,
		Configuration:        row.Configuration,
		Tags:                 row.Tags,
		Active:               row.Active,
		TotalExecutions:      row.TotalExecutions,
		SuccessfulExecutions: row.SuccessfulExecutions,
		FailedExecutions:     row.FailedExecutions,
		AvgDurationMs:        row.AvgDurationMs,
		LastExecutedAt:       row.LastExecutedAt,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}

// WebhookResponse is the wire representation of one webhook. Secret is
// populated only in the creation response; it is never readable again.
type WebhookResponse struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"ownerId"`
	URL            string     `json:"url"`
	Events         []string   `json:"events"`
	Active         bool       `json:"active"`
	DisabledReason string     `json:"disabledReason,omitempty"`
	DisabledAt     *time.Time `json:"disabledAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	Secret         string     `json:"secret,omitempty"`
}

func newWebhookResponse(row *ent.Webhook) *WebhookResponse {
	resp := &WebhookResponse{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		URL:        row.URL,
		Events:     row.SubscribedEvents,
		Active:     row.Active,
		DisabledAt: row.DisabledAt,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.DisabledReason != nil {
		resp.DisabledReason = *row.DisabledReason
	}
	return resp
}

// DeliveryResponse is one webhook delivery attempt chain entry.
type DeliveryResponse struct {
	ID             string     `json:"id"`
	EventType      string     `json:"eventType"`
	EventID        string     `json:"eventId"`
	State          string     `json:"state"`
	AttemptCount   int        `json:"attemptCount"`
	ScheduledAt    time.Time  `json:"scheduledAt"`
	DeliveredAt    *time.Time `json:"deliveredAt,omitempty"`
	FailedAt       *time.Time `json:"failedAt,omitempty"`
	LastStatusCode *int       `json:"lastStatusCode,omitempty"`
	LastError      string     `json:"lastError,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func newDeliveryResponse(row *ent.WebhookDelivery) *DeliveryResponse {
	resp := &DeliveryResponse{
		ID:             row.ID,
		EventType:      row.EventType,
		EventID:        row.EventID,
		State:          string(row.State),
		AttemptCount:   row.AttemptCount,
		ScheduledAt:    row.ScheduledAt,
		DeliveredAt:    row.DeliveredAt,
		FailedAt:       row.FailedAt,
		LastStatusCode: row.LastStatusCode,
		CreatedAt:      row.CreatedAt,
	}
	if row.LastError != nil {
		resp.LastError = *row.LastError
	}
	return resp
}

// WebhookStatsResponse aggregates a webhook's delivery history.
type WebhookStatsResponse struct {
	Pending        int                 `json:"pending"`
	Delivering     int                 `json:"delivering"`
	Delivered      int                 `json:"delivered"`
	Retrying       int                 `json:"retrying"`
	Failed         int                 `json:"failed"`
	SuccessRate    float64             `json:"successRate"`
	Active         bool                `json:"active"`
	DisabledReason string              `json:"disabledReason,omitempty"`
	DisabledAt     *time.Time          `json:"disabledAt,omitempty"`
	Recent         []*DeliveryResponse `json:"recent"`
}

// HealthCheck is one dependency's health probe result.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// QueueCheck snapshots the execution queue backlog.
type QueueCheck struct {
	Status  string `json:"status"`
	Pending int    `json:"pending"`
	Running int    `json:"running"`
	Message string `json:"message,omitempty"`
}

// ErrorRateCheck is the rolling terminal-execution failure rate.
type ErrorRateCheck struct {
	Status  string  `json:"status"`
	Rate    float64 `json:"rate"`
	Window  string  `json:"window"`
	Samples int     `json:"samples"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string         `json:"status"`
	Version       string         `json:"version"`
	UptimeSeconds int64          `json:"uptime"`
	Checks        map[string]any `json:"checks"`
}
