package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent"
	entagent "github.com/agent-orchestra/orchestra/ent/agent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/services"
)

// waitTimeout bounds every polling helper. Generous against CI-induced
// slowness; Eventually returns as soon as the condition holds.
const waitTimeout = 30 * time.Second

// Account pairs a seeded user with a live API key for it.
type Account struct {
	User *ent.User
	Key  string
}

// NewAccount seeds a user and an admin-capability API key.
func (app *TestApp) NewAccount(t *testing.T, role string) *Account {
	t.Helper()
	u, err := app.Users.Create(context.Background(), services.CreateUserRequest{
		Email: uuid.New().String()[:8] + "@example.com",
		Name:  "e2e user",
		Role:  role,
	})
	require.NoError(t, err)
	_, plaintext, err := app.Keys.Create(context.Background(),
		models.Actor{ID: u.ID, Role: string(u.Role)},
		services.CreateAPIKeyRequest{
			Name:        "e2e-key",
			Permissions: []string{auth.CapAdminAll},
		})
	require.NoError(t, err)
	return &Account{User: u, Key: plaintext}
}

// CreateAgent registers an agent over HTTP and returns its id.
func (app *TestApp) CreateAgent(t *testing.T, acct *Account, name, fw string, cfg map[string]any) string {
	t.Helper()
	body := map[string]any{"name": name, "framework": fw}
	if cfg != nil {
		body["configuration"] = cfg
	}
	resp := app.postJSON(t, acct.Key, "/api/agents", body, http.StatusCreated)
	return resp["id"].(string)
}

// SubmitExecution queues a run over HTTP and returns the execution id.
func (app *TestApp) SubmitExecution(t *testing.T, acct *Account, agentID, input string) string {
	t.Helper()
	resp := app.postJSON(t, acct.Key, "/api/executions",
		map[string]any{"agentId": agentID, "input": input}, http.StatusCreated)
	return resp["executionId"].(string)
}

// CancelExecution issues DELETE /api/executions/:id expecting 200.
func (app *TestApp) CancelExecution(t *testing.T, acct *Account, executionID string) map[string]any {
	t.Helper()
	return app.doJSON(t, acct.Key, http.MethodDelete, "/api/executions/"+executionID, nil, http.StatusOK)
}

// RegisterWebhook creates a webhook over HTTP and returns (id, secret).
func (app *TestApp) RegisterWebhook(t *testing.T, acct *Account, url string, eventTypes []string) (string, string) {
	t.Helper()
	resp := app.postJSON(t, acct.Key, "/api/webhooks",
		map[string]any{"url": url, "events": eventTypes}, http.StatusCreated)
	return resp["id"].(string), resp["secret"].(string)
}

// GetExecution fetches GET /api/executions/:id.
func (app *TestApp) GetExecution(t *testing.T, acct *Account, executionID string) map[string]any {
	t.Helper()
	return app.getJSON(t, acct.Key, "/api/executions/"+executionID, http.StatusOK)
}

// GetExecutionLogs fetches GET /api/executions/:id/logs.
func (app *TestApp) GetExecutionLogs(t *testing.T, acct *Account, executionID string) map[string]any {
	t.Helper()
	return app.getJSON(t, acct.Key, "/api/executions/"+executionID+"/logs", http.StatusOK)
}

// GetHealth fetches the unauthenticated health document.
func (app *TestApp) GetHealth(t *testing.T) map[string]any {
	t.Helper()
	return app.getJSON(t, "", "/health", http.StatusOK)
}

func (app *TestApp) postJSON(t *testing.T, token, path string, body any, expectedStatus int) map[string]any {
	t.Helper()
	return app.doJSON(t, token, http.MethodPost, path, body, expectedStatus)
}

func (app *TestApp) getJSON(t *testing.T, token, path string, expectedStatus int) map[string]any {
	t.Helper()
	return app.doJSON(t, token, http.MethodGet, path, nil, expectedStatus)
}

// doJSON performs one request and decodes the JSON object response.
func (app *TestApp) doJSON(t *testing.T, token, method, path string, body any, expectedStatus int) map[string]any {
	t.Helper()
	resp := app.do(t, token, method, path, body)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode,
		"%s %s: unexpected status (body: %s)", method, path, raw)
	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "%s %s: not a JSON object: %s", method, path, raw)
	return result
}

// do performs one request and returns the raw response. Callers own the
// body.
func (app *TestApp) do(t *testing.T, token, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// WaitForExecutionState polls the store until the execution reaches one
// of the expected states and returns the row.
func (app *TestApp) WaitForExecutionState(t *testing.T, executionID string, expected ...execution.State) *ent.Execution {
	t.Helper()
	var row *ent.Execution
	var last execution.State
	require.Eventually(t, func() bool {
		r, err := app.EntClient.Execution.Get(context.Background(), executionID)
		if err != nil {
			return false
		}
		last = r.State
		for _, exp := range expected {
			if r.State == exp {
				row = r
				return true
			}
		}
		return false
	}, waitTimeout, 25*time.Millisecond,
		"execution %s did not reach state %v (last: %s)", executionID, expected, last)
	return row
}

// WaitForAgentStats polls until the agent's total execution counter
// reaches n and returns the row.
func (app *TestApp) WaitForAgentStats(t *testing.T, agentID string, n int64) *ent.Agent {
	t.Helper()
	var row *ent.Agent
	require.Eventually(t, func() bool {
		r, err := app.EntClient.Agent.Query().
			Where(entagent.IDEQ(agentID)).
			Only(context.Background())
		if err != nil || r.TotalExecutions < n {
			return false
		}
		row = r
		return true
	}, waitTimeout, 25*time.Millisecond,
		"agent %s never recorded %d executions", agentID, n)
	return row
}

// executionsForAgent returns all execution rows for an agent, oldest
// first.
func (app *TestApp) executionsForAgent(t *testing.T, agentID string) []*ent.Execution {
	t.Helper()
	rows, err := app.EntClient.Execution.Query().
		Where(execution.AgentIDEQ(agentID)).
		Order(ent.Asc(execution.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// QueryDeliveries returns all delivery rows for a webhook, oldest
// first.
func (app *TestApp) QueryDeliveries(t *testing.T, webhookID string) []*ent.WebhookDelivery {
	t.Helper()
	rows, err := app.EntClient.WebhookDelivery.Query().
		Where(webhookdelivery.WebhookIDEQ(webhookID)).
		Order(ent.Asc(webhookdelivery.FieldScheduledAt, webhookdelivery.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// WaitForDeliverySettled polls until every delivery row for the webhook
// is in a settled state (delivered, retry, or failed) and at least n
// rows exist.
func (app *TestApp) WaitForDeliverySettled(t *testing.T, webhookID string, n int) []*ent.WebhookDelivery {
	t.Helper()
	var rows []*ent.WebhookDelivery
	require.Eventually(t, func() bool {
		all, err := app.EntClient.WebhookDelivery.Query().
			Where(webhookdelivery.WebhookIDEQ(webhookID)).
			Order(ent.Asc(webhookdelivery.FieldScheduledAt, webhookdelivery.FieldCreatedAt)).
			All(context.Background())
		if err != nil || len(all) < n {
			return false
		}
		for _, r := range all {
			switch r.State {
			case webhookdelivery.StateDelivered, webhookdelivery.StateRetry, webhookdelivery.StateFailed:
			default:
				return false
			}
		}
		rows = all
		return true
	}, waitTimeout, 25*time.Millisecond,
		"webhook %s never settled %d deliveries", webhookID, n)
	return rows
}

// WaitForWebhookInactive polls until the webhook row is disabled.
func (app *TestApp) WaitForWebhookInactive(t *testing.T, webhookID string) *ent.Webhook {
	t.Helper()
	var row *ent.Webhook
	require.Eventually(t, func() bool {
		r, err := app.EntClient.Webhook.Get(context.Background(), webhookID)
		if err != nil || r.Active {
			return false
		}
		row = r
		return true
	}, waitTimeout, 25*time.Millisecond,
		"webhook %s was never auto-disabled", webhookID)
	return row
}

// HookRequest is one request received by a HookEndpoint.
type HookRequest struct {
	At     time.Time
	Body   []byte
	Header http.Header
}

// HookEndpoint is a scripted webhook receiver. The respond function
// maps the 1-based request ordinal to the status code to return.
type HookEndpoint struct {
	srv     *httptest.Server
	respond func(n int) int

	mu       sync.Mutex
	requests []HookRequest
}

// NewHookEndpoint starts a recording endpoint; it is closed via
// t.Cleanup.
func NewHookEndpoint(t *testing.T, respond func(n int) int) *HookEndpoint {
	t.Helper()
	h := &HookEndpoint{respond: respond}
	h.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		h.mu.Lock()
		h.requests = append(h.requests, HookRequest{
			At:     time.Now(),
			Body:   body,
			Header: r.Header.Clone(),
		})
		n := len(h.requests)
		h.mu.Unlock()
		w.WriteHeader(h.respond(n))
	}))
	t.Cleanup(h.srv.Close)
	return h
}

// URL is the endpoint address webhooks should be registered with.
func (h *HookEndpoint) URL() string {
	return h.srv.URL
}

// Requests returns a snapshot of everything received so far.
func (h *HookEndpoint) Requests() []HookRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]HookRequest, len(h.requests))
	copy(out, h.requests)
	return out
}

// WaitForRequests polls until the endpoint has received at least n
// requests.
func (h *HookEndpoint) WaitForRequests(t *testing.T, n int) []HookRequest {
	t.Helper()
	var last int
	require.Eventually(t, func() bool {
		h.mu.Lock()
		defer h.mu.Unlock()
		last = len(h.requests)
		return last >= n
	}, waitTimeout, 25*time.Millisecond,
		"endpoint did not receive %d requests (saw %d)", n, last)
	return h.Requests()
}

// alwaysStatus scripts an endpoint that answers every request with the
// same code.
func alwaysStatus(code int) func(int) int {
	return func(int) int { return code }
}
