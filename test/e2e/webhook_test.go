package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent/auditlog"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/webhook"
)

// TestWebhookDeliveryAndSignature runs one execution against a
// subscribed endpoint and checks the delivery headers, the signed
// payload, and the settled delivery row.
func TestWebhookDeliveryAndSignature(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	endpoint := NewHookEndpoint(t, alwaysStatus(http.StatusOK))

	hookID, secret := app.RegisterWebhook(t, acct, endpoint.URL(), []string{"execution.completed"})
	agentID := app.CreateAgent(t, acct, "echo-hooked", "echo", nil)

	execID := app.SubmitExecution(t, acct, agentID, "ping")
	app.WaitForExecutionState(t, execID, execution.StateCompleted)

	reqs := endpoint.WaitForRequests(t, 1)
	req := reqs[0]

	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "AgentOrchestra/1.0", req.Header.Get("User-Agent"))
	assert.Equal(t, "execution.completed", req.Header.Get("X-Webhook-Event"))
	assert.NotEmpty(t, req.Header.Get("X-Webhook-Delivery"))

	unix, err := strconv.ParseInt(req.Header.Get("X-Webhook-Timestamp"), 10, 64)
	require.NoError(t, err)
	ts := time.Unix(unix, 0)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)

	sig := req.Header.Get("X-Webhook-Signature")
	assert.True(t, webhook.Verify(secret, ts, req.Body, sig),
		"the signature must verify against the returned secret")
	assert.False(t, webhook.Verify(secret+"x", ts, req.Body, sig),
		"a different secret must not verify")

	var payload map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &payload))
	assert.NotEmpty(t, payload["id"])
	assert.Equal(t, "execution.completed", payload["type"])
	assert.Equal(t, "agent-orchestra", payload["source"])
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, execID, data["execution_id"])
	assert.Equal(t, agentID, data["agent_id"])

	rows := app.WaitForDeliverySettled(t, hookID, 1)
	require.Len(t, rows, 1)
	assert.Equal(t, webhookdelivery.StateDelivered, rows[0].State)
	assert.Equal(t, 1, rows[0].AttemptCount)
	require.NotNil(t, rows[0].DeliveredAt)
	assert.Nil(t, rows[0].FailedAt)
}

// TestWebhookRetryLadder scripts an endpoint that fails three times and
// then accepts. The chain must settle as exactly four attempt rows with
// exponentially spaced schedules.
func TestWebhookRetryLadder(t *testing.T) {
	cfg := defaultDeliveryConfig()
	app := NewTestApp(t, WithDeliveryConfig(cfg))
	acct := app.NewAccount(t, models.RoleUser)

	endpoint := NewHookEndpoint(t, func(n int) int {
		if n <= 3 {
			return http.StatusInternalServerError
		}
		return http.StatusOK
	})

	hookID, secret := app.RegisterWebhook(t, acct, endpoint.URL(), []string{"execution.completed"})
	agentID := app.CreateAgent(t, acct, "echo-retry", "echo", nil)

	execID := app.SubmitExecution(t, acct, agentID, "retry me")
	app.WaitForExecutionState(t, execID, execution.StateCompleted)

	reqs := endpoint.WaitForRequests(t, 4)
	rows := app.WaitForDeliverySettled(t, hookID, 4)
	require.Len(t, rows, 4, "three failures and one success: four attempt rows")

	wantStates := []webhookdelivery.State{
		webhookdelivery.StateRetry,
		webhookdelivery.StateRetry,
		webhookdelivery.StateRetry,
		webhookdelivery.StateDelivered,
	}
	for i, row := range rows {
		assert.Equal(t, wantStates[i], row.State, "row %d", i)
		assert.Equal(t, i+1, row.AttemptCount, "row %d", i)
	}
	for _, row := range rows[:3] {
		require.NotNil(t, row.LastStatusCode)
		assert.Equal(t, http.StatusInternalServerError, *row.LastStatusCode)
		require.NotNil(t, row.LastError)
	}

	// Each retry is scheduled one doubling further out.
	for i := 0; i < 3; i++ {
		delay := cfg.BaseDelay * time.Duration(1<<(i+1))
		gap := rows[i+1].ScheduledAt.Sub(rows[i].ScheduledAt)
		assert.GreaterOrEqual(t, gap, delay, "gap %d", i)
		assert.Less(t, gap, delay+3*time.Second, "gap %d", i)
	}

	// All four attempts carry the same event id; each attempt gets its
	// own delivery id and a fresh signature timestamp.
	deliveryIDs := map[string]bool{}
	var eventIDs []string
	for _, req := range reqs {
		deliveryIDs[req.Header.Get("X-Webhook-Delivery")] = true
		var payload map[string]any
		require.NoError(t, json.Unmarshal(req.Body, &payload))
		eventIDs = append(eventIDs, payload["id"].(string))

		unix, err := strconv.ParseInt(req.Header.Get("X-Webhook-Timestamp"), 10, 64)
		require.NoError(t, err)
		assert.True(t, webhook.Verify(secret, time.Unix(unix, 0), req.Body, req.Header.Get("X-Webhook-Signature")))
	}
	assert.Len(t, deliveryIDs, 4)
	for _, id := range eventIDs[1:] {
		assert.Equal(t, eventIDs[0], id, "retries re-deliver the same event")
	}
}

// TestWebhookExhaustionAndAutoDisable drives repeated delivery failures
// until the endpoint's webhook is switched off. Later events must not
// enqueue anything for it.
func TestWebhookExhaustionAndAutoDisable(t *testing.T) {
	cfg := defaultDeliveryConfig()
	// One attempt per event keeps each failure a single settled row.
	cfg.MaxAttempts = 1

	app := NewTestApp(t, WithDeliveryConfig(cfg))
	acct := app.NewAccount(t, models.RoleUser)

	endpoint := NewHookEndpoint(t, alwaysStatus(http.StatusInternalServerError))
	hookID, _ := app.RegisterWebhook(t, acct, endpoint.URL(), []string{"execution.completed"})
	agentID := app.CreateAgent(t, acct, "echo-doomed", "echo", nil)

	for i := 0; i < 10; i++ {
		execID := app.SubmitExecution(t, acct, agentID, "doomed")
		app.WaitForExecutionState(t, execID, execution.StateCompleted)
		app.WaitForDeliverySettled(t, hookID, i+1)
	}

	hook := app.WaitForWebhookInactive(t, hookID)
	require.NotNil(t, hook.DisabledReason)
	assert.Contains(t, *hook.DisabledReason, "auto-disabled: 10 failed deliveries")
	require.NotNil(t, hook.DisabledAt)

	rows := app.QueryDeliveries(t, hookID)
	require.Len(t, rows, 10)
	for _, row := range rows {
		assert.Equal(t, webhookdelivery.StateFailed, row.State)
		require.NotNil(t, row.FailedAt)
	}

	// The disable is recorded in the audit trail.
	audits, err := app.EntClient.AuditLog.Query().
		Where(
			auditlog.ActionEQ("webhook.auto_disable"),
			auditlog.ResourceIDEQ(hookID),
		).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, audits)

	// New events skip the disabled webhook entirely.
	lastID := app.SubmitExecution(t, acct, agentID, "after disable")
	app.WaitForExecutionState(t, lastID, execution.StateCompleted)
	time.Sleep(500 * time.Millisecond)
	assert.Len(t, app.QueryDeliveries(t, hookID), 10, "no delivery may be enqueued after disable")
}

// TestWebhookEventFilter subscribes to failures only; completions must
// not produce deliveries.
func TestWebhookEventFilter(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)

	endpoint := NewHookEndpoint(t, alwaysStatus(http.StatusOK))
	hookID, _ := app.RegisterWebhook(t, acct, endpoint.URL(), []string{"execution.failed"})

	okAgent := app.CreateAgent(t, acct, "filter-ok", "echo", nil)
	failAgent := app.CreateAgent(t, acct, "filter-fail", "echo", map[string]any{"fail": true})

	okID := app.SubmitExecution(t, acct, okAgent, "fine")
	app.WaitForExecutionState(t, okID, execution.StateCompleted)

	failID := app.SubmitExecution(t, acct, failAgent, "broken")
	app.WaitForExecutionState(t, failID, execution.StateFailed)

	rows := app.WaitForDeliverySettled(t, hookID, 1)
	require.Len(t, rows, 1)
	assert.Equal(t, "execution.failed", rows[0].EventType)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(endpoint.WaitForRequests(t, 1)[0].Body, &payload))
	data := payload["data"].(map[string]any)
	assert.Equal(t, failID, data["execution_id"])
}
