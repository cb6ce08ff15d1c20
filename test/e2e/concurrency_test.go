package e2e

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

// TestAgentSingleFlight submits twice against the same agent while the
// first run is still in flight. The second submission must be rejected
// with a conflict naming the blocking execution; once the first run
// finishes, the agent accepts work again.
func TestAgentSingleFlight(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-busy", "echo", map[string]any{"delay_ms": 2000})

	firstID := app.SubmitExecution(t, acct, agentID, "first")

	resp := app.do(t, acct.Key, http.MethodPost, "/api/executions",
		map[string]any{"agentId": agentID, "input": "second"})
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusConflict, resp.StatusCode, "body: %s", body)
	assert.Contains(t, string(body), "AGENT_BUSY")
	assert.Contains(t, string(body), firstID, "the conflict should name the blocking execution")

	// No second row was created.
	assert.Len(t, app.executionsForAgent(t, agentID), 1)

	app.WaitForExecutionState(t, firstID, execution.StateCompleted)

	thirdID := app.SubmitExecution(t, acct, agentID, "third")
	app.WaitForExecutionState(t, thirdID, execution.StateCompleted)
}

// TestPerUserConcurrencyCap caps a user at two active executions.
// The third submission is rejected until one slot frees up.
func TestPerUserConcurrencyCap(t *testing.T) {
	engineCfg := defaultEngineConfig()
	engineCfg.Workers = 4
	engineCfg.MaxConcurrentPerUser = 2

	app := NewTestApp(t, WithEngineConfig(engineCfg))
	acct := app.NewAccount(t, models.RoleUser)

	agentA := app.CreateAgent(t, acct, "cap-a", "echo", map[string]any{"delay_ms": 10000})
	agentB := app.CreateAgent(t, acct, "cap-b", "echo", map[string]any{"delay_ms": 10000})
	agentC := app.CreateAgent(t, acct, "cap-c", "echo", nil)

	execA := app.SubmitExecution(t, acct, agentA, "one")
	execB := app.SubmitExecution(t, acct, agentB, "two")

	resp := app.do(t, acct.Key, http.MethodPost, "/api/executions",
		map[string]any{"agentId": agentC, "input": "three"})
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode, "body: %s", body)
	assert.Contains(t, string(body), "CONCURRENCY_LIMIT")

	// Freeing one slot lets the user submit again.
	app.CancelExecution(t, acct, execA)
	app.WaitForExecutionState(t, execA, execution.StateCancelled)

	execC := app.SubmitExecution(t, acct, agentC, "three")
	app.WaitForExecutionState(t, execC, execution.StateCompleted)

	app.CancelExecution(t, acct, execB)
}
