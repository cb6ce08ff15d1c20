package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/executionlog"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

// TestExecutionTimeout runs a plugin that sleeps far past its per-run
// timeout. The run must land in the timeout state with a synthetic
// error log persisted before the terminal transition.
func TestExecutionTimeout(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-stuck", "echo", map[string]any{"delay_ms": 30000})

	resp := app.postJSON(t, acct.Key, "/api/executions", map[string]any{
		"agentId":   agentID,
		"input":     "will not finish",
		"timeoutMs": 1000,
	}, 201)
	execID := resp["executionId"].(string)

	row := app.WaitForExecutionState(t, execID, execution.StateTimeout)

	require.NotNil(t, row.Error)
	assert.Equal(t, "execution timed out after 1s", *row.Error)
	require.NotNil(t, row.DurationMs)
	assert.GreaterOrEqual(t, *row.DurationMs, int64(900))
	assert.Less(t, *row.DurationMs, int64(10000))

	// The synthetic timeout line is persisted with the run's logs.
	n, err := app.EntClient.ExecutionLog.Query().
		Where(
			executionlog.ExecutionIDEQ(execID),
			executionlog.LevelEQ(executionlog.LevelError),
			executionlog.MessageContains("timed out"),
		).
		Count(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)

	// Timeouts count as failures on the agent.
	agent := app.WaitForAgentStats(t, agentID, 1)
	assert.Equal(t, int64(1), agent.FailedExecutions)
}

// TestTimeoutClamping verifies the stored per-run timeout is clamped
// into the configured window at submission time.
func TestTimeoutClamping(t *testing.T) {
	app := NewTestApp(t, WithoutEngine())
	acct := app.NewAccount(t, models.RoleUser)

	agentA := app.CreateAgent(t, acct, "clamp-low", "echo", nil)
	agentB := app.CreateAgent(t, acct, "clamp-high", "echo", nil)
	agentC := app.CreateAgent(t, acct, "clamp-default", "echo", nil)

	lowResp := app.postJSON(t, acct.Key, "/api/executions", map[string]any{
		"agentId": agentA, "input": "x", "timeoutMs": 10,
	}, 201)
	low, err := app.EntClient.Execution.Get(context.Background(), lowResp["executionId"].(string))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), low.TimeoutMs, "sub-second timeouts are raised to the floor")

	highResp := app.postJSON(t, acct.Key, "/api/executions", map[string]any{
		"agentId": agentB, "input": "x", "timeoutMs": int64(3600000),
	}, 201)
	high, err := app.EntClient.Execution.Get(context.Background(), highResp["executionId"].(string))
	require.NoError(t, err)
	assert.Equal(t, int64(30000), high.TimeoutMs, "timeouts are capped at the configured maximum")

	defResp := app.postJSON(t, acct.Key, "/api/executions", map[string]any{
		"agentId": agentC, "input": "x",
	}, 201)
	def, err := app.EntClient.Execution.Get(context.Background(), defResp["executionId"].(string))
	require.NoError(t, err)
	assert.Equal(t, int64(10000), def.TimeoutMs, "omitted timeout takes the default")
}
