package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/executionlog"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

// TestPipelineSubmitToCompletion drives the whole execution path over
// HTTP: queue a run, let a worker claim and execute it, then verify the
// terminal row, the persisted logs, and the agent statistics.
func TestPipelineSubmitToCompletion(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-pipeline", "echo", nil)

	start := time.Now()
	execID := app.SubmitExecution(t, acct, agentID, "hello")
	row := app.WaitForExecutionState(t, execID, execution.StateCompleted)
	require.Less(t, time.Since(start), 5*time.Second)

	require.NotNil(t, row.Output)
	content, _ := row.Output["content"].(string)
	assert.Contains(t, content, "hello")
	assert.Equal(t, execution.TriggerManual, row.Trigger)
	assert.Nil(t, row.Error)
	require.NotNil(t, row.StartedAt)
	require.NotNil(t, row.CompletedAt)
	require.NotNil(t, row.DurationMs)
	assert.GreaterOrEqual(t, *row.DurationMs, int64(0))
	require.NotNil(t, row.PodID)
	assert.NotEmpty(t, *row.PodID)

	infoLogs, err := app.EntClient.ExecutionLog.Query().
		Where(
			executionlog.ExecutionIDEQ(execID),
			executionlog.LevelEQ(executionlog.LevelInfo),
		).
		Count(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, infoLogs, 1, "the plugin's info log should be persisted")

	agent := app.WaitForAgentStats(t, agentID, 1)
	assert.Equal(t, int64(1), agent.TotalExecutions)
	assert.Equal(t, int64(1), agent.SuccessfulExecutions)
	assert.Equal(t, int64(0), agent.FailedExecutions)
	require.NotNil(t, agent.LastExecutedAt)

	// The HTTP view agrees with the store.
	doc := app.GetExecution(t, acct, execID)
	assert.Equal(t, "completed", doc["state"])
	assert.Equal(t, agentID, doc["agentId"])
	assert.Equal(t, acct.User.ID, doc["submitterId"])

	logsDoc := app.GetExecutionLogs(t, acct, execID)
	logs, ok := logsDoc["logs"].([]any)
	require.True(t, ok, "logs response: %v", logsDoc)
	assert.NotEmpty(t, logs)
}

// TestPipelinePluginFailure checks that a plugin error lands the run in
// the failed state with the error message preserved and the agent's
// failure counter bumped.
func TestPipelinePluginFailure(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-failing", "echo", map[string]any{"fail": true})

	execID := app.SubmitExecution(t, acct, agentID, "boom")
	row := app.WaitForExecutionState(t, execID, execution.StateFailed)

	require.NotNil(t, row.Error)
	assert.Equal(t, "echo configured to fail", *row.Error)
	require.NotNil(t, row.CompletedAt)
	assert.Nil(t, row.Output)

	agent := app.WaitForAgentStats(t, agentID, 1)
	assert.Equal(t, int64(1), agent.FailedExecutions)
	assert.Equal(t, int64(0), agent.SuccessfulExecutions)
}

// TestPipelineConfigOverride submits with a per-run configuration that
// overlays the agent's stored configuration for that run only.
func TestPipelineConfigOverride(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-prefixed", "echo", map[string]any{"prefix": "agent: "})

	// Run once with the stored configuration.
	plainID := app.SubmitExecution(t, acct, agentID, "alpha")
	plain := app.WaitForExecutionState(t, plainID, execution.StateCompleted)
	assert.Equal(t, "agent: alpha", plain.Output["content"])

	// Run again with an override; the stored configuration is untouched.
	resp := app.postJSON(t, acct.Key, "/api/executions", map[string]any{
		"agentId":       agentID,
		"input":         "beta",
		"configuration": map[string]any{"prefix": "override: "},
	}, 201)
	overrideID := resp["executionId"].(string)
	assert.Equal(t, "queued", resp["status"])

	overridden := app.WaitForExecutionState(t, overrideID, execution.StateCompleted)
	assert.Equal(t, "override: beta", overridden.Output["content"])

	thirdID := app.SubmitExecution(t, acct, agentID, "gamma")
	third := app.WaitForExecutionState(t, thirdID, execution.StateCompleted)
	assert.Equal(t, "agent: gamma", third.Output["content"])
}
