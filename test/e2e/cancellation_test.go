package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/executionlog"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

// TestCancelRunningExecution interrupts a long-running plugin mid-run.
// The row must flip to cancelled promptly, with duration recorded, and
// a repeat cancel must be a no-op.
func TestCancelRunningExecution(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-slow", "echo", map[string]any{"delay_ms": 10000})

	execID := app.SubmitExecution(t, acct, agentID, "sleepy")
	app.WaitForExecutionState(t, execID, execution.StateRunning)

	// Let the plugin actually sleep before interrupting it.
	time.Sleep(200 * time.Millisecond)

	cancelAt := time.Now()
	resp := app.CancelExecution(t, acct, execID)
	assert.Equal(t, true, resp["cancelled"])
	assert.Equal(t, "cancelled", resp["state"])

	row := app.WaitForExecutionState(t, execID, execution.StateCancelled)
	assert.Less(t, time.Since(cancelAt), 2*time.Second)

	require.NotNil(t, row.Error)
	assert.Equal(t, "cancelled by user", *row.Error)
	require.NotNil(t, row.CompletedAt)
	require.NotNil(t, row.DurationMs, "a started run records its duration on cancel")
	assert.Greater(t, *row.DurationMs, int64(0))

	// Cancelled runs count toward the total but neither outcome bucket.
	agent := app.WaitForAgentStats(t, agentID, 1)
	assert.Equal(t, int64(1), agent.TotalExecutions)
	assert.Equal(t, int64(0), agent.SuccessfulExecutions)
	assert.Equal(t, int64(0), agent.FailedExecutions)

	// Cancelling again reports nothing to do.
	again := app.CancelExecution(t, acct, execID)
	assert.Equal(t, false, again["cancelled"])
	assert.Equal(t, "cancelled", again["state"])
}

// TestCancelPendingExecution cancels a queued row before any worker
// claims it. No engine pool runs in this test, so the row stays pending
// until the cancel arrives.
func TestCancelPendingExecution(t *testing.T) {
	app := NewTestApp(t, WithoutEngine())
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-queued", "echo", nil)

	execID := app.SubmitExecution(t, acct, agentID, "never runs")

	resp := app.CancelExecution(t, acct, execID)
	assert.Equal(t, true, resp["cancelled"])
	assert.Equal(t, "cancelled", resp["state"])

	row := app.WaitForExecutionState(t, execID, execution.StateCancelled)
	assert.Nil(t, row.StartedAt)
	assert.Nil(t, row.DurationMs, "a never-started run has no duration")
	require.NotNil(t, row.CompletedAt)
	require.NotNil(t, row.Error)
	assert.Equal(t, "cancelled by user", *row.Error)
}

// TestCancelFinishedExecution is a no-op against a completed run: 200,
// cancelled=false, and the state is left alone.
func TestCancelFinishedExecution(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-done", "echo", nil)

	execID := app.SubmitExecution(t, acct, agentID, "quick")
	app.WaitForExecutionState(t, execID, execution.StateCompleted)

	resp := app.CancelExecution(t, acct, execID)
	assert.Equal(t, false, resp["cancelled"])
	assert.Equal(t, "completed", resp["state"])

	row := app.WaitForExecutionState(t, execID, execution.StateCompleted)
	assert.Nil(t, row.Error)
}

// TestCancelAcrossReplicas cancels through a replica that is not
// running the execution. The claiming pod's cancel registry is never
// touched, so the worker only learns from its next heartbeat matching
// zero rows; the run must still wind down, and nothing may follow the
// cancelled event: no log event, no log row, no second terminal.
func TestCancelAcrossReplicas(t *testing.T) {
	apiApp := NewTestApp(t, WithoutEngine(), WithPodID("pod-api"))
	workerCfg := defaultEngineConfig()
	workerCfg.HeartbeatInterval = 200 * time.Millisecond
	NewTestApp(t,
		WithDBClient(apiApp.DBClient),
		WithCache(apiApp.Cache, apiApp.Redis),
		WithPodID("pod-worker"),
		WithEngineConfig(workerCfg))

	acct := apiApp.NewAccount(t, models.RoleUser)
	agentID := apiApp.CreateAgent(t, acct, "echo-elsewhere-slow", "echo",
		map[string]any{"delay_ms": 3000})

	execID := apiApp.SubmitExecution(t, acct, agentID, "runs on the other pod")

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	ws, err := WSConnect(ctx, apiApp.WSURL, acct.Key)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()
	require.NoError(t, ws.Subscribe(events.ExecutionRoom(execID)))
	_, err = ws.WaitForEventType("subscription.confirmed", waitTimeout)
	require.NoError(t, err)

	running := apiApp.WaitForExecutionState(t, execID, execution.StateRunning)
	require.NotNil(t, running.PodID)
	assert.Equal(t, "pod-worker", *running.PodID)

	// Let the plugin settle into its sleep before interrupting.
	time.Sleep(200 * time.Millisecond)

	resp := apiApp.CancelExecution(t, acct, execID)
	assert.Equal(t, true, resp["cancelled"])

	_, err = ws.WaitForEventType("execution.cancelled", waitTimeout)
	require.NoError(t, err)

	// Sit out the plugin's full sleep. An uninterrupted worker would
	// finish now, log its echo line, and try a second terminal write.
	time.Sleep(3500 * time.Millisecond)

	assert.Empty(t, ws.EventsByType("execution.log"),
		"no log event may follow the cancelled event")
	assert.Empty(t, ws.EventsByType("execution.completed"),
		"the worker's losing terminal write must stay silent")

	n, err := apiApp.EntClient.ExecutionLog.Query().
		Where(executionlog.ExecutionIDEQ(execID)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "no log row may land after the terminal transition")

	row := apiApp.WaitForExecutionState(t, execID, execution.StateCancelled)
	require.NotNil(t, row.Error)
	assert.Equal(t, "cancelled by user", *row.Error)
}
