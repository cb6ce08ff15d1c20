package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/executionlog"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

// TestMultiReplicaClaiming runs two orchestrator replicas against one
// schema and one cache, queues a batch of work through the first, and
// verifies every run executes exactly once with both pods claiming.
func TestMultiReplicaClaiming(t *testing.T) {
	appA := NewTestApp(t, WithPodID("pod-a"))
	NewTestApp(t,
		WithDBClient(appA.DBClient),
		WithCache(appA.Cache, appA.Redis),
		WithPodID("pod-b"))

	acct := appA.NewAccount(t, models.RoleUser)

	const runs = 8
	agentIDs := make([]string, runs)
	for i := range agentIDs {
		agentIDs[i] = appA.CreateAgent(t, acct, fmt.Sprintf("fleet-%d", i), "echo",
			map[string]any{"delay_ms": 500})
	}
	execIDs := make([]string, runs)
	for i, agentID := range agentIDs {
		execIDs[i] = appA.SubmitExecution(t, acct, agentID, fmt.Sprintf("task %d", i))
	}

	pods := map[string]int{}
	for _, id := range execIDs {
		row := appA.WaitForExecutionState(t, id, execution.StateCompleted)
		require.NotNil(t, row.PodID)
		pods[*row.PodID]++

		// The echo plugin logs exactly once per run; a duplicate claim
		// would leave a second line.
		n, err := appA.EntClient.ExecutionLog.Query().
			Where(
				executionlog.ExecutionIDEQ(id),
				executionlog.LevelEQ(executionlog.LevelInfo),
			).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n, "execution %s must run exactly once", id)
	}

	for pod := range pods {
		assert.Contains(t, []string{"pod-a", "pod-b"}, pod)
	}
	assert.Len(t, pods, 2, "work should spread across both replicas: %v", pods)
}

// TestMultiReplicaEventFanout subscribes on one replica and submits on
// the other. The terminal event crosses the shared cache regardless of
// which pod executed the run.
func TestMultiReplicaEventFanout(t *testing.T) {
	appA := NewTestApp(t, WithPodID("pod-a"))
	appB := NewTestApp(t,
		WithDBClient(appA.DBClient),
		WithCache(appA.Cache, appA.Redis),
		WithPodID("pod-b"))

	acct := appA.NewAccount(t, models.RoleUser)
	agentID := appA.CreateAgent(t, acct, "echo-anywhere", "echo", nil)

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	ws, err := WSConnect(ctx, appB.WSURL, acct.Key)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()

	require.NoError(t, ws.Subscribe(events.UserRoom(acct.User.ID)))
	_, err = ws.WaitForEventType("subscription.confirmed", waitTimeout)
	require.NoError(t, err)

	execID := appA.SubmitExecution(t, acct, agentID, "cross-pod")
	term, err := ws.WaitForEventType("execution.completed", waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, execID, term.Parsed["execution_id"])
}

// TestOrphanRecoveryAtStartup replays the boot-time sweep: rows still
// claiming this pod from a previous life fail immediately, as does any
// ancient queued row, while fresh work from other pods is untouched.
func TestOrphanRecoveryAtStartup(t *testing.T) {
	app := NewTestApp(t, WithoutEngine(), WithPodID("pod-reborn"))
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-orphaned", "echo", nil)

	ctx := context.Background()

	// A run this pod claimed before it died.
	mineID := app.SubmitExecution(t, acct, agentID, "was running here")
	started := time.Now().Add(-2 * time.Minute)
	require.NoError(t, app.EntClient.Execution.UpdateOneID(mineID).
		SetState(execution.StateRunning).
		SetPodID("pod-reborn").
		SetStartedAt(started).
		SetLastHeartbeatAt(started).
		Exec(ctx))

	// A queued row old enough that every deadline has long passed. It
	// gets its own agent; the busy one above already holds the
	// single-flight slot.
	staleAgent := app.CreateAgent(t, acct, "echo-stale", "echo", nil)
	staleID := uuid.New().String()
	_, err := app.EntClient.Execution.Create().
		SetID(staleID).
		SetAgentID(staleAgent).
		SetSubmitterID(acct.User.ID).
		SetInput("forgotten").
		SetTimeoutMs(5000).
		SetCreatedAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	// A healthy running row on another pod.
	otherAgent := app.CreateAgent(t, acct, "echo-elsewhere", "echo", nil)
	otherID := app.SubmitExecution(t, acct, otherAgent, "alive elsewhere")
	require.NoError(t, app.EntClient.Execution.UpdateOneID(otherID).
		SetState(execution.StateRunning).
		SetPodID("pod-alive").
		SetStartedAt(time.Now()).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx))

	recovered, err := app.Engine.RecoverStartupOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, recovered)

	mine, err := app.EntClient.Execution.Get(ctx, mineID)
	require.NoError(t, err)
	assert.Equal(t, execution.StateFailed, mine.State)
	require.NotNil(t, mine.Error)
	assert.Equal(t, "orphaned: recovered at startup", *mine.Error)
	require.NotNil(t, mine.CompletedAt)
	require.NotNil(t, mine.DurationMs)

	stale, err := app.EntClient.Execution.Get(ctx, staleID)
	require.NoError(t, err)
	assert.Equal(t, execution.StateFailed, stale.State)

	other, err := app.EntClient.Execution.Get(ctx, otherID)
	require.NoError(t, err)
	assert.Equal(t, execution.StateRunning, other.State, "another pod's live run must not be reaped")
}
