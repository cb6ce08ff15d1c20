package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/framework"
	"github.com/agent-orchestra/orchestra/pkg/services"
	testdb "github.com/agent-orchestra/orchestra/test/database"
)

// TestMultiPodClaiming runs two engines against one schema, the way two
// replicas share the production database, and checks that SKIP LOCKED
// claiming dispatches every row exactly once.
func TestMultiPodClaiming(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	const executions = 8

	var runs atomic.Int64
	newPod := func(podID string) *Engine {
		client := shared.NewClient(t).Client
		plugin := &scriptedPlugin{
			name: "scripted",
			onExecute: func(ctx context.Context, run *framework.RunContext) (*framework.Result, error) {
				runs.Add(1)
				time.Sleep(50 * time.Millisecond)
				return &framework.Result{}, nil
			},
		}
		registry := framework.NewRegistry()
		require.NoError(t, registry.Register(plugin))
		return New(podID, Deps{
			Client:     client,
			Executions: services.NewExecutionService(client),
			Agents:     services.NewAgentService(client, registry),
			Registry:   registry,
			Publisher:  events.NewPublisher(events.NewBus(64), nil),
		}, Config{
			Workers:            2,
			PollInterval:       20 * time.Millisecond,
			PollJitter:         5 * time.Millisecond,
			MaxExecutionTime:   30 * time.Second,
			OrphanScanInterval: time.Hour,
			StopGrace:          5 * time.Second,
		})
	}

	podA := newPod("pod-a")
	podB := newPod("pod-b")

	seedClient := shared.NewClient(t).Client
	owner, err := seedClient.User.Create().
		SetID(uuid.New().String()).
		SetEmail("multipod@example.com").
		SetRole(entuser.RoleUser).
		Save(ctx)
	require.NoError(t, err)

	var agents []*ent.Agent
	for i := 0; i < executions; i++ {
		agent, err := seedClient.Agent.Create().
			SetID(uuid.New().String()).
			SetOwnerID(owner.ID).
			SetName(fmt.Sprintf("fleet-%d", i)).
			SetFramework("scripted").
			SetConfiguration(map[string]any{}).
			Save(ctx)
		require.NoError(t, err)
		agents = append(agents, agent)

		_, err = seedClient.Execution.Create().
			SetID(uuid.New().String()).
			SetAgentID(agent.ID).
			SetSubmitterID(owner.ID).
			SetInput(fmt.Sprintf("task %d", i)).
			SetTimeoutMs(30000).
			Save(ctx)
		require.NoError(t, err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, podA.Start(runCtx))
	require.NoError(t, podB.Start(runCtx))
	defer podA.Stop()
	defer podB.Stop()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		remaining, err := seedClient.Execution.Query().
			Where(execution.StateIn(execution.StatePending, execution.StateRunning)).
			Count(ctx)
		require.NoError(t, err)
		if remaining == 0 {
			break
		}
		time.Sleep(25 * time.Millisecond)
	}

	rows, err := seedClient.Execution.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, executions)

	podsSeen := map[string]int{}
	for _, row := range rows {
		assert.Equal(t, execution.StateCompleted, row.State, "execution %s", row.ID)
		require.NotNil(t, row.PodID)
		assert.Contains(t, []string{"pod-a", "pod-b"}, *row.PodID)
		podsSeen[*row.PodID]++
	}
	t.Logf("claims by pod: %v", podsSeen)

	// Each run happened exactly once: the plugin counter and the
	// per-agent stats would both double on a duplicate dispatch.
	assert.EqualValues(t, executions, runs.Load())
	for _, agent := range agents {
		reloaded, err := seedClient.Agent.Get(ctx, agent.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, reloaded.TotalExecutions, "agent %s", agent.Name)
	}
}
