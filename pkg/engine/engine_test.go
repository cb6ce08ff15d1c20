package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
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
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/services"
	testdb "github.com/agent-orchestra/orchestra/test/database"
)

// scriptedPlugin lets each test decide what the framework does.
type scriptedPlugin struct {
	name      string
	onExecute func(ctx context.Context, run *framework.RunContext) (*framework.Result, error)
}

func (p *scriptedPlugin) Name() string { return p.name }

func (p *scriptedPlugin) Validate(cfg framework.Config) []string {
	if fail, _ := cfg["reject"].(bool); fail {
		return []string{"configuration rejected by test plugin"}
	}
	return nil
}

func (p *scriptedPlugin) Schema() *framework.Schema {
	return &framework.Schema{}
}

func (p *scriptedPlugin) Execute(ctx context.Context, run *framework.RunContext) (*framework.Result, error) {
	return p.onExecute(ctx, run)
}

// testHarness bundles an engine wired to a scratch schema with a bus
// subscriber-friendly publisher and no Redis leg.
type testHarness struct {
	engine   *Engine
	client   *ent.Client
	bus      *events.Bus
	plugin   *scriptedPlugin
	registry *framework.Registry
	agents   *services.AgentService
	execs    *services.ExecutionService
}

func newHarness(t *testing.T, cfg Config) *testHarness {
	t.Helper()

	db := testdb.NewTestClient(t)
	client := db.Client

	plugin := &scriptedPlugin{
		name: "scripted",
		onExecute: func(ctx context.Context, run *framework.RunContext) (*framework.Result, error) {
			return &framework.Result{Output: map[string]any{"ok": true}}, nil
		},
	}
	registry := framework.NewRegistry()
	require.NoError(t, registry.Register(plugin))

	bus := events.NewBus(256)
	publisher := events.NewPublisher(bus, nil)

	agents := services.NewAgentService(client, registry)
	execs := services.NewExecutionService(client)

	eng := New("pod-test-1", Deps{
		Client:     client,
		Executions: execs,
		Agents:     agents,
		Registry:   registry,
		Publisher:  publisher,
	}, cfg)

	return &testHarness{
		engine:   eng,
		client:   client,
		bus:      bus,
		plugin:   plugin,
		registry: registry,
		agents:   agents,
		execs:    execs,
	}
}

// fastConfig keeps the dispatch loop snappy for tests.
func fastConfig() Config {
	return Config{
		Workers:            2,
		MaxExecutionTime:   10 * time.Second,
		DefaultTimeout:     5 * time.Second,
		PollInterval:       20 * time.Millisecond,
		PollJitter:         5 * time.Millisecond,
		HeartbeatInterval:  100 * time.Millisecond,
		OrphanScanInterval: time.Hour,
		StopGrace:          2 * time.Second,
	}
}

func (h *testHarness) start(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, h.engine.Start(ctx))
	t.Cleanup(func() {
		h.engine.Stop()
		cancel()
	})
}

func (h *testHarness) createUser(t *testing.T) *ent.User {
	t.Helper()
	u, err := h.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(fmt.Sprintf("%s@example.com", uuid.New().String()[:8])).
		SetName("Test User").
		SetRole(entuser.RoleUser).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func (h *testHarness) createAgent(t *testing.T, owner *ent.User, cfg map[string]any) *ent.Agent {
	t.Helper()
	agent, err := h.agents.Create(context.Background(), actorFor(owner), services.CreateAgentRequest{
		Name:          "agent-" + uuid.New().String()[:8],
		Framework:     "scripted",
		Configuration: cfg,
	})
	require.NoError(t, err)
	return agent
}

func actorFor(u *ent.User) models.Actor {
	return models.Actor{ID: u.ID, Role: string(u.Role)}
}

func waitForEvent(t *testing.T, sub *events.Subscription, eventType string, within time.Duration) events.Event {
	t.Helper()
	deadline := time.After(within)
	for {
		select {
		case evt, ok := <-sub.C:
			require.True(t, ok, "subscription closed while waiting for %s", eventType)
			if evt.Type == eventType {
				return evt
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", eventType)
		}
	}
}

func waitForState(t *testing.T, client *ent.Client, id string, want execution.State, within time.Duration) *ent.Execution {
	t.Helper()
	deadline := time.Now().Add(within)
	for time.Now().Before(deadline) {
		row, err := client.Execution.Get(context.Background(), id)
		require.NoError(t, err)
		if row.State == want {
			return row
		}
		time.Sleep(10 * time.Millisecond)
	}
	row, err := client.Execution.Get(context.Background(), id)
	require.NoError(t, err)
	t.Fatalf("execution %s never reached %s (stuck at %s)", id, want, row.State)
	return nil
}

func TestSubmitValidation(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	t.Run("missing agent id", func(t *testing.T) {
		_, err := h.engine.Submit(ctx, SubmitInput{Actor: actorFor(owner), Input: "hi"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "   "})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := h.engine.Submit(ctx, SubmitInput{AgentID: uuid.New().String(), Actor: actorFor(owner), Input: "hi"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("foreign agent looks unknown", func(t *testing.T) {
		stranger := h.createUser(t)
		_, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(stranger), Input: "hi"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("inactive agent", func(t *testing.T) {
		dormant := h.createAgent(t, owner, nil)
		_, err := h.client.Agent.UpdateOneID(dormant.ID).SetActive(false).Save(ctx)
		require.NoError(t, err)
		_, err = h.engine.Submit(ctx, SubmitInput{AgentID: dormant.ID, Actor: actorFor(owner), Input: "hi"})
		assert.ErrorIs(t, err, services.ErrAgentInactive)
	})

	t.Run("invalid priority", func(t *testing.T) {
		_, err := h.engine.Submit(ctx, SubmitInput{
			AgentID: agent.ID, Actor: actorFor(owner), Input: "hi", Priority: models.Priority(9),
		})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("reserved key in override bag", func(t *testing.T) {
		_, err := h.engine.Submit(ctx, SubmitInput{
			AgentID: agent.ID, Actor: actorFor(owner), Input: "hi",
			ConfigOverride: map[string]any{"api_key": "sk-nope"},
		})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestSubmitQueuesPendingRow(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	row, err := h.engine.Submit(ctx, SubmitInput{
		AgentID: agent.ID,
		Actor:   actorFor(owner),
		Input:   "summarize the incident",
		Timeout: 90 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, execution.StatePending, row.State)
	assert.Equal(t, int(models.PriorityNormal), row.Priority)
	assert.Equal(t, execution.TriggerManual, row.Trigger)
	assert.EqualValues(t, (10 * time.Second).Milliseconds(), row.TimeoutMs,
		"timeout above the ceiling is clamped to MaxExecutionTime")
	assert.Nil(t, row.StartedAt)
}

func TestSubmitTimeoutClamping(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)

	cases := []struct {
		name    string
		timeout time.Duration
		wantMs  int64
	}{
		{"zero selects default", 0, (5 * time.Second).Milliseconds()},
		{"below floor", 200 * time.Millisecond, time.Second.Milliseconds()},
		{"within range", 3 * time.Second, (3 * time.Second).Milliseconds()},
		{"above ceiling", time.Hour, (10 * time.Second).Milliseconds()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agent := h.createAgent(t, owner, nil)
			row, err := h.engine.Submit(ctx, SubmitInput{
				AgentID: agent.ID, Actor: actorFor(owner), Input: "x", Timeout: tc.timeout,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantMs, row.TimeoutMs)
		})
	}
}

func TestSubmitSingleFlightPerAgent(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	first, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "one"})
	require.NoError(t, err)

	_, err = h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "two"})
	busy, ok := services.AsAgentBusy(err)
	require.True(t, ok, "second submission should report the agent busy, got %v", err)
	assert.Equal(t, first.ID, busy.ExecutionID)
}

func TestSubmitPerUserConcurrencyCap(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxConcurrentPerUser = 2
	h := newHarness(t, cfg)
	ctx := context.Background()
	owner := h.createUser(t)

	for i := 0; i < 2; i++ {
		agent := h.createAgent(t, owner, nil)
		_, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "x"})
		require.NoError(t, err)
	}

	agent := h.createAgent(t, owner, nil)
	_, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "x"})
	assert.ErrorIs(t, err, services.ErrConcurrencyExceeded)
}

func TestRunToCompletion(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	h.plugin.onExecute = func(ctx context.Context, run *framework.RunContext) (*framework.Result, error) {
		run.Log(framework.LevelInfo, "working on "+run.Input, nil)
		run.Progress(50)
		run.Log(framework.LevelInfo, "done", map[string]any{"step": 2})
		return &framework.Result{
			Output:     map[string]any{"answer": 42},
			TokensUsed: 1234,
			CostUSD:    0.0042,
		}, nil
	}

	h.start(t)

	sub := h.bus.Subscribe("")
	defer sub.Close()

	row, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "meaning of life"})
	require.NoError(t, err)

	started := waitForEvent(t, sub, events.TypeExecutionStarted, 5*time.Second)
	assert.Equal(t, row.ID, started.ExecutionID)
	assert.Equal(t, owner.ID, started.UserID)

	terminal := waitForEvent(t, sub, events.TypeExecutionCompleted, 5*time.Second)
	assert.Equal(t, row.ID, terminal.ExecutionID)
	assert.Equal(t, "completed", terminal.Data["state"])
	assert.Greater(t, terminal.Sequence, started.Sequence, "stream stays monotonic")

	final := waitForState(t, h.client, row.ID, execution.StateCompleted, 5*time.Second)
	require.NotNil(t, final.StartedAt)
	require.NotNil(t, final.CompletedAt)
	require.NotNil(t, final.DurationMs)
	require.NotNil(t, final.PodID)
	assert.Equal(t, "pod-test-1", *final.PodID)
	assert.EqualValues(t, 42, final.Output["answer"])
	require.NotNil(t, final.TokensUsed)
	assert.Equal(t, 1234, *final.TokensUsed)
	require.NotNil(t, final.CostUsd)
	assert.InDelta(t, 0.0042, *final.CostUsd, 1e-9)

	logs, err := h.execs.TailLogs(ctx, row.ID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 0, logs[0].Sequence)
	assert.Equal(t, "working on meaning of life", logs[0].Message)
	assert.Equal(t, 1, logs[1].Sequence)

	updated, err := h.client.Agent.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated.TotalExecutions)
	assert.EqualValues(t, 1, updated.SuccessfulExecutions)
	assert.NotNil(t, updated.LastExecutedAt)
	assert.Greater(t, updated.AvgDurationMs, 0.0)
}

func TestRunFailure(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	h.plugin.onExecute = func(ctx context.Context, run *framework.RunContext) (*framework.Result, error) {
		return nil, errors.New("upstream exploded")
	}

	h.start(t)
	sub := h.bus.Subscribe("")
	defer sub.Close()

	row, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "x"})
	require.NoError(t, err)

	evt := waitForEvent(t, sub, events.TypeExecutionFailed, 5*time.Second)
	assert.Equal(t, "upstream exploded", evt.Data["error"])

	final := waitForState(t, h.client, row.ID, execution.StateFailed, 5*time.Second)
	require.NotNil(t, final.Error)
	assert.Equal(t, "upstream exploded", *final.Error)

	updated, err := h.client.Agent.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated.FailedExecutions)
	assert.EqualValues(t, 0, updated.SuccessfulExecutions)
}

func TestRunPanicBecomesFailure(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	h.plugin.onExecute = func(ctx context.Context, run *framework.RunContext) (*framework.Result, error) {
		panic("nil map write, probably")
	}

	h.start(t)

	row, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "x"})
	require.NoError(t, err)

	final := waitForState(t, h.client, row.ID, execution.StateFailed, 5*time.Second)
	assert.Contains(t, final.Error, "plugin panicked")
}

func TestRunTimeout(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	h.plugin.onExecute = func(ctx context.Context, run *framework.RunContext) (*framework.Result, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	h.start(t)
	sub := h.bus.Subscribe("")
	defer sub.Close()

	row, err := h.engine.Submit(ctx, SubmitInput{
		AgentID: agent.ID, Actor: actorFor(owner), Input: "x", Timeout: time.Second,
	})
	require.NoError(t, err)

	evt := waitForEvent(t, sub, events.TypeExecutionTimeout, 10*time.Second)
	assert.Equal(t, row.ID, evt.ExecutionID)

	final := waitForState(t, h.client, row.ID, execution.StateTimeout, 5*time.Second)
	assert.Contains(t, final.Error, "timed out after 1s")
	require.NotNil(t, final.DurationMs)
	assert.GreaterOrEqual(t, *final.DurationMs, int64(1000))

	// The synthetic line lands before the terminal transition.
	logs, err := h.execs.TailLogs(ctx, row.ID, 10)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	last := logs[len(logs)-1]
	assert.Equal(t, "error", string(last.Level))
	assert.Contains(t, last.Message, "timed out")

	updated, err := h.client.Agent.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated.FailedExecutions)
}

func TestCancelRunningExecution(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	entered := make(chan struct{})
	interrupted := make(chan struct{})
	h.plugin.onExecute = func(ctx context.Context, run *framework.RunContext) (*framework.Result, error) {
		close(entered)
		<-ctx.Done()
		close(interrupted)
		return nil, ctx.Err()
	}

	h.start(t)
	sub := h.bus.Subscribe("")
	defer sub.Close()

	row, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "x"})
	require.NoError(t, err)
	waitForEvent(t, sub, events.TypeExecutionStarted, 5*time.Second)

	// The cancel registry is armed just before the plugin is invoked;
	// wait for the plugin itself so the interrupt path is exercised.
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("plugin never started")
	}

	cancelled, won, err := h.engine.Cancel(ctx, actorFor(owner), row.ID)
	require.NoError(t, err)
	require.True(t, won)
	assert.Equal(t, execution.StateCancelled, cancelled.State)
	require.NotNil(t, cancelled.Error)
	assert.Equal(t, "cancelled by user", *cancelled.Error)

	select {
	case <-interrupted:
	case <-time.After(5 * time.Second):
		t.Fatal("plugin context was never cancelled")
	}

	evt := waitForEvent(t, sub, events.TypeExecutionCancelled, 5*time.Second)
	assert.Equal(t, row.ID, evt.ExecutionID)

	// The worker's losing terminal write must stay silent: no second
	// terminal event follows.
	select {
	case extra, ok := <-sub.C:
		if ok && events.IsTerminal(extra.Type) {
			t.Fatalf("unexpected second terminal event %s", extra.Type)
		}
	case <-time.After(300 * time.Millisecond):
	}

	final, err := h.client.Execution.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StateCancelled, final.State)
}

func TestCancelPendingExecution(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	// Pool not started: the row stays pending.
	row, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "x"})
	require.NoError(t, err)

	cancelled, won, err := h.engine.Cancel(ctx, actorFor(owner), row.ID)
	require.NoError(t, err)
	require.True(t, won)
	assert.Equal(t, execution.StateCancelled, cancelled.State)
	assert.Nil(t, cancelled.StartedAt)

	// A never-started run does not touch agent stats.
	updated, err := h.client.Agent.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, updated.TotalExecutions)
}

func TestCancelAfterTerminalLoses(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	h.start(t)

	row, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "x"})
	require.NoError(t, err)
	waitForState(t, h.client, row.ID, execution.StateCompleted, 5*time.Second)

	final, won, err := h.engine.Cancel(ctx, actorFor(owner), row.ID)
	require.NoError(t, err)
	assert.False(t, won)
	assert.Equal(t, execution.StateCompleted, final.State)
}

func TestRemoteCancelStopsLocalRun(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	entered := make(chan struct{})
	interrupted := make(chan struct{})
	h.plugin.onExecute = func(ctx context.Context, run *framework.RunContext) (*framework.Result, error) {
		run.Log(framework.LevelInfo, "working", nil)
		close(entered)
		<-ctx.Done()
		// An abandoned writer keeps going; nothing it emits may land
		// after the terminal transition.
		run.Log(framework.LevelInfo, "late line", nil)
		close(interrupted)
		return nil, ctx.Err()
	}

	h.start(t)
	sub := h.bus.Subscribe("")
	defer sub.Close()

	row, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "x"})
	require.NoError(t, err)
	waitForEvent(t, sub, events.TypeExecutionStarted, 5*time.Second)
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("plugin never started")
	}

	// Finish the row the way a cancel on another replica does: flip it
	// in the database without touching this pod's cancel registry.
	n, err := h.client.Execution.Update().
		Where(execution.IDEQ(row.ID), execution.StateEQ(execution.StateRunning)).
		SetState(execution.StateCancelled).
		SetError("cancelled by user").
		SetCompletedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// The next heartbeat matches zero rows and interrupts the run.
	select {
	case <-interrupted:
	case <-time.After(5 * time.Second):
		t.Fatal("external cancel never interrupted the local run")
	}

	// The late line was rejected before the plugin returned; only the
	// pre-cancel line is persisted.
	logs, err := h.execs.TailLogs(ctx, row.ID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1, "post-cancel log line must not persist")
	assert.Equal(t, "working", logs[0].Message)

	// Nothing follows on the bus either: no late log event, and no
	// terminal event from this worker's losing conditional write.
	deadline := time.After(500 * time.Millisecond)
	for {
		select {
		case evt, ok := <-sub.C:
			require.True(t, ok, "subscription closed early")
			if events.IsTerminal(evt.Type) {
				t.Fatalf("worker published terminal event %s after losing the transition", evt.Type)
			}
			if evt.Type == events.TypeExecutionLog && evt.Data["message"] == "late line" {
				t.Fatal("log event published after the terminal transition")
			}
		case <-deadline:
			final, err := h.client.Execution.Get(ctx, row.ID)
			require.NoError(t, err)
			assert.Equal(t, execution.StateCancelled, final.State)
			return
		}
	}
}

func TestPriorityOrdering(t *testing.T) {
	cfg := fastConfig()
	cfg.Workers = 1
	h := newHarness(t, cfg)
	ctx := context.Background()
	owner := h.createUser(t)

	var mu sync.Mutex
	var order []string
	h.plugin.onExecute = func(ctx context.Context, run *framework.RunContext) (*framework.Result, error) {
		mu.Lock()
		order = append(order, run.Input)
		mu.Unlock()
		return &framework.Result{}, nil
	}

	// Queue three rows before any worker exists, lowest priority first.
	for _, sub := range []struct {
		input    string
		priority models.Priority
	}{
		{"low", models.PriorityLow},
		{"normal", models.PriorityNormal},
		{"high", models.PriorityHigh},
	} {
		agent := h.createAgent(t, owner, nil)
		_, err := h.engine.Submit(ctx, SubmitInput{
			AgentID: agent.ID, Actor: actorFor(owner), Input: sub.input, Priority: sub.priority,
		})
		require.NoError(t, err)
	}

	sub := h.bus.Subscribe("")
	defer sub.Close()
	h.start(t)

	for i := 0; i < 3; i++ {
		waitForEvent(t, sub, events.TypeExecutionCompleted, 10*time.Second)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"high", "normal", "low"}, order)
}

func TestRecoverStartupOrphans(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	old := time.Now().Add(-time.Hour)

	// A running row stamped with this pod id from a previous life.
	mine, err := h.client.Execution.Create().
		SetID(uuid.New().String()).
		SetAgentID(agent.ID).
		SetSubmitterID(owner.ID).
		SetInput("left behind").
		SetState(execution.StateRunning).
		SetPodID("pod-test-1").
		SetStartedAt(old).
		SetTimeoutMs(60000).
		Save(ctx)
	require.NoError(t, err)

	// An ancient pending row nobody ever claimed.
	agent2 := h.createAgent(t, owner, nil)
	stale, err := h.client.Execution.Create().
		SetID(uuid.New().String()).
		SetAgentID(agent2.ID).
		SetSubmitterID(owner.ID).
		SetInput("never claimed").
		SetCreatedAt(old).
		SetTimeoutMs(60000).
		Save(ctx)
	require.NoError(t, err)

	// A fresh pending row stays untouched.
	agent3 := h.createAgent(t, owner, nil)
	fresh, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent3.ID, Actor: actorFor(owner), Input: "x"})
	require.NoError(t, err)

	n, err := h.engine.RecoverStartupOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{mine.ID, stale.ID} {
		row, err := h.client.Execution.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, execution.StateFailed, row.State)
		assert.Contains(t, row.Error, "orphaned")
	}

	untouched, err := h.client.Execution.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatePending, untouched.State)
}

func TestRecoverStaleHeartbeats(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)

	makeRunning := func(heartbeat time.Time) *ent.Execution {
		agent := h.createAgent(t, owner, nil)
		row, err := h.client.Execution.Create().
			SetID(uuid.New().String()).
			SetAgentID(agent.ID).
			SetSubmitterID(owner.ID).
			SetInput("x").
			SetState(execution.StateRunning).
			SetPodID("pod-elsewhere").
			SetStartedAt(heartbeat).
			SetLastHeartbeatAt(heartbeat).
			SetTimeoutMs(60000).
			Save(ctx)
		require.NoError(t, err)
		return row
	}

	dead := makeRunning(time.Now().Add(-time.Hour))
	alive := makeRunning(time.Now())

	n, err := h.engine.recoverStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	deadRow, err := h.client.Execution.Get(ctx, dead.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StateFailed, deadRow.State)
	assert.Contains(t, deadRow.Error, "heartbeat")

	aliveRow, err := h.client.Execution.Get(ctx, alive.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StateRunning, aliveRow.State)
}

func TestPoolHealth(t *testing.T) {
	h := newHarness(t, fastConfig())
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	// One pending row before the pool starts.
	_, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "x"})
	require.NoError(t, err)

	health := h.engine.Health(ctx)
	assert.True(t, health.QueueReachable)
	assert.Equal(t, 1, health.QueueDepth)
	assert.Equal(t, "pod-test-1", health.PodID)
	assert.Zero(t, health.Workers, "pool not started yet")

	h.start(t)
	waitForState(t, h.client, agentFirstExecution(t, h.client, agent.ID), execution.StateCompleted, 5*time.Second)

	health = h.engine.Health(ctx)
	assert.Equal(t, 2, health.Workers)
	assert.Equal(t, 0, health.QueueDepth)
}

func agentFirstExecution(t *testing.T, client *ent.Client, agentID string) string {
	t.Helper()
	row, err := client.Execution.Query().
		Where(execution.AgentIDEQ(agentID)).
		Only(context.Background())
	require.NoError(t, err)
	return row.ID
}

func TestStopCancelsStragglers(t *testing.T) {
	cfg := fastConfig()
	cfg.StopGrace = 500 * time.Millisecond
	h := newHarness(t, cfg)
	ctx := context.Background()
	owner := h.createUser(t)
	agent := h.createAgent(t, owner, nil)

	entered := make(chan struct{})
	h.plugin.onExecute = func(ctx context.Context, run *framework.RunContext) (*framework.Result, error) {
		close(entered)
		<-ctx.Done()
		return nil, ctx.Err()
	}

	runCtx, cancel := context.WithCancel(context.Background())
	require.NoError(t, h.engine.Start(runCtx))
	defer cancel()

	row, err := h.engine.Submit(ctx, SubmitInput{AgentID: agent.ID, Actor: actorFor(owner), Input: "x", Timeout: time.Minute})
	require.NoError(t, err)
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("plugin never started")
	}

	done := make(chan struct{})
	go func() {
		h.engine.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return within the grace period")
	}

	final, err := h.client.Execution.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StateFailed, final.State)
	assert.Contains(t, final.Error, "shutdown")
}
