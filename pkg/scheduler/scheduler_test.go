package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/auditlog"
	entexec "github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/executionlog"
	"github.com/agent-orchestra/orchestra/ent/scheduledjob"
	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/engine"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/services"
	"github.com/agent-orchestra/orchestra/pkg/webhook"
	testdb "github.com/agent-orchestra/orchestra/test/database"
)

// captureSubmitter records the submissions a tick produces.
type captureSubmitter struct {
	mu  sync.Mutex
	ins []engine.SubmitInput
	err error
}

func (c *captureSubmitter) Submit(ctx context.Context, in engine.SubmitInput) (*ent.Execution, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	c.ins = append(c.ins, in)
	return &ent.Execution{ID: uuid.New().String()}, nil
}

func (c *captureSubmitter) all() []engine.SubmitInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]engine.SubmitInput, len(c.ins))
	copy(out, c.ins)
	return out
}

func (c *captureSubmitter) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

type schedHarness struct {
	sched  *Scheduler
	client *ent.Client
	sub    *captureSubmitter
}

func newSchedHarness(t *testing.T, cfg Config) *schedHarness {
	t.Helper()

	db := testdb.NewTestClient(t)
	box, err := auth.NewSecretBox(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	sub := &captureSubmitter{}
	sched := New(db.Client, sub,
		services.NewExecutionService(db.Client),
		services.NewWebhookService(db.Client, box, webhook.URLPolicy{AllowLoopback: true}),
		services.NewAuditService(db.Client),
		cfg)

	return &schedHarness{sched: sched, client: db.Client, sub: sub}
}

func (h *schedHarness) createUser(t *testing.T) *ent.User {
	t.Helper()
	u, err := h.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String()[:8] + "@example.com").
		SetRole(entuser.RoleUser).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func scheduleFor(agentID string, owner *ent.User) ExecutionSchedule {
	return ExecutionSchedule{
		AgentID: agentID,
		Actor:   models.Actor{ID: owner.ID, Role: string(owner.Role)},
		Input:   "nightly digest",
	}
}

// forceDue rewinds a job so the next tick claims it.
func (h *schedHarness) forceDue(t *testing.T, id string) {
	t.Helper()
	err := h.client.ScheduledJob.UpdateOneID(id).
		SetRunAt(time.Now().Add(-time.Second)).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestValidateCron(t *testing.T) {
	for _, expr := range []string{
		"0 2 * * *",
		"*/5 * * * *",
		"0 3 * * 0",
		"15 14 1 * *",
		"30 4 * * 1-5",
	} {
		assert.NoError(t, ValidateCron(expr), "expected %q to parse", expr)
	}
	for _, expr := range []string{
		"",
		"not a cron",
		"0 2 * *",
		"61 * * * *",
		"* * * * * *",
		"@hourly",
	} {
		assert.Error(t, ValidateCron(expr), "expected %q to be rejected", expr)
	}
}

func TestScheduleAtCreatesDeferredJob(t *testing.T) {
	h := newSchedHarness(t, Config{})
	ctx := context.Background()
	owner := h.createUser(t)
	agentID := uuid.New().String()

	es := scheduleFor(agentID, owner)
	es.Priority = models.PriorityHigh
	es.Environment = "staging"
	es.Timeout = 90 * time.Second

	runAt := time.Now().Add(time.Hour)
	row, err := h.sched.ScheduleAt(ctx, es, runAt)
	require.NoError(t, err)

	assert.Equal(t, DeferredKey(agentID, runAt), row.Key)
	assert.Equal(t, scheduledjob.QueueExecution, row.Queue)
	assert.Equal(t, scheduledjob.KindDeferred, row.Kind)
	assert.True(t, row.Active)
	assert.WithinDuration(t, runAt, row.RunAt, time.Second)
	assert.Equal(t, agentID, row.Payload["agent_id"])
	assert.Equal(t, owner.ID, row.Payload["submitter_id"])
	assert.Equal(t, "nightly digest", row.Payload["input"])

	_, err = h.sched.ScheduleAt(ctx, es, time.Now().Add(-time.Minute))
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
}

func TestScheduleRecurringReplacesExisting(t *testing.T) {
	h := newSchedHarness(t, Config{})
	ctx := context.Background()
	owner := h.createUser(t)
	agentID := uuid.New().String()

	first, err := h.sched.ScheduleRecurring(ctx, scheduleFor(agentID, owner), "0 2 * * *")
	require.NoError(t, err)
	assert.Equal(t, RecurringKey(agentID), first.Key)
	assert.Equal(t, scheduledjob.KindRecurring, first.Kind)
	assert.Equal(t, "0 2 * * *", first.CronExpr)
	assert.True(t, first.RunAt.After(time.Now()))

	// Simulate a parked schedule before the replacement lands.
	err = h.client.ScheduledJob.UpdateOneID(first.ID).
		SetActive(false).
		SetLastError("agent busy with execution 123").
		Exec(ctx)
	require.NoError(t, err)

	replacement := scheduleFor(agentID, owner)
	replacement.Input = "weekly summary"
	second, err := h.sched.ScheduleRecurring(ctx, replacement, "30 4 * * *")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "30 4 * * *", second.CronExpr)
	assert.True(t, second.Active)
	assert.Nil(t, second.LastError)
	assert.Equal(t, "weekly summary", second.Payload["input"])

	n, err := h.client.ScheduledJob.Query().
		Where(scheduledjob.KeyEQ(RecurringKey(agentID))).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCancelSchedule(t *testing.T) {
	h := newSchedHarness(t, Config{})
	ctx := context.Background()
	owner := h.createUser(t)
	agentID := uuid.New().String()

	row, err := h.sched.ScheduleRecurring(ctx, scheduleFor(agentID, owner), "0 2 * * *")
	require.NoError(t, err)

	require.NoError(t, h.sched.CancelSchedule(ctx, row.Key))
	stored, err := h.client.ScheduledJob.Query().
		Where(scheduledjob.KeyEQ(row.Key)).
		Only(ctx)
	require.NoError(t, err)
	assert.False(t, stored.Active, "cancel deactivates instead of deleting")

	// Cancelling again, or cancelling a key that never existed, is a
	// no-op.
	assert.NoError(t, h.sched.CancelSchedule(ctx, row.Key))
	assert.NoError(t, h.sched.CancelSchedule(ctx, "recurring-missing"))

	// Re-scheduling the same key reactivates it.
	again, err := h.sched.ScheduleRecurring(ctx, scheduleFor(agentID, owner), "0 4 * * *")
	require.NoError(t, err)
	assert.Equal(t, row.Key, again.Key)
	assert.True(t, again.Active)
}

func TestEnsureSystemJobsIdempotent(t *testing.T) {
	h := newSchedHarness(t, Config{})
	ctx := context.Background()

	require.NoError(t, h.sched.EnsureSystemJobs(ctx))
	require.NoError(t, h.sched.EnsureSystemJobs(ctx))

	rows, err := h.client.ScheduledJob.Query().
		Where(scheduledjob.QueueEQ(scheduledjob.QueueCleanup)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byKey := map[string]*ent.ScheduledJob{}
	for _, row := range rows {
		byKey[row.Key] = row
	}
	require.Contains(t, byKey, KeyExecutionCleanup)
	require.Contains(t, byKey, KeyLogCleanup)
	for _, row := range rows {
		assert.Equal(t, scheduledjob.KindRecurring, row.Kind)
		assert.True(t, row.Active)
		assert.True(t, row.RunAt.After(time.Now()))
	}
}

func TestTickFiresDueDeferredJob(t *testing.T) {
	h := newSchedHarness(t, Config{})
	ctx := context.Background()
	owner := h.createUser(t)
	agentID := uuid.New().String()

	es := scheduleFor(agentID, owner)
	es.Priority = models.PriorityHigh
	es.Environment = "staging"
	es.Timeout = 90 * time.Second
	es.Metadata = map[string]any{"source": "digest"}

	row, err := h.sched.ScheduleAt(ctx, es, time.Now().Add(time.Hour))
	require.NoError(t, err)
	h.forceDue(t, row.ID)

	require.NoError(t, h.sched.Tick(ctx))

	ins := h.sub.all()
	require.Len(t, ins, 1)
	in := ins[0]
	assert.Equal(t, agentID, in.AgentID)
	assert.Equal(t, owner.ID, in.Actor.ID)
	assert.Equal(t, "nightly digest", in.Input)
	assert.Equal(t, models.PriorityHigh, in.Priority)
	assert.Equal(t, entexec.TriggerScheduled, in.Trigger)
	assert.Equal(t, "staging", in.Environment)
	assert.Equal(t, 90*time.Second, in.Timeout)
	assert.Equal(t, "digest", in.Metadata["source"])

	// One-shots deactivate on firing.
	after, err := h.client.ScheduledJob.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, after.Active)
	require.NotNil(t, after.LastRunAt)

	require.NoError(t, h.sched.Tick(ctx))
	assert.Len(t, h.sub.all(), 1)
}

func TestTickAdvancesRecurringJob(t *testing.T) {
	h := newSchedHarness(t, Config{})
	ctx := context.Background()
	owner := h.createUser(t)
	agentID := uuid.New().String()

	row, err := h.sched.ScheduleRecurring(ctx, scheduleFor(agentID, owner), "*/5 * * * *")
	require.NoError(t, err)
	h.forceDue(t, row.ID)

	require.NoError(t, h.sched.Tick(ctx))

	ins := h.sub.all()
	require.Len(t, ins, 1)
	assert.Equal(t, entexec.TriggerRecurring, ins[0].Trigger)

	after, err := h.client.ScheduledJob.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, after.Active, "recurring jobs stay active")
	assert.True(t, after.RunAt.After(time.Now()), "run_at advances to the next occurrence")
	require.NotNil(t, after.LastRunAt)
}

func TestTickRecordsSubmitFailure(t *testing.T) {
	h := newSchedHarness(t, Config{})
	ctx := context.Background()
	owner := h.createUser(t)

	row, err := h.sched.ScheduleAt(ctx, scheduleFor(uuid.New().String(), owner), time.Now().Add(time.Hour))
	require.NoError(t, err)
	h.forceDue(t, row.ID)

	h.sub.fail(errors.New("downstream rejected the submission"))
	require.NoError(t, h.sched.Tick(ctx))

	after, err := h.client.ScheduledJob.Get(ctx, row.ID)
	require.NoError(t, err)
	require.NotNil(t, after.LastError)
	assert.Contains(t, *after.LastError, "downstream rejected")
	assert.False(t, after.Active, "the schedule advanced despite the failure")
}

func TestTickIgnoresFutureAndInactiveJobs(t *testing.T) {
	h := newSchedHarness(t, Config{})
	ctx := context.Background()
	owner := h.createUser(t)

	future, err := h.sched.ScheduleAt(ctx, scheduleFor(uuid.New().String(), owner), time.Now().Add(time.Hour))
	require.NoError(t, err)

	parked, err := h.sched.ScheduleAt(ctx, scheduleFor(uuid.New().String(), owner), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, h.client.ScheduledJob.UpdateOneID(parked.ID).
		SetActive(false).
		SetRunAt(time.Now().Add(-time.Minute)).
		Exec(ctx))

	require.NoError(t, h.sched.Tick(ctx))
	assert.Empty(t, h.sub.all())

	for _, id := range []string{future.ID, parked.ID} {
		row, err := h.client.ScheduledJob.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, row.LastRunAt)
	}
}

func TestCleanupJobsPruneExpiredRows(t *testing.T) {
	h := newSchedHarness(t, Config{})
	ctx := context.Background()
	owner := h.createUser(t)

	agent, err := h.client.Agent.Create().
		SetID(uuid.New().String()).
		SetOwnerID(owner.ID).
		SetName("sweeper-target").
		SetFramework("scripted").
		SetConfiguration(map[string]any{}).
		Save(ctx)
	require.NoError(t, err)

	mkExecution := func(completed time.Time) *ent.Execution {
		row, err := h.client.Execution.Create().
			SetID(uuid.New().String()).
			SetAgentID(agent.ID).
			SetSubmitterID(owner.ID).
			SetInput("swept input").
			SetState(entexec.StateCompleted).
			SetTimeoutMs(1000).
			SetCreatedAt(completed.Add(-time.Minute)).
			SetCompletedAt(completed).
			Save(ctx)
		require.NoError(t, err)
		return row
	}
	old := mkExecution(time.Now().Add(-60 * 24 * time.Hour))
	recent := mkExecution(time.Now().Add(-time.Hour))

	_, err = h.client.ExecutionLog.Create().
		SetID(uuid.New().String()).
		SetExecutionID(old.ID).
		SetLevel(executionlog.LevelInfo).
		SetMessage("ancient log line").
		SetSequence(0).
		Save(ctx)
	require.NoError(t, err)

	_, err = h.client.AuditLog.Create().
		SetID(uuid.New().String()).
		SetAction("agent.create").
		SetResource("agent").
		SetCreatedAt(time.Now().Add(-30 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	box, err := auth.NewSecretBox(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)
	sealed, err := box.Seal("whsec_test")
	require.NoError(t, err)
	hook, err := h.client.Webhook.Create().
		SetID(uuid.New().String()).
		SetOwnerID(owner.ID).
		SetURL("https://127.0.0.1/hooks").
		SetSubscribedEvents([]string{"execution.completed"}).
		SetSecretEncrypted(sealed).
		Save(ctx)
	require.NoError(t, err)

	mkDelivery := func(state webhookdelivery.State, age time.Duration) *ent.WebhookDelivery {
		row, err := h.client.WebhookDelivery.Create().
			SetID(uuid.New().String()).
			SetWebhookID(hook.ID).
			SetEventID(uuid.New().String()).
			SetEventType("execution.completed").
			SetPayload(map[string]any{}).
			SetState(state).
			SetScheduledAt(time.Now().Add(-age)).
			SetCreatedAt(time.Now().Add(-age)).
			Save(ctx)
		require.NoError(t, err)
		return row
	}
	settled := mkDelivery(webhookdelivery.StateDelivered, 30*24*time.Hour)
	// An old pending row is a backlog problem, not garbage.
	backlog := mkDelivery(webhookdelivery.StatePending, 30*24*time.Hour)

	require.NoError(t, h.sched.EnsureSystemJobs(ctx))
	jobs, err := h.client.ScheduledJob.Query().
		Where(scheduledjob.QueueEQ(scheduledjob.QueueCleanup)).
		All(ctx)
	require.NoError(t, err)
	for _, job := range jobs {
		h.forceDue(t, job.ID)
	}

	require.NoError(t, h.sched.Tick(ctx))

	_, err = h.client.Execution.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err), "expired execution should be swept")
	_, err = h.client.Execution.Get(ctx, recent.ID)
	assert.NoError(t, err, "recent execution survives the sweep")

	audits, err := h.client.AuditLog.Query().
		Where(auditlog.ActionEQ("agent.create")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, audits)

	_, err = h.client.WebhookDelivery.Get(ctx, settled.ID)
	assert.True(t, ent.IsNotFound(err), "settled delivery should be swept")
	_, err = h.client.WebhookDelivery.Get(ctx, backlog.ID)
	assert.NoError(t, err, "pending delivery survives the sweep")

	// Recurring cleanup jobs rearm themselves.
	for _, job := range jobs {
		after, err := h.client.ScheduledJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.True(t, after.Active)
		assert.True(t, after.RunAt.After(time.Now()))
		assert.Nil(t, after.LastError)
	}
}

func TestListSchedulesScopedToActor(t *testing.T) {
	h := newSchedHarness(t, Config{})
	ctx := context.Background()
	alice := h.createUser(t)
	bob := h.createUser(t)

	_, err := h.sched.ScheduleAt(ctx, scheduleFor(uuid.New().String(), alice), time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = h.sched.ScheduleRecurring(ctx, scheduleFor(uuid.New().String(), alice), "0 2 * * *")
	require.NoError(t, err)
	_, err = h.sched.ScheduleAt(ctx, scheduleFor(uuid.New().String(), bob), time.Now().Add(time.Hour))
	require.NoError(t, err)

	// System jobs live on another queue and never show up here.
	require.NoError(t, h.sched.EnsureSystemJobs(ctx))

	mine, err := h.sched.ListSchedules(ctx, models.Actor{ID: alice.ID, Role: models.RoleUser})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, row := range mine {
		assert.Equal(t, alice.ID, row.Payload["submitter_id"])
	}

	all, err := h.sched.ListSchedules(ctx, models.Actor{ID: "root", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSchedulerLoopFiresWithoutManualTicks(t *testing.T) {
	h := newSchedHarness(t, Config{TickInterval: 20 * time.Millisecond})
	ctx := context.Background()
	owner := h.createUser(t)

	row, err := h.sched.ScheduleAt(ctx, scheduleFor(uuid.New().String(), owner), time.Now().Add(time.Hour))
	require.NoError(t, err)
	h.forceDue(t, row.ID)

	h.sched.Start(ctx)
	defer h.sched.Stop()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if len(h.sub.all()) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Len(t, h.sub.all(), 1)
}
