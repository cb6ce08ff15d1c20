package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/auditlog"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/executionlog"
	"github.com/agent-orchestra/orchestra/ent/scheduledjob"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/scheduler"
)

// rewindJob forces a schedule due so a Tick fires it deterministically.
func (app *TestApp) rewindJob(t *testing.T, key string) {
	t.Helper()
	n, err := app.EntClient.ScheduledJob.Update().
		Where(scheduledjob.KeyEQ(key)).
		SetRunAt(time.Now().Add(-time.Second)).
		Save(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n, "no schedule stored under %q", key)
}

// TestSchedulerDeferredExecution registers a one-shot schedule, fires
// it with a manual tick, and verifies it submits exactly once.
func TestSchedulerDeferredExecution(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	actor := models.Actor{ID: acct.User.ID, Role: string(acct.User.Role)}
	agentID := app.CreateAgent(t, acct, "echo-later", "echo", nil)

	ctx := context.Background()
	runAt := time.Now().Add(time.Hour)
	job, err := app.Scheduler.ScheduleAt(ctx, scheduler.ExecutionSchedule{
		AgentID: agentID,
		Actor:   actor,
		Input:   "deferred hello",
	}, runAt)
	require.NoError(t, err)
	assert.Equal(t, scheduler.DeferredKey(agentID, runAt), job.Key)
	assert.Equal(t, scheduledjob.KindDeferred, job.Kind)
	assert.True(t, job.Active)

	// Scheduling in the past is rejected outright.
	_, err = app.Scheduler.ScheduleAt(ctx, scheduler.ExecutionSchedule{
		AgentID: agentID,
		Actor:   actor,
		Input:   "too late",
	}, time.Now().Add(-time.Minute))
	require.Error(t, err)

	// Not due yet: a tick fires nothing.
	require.NoError(t, app.Scheduler.Tick(ctx))
	assert.Empty(t, app.executionsForAgent(t, agentID))

	app.rewindJob(t, job.Key)
	require.NoError(t, app.Scheduler.Tick(ctx))

	rows := app.executionsForAgent(t, agentID)
	require.Len(t, rows, 1)
	assert.Equal(t, execution.TriggerScheduled, rows[0].Trigger)
	assert.Equal(t, "deferred hello", rows[0].Input)
	assert.Equal(t, acct.User.ID, rows[0].SubmitterID)
	app.WaitForExecutionState(t, rows[0].ID, execution.StateCompleted)

	// One-shot schedules are consumed by firing.
	fired, err := app.EntClient.ScheduledJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, fired.Active)
	require.NotNil(t, fired.LastRunAt)

	require.NoError(t, app.Scheduler.Tick(ctx))
	assert.Len(t, app.executionsForAgent(t, agentID), 1, "a consumed schedule must not fire again")
}

// TestSchedulerRecurringExecution drives a cron schedule through one
// firing and verifies it re-arms for the next occurrence. Registering
// again replaces the cadence instead of stacking schedules.
func TestSchedulerRecurringExecution(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	actor := models.Actor{ID: acct.User.ID, Role: string(acct.User.Role)}
	agentID := app.CreateAgent(t, acct, "echo-cron", "echo", nil)

	ctx := context.Background()
	es := scheduler.ExecutionSchedule{AgentID: agentID, Actor: actor, Input: "on the fives"}

	job, err := app.Scheduler.ScheduleRecurring(ctx, es, "*/5 * * * *")
	require.NoError(t, err)
	assert.Equal(t, scheduler.RecurringKey(agentID), job.Key)
	assert.Equal(t, scheduledjob.KindRecurring, job.Kind)
	assert.True(t, job.RunAt.After(time.Now()))

	// Re-registering replaces the schedule under the same key.
	replaced, err := app.Scheduler.ScheduleRecurring(ctx, es, "*/10 * * * *")
	require.NoError(t, err)
	assert.Equal(t, job.Key, replaced.Key)
	assert.Equal(t, "*/10 * * * *", replaced.CronExpr)
	count, err := app.EntClient.ScheduledJob.Query().
		Where(scheduledjob.KeyEQ(job.Key)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// A malformed cadence never lands.
	_, err = app.Scheduler.ScheduleRecurring(ctx, es, "not a cron")
	require.Error(t, err)

	app.rewindJob(t, job.Key)
	require.NoError(t, app.Scheduler.Tick(ctx))

	rows := app.executionsForAgent(t, agentID)
	require.Len(t, rows, 1)
	assert.Equal(t, execution.TriggerRecurring, rows[0].Trigger)
	app.WaitForExecutionState(t, rows[0].ID, execution.StateCompleted)

	rearmed, err := app.EntClient.ScheduledJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, rearmed.Active, "recurring schedules survive firing")
	assert.True(t, rearmed.RunAt.After(time.Now()), "advanced to the next occurrence")
	require.NotNil(t, rearmed.LastRunAt)
}

// TestSchedulerCancelSchedule deactivates a pending schedule and
// verifies the listing reflects it, a second cancel is a no-op, and the
// job never fires.
func TestSchedulerCancelSchedule(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	actor := models.Actor{ID: acct.User.ID, Role: string(acct.User.Role)}
	agentID := app.CreateAgent(t, acct, "echo-cancelled-plan", "echo", nil)

	ctx := context.Background()
	job, err := app.Scheduler.ScheduleAt(ctx, scheduler.ExecutionSchedule{
		AgentID: agentID,
		Actor:   actor,
		Input:   "never happens",
	}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	listed, err := app.Scheduler.ListSchedules(ctx, actor)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, job.Key, listed[0].Key)

	// Another user sees nothing.
	stranger := app.NewAccount(t, models.RoleUser)
	theirs, err := app.Scheduler.ListSchedules(ctx,
		models.Actor{ID: stranger.User.ID, Role: string(stranger.User.Role)})
	require.NoError(t, err)
	assert.Empty(t, theirs)

	require.NoError(t, app.Scheduler.CancelSchedule(ctx, job.Key))
	assert.NoError(t, app.Scheduler.CancelSchedule(ctx, job.Key), "cancel is idempotent")

	listed, err = app.Scheduler.ListSchedules(ctx, actor)
	require.NoError(t, err)
	assert.Empty(t, listed, "deactivated schedules drop out of the listing")

	require.NoError(t, app.Scheduler.Tick(ctx))
	assert.Empty(t, app.executionsForAgent(t, agentID))
}

// TestSchedulerRetentionSweeps fires both built-in cleanup jobs against
// backdated rows: finished executions past retention disappear with
// their logs, and old audit rows and settled deliveries are pruned.
func TestSchedulerRetentionSweeps(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-ancient", "echo", nil)

	ctx := context.Background()
	require.NoError(t, app.Scheduler.EnsureSystemJobs(ctx))
	// Idempotent: a second call must not duplicate the jobs.
	require.NoError(t, app.Scheduler.EnsureSystemJobs(ctx))
	cleanupJobs, err := app.EntClient.ScheduledJob.Query().
		Where(scheduledjob.QueueEQ(scheduledjob.QueueCleanup)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, cleanupJobs, 2)

	// An execution finished far beyond the retention window.
	oldExecID := app.SubmitExecution(t, acct, agentID, "ancient history")
	app.WaitForExecutionState(t, oldExecID, execution.StateCompleted)
	require.NoError(t, app.EntClient.Execution.UpdateOneID(oldExecID).
		SetCompletedAt(time.Now().Add(-31*24*time.Hour)).
		Exec(ctx))

	// A fresh one that must survive the sweep.
	freshAgent := app.CreateAgent(t, acct, "echo-recent", "echo", nil)
	freshExecID := app.SubmitExecution(t, acct, freshAgent, "recent")
	app.WaitForExecutionState(t, freshExecID, execution.StateCompleted)

	app.rewindJob(t, scheduler.KeyExecutionCleanup)
	require.NoError(t, app.Scheduler.Tick(ctx))

	_, err = app.EntClient.Execution.Get(ctx, oldExecID)
	assert.True(t, ent.IsNotFound(err), "the ancient execution should be gone")
	orphanedLogs, err := app.EntClient.ExecutionLog.Query().
		Where(executionlog.ExecutionIDEQ(oldExecID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, orphanedLogs, "its logs go with it")

	_, err = app.EntClient.Execution.Get(ctx, freshExecID)
	require.NoError(t, err, "recent executions survive the sweep")

	// Old audit rows and settled deliveries fall to the log sweep.
	endpoint := NewHookEndpoint(t, alwaysStatus(200))
	hookID, _ := app.RegisterWebhook(t, acct, endpoint.URL(), []string{"execution.completed"})
	eightDaysAgo := time.Now().Add(-8 * 24 * time.Hour)
	_, err = app.EntClient.WebhookDelivery.Create().
		SetID(uuid.New().String()).
		SetWebhookID(hookID).
		SetEventID(uuid.New().String()).
		SetEventType("execution.completed").
		SetPayload(map[string]any{"stale": true}).
		SetState(webhookdelivery.StateDelivered).
		SetAttemptCount(1).
		SetScheduledAt(eightDaysAgo).
		SetCreatedAt(eightDaysAgo).
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, app.EntClient.AuditLog.Create().
		SetID(uuid.New().String()).
		SetUserID(acct.User.ID).
		SetAction("user.login").
		SetResource("user").
		SetCreatedAt(eightDaysAgo).
		Exec(ctx))

	app.rewindJob(t, scheduler.KeyLogCleanup)
	require.NoError(t, app.Scheduler.Tick(ctx))

	staleDeliveries, err := app.EntClient.WebhookDelivery.Query().
		Where(webhookdelivery.WebhookIDEQ(hookID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, staleDeliveries)
	staleAudits, err := app.EntClient.AuditLog.Query().
		Where(auditlog.CreatedAtLT(time.Now().Add(-7 * 24 * time.Hour))).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, staleAudits)
}
