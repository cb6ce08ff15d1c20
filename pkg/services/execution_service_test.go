package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/framework"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

func (h *svcHarness) pendingExecution(t *testing.T, agent *ent.Agent, submitter *ent.User) *ent.Execution {
	t.Helper()
	row, err := h.execs.CreatePending(context.Background(), CreatePendingParams{
		AgentID:     agent.ID,
		SubmitterID: submitter.ID,
		Input:       "task",
		Priority:    models.PriorityNormal,
		Trigger:     execution.TriggerManual,
		Timeout:     time.Minute,
	})
	require.NoError(t, err)
	return row
}

func (h *svcHarness) finish(t *testing.T, id string, state execution.State) {
	t.Helper()
	require.NoError(t, h.client.Execution.UpdateOneID(id).
		SetState(state).
		SetCompletedAt(time.Now()).
		Exec(context.Background()))
}

func TestCreatePendingSingleFlight(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	agent := h.newAgent(t, owner)

	first := h.pendingExecution(t, agent, owner)

	_, err := h.execs.CreatePending(ctx, CreatePendingParams{
		AgentID:     agent.ID,
		SubmitterID: owner.ID,
		Input:       "second task",
		Timeout:     time.Minute,
	})
	busy, ok := AsAgentBusy(err)
	require.True(t, ok, "expected AgentBusyError, got %v", err)
	assert.Equal(t, first.ID, busy.ExecutionID, "the rejection names the blocking run")

	// A terminal run releases the slot.
	h.finish(t, first.ID, execution.StateCompleted)
	_, err = h.execs.CreatePending(ctx, CreatePendingParams{
		AgentID:     agent.ID,
		SubmitterID: owner.ID,
		Input:       "third task",
		Timeout:     time.Minute,
	})
	assert.NoError(t, err)
}

func TestCountActiveForUser(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)

	a1 := h.newAgent(t, owner)
	a2 := h.newAgent(t, owner)
	h.pendingExecution(t, a1, owner)
	done := h.pendingExecution(t, a2, owner)
	h.finish(t, done.ID, execution.StateFailed)

	n, err := h.execs.CountActiveForUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "terminal rows do not count")
}

func TestExecutionVisibility(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	agentOwner := h.newUser(t, entuser.RoleUser)
	submitter := h.newUser(t, entuser.RoleUser)
	stranger := h.newUser(t, entuser.RoleUser)
	agent := h.newAgent(t, agentOwner)

	row, err := h.execs.CreatePending(ctx, CreatePendingParams{
		AgentID:     agent.ID,
		SubmitterID: submitter.ID,
		Input:       "task",
		Timeout:     time.Minute,
	})
	require.NoError(t, err)

	// Submitter, agent owner, and admin may all see the row.
	for _, actor := range []models.Actor{actorOf(submitter), actorOf(agentOwner), adminActor()} {
		got, err := h.execs.Get(ctx, actor, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID)
	}

	_, err = h.execs.Get(ctx, actorOf(stranger), row.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecutionListFilters(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	other := h.newUser(t, entuser.RoleUser)

	a1 := h.newAgent(t, owner)
	a2 := h.newAgent(t, owner)
	foreign := h.newAgent(t, other)

	e1 := h.pendingExecution(t, a1, owner)
	h.finish(t, e1.ID, execution.StateCompleted)
	h.pendingExecution(t, a1, owner)
	h.pendingExecution(t, a2, owner)
	h.pendingExecution(t, foreign, other)

	rows, total, err := h.execs.List(ctx, actorOf(owner), ExecutionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, total, "only the actor's submissions")
	assert.Len(t, rows, 3)

	rows, total, err = h.execs.List(ctx, actorOf(owner), ExecutionFilters{AgentID: a1.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rows, 2)

	rows, total, err = h.execs.List(ctx, actorOf(owner), ExecutionFilters{State: "completed"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, e1.ID, rows[0].ID)

	_, _, err = h.execs.List(ctx, actorOf(owner), ExecutionFilters{State: "exploded"})
	assert.True(t, IsValidationError(err))

	rows, total, err = h.execs.List(ctx, actorOf(owner), ExecutionFilters{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total, "total ignores pagination")
	assert.Len(t, rows, 2)

	all, total, err := h.execs.List(ctx, adminActor(), ExecutionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, all, 4)
}

func TestExecutionLogs(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	agent := h.newAgent(t, owner)
	row := h.pendingExecution(t, agent, owner)

	for i, line := range []struct {
		level   string
		message string
	}{
		{"info", "starting"},
		{"warn", "retrying fetch"},
		{"info", "done"},
	} {
		_, err := h.execs.AppendLog(ctx, row.ID, i, line.level, line.message, nil)
		require.NoError(t, err)
	}

	// An unknown level falls back to info rather than failing the run.
	_, err := h.execs.AppendLog(ctx, row.ID, 3, "verbose", "chatty line", map[string]any{"k": "v"})
	require.NoError(t, err)

	// fatal is a real level, not an unknown one.
	_, err = h.execs.AppendLog(ctx, row.ID, 4, framework.LevelFatal, "unrecoverable", nil)
	require.NoError(t, err)

	logs, total, err := h.execs.Logs(ctx, actorOf(owner), row.ID, models.LogFilters{})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, logs, 5)
	for i, log := range logs {
		assert.Equal(t, i, log.Sequence, "ascending sequence order")
	}
	assert.Equal(t, "info", string(logs[3].Level), "unknown level normalized")
	assert.Equal(t, "fatal", string(logs[4].Level))

	warns, total, err := h.execs.Logs(ctx, actorOf(owner), row.ID, models.LogFilters{Level: "warn"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, warns, 1)
	assert.Equal(t, "retrying fetch", warns[0].Message)

	_, _, err = h.execs.Logs(ctx, actorOf(owner), row.ID, models.LogFilters{Level: "shouting"})
	assert.True(t, IsValidationError(err))

	tail, err := h.execs.TailLogs(ctx, row.ID, 2)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, 3, tail[0].Sequence, "tail keeps ascending order")
	assert.Equal(t, 4, tail[1].Sequence)
}

func TestAppendLogAfterTerminal(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	agent := h.newAgent(t, owner)
	row := h.pendingExecution(t, agent, owner)

	_, err := h.execs.AppendLog(ctx, row.ID, 0, "info", "still running", nil)
	require.NoError(t, err)

	h.finish(t, row.ID, execution.StateCancelled)

	_, err = h.execs.AppendLog(ctx, row.ID, 1, "info", "too late", nil)
	assert.ErrorIs(t, err, ErrExecutionFinished)

	logs, err := h.execs.TailLogs(ctx, row.ID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1, "nothing lands after the terminal transition")
	assert.Equal(t, "still running", logs[0].Message)
}

func TestCancelTransitions(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	agent := h.newAgent(t, owner)
	row := h.pendingExecution(t, agent, owner)

	cancelled, won, err := h.execs.Cancel(ctx, actorOf(owner), row.ID)
	require.NoError(t, err)
	assert.True(t, won)
	assert.Equal(t, execution.StateCancelled, cancelled.State)
	require.NotNil(t, cancelled.Error)
	assert.Equal(t, "cancelled by user", *cancelled.Error)
	require.NotNil(t, cancelled.CompletedAt)

	// Cancelling again loses gracefully; the row is untouched.
	again, won, err := h.execs.Cancel(ctx, actorOf(owner), row.ID)
	require.NoError(t, err)
	assert.False(t, won)
	assert.Equal(t, execution.StateCancelled, again.State)

	done := h.pendingExecution(t, h.newAgent(t, owner), owner)
	h.finish(t, done.ID, execution.StateCompleted)
	final, won, err := h.execs.Cancel(ctx, actorOf(owner), done.ID)
	require.NoError(t, err)
	assert.False(t, won, "terminal rows cannot be cancelled")
	assert.Equal(t, execution.StateCompleted, final.State)
}

func TestDeleteFinishedBefore(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)

	oldAgent := h.newAgent(t, owner)
	oldRow := h.pendingExecution(t, oldAgent, owner)
	_, err := h.execs.AppendLog(ctx, oldRow.ID, 0, "info", "will be swept", nil)
	require.NoError(t, err)
	require.NoError(t, h.client.Execution.UpdateOneID(oldRow.ID).
		SetState(execution.StateCompleted).
		SetCompletedAt(time.Now().Add(-48*time.Hour)).
		Exec(ctx))

	keptTerminal := h.pendingExecution(t, h.newAgent(t, owner), owner)
	h.finish(t, keptTerminal.ID, execution.StateFailed)
	keptPending := h.pendingExecution(t, h.newAgent(t, owner), owner)

	n, err := h.execs.DeleteFinishedBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = h.execs.GetByID(ctx, oldRow.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	logs, err := h.execs.TailLogs(ctx, oldRow.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, logs, "logs are swept with their execution")

	_, err = h.execs.GetByID(ctx, keptTerminal.ID)
	assert.NoError(t, err, "recent terminal rows survive")
	_, err = h.execs.GetByID(ctx, keptPending.ID)
	assert.NoError(t, err, "non-terminal rows survive regardless of age")
}

func TestAuthorizeRoom(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	stranger := h.newUser(t, entuser.RoleUser)
	agent := h.newAgent(t, owner)
	row := h.pendingExecution(t, agent, owner)

	ownerSub := events.Subscriber{UserID: owner.ID, Role: models.RoleUser}
	strangerSub := events.Subscriber{UserID: stranger.ID, Role: models.RoleUser}
	adminSub := events.Subscriber{UserID: "root", Role: models.RoleAdmin}

	assert.NoError(t, h.execs.AuthorizeRoom(ctx, ownerSub, events.UserRoom(owner.ID)))
	assert.ErrorIs(t, h.execs.AuthorizeRoom(ctx, strangerSub, events.UserRoom(owner.ID)), ErrForbidden)

	assert.NoError(t, h.execs.AuthorizeRoom(ctx, ownerSub, events.ExecutionRoom(row.ID)))
	assert.ErrorIs(t, h.execs.AuthorizeRoom(ctx, strangerSub, events.ExecutionRoom(row.ID)), ErrNotFound)

	assert.NoError(t, h.execs.AuthorizeRoom(ctx, ownerSub, events.AgentRoom(agent.ID)))
	assert.ErrorIs(t, h.execs.AuthorizeRoom(ctx, strangerSub, events.AgentRoom(agent.ID)), ErrNotFound)

	for _, room := range []string{
		events.UserRoom(owner.ID),
		events.ExecutionRoom(row.ID),
		events.AgentRoom(agent.ID),
	} {
		assert.NoError(t, h.execs.AuthorizeRoom(ctx, adminSub, room))
	}

	assert.Error(t, h.execs.AuthorizeRoom(ctx, ownerSub, "garbage"))
}

func TestExecutionSnapshot(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	agent := h.newAgent(t, owner)
	row := h.pendingExecution(t, agent, owner)

	for i := 0; i < SnapshotLogTail+10; i++ {
		_, err := h.execs.AppendLog(ctx, row.ID, i, "info", "line", nil)
		require.NoError(t, err)
	}

	snap, err := h.execs.ExecutionSnapshot(ctx, row.ID)
	require.NoError(t, err)
	payload, ok := snap.(*ExecutionSnapshotPayload)
	require.True(t, ok)
	assert.Equal(t, row.ID, payload.Execution.ID)
	require.Len(t, payload.Logs, SnapshotLogTail, "snapshot carries only the tail")
	assert.Equal(t, 10, payload.Logs[0].Sequence, "eldest retained line first")
}
