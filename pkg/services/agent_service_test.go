package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent/execution"
	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/pkg/framework"
	"github.com/google/uuid"
)

func TestAgentCreateValidation(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	actor := actorOf(owner)

	_, err := h.agents.Create(ctx, actor, CreateAgentRequest{Name: "  ", Framework: "scripted"})
	assert.True(t, IsValidationError(err), "blank name rejected")

	_, err = h.agents.Create(ctx, actor, CreateAgentRequest{
		Name:      strings.Repeat("x", maxAgentNameLen+1),
		Framework: "scripted",
	})
	assert.True(t, IsValidationError(err), "over-long name rejected")

	_, err = h.agents.Create(ctx, actor, CreateAgentRequest{Name: "no-framework"})
	assert.True(t, IsValidationError(err), "framework required")

	_, err = h.agents.Create(ctx, actor, CreateAgentRequest{Name: "bad-fw", Framework: "cobol"})
	assert.ErrorIs(t, err, framework.ErrUnsupportedFramework)

	_, err = h.agents.Create(ctx, actor, CreateAgentRequest{
		Name:          "bad-cfg",
		Framework:     "scripted",
		Configuration: map[string]any{"invalid": true},
	})
	assert.True(t, IsValidationError(err), "plugin-rejected configuration surfaces as validation")

	created, err := h.agents.Create(ctx, actor, CreateAgentRequest{
		Name:      "dup",
		Framework: "scripted",
	})
	require.NoError(t, err)
	assert.NotNil(t, created.Configuration, "nil bag normalizes to empty")

	_, err = h.agents.Create(ctx, actor, CreateAgentRequest{Name: "dup", Framework: "scripted"})
	assert.ErrorIs(t, err, ErrAlreadyExists, "names are unique per owner")

	// The same name under a different owner is fine.
	other := h.newUser(t, entuser.RoleUser)
	_, err = h.agents.Create(ctx, actorOf(other), CreateAgentRequest{Name: "dup", Framework: "scripted"})
	assert.NoError(t, err)
}

func TestAgentOwnershipScoping(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	stranger := h.newUser(t, entuser.RoleUser)
	agent := h.newAgent(t, owner)

	_, err := h.agents.Get(ctx, actorOf(stranger), agent.ID)
	assert.ErrorIs(t, err, ErrNotFound, "foreign agents are invisible, not forbidden")

	got, err := h.agents.Get(ctx, adminActor(), agent.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.ID, got.ID)

	h.newAgent(t, stranger)

	mine, err := h.agents.List(ctx, actorOf(owner))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, agent.ID, mine[0].ID)

	all, err := h.agents.List(ctx, adminActor())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAgentUpdate(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	agent := h.newAgent(t, owner)

	name := "renamed"
	inactive := false
	updated, err := h.agents.Update(ctx, actorOf(owner), agent.ID, UpdateAgentRequest{
		Name:          &name,
		Configuration: map[string]any{"model": "large"},
		Tags:          []string{"prod"},
		Active:        &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "large", updated.Configuration["model"])
	assert.Equal(t, []string{"prod"}, updated.Tags)
	assert.False(t, updated.Active)

	// A replacement bag is validated before it lands.
	_, err = h.agents.Update(ctx, actorOf(owner), agent.ID, UpdateAgentRequest{
		Configuration: map[string]any{"invalid": true},
	})
	assert.True(t, IsValidationError(err))

	// Unchanged fields survive a partial update.
	reloaded, err := h.agents.Get(ctx, actorOf(owner), agent.ID)
	require.NoError(t, err)
	assert.Equal(t, "large", reloaded.Configuration["model"])
}

func TestAgentDeleteBlockedWhileBusy(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	agent := h.newAgent(t, owner)

	row, err := h.execs.CreatePending(ctx, CreatePendingParams{
		AgentID:     agent.ID,
		SubmitterID: owner.ID,
		Input:       "task",
		Timeout:     time.Minute,
	})
	require.NoError(t, err)

	err = h.agents.Delete(ctx, actorOf(owner), agent.ID)
	assert.True(t, IsValidationError(err), "in-flight execution blocks deletion")

	require.NoError(t, h.client.Execution.UpdateOneID(row.ID).
		SetState(execution.StateCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	require.NoError(t, h.agents.Delete(ctx, actorOf(owner), agent.ID))
	_, err = h.agents.Get(ctx, actorOf(owner), agent.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The cascade took the execution history with it.
	_, err = h.execs.GetByID(ctx, row.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgentRecordRunStatistics(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	agent := h.newAgent(t, owner)

	require.NoError(t, h.agents.RecordRun(ctx, agent.ID, execution.StateCompleted, 100*time.Millisecond))
	require.NoError(t, h.agents.RecordRun(ctx, agent.ID, execution.StateCompleted, 200*time.Millisecond))
	require.NoError(t, h.agents.RecordRun(ctx, agent.ID, execution.StateFailed, 50*time.Millisecond))
	require.NoError(t, h.agents.RecordRun(ctx, agent.ID, execution.StateTimeout, 0))
	require.NoError(t, h.agents.RecordRun(ctx, agent.ID, execution.StateCancelled, 0))

	reloaded, err := h.agents.Get(ctx, actorOf(owner), agent.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, reloaded.TotalExecutions)
	assert.EqualValues(t, 2, reloaded.SuccessfulExecutions)
	assert.EqualValues(t, 2, reloaded.FailedExecutions, "failed and timeout both count")
	assert.InDelta(t, 150.0, reloaded.AvgDurationMs, 0.01, "mean over successful runs only")
	require.NotNil(t, reloaded.LastExecutedAt)

	err = h.agents.RecordRun(ctx, uuid.New().String(), execution.StateCompleted, time.Second)
	assert.ErrorIs(t, err, ErrNotFound)
}
