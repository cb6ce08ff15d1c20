package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

func TestUserCreateNormalizesEmail(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()

	u, err := h.users.Create(ctx, CreateUserRequest{Email: "  Alice@Example.COM ", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, entuser.RoleUser, u.Role)
	assert.True(t, u.Active)

	// Same address in a different casing collides on the unique column.
	_, err = h.users.Create(ctx, CreateUserRequest{Email: "ALICE@example.com"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUserCreateValidation(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()

	_, err := h.users.Create(ctx, CreateUserRequest{Email: "   "})
	assert.True(t, IsValidationError(err))

	_, err = h.users.Create(ctx, CreateUserRequest{Email: "not-an-address"})
	assert.True(t, IsValidationError(err))

	_, err = h.users.Create(ctx, CreateUserRequest{Email: "ok@example.com", Role: "superuser"})
	assert.True(t, IsValidationError(err))

	admin, err := h.users.Create(ctx, CreateUserRequest{Email: "root@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, entuser.RoleAdmin, admin.Role)
}

func TestUserGetByEmail(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()

	created, err := h.users.Create(ctx, CreateUserRequest{Email: "bob@example.com"})
	require.NoError(t, err)

	found, err := h.users.GetByEmail(ctx, " BOB@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = h.users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserSetActiveRequiresAdmin(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	target := h.newUser(t, entuser.RoleUser)
	peer := h.newUser(t, entuser.RoleUser)

	_, err := h.users.SetActive(ctx, actorOf(peer), target.ID, false)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := h.users.SetActive(ctx, adminActor(), target.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	_, err = h.users.SetActive(ctx, adminActor(), "missing-id", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserDeleteCascadesOwnedResources(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)

	agent := h.newAgent(t, owner)
	_, _, err := h.keys.Create(ctx, actorOf(owner), CreateAPIKeyRequest{
		Name:        "ci",
		Permissions: []string{"executions:read"},
	})
	require.NoError(t, err)
	_, _, err = h.hooks.Create(ctx, actorOf(owner), CreateWebhookRequest{
		URL:    "https://127.0.0.1/hooks",
		Events: []string{"execution.completed"},
	})
	require.NoError(t, err)

	err = h.users.Delete(ctx, actorOf(owner), owner.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, h.users.Delete(ctx, adminActor(), owner.ID))

	_, err = h.users.Get(ctx, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = h.agents.Get(ctx, adminActor(), agent.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	keys, err := h.keys.List(ctx, actorOf(owner))
	require.NoError(t, err)
	assert.Empty(t, keys)
	hooks, err := h.hooks.List(ctx, actorOf(owner))
	require.NoError(t, err)
	assert.Empty(t, hooks)
}
