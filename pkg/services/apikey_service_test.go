package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent/apikeyusage"
	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/pkg/auth"
)

func TestAPIKeyCreateAndVerify(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)

	key, plaintext, err := h.keys.Create(ctx, actorOf(owner), CreateAPIKeyRequest{
		Name:        "ci",
		Permissions: []string{auth.CapExecutionsWrite},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plaintext, auth.KeyPrefix))
	assert.Equal(t, plaintext[:12], key.KeyPrefix)
	assert.NotContains(t, key.KeyHash, plaintext, "plaintext must never be stored")

	row, user, err := h.keys.Verify(ctx, plaintext)
	require.NoError(t, err)
	assert.Equal(t, key.ID, row.ID)
	assert.Equal(t, owner.ID, user.ID)

	// Verification touches the usage counters.
	reloaded, err := h.client.ApiKey.Get(ctx, key.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, reloaded.UsageCount)
	require.NotNil(t, reloaded.LastUsedAt)
}

func TestAPIKeyCreateValidation(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	actor := actorOf(owner)

	_, _, err := h.keys.Create(ctx, actor, CreateAPIKeyRequest{Permissions: []string{auth.CapExecutionsRead}})
	assert.True(t, IsValidationError(err), "name is required")

	_, _, err = h.keys.Create(ctx, actor, CreateAPIKeyRequest{Name: "ci"})
	assert.True(t, IsValidationError(err), "permissions are required")

	_, _, err = h.keys.Create(ctx, actor, CreateAPIKeyRequest{
		Name:        "ci",
		Permissions: []string{"executions:launch"},
	})
	assert.True(t, IsValidationError(err), "unknown capability rejected")

	past := time.Now().Add(-time.Hour)
	_, _, err = h.keys.Create(ctx, actor, CreateAPIKeyRequest{
		Name:        "ci",
		Permissions: []string{auth.CapExecutionsRead},
		ExpiresAt:   &past,
	})
	assert.True(t, IsValidationError(err), "expiry must be in the future")
}

func TestAPIKeyVerifyRejections(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)

	_, _, err := h.keys.Verify(ctx, "aok_deadbeef")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	key, plaintext, err := h.keys.Create(ctx, actorOf(owner), CreateAPIKeyRequest{
		Name:        "revoked",
		Permissions: []string{auth.CapExecutionsRead},
	})
	require.NoError(t, err)
	require.NoError(t, h.keys.Revoke(ctx, actorOf(owner), key.ID))
	_, _, err = h.keys.Verify(ctx, plaintext)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	expKey, expPlain, err := h.keys.Create(ctx, actorOf(owner), CreateAPIKeyRequest{
		Name:        "expiring",
		Permissions: []string{auth.CapExecutionsRead},
	})
	require.NoError(t, err)
	require.NoError(t, h.client.ApiKey.UpdateOneID(expKey.ID).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx))
	_, _, err = h.keys.Verify(ctx, expPlain)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Lazy expiry flips the row off on first sight.
	reloaded, err := h.client.ApiKey.Get(ctx, expKey.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Active)

	// A disabled owner takes every key down with them.
	_, livePlain, err := h.keys.Create(ctx, actorOf(owner), CreateAPIKeyRequest{
		Name:        "orphaned",
		Permissions: []string{auth.CapExecutionsRead},
	})
	require.NoError(t, err)
	_, err = h.users.SetActive(ctx, adminActor(), owner.ID, false)
	require.NoError(t, err)
	_, _, err = h.keys.Verify(ctx, livePlain)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAPIKeyRevokeOwnership(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	stranger := h.newUser(t, entuser.RoleUser)

	key, _, err := h.keys.Create(ctx, actorOf(owner), CreateAPIKeyRequest{
		Name:        "ci",
		Permissions: []string{auth.CapExecutionsRead},
	})
	require.NoError(t, err)

	err = h.keys.Revoke(ctx, actorOf(stranger), key.ID)
	assert.ErrorIs(t, err, ErrNotFound, "foreign keys are invisible")

	require.NoError(t, h.keys.Revoke(ctx, adminActor(), key.ID))

	err = h.keys.Revoke(ctx, actorOf(owner), "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAPIKeyListScopedToOwner(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	other := h.newUser(t, entuser.RoleUser)

	for _, name := range []string{"first", "second"} {
		_, _, err := h.keys.Create(ctx, actorOf(owner), CreateAPIKeyRequest{
			Name:        name,
			Permissions: []string{auth.CapExecutionsRead},
		})
		require.NoError(t, err)
	}
	_, _, err := h.keys.Create(ctx, actorOf(other), CreateAPIKeyRequest{
		Name:        "foreign",
		Permissions: []string{auth.CapExecutionsRead},
	})
	require.NoError(t, err)

	keys, err := h.keys.List(ctx, actorOf(owner))
	require.NoError(t, err)
	require.Len(t, keys, 2)
	for _, k := range keys {
		assert.Equal(t, owner.ID, k.UserID)
	}
}

func TestAPIKeyRecordUsage(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)

	key, _, err := h.keys.Create(ctx, actorOf(owner), CreateAPIKeyRequest{
		Name:        "ci",
		Permissions: []string{auth.CapExecutionsRead},
	})
	require.NoError(t, err)

	h.keys.RecordUsage(key.ID, "/api/executions", "POST", 201, "10.0.0.9", "curl/8.0")

	usages, err := h.client.ApiKeyUsage.Query().
		Where(apikeyusage.APIKeyIDEQ(key.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, usages, 1)
	assert.Equal(t, "/api/executions", usages[0].Endpoint)
	assert.Equal(t, "POST", usages[0].Method)
	assert.Equal(t, 201, usages[0].StatusCode)
}
