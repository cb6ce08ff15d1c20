package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent"
	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
	"github.com/agent-orchestra/orchestra/pkg/events"
)

func TestWebhookCreateSealsSecret(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)

	row, secret, err := h.hooks.Create(ctx, actorOf(owner), CreateWebhookRequest{
		URL:    "https://127.0.0.1/hooks",
		Events: []string{events.TypeExecutionCompleted, events.TypeExecutionFailed},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(secret, "whsec_"), "generated secrets carry the whsec_ prefix")
	assert.NotEqual(t, secret, row.SecretEncrypted, "plaintext never stored")

	opened, err := h.box.Open(row.SecretEncrypted)
	require.NoError(t, err)
	assert.Equal(t, secret, opened)

	// A caller-supplied secret is kept verbatim.
	custom := "correct-horse-battery-staple"
	row2, got, err := h.hooks.Create(ctx, actorOf(owner), CreateWebhookRequest{
		URL:    "https://127.0.0.1/hooks2",
		Events: []string{events.TypeExecutionCompleted},
		Secret: custom,
	})
	require.NoError(t, err)
	assert.Equal(t, custom, got)
	opened, err = h.box.Open(row2.SecretEncrypted)
	require.NoError(t, err)
	assert.Equal(t, custom, opened)
}

func TestWebhookCreateValidation(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	actor := actorOf(owner)

	_, _, err := h.hooks.Create(ctx, actor, CreateWebhookRequest{
		Events: []string{events.TypeExecutionCompleted},
	})
	assert.True(t, IsValidationError(err), "url required")

	// Private address space is refused by the SSRF policy.
	_, _, err = h.hooks.Create(ctx, actor, CreateWebhookRequest{
		URL:    "https://10.0.0.8/hooks",
		Events: []string{events.TypeExecutionCompleted},
	})
	assert.True(t, IsValidationError(err), "private address rejected")

	_, _, err = h.hooks.Create(ctx, actor, CreateWebhookRequest{
		URL: "https://127.0.0.1/hooks",
	})
	assert.True(t, IsValidationError(err), "at least one event type required")

	_, _, err = h.hooks.Create(ctx, actor, CreateWebhookRequest{
		URL:    "https://127.0.0.1/hooks",
		Events: []string{"execution.log"},
	})
	assert.True(t, IsValidationError(err), "only lifecycle events are subscribable")

	_, _, err = h.hooks.Create(ctx, actor, CreateWebhookRequest{
		URL:    "https://127.0.0.1/hooks",
		Events: []string{events.TypeExecutionCompleted},
		Secret: "short",
	})
	assert.True(t, IsValidationError(err), "caller secrets have a length floor")
}

func TestWebhookUpdateReenableClearsDisableState(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)

	row, _, err := h.hooks.Create(ctx, actorOf(owner), CreateWebhookRequest{
		URL:    "https://127.0.0.1/hooks",
		Events: []string{events.TypeExecutionCompleted},
	})
	require.NoError(t, err)

	// Simulate an auto-disable.
	require.NoError(t, h.client.Webhook.UpdateOneID(row.ID).
		SetActive(false).
		SetDisabledReason("too many delivery failures").
		SetDisabledAt(time.Now()).
		Exec(ctx))

	active := true
	updated, err := h.hooks.Update(ctx, actorOf(owner), row.ID, UpdateWebhookRequest{Active: &active})
	require.NoError(t, err)
	assert.True(t, updated.Active)
	assert.Nil(t, updated.DisabledReason)
	assert.Nil(t, updated.DisabledAt)

	// A changed URL is re-vetted.
	bad := "https://192.168.1.5/hooks"
	_, err = h.hooks.Update(ctx, actorOf(owner), row.ID, UpdateWebhookRequest{URL: &bad})
	assert.True(t, IsValidationError(err))

	_, err = h.hooks.Update(ctx, actorOf(owner), row.ID, UpdateWebhookRequest{Events: []string{}})
	assert.True(t, IsValidationError(err), "events cannot be emptied")
}

func TestWebhookOwnershipAndDelete(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)
	stranger := h.newUser(t, entuser.RoleUser)

	row, _, err := h.hooks.Create(ctx, actorOf(owner), CreateWebhookRequest{
		URL:    "https://127.0.0.1/hooks",
		Events: []string{events.TypeExecutionCompleted},
	})
	require.NoError(t, err)

	_, err = h.hooks.Get(ctx, actorOf(stranger), row.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	err = h.hooks.Delete(ctx, actorOf(stranger), row.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	h.seedDelivery(t, row, webhookdelivery.StateDelivered, time.Now())

	require.NoError(t, h.hooks.Delete(ctx, actorOf(owner), row.ID))
	_, err = h.hooks.Get(ctx, adminActor(), row.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := h.client.WebhookDelivery.Query().
		Where(webhookdelivery.WebhookIDEQ(row.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "delivery history goes with the webhook")
}

func (h *svcHarness) seedDelivery(t *testing.T, hook *ent.Webhook, state webhookdelivery.State, createdAt time.Time) *ent.WebhookDelivery {
	t.Helper()
	row, err := h.client.WebhookDelivery.Create().
		SetID(uuid.New().String()).
		SetWebhookID(hook.ID).
		SetEventID(uuid.New().String()).
		SetEventType(events.TypeExecutionCompleted).
		SetPayload(map[string]any{}).
		SetState(state).
		SetScheduledAt(createdAt).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestWebhookStats(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	owner := h.newUser(t, entuser.RoleUser)

	row, _, err := h.hooks.Create(ctx, actorOf(owner), CreateWebhookRequest{
		URL:    "https://127.0.0.1/hooks",
		Events: []string{events.TypeExecutionCompleted},
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		h.seedDelivery(t, row, webhookdelivery.StateDelivered, time.Now())
	}
	h.seedDelivery(t, row, webhookdelivery.StateFailed, time.Now())
	h.seedDelivery(t, row, webhookdelivery.StatePending, time.Now())
	h.seedDelivery(t, row, webhookdelivery.StateRetry, time.Now())

	stats, err := h.hooks.Stats(ctx, actorOf(owner), row.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Delivered)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Retrying)
	assert.InDelta(t, 0.75, stats.SuccessRate, 0.001, "rate over finished chains only")
	assert.True(t, stats.Active)
	assert.Len(t, stats.Recent, 6)
}
