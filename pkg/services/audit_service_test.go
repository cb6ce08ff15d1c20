package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entuser "github.com/agent-orchestra/orchestra/ent/user"
)

func TestAuditRecordAndList(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()
	user := h.newUser(t, entuser.RoleUser)

	h.audit.Record(AuditEntry{
		UserID:     user.ID,
		Action:     "agent.create",
		Resource:   "agent",
		ResourceID: "agent-1",
		IP:         "10.1.2.3",
		Metadata:   map[string]any{"name": "digest-bot"},
	})
	time.Sleep(5 * time.Millisecond)
	h.audit.Record(AuditEntry{
		Action:   "webhook.auto_disable",
		Resource: "webhook",
	})

	_, err := h.audit.List(ctx, actorOf(user), 10)
	assert.ErrorIs(t, err, ErrForbidden, "audit trail is admin only")

	rows, err := h.audit.List(ctx, adminActor(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "webhook.auto_disable", rows[0].Action, "newest first")
	assert.Equal(t, "agent.create", rows[1].Action)
	assert.Equal(t, user.ID, rows[1].UserID)
	assert.Equal(t, "digest-bot", rows[1].Metadata["name"])
}

func TestAuditDeleteOlderThan(t *testing.T) {
	h := newServicesHarness(t)
	ctx := context.Background()

	h.audit.Record(AuditEntry{Action: "keep.me", Resource: "agent"})
	old, err := h.client.AuditLog.Create().
		SetID("old-entry").
		SetAction("sweep.me").
		SetResource("agent").
		SetCreatedAt(time.Now().Add(-30 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	n, err := h.audit.DeleteOlderThan(ctx, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows, err := h.audit.List(ctx, adminActor(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "keep.me", rows[0].Action)
	assert.NotEqual(t, old.ID, rows[0].ID)
}
