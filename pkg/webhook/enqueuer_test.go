package webhook

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent"
	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
	"github.com/agent-orchestra/orchestra/pkg/events"
	testdb "github.com/agent-orchestra/orchestra/test/database"
)

func enqueuerFixtures(t *testing.T) (*ent.Client, *Enqueuer, *ent.User) {
	t.Helper()
	db := testdb.NewTestClient(t)
	owner, err := db.Client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String()[:8] + "@example.com").
		SetRole(entuser.RoleUser).
		Save(context.Background())
	require.NoError(t, err)
	return db.Client, NewEnqueuer(db.Client), owner
}

func enqueuerWebhook(t *testing.T, client *ent.Client, ownerID string, subscribed []string, active bool) *ent.Webhook {
	t.Helper()
	hook, err := client.Webhook.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetURL("https://hooks.example.com/" + uuid.New().String()[:8]).
		SetSubscribedEvents(subscribed).
		SetSecretEncrypted("sealed").
		SetActive(active).
		Save(context.Background())
	require.NoError(t, err)
	return hook
}

func lifecycleEvent(userID string) events.Event {
	return events.Event{
		ID:          uuid.New().String(),
		Type:        events.TypeExecutionCompleted,
		ExecutionID: uuid.New().String(),
		AgentID:     uuid.New().String(),
		UserID:      userID,
		Sequence:    7,
		Timestamp:   time.Now(),
		Data:        map[string]any{"state": "completed"},
	}
}

func TestEnqueuerFansOutToSubscribedHooks(t *testing.T) {
	client, q, owner := enqueuerFixtures(t)
	ctx := context.Background()

	subscribed := enqueuerWebhook(t, client, owner.ID,
		[]string{events.TypeExecutionCompleted, events.TypeExecutionFailed}, true)
	enqueuerWebhook(t, client, owner.ID, []string{events.TypeExecutionFailed}, true)
	enqueuerWebhook(t, client, owner.ID, []string{events.TypeExecutionCompleted}, false)

	evt := lifecycleEvent(owner.ID)
	q.EnqueueEvent(ctx, evt)

	rows, err := client.WebhookDelivery.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the active, subscribed hook gets a delivery")

	row := rows[0]
	assert.Equal(t, subscribed.ID, row.WebhookID)
	assert.Equal(t, evt.ID, row.EventID)
	assert.Equal(t, events.TypeExecutionCompleted, row.EventType)
	assert.Equal(t, webhookdelivery.StatePending, row.State)
	assert.Zero(t, row.AttemptCount)
	assert.WithinDuration(t, time.Now(), row.ScheduledAt, 5*time.Second)

	assert.Equal(t, evt.ID, row.Payload["id"])
	assert.Equal(t, evt.Type, row.Payload["type"])
	assert.Equal(t, "agent-orchestra", row.Payload["source"])
	data, ok := row.Payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, evt.ExecutionID, data["execution_id"])
}

func TestEnqueuerIgnoresStreamEvents(t *testing.T) {
	client, q, owner := enqueuerFixtures(t)
	ctx := context.Background()
	enqueuerWebhook(t, client, owner.ID, []string{events.TypeExecutionCompleted}, true)

	for _, typ := range []string{events.TypeExecutionLog, events.TypeExecutionProgress} {
		evt := lifecycleEvent(owner.ID)
		evt.Type = typ
		q.EnqueueEvent(ctx, evt)
	}

	n, err := client.WebhookDelivery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "log and progress events never reach webhooks")
}

func TestEnqueuerScopedToEventOwner(t *testing.T) {
	client, q, owner := enqueuerFixtures(t)
	ctx := context.Background()

	other, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String()[:8] + "@example.com").
		SetRole(entuser.RoleUser).
		Save(ctx)
	require.NoError(t, err)
	enqueuerWebhook(t, client, other.ID, []string{events.TypeExecutionCompleted}, true)

	q.EnqueueEvent(ctx, lifecycleEvent(owner.ID))

	n, err := client.WebhookDelivery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "another user's hooks never see this event")
}
