package webhook

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agent-orchestra/orchestra/ent"
	entwebhook "github.com/agent-orchestra/orchestra/ent/webhook"
	"github.com/agent-orchestra/orchestra/pkg/events"
)

// Enqueuer converts engine lifecycle events into pending delivery rows.
// It implements the engine's delivery hook and is called after the
// corresponding state transition is persisted, so an enqueued delivery
// never describes a state the store can contradict.
type Enqueuer struct {
	client *ent.Client
}

func NewEnqueuer(client *ent.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// EnqueueEvent fans one event out to every active, subscribed webhook
// of the execution's submitter. Failures are logged and swallowed;
// webhook fan-out never blocks or fails the engine.
func (q *Enqueuer) EnqueueEvent(ctx context.Context, evt events.Event) {
	if !events.IsLifecycleType(evt.Type) {
		return
	}
	if evt.UserID == "" {
		return
	}

	hooks, err := q.client.Webhook.Query().
		Where(
			entwebhook.OwnerIDEQ(evt.UserID),
			entwebhook.ActiveEQ(true),
		).
		All(ctx)
	if err != nil {
		slog.Error("Failed to query webhooks for event",
			"event_id", evt.ID, "type", evt.Type, "user_id", evt.UserID, "error", err)
		return
	}

	var payload map[string]any
	now := time.Now()
	for _, hook := range hooks {
		if !subscribed(hook, evt.Type) {
			continue
		}
		if payload == nil {
			payload = DeliveryPayload(evt)
		}
		_, err := q.client.WebhookDelivery.Create().
			SetID(uuid.New().String()).
			SetWebhookID(hook.ID).
			SetEventID(evt.ID).
			SetEventType(evt.Type).
			SetPayload(payload).
			SetScheduledAt(now).
			Save(ctx)
		if err != nil {
			slog.Error("Failed to enqueue webhook delivery",
				"webhook_id", hook.ID, "event_id", evt.ID, "type", evt.Type, "error", err)
			continue
		}
		slog.Debug("Webhook delivery enqueued",
			"webhook_id", hook.ID, "event_id", evt.ID, "type", evt.Type)
	}
}

// subscribed reports whether the hook wants this event type. The
// subscription list lives in a JSON column, so the filter runs here
// rather than in the query.
func subscribed(hook *ent.Webhook, eventType string) bool {
	for _, t := range hook.SubscribedEvents {
		if t == eventType {
			return true
		}
	}
	return false
}

// DeliveryPayload is the JSON document POSTed to endpoints. The
// delivery id travels in the X-Webhook-Delivery header and changes per
// attempt; the embedded event id is stable across retries, which is
// what recipients should deduplicate on.
func DeliveryPayload(evt events.Event) map[string]any {
	return map[string]any{
		"id":        evt.ID,
		"type":      evt.Type,
		"timestamp": evt.Timestamp.UTC().Format(time.RFC3339Nano),
		"source":    "agent-orchestra",
		"data": map[string]any{
			"execution_id": evt.ExecutionID,
			"agent_id":     evt.AgentID,
			"details":      evt.Data,
		},
	}
}
