package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookDelivery holds the schema definition for the WebhookDelivery
// entity. One row per attempt: a failed attempt below the cap finishes
// in "retry" and enqueues a successor row with attempt_count+1; at the
// cap the row finishes "failed".
type WebhookDelivery struct {
	ent.Schema
}

// Fields of the WebhookDelivery.
func (WebhookDelivery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("webhook_id").
			Immutable(),
		field.String("event_id").
			Immutable().
			Comment("Shared across all attempts for one lifecycle event"),
		field.String("event_type").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}),
		field.Enum("state").
			Values("pending", "delivering", "delivered", "retry", "failed").
			Default("pending"),
		field.Int("attempt_count").
			Default(0).
			Comment("Attempt number once delivering; chain capped at 5"),
		field.Time("scheduled_at").
			Comment("Earliest time the worker may claim this row"),
		field.Time("delivered_at").
			Optional().
			Nillable(),
		field.Time("failed_at").
			Optional().
			Nillable(),
		field.Int("last_status_code").
			Optional().
			Nillable(),
		field.Text("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WebhookDelivery.
func (WebhookDelivery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("webhook", Webhook.Type).
			Ref("deliveries").
			Field("webhook_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WebhookDelivery.
func (WebhookDelivery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("webhook_id", "scheduled_at"),
		// Retry scanner claim path.
		index.Fields("state", "scheduled_at"),
		// Auto-disable window count and per-event attempt listing.
		index.Fields("webhook_id", "state", "failed_at"),
		index.Fields("event_id"),
	}
}
