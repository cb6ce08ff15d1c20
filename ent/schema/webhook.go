package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Webhook holds the schema definition for the Webhook entity: a
// user-registered HTTP endpoint subscribed to lifecycle events.
type Webhook struct {
	ent.Schema
}

// Fields of the Webhook.
func (Webhook) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("url"),
		field.JSON("subscribed_events", []string{}),
		field.String("secret_encrypted").
			Sensitive().
			Comment("AES-256-GCM sealed signing secret, base64"),
		field.Bool("active").
			Default(true),
		field.String("disabled_reason").
			Optional().
			Nillable(),
		field.Time("disabled_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Webhook.
func (Webhook) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("webhooks").
			Field("owner_id").
			Unique().
			Required().
			Immutable(),
		edge.To("deliveries", WebhookDelivery.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Webhook.
func (Webhook) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "active"),
	}
}
