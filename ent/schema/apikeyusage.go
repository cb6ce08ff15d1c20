package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApiKeyUsage records one admitted API-key request for analytics.
type ApiKeyUsage struct {
	ent.Schema
}

// Fields of the ApiKeyUsage.
func (ApiKeyUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("api_key_id").
			Immutable(),
		field.String("endpoint"),
		field.String("method"),
		field.Int("status_code"),
		field.String("ip").
			Optional(),
		field.String("user_agent").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ApiKeyUsage.
func (ApiKeyUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("api_key", ApiKey.Type).
			Ref("usages").
			Field("api_key_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ApiKeyUsage.
func (ApiKeyUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("api_key_id", "created_at"),
	}
}
