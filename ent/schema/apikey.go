package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApiKey holds the schema definition for the ApiKey entity.
// The secret itself is never stored; key_hash is a peppered HMAC-SHA256.
type ApiKey struct {
	ent.Schema
}

// Fields of the ApiKey.
func (ApiKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("name"),
		field.String("key_hash").
			Unique().
			Sensitive().
			Comment("HMAC-SHA256(hex) of the full key, peppered with API_SECRET_KEY"),
		field.String("key_prefix").
			Comment("First characters of the key, shown in listings"),
		field.JSON("permissions", []string{}).
			Comment("Capability strings; admin:all subsumes everything"),
		field.Bool("active").
			Default(true),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Int64("usage_count").
			Default(0),
		field.Time("last_used_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ApiKey.
func (ApiKey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("api_keys").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("usages", ApiKeyUsage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ApiKey.
func (ApiKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("active", "expires_at"),
	}
}
