package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			Unique(),
		field.String("name").
			Optional(),
		field.Enum("role").
			Values("user", "admin").
			Default("user"),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the User. Deleting a user cascades to everything they own.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agents", Agent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executions", Execution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("api_keys", ApiKey.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("webhooks", Webhook.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
