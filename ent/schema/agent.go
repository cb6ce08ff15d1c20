package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity: a named,
// per-user configuration bound to a framework plugin.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("name"),
		field.String("framework").
			Comment("Registry tag selecting the plugin"),
		field.JSON("configuration", map[string]interface{}{}).
			Comment("Opaque plugin configuration bag, validated at the boundary"),
		field.JSON("tags", []string{}).
			Optional(),
		field.Bool("active").
			Default(true),
		field.Int64("total_executions").
			Default(0),
		field.Int64("successful_executions").
			Default(0),
		field.Int64("failed_executions").
			Default(0),
		field.Float("avg_duration_ms").
			Default(0).
			Comment("Rolling average over completed runs"),
		field.Time("last_executed_at").
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

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("agents").
			Field("owner_id").
			Unique().
			Required().
			Immutable(),
		edge.To("executions", Execution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "name").
			Unique(),
		index.Fields("framework"),
		index.Fields("active"),
	}
}
