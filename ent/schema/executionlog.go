package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionLog holds the schema definition for the ExecutionLog entity.
// Append-only; totally ordered per execution by sequence.
type ExecutionLog struct {
	ent.Schema
}

// Fields of the ExecutionLog.
func (ExecutionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.Enum("level").
			Values("debug", "info", "warn", "error", "fatal"),
		field.Text("message").
			Immutable(),
		field.Int("sequence").
			Immutable().
			Comment("Per-execution monotonic arrival order"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ExecutionLog.
func (ExecutionLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", Execution.Type).
			Ref("logs").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExecutionLog.
func (ExecutionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "sequence").
			Unique(),
		index.Fields("execution_id", "created_at"),
		index.Fields("execution_id", "level"),
	}
}
