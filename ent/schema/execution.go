package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Execution holds the schema definition for the Execution entity: one
// run of an agent over an input. Pending rows double as the dispatch
// queue; workers claim them with FOR UPDATE SKIP LOCKED.
type Execution struct {
	ent.Schema
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("submitter_id").
			Immutable(),
		field.Enum("state").
			Values("pending", "running", "completed", "failed", "cancelled", "timeout").
			Default("pending"),
		field.Int("priority").
			Default(2).
			Comment("high=1, normal=2, low=3; lower claims first"),
		field.Text("input"),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.Text("error").
			Optional().
			Nillable(),
		field.Enum("trigger").
			Values("manual", "scheduled", "webhook", "recurring").
			Default("manual"),
		field.String("environment").
			Default("production"),
		field.JSON("config_override", map[string]interface{}{}).
			Optional().
			Comment("Per-run overlay merged over the agent configuration"),
		field.Int64("timeout_ms").
			Comment("Clamped to [1s, MAX_EXECUTION_TIME] at submit"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Replica that claimed the row; multi-replica coordination"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.Int("tokens_used").
			Optional().
			Nillable(),
		field.Float("cost_usd").
			Optional().
			Nillable().
			Comment("Plugin-reported estimate, opaque to the engine"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Execution.
func (Execution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("executions").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
		edge.From("submitter", User.Type).
			Ref("executions").
			Field("submitter_id").
			Unique().
			Required().
			Immutable(),
		edge.To("logs", ExecutionLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Execution.
//
// Single-flight per agent is enforced by a partial unique index on
// agent_id WHERE state IN ('pending','running'), created via raw SQL
// (see pkg/database) because Ent cannot express partial unique indexes.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("submitter_id", "created_at"),
		index.Fields("agent_id", "created_at"),

		// Claim ordering for the dispatch queue.
		index.Fields("state", "priority", "created_at"),

		// Orphan detection.
		index.Fields("state", "last_heartbeat_at"),

		// Retention sweep.
		index.Fields("state", "completed_at"),
	}
}
