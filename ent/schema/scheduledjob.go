package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledJob holds the schema definition for the ScheduledJob entity:
// deferred and recurring work claimed by the background scheduler.
// The unique key makes re-scheduling replace the previous schedule.
type ScheduledJob struct {
	ent.Schema
}

// Fields of the ScheduledJob.
func (ScheduledJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("key").
			Unique().
			Comment("Dedupe handle, e.g. scheduled-{agent}-{ms} or recurring-{agent}"),
		field.Enum("queue").
			Values("execution", "cleanup", "notification"),
		field.Enum("kind").
			Values("deferred", "recurring"),
		field.String("cron_expr").
			Optional().
			Comment("5-field cron, recurring jobs only"),
		field.Time("run_at").
			Comment("Next due time"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Bool("active").
			Default(true),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Text("last_error").
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

// Indexes of the ScheduledJob.
func (ScheduledJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active", "run_at"),
		index.Fields("queue"),
	}
}
