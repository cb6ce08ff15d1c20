package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog records security-relevant actions (gate decisions, webhook
// auto-disable, schedule changes). Swept by the weekly log cleanup.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Immutable(),
		field.String("action").
			Immutable(),
		field.String("resource").
			Immutable(),
		field.String("resource_id").
			Optional().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("ip").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("user_id", "created_at"),
		index.Fields("action"),
	}
}
