// Code generated by ent, DO NOT EDIT.

package webhookdelivery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agent-orchestra/orchestra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContainsFold(FieldID, id))
}

// WebhookID applies equality check predicate on the "webhook_id" field. It's identical to WebhookIDEQ.
func WebhookID(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldWebhookID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldEventID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldEventType, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldAttemptCount, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldScheduledAt, v))
}

// DeliveredAt applies equality check predicate on the "delivered_at" field. It's identical to DeliveredAtEQ.
func DeliveredAt(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldDeliveredAt, v))
}

// FailedAt applies equality check predicate on the "failed_at" field. It's identical to FailedAtEQ.
func FailedAt(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldFailedAt, v))
}

// LastStatusCode applies equality check predicate on the "last_status_code" field. It's identical to LastStatusCodeEQ.
func LastStatusCode(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldLastStatusCode, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldCreatedAt, v))
}

// WebhookIDEQ applies the EQ predicate on the "webhook_id" field.
func WebhookIDEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldWebhookID, v))
}

// WebhookIDNEQ applies the NEQ predicate on the "webhook_id" field.
func WebhookIDNEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldWebhookID, v))
}

// WebhookIDIn applies the In predicate on the "webhook_id" field.
func WebhookIDIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldWebhookID, vs...))
}

// WebhookIDNotIn applies the NotIn predicate on the "webhook_id" field.
func WebhookIDNotIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldWebhookID, vs...))
}

// WebhookIDGT applies the GT predicate on the "webhook_id" field.
func WebhookIDGT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldWebhookID, v))
}

// WebhookIDGTE applies the GTE predicate on the "webhook_id" field.
func WebhookIDGTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldWebhookID, v))
}

// WebhookIDLT applies the LT predicate on the "webhook_id" field.
func WebhookIDLT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldWebhookID, v))
}

// WebhookIDLTE applies the LTE predicate on the "webhook_id" field.
func WebhookIDLTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldWebhookID, v))
}

// WebhookIDContains applies the Contains predicate on the "webhook_id" field.
func WebhookIDContains(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContains(FieldWebhookID, v))
}

// WebhookIDHasPrefix applies the HasPrefix predicate on the "webhook_id" field.
func WebhookIDHasPrefix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasPrefix(FieldWebhookID, v))
}

// WebhookIDHasSuffix applies the HasSuffix predicate on the "webhook_id" field.
func WebhookIDHasSuffix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasSuffix(FieldWebhookID, v))
}

// WebhookIDEqualFold applies the EqualFold predicate on the "webhook_id" field.
func WebhookIDEqualFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEqualFold(FieldWebhookID, v))
}

// WebhookIDContainsFold applies the ContainsFold predicate on the "webhook_id" field.
func WebhookIDContainsFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContainsFold(FieldWebhookID, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContainsFold(FieldEventID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContainsFold(FieldEventType, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldState, vs...))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldAttemptCount, v))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldScheduledAt, v))
}

// DeliveredAtEQ applies the EQ predicate on the "delivered_at" field.
func DeliveredAtEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredAtNEQ applies the NEQ predicate on the "delivered_at" field.
func DeliveredAtNEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldDeliveredAt, v))
}

// DeliveredAtIn applies the In predicate on the "delivered_at" field.
func DeliveredAtIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldDeliveredAt, vs...))
}

// DeliveredAtNotIn applies the NotIn predicate on the "delivered_at" field.
func DeliveredAtNotIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldDeliveredAt, vs...))
}

// DeliveredAtGT applies the GT predicate on the "delivered_at" field.
func DeliveredAtGT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldDeliveredAt, v))
}

// DeliveredAtGTE applies the GTE predicate on the "delivered_at" field.
func DeliveredAtGTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldDeliveredAt, v))
}

// DeliveredAtLT applies the LT predicate on the "delivered_at" field.
func DeliveredAtLT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldDeliveredAt, v))
}

// DeliveredAtLTE applies the LTE predicate on the "delivered_at" field.
func DeliveredAtLTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldDeliveredAt, v))
}

// DeliveredAtIsNil applies the IsNil predicate on the "delivered_at" field.
func DeliveredAtIsNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIsNull(FieldDeliveredAt))
}

// DeliveredAtNotNil applies the NotNil predicate on the "delivered_at" field.
func DeliveredAtNotNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotNull(FieldDeliveredAt))
}

// FailedAtEQ applies the EQ predicate on the "failed_at" field.
func FailedAtEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldFailedAt, v))
}

// FailedAtNEQ applies the NEQ predicate on the "failed_at" field.
func FailedAtNEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldFailedAt, v))
}

// FailedAtIn applies the In predicate on the "failed_at" field.
func FailedAtIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldFailedAt, vs...))
}

// FailedAtNotIn applies the NotIn predicate on the "failed_at" field.
func FailedAtNotIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldFailedAt, vs...))
}

// FailedAtGT applies the GT predicate on the "failed_at" field.
func FailedAtGT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldFailedAt, v))
}

// FailedAtGTE applies the GTE predicate on the "failed_at" field.
func FailedAtGTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldFailedAt, v))
}

// FailedAtLT applies the LT predicate on the "failed_at" field.
func FailedAtLT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldFailedAt, v))
}

// FailedAtLTE applies the LTE predicate on the "failed_at" field.
func FailedAtLTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldFailedAt, v))
}

// FailedAtIsNil applies the IsNil predicate on the "failed_at" field.
func FailedAtIsNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIsNull(FieldFailedAt))
}

// FailedAtNotNil applies the NotNil predicate on the "failed_at" field.
func FailedAtNotNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotNull(FieldFailedAt))
}

// LastStatusCodeEQ applies the EQ predicate on the "last_status_code" field.
func LastStatusCodeEQ(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldLastStatusCode, v))
}

// LastStatusCodeNEQ applies the NEQ predicate on the "last_status_code" field.
func LastStatusCodeNEQ(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldLastStatusCode, v))
}

// LastStatusCodeIn applies the In predicate on the "last_status_code" field.
func LastStatusCodeIn(vs ...int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldLastStatusCode, vs...))
}

// LastStatusCodeNotIn applies the NotIn predicate on the "last_status_code" field.
func LastStatusCodeNotIn(vs ...int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldLastStatusCode, vs...))
}

// LastStatusCodeGT applies the GT predicate on the "last_status_code" field.
func LastStatusCodeGT(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldLastStatusCode, v))
}

// LastStatusCodeGTE applies the GTE predicate on the "last_status_code" field.
func LastStatusCodeGTE(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldLastStatusCode, v))
}

// LastStatusCodeLT applies the LT predicate on the "last_status_code" field.
func LastStatusCodeLT(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldLastStatusCode, v))
}

// LastStatusCodeLTE applies the LTE predicate on the "last_status_code" field.
func LastStatusCodeLTE(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldLastStatusCode, v))
}

// LastStatusCodeIsNil applies the IsNil predicate on the "last_status_code" field.
func LastStatusCodeIsNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIsNull(FieldLastStatusCode))
}

// LastStatusCodeNotNil applies the NotNil predicate on the "last_status_code" field.
func LastStatusCodeNotNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotNull(FieldLastStatusCode))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWebhook applies the HasEdge predicate on the "webhook" edge.
func HasWebhook() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WebhookTable, WebhookColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWebhookWith applies the HasEdge predicate on the "webhook" edge with a given conditions (other predicates).
func HasWebhookWith(preds ...predicate.Webhook) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(func(s *sql.Selector) {
		step := newWebhookStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookDelivery) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookDelivery) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookDelivery) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.NotPredicates(p))
}
