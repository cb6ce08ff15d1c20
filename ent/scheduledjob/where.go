// Code generated by ent, DO NOT EDIT.

package scheduledjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agent-orchestra/orchestra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldKey, v))
}

// CronExpr applies equality check predicate on the "cron_expr" field. It's identical to CronExprEQ.
func CronExpr(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCronExpr, v))
}

// RunAt applies equality check predicate on the "run_at" field. It's identical to RunAtEQ.
func RunAt(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldRunAt, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldActive, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLastRunAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldKey, v))
}

// QueueEQ applies the EQ predicate on the "queue" field.
func QueueEQ(v Queue) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldQueue, v))
}

// QueueNEQ applies the NEQ predicate on the "queue" field.
func QueueNEQ(v Queue) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldQueue, v))
}

// QueueIn applies the In predicate on the "queue" field.
func QueueIn(vs ...Queue) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldQueue, vs...))
}

// QueueNotIn applies the NotIn predicate on the "queue" field.
func QueueNotIn(vs ...Queue) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldQueue, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldKind, vs...))
}

// CronExprEQ applies the EQ predicate on the "cron_expr" field.
func CronExprEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCronExpr, v))
}

// CronExprNEQ applies the NEQ predicate on the "cron_expr" field.
func CronExprNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldCronExpr, v))
}

// CronExprIn applies the In predicate on the "cron_expr" field.
func CronExprIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldCronExpr, vs...))
}

// CronExprNotIn applies the NotIn predicate on the "cron_expr" field.
func CronExprNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldCronExpr, vs...))
}

// CronExprGT applies the GT predicate on the "cron_expr" field.
func CronExprGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldCronExpr, v))
}

// CronExprGTE applies the GTE predicate on the "cron_expr" field.
func CronExprGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldCronExpr, v))
}

// CronExprLT applies the LT predicate on the "cron_expr" field.
func CronExprLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldCronExpr, v))
}

// CronExprLTE applies the LTE predicate on the "cron_expr" field.
func CronExprLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldCronExpr, v))
}

// CronExprContains applies the Contains predicate on the "cron_expr" field.
func CronExprContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldCronExpr, v))
}

// CronExprHasPrefix applies the HasPrefix predicate on the "cron_expr" field.
func CronExprHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldCronExpr, v))
}

// CronExprHasSuffix applies the HasSuffix predicate on the "cron_expr" field.
func CronExprHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldCronExpr, v))
}

// CronExprIsNil applies the IsNil predicate on the "cron_expr" field.
func CronExprIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldCronExpr))
}

// CronExprNotNil applies the NotNil predicate on the "cron_expr" field.
func CronExprNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldCronExpr))
}

// CronExprEqualFold applies the EqualFold predicate on the "cron_expr" field.
func CronExprEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldCronExpr, v))
}

// CronExprContainsFold applies the ContainsFold predicate on the "cron_expr" field.
func CronExprContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldCronExpr, v))
}

// RunAtEQ applies the EQ predicate on the "run_at" field.
func RunAtEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldRunAt, v))
}

// RunAtNEQ applies the NEQ predicate on the "run_at" field.
func RunAtNEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldRunAt, v))
}

// RunAtIn applies the In predicate on the "run_at" field.
func RunAtIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldRunAt, vs...))
}

// RunAtNotIn applies the NotIn predicate on the "run_at" field.
func RunAtNotIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldRunAt, vs...))
}

// RunAtGT applies the GT predicate on the "run_at" field.
func RunAtGT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldRunAt, v))
}

// RunAtGTE applies the GTE predicate on the "run_at" field.
func RunAtGTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldRunAt, v))
}

// RunAtLT applies the LT predicate on the "run_at" field.
func RunAtLT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldRunAt, v))
}

// RunAtLTE applies the LTE predicate on the "run_at" field.
func RunAtLTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldRunAt, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldPayload))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldActive, v))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldLastRunAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledJob) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledJob) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledJob) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.NotPredicates(p))
}
