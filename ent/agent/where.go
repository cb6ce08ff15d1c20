// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agent-orchestra/orchestra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// Framework applies equality check predicate on the "framework" field. It's identical to FrameworkEQ.
func Framework(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldFramework, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldActive, v))
}

// TotalExecutions applies equality check predicate on the "total_executions" field. It's identical to TotalExecutionsEQ.
func TotalExecutions(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTotalExecutions, v))
}

// SuccessfulExecutions applies equality check predicate on the "successful_executions" field. It's identical to SuccessfulExecutionsEQ.
func SuccessfulExecutions(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSuccessfulExecutions, v))
}

// FailedExecutions applies equality check predicate on the "failed_executions" field. It's identical to FailedExecutionsEQ.
func FailedExecutions(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldFailedExecutions, v))
}

// AvgDurationMs applies equality check predicate on the "avg_duration_ms" field. It's identical to AvgDurationMsEQ.
func AvgDurationMs(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAvgDurationMs, v))
}

// LastExecutedAt applies equality check predicate on the "last_executed_at" field. It's identical to LastExecutedAtEQ.
func LastExecutedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastExecutedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldName, v))
}

// FrameworkEQ applies the EQ predicate on the "framework" field.
func FrameworkEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldFramework, v))
}

// FrameworkNEQ applies the NEQ predicate on the "framework" field.
func FrameworkNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldFramework, v))
}

// FrameworkIn applies the In predicate on the "framework" field.
func FrameworkIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldFramework, vs...))
}

// FrameworkNotIn applies the NotIn predicate on the "framework" field.
func FrameworkNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldFramework, vs...))
}

// FrameworkGT applies the GT predicate on the "framework" field.
func FrameworkGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldFramework, v))
}

// FrameworkGTE applies the GTE predicate on the "framework" field.
func FrameworkGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldFramework, v))
}

// FrameworkLT applies the LT predicate on the "framework" field.
func FrameworkLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldFramework, v))
}

// FrameworkLTE applies the LTE predicate on the "framework" field.
func FrameworkLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldFramework, v))
}

// FrameworkContains applies the Contains predicate on the "framework" field.
func FrameworkContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldFramework, v))
}

// FrameworkHasPrefix applies the HasPrefix predicate on the "framework" field.
func FrameworkHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldFramework, v))
}

// FrameworkHasSuffix applies the HasSuffix predicate on the "framework" field.
func FrameworkHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldFramework, v))
}

// FrameworkEqualFold applies the EqualFold predicate on the "framework" field.
func FrameworkEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldFramework, v))
}

// FrameworkContainsFold applies the ContainsFold predicate on the "framework" field.
func FrameworkContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldFramework, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTags))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldActive, v))
}

// TotalExecutionsEQ applies the EQ predicate on the "total_executions" field.
func TotalExecutionsEQ(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTotalExecutions, v))
}

// TotalExecutionsNEQ applies the NEQ predicate on the "total_executions" field.
func TotalExecutionsNEQ(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTotalExecutions, v))
}

// TotalExecutionsIn applies the In predicate on the "total_executions" field.
func TotalExecutionsIn(vs ...int64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTotalExecutions, vs...))
}

// TotalExecutionsNotIn applies the NotIn predicate on the "total_executions" field.
func TotalExecutionsNotIn(vs ...int64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTotalExecutions, vs...))
}

// TotalExecutionsGT applies the GT predicate on the "total_executions" field.
func TotalExecutionsGT(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTotalExecutions, v))
}

// TotalExecutionsGTE applies the GTE predicate on the "total_executions" field.
func TotalExecutionsGTE(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTotalExecutions, v))
}

// TotalExecutionsLT applies the LT predicate on the "total_executions" field.
func TotalExecutionsLT(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTotalExecutions, v))
}

// TotalExecutionsLTE applies the LTE predicate on the "total_executions" field.
func TotalExecutionsLTE(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTotalExecutions, v))
}

// SuccessfulExecutionsEQ applies the EQ predicate on the "successful_executions" field.
func SuccessfulExecutionsEQ(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSuccessfulExecutions, v))
}

// SuccessfulExecutionsNEQ applies the NEQ predicate on the "successful_executions" field.
func SuccessfulExecutionsNEQ(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSuccessfulExecutions, v))
}

// SuccessfulExecutionsIn applies the In predicate on the "successful_executions" field.
func SuccessfulExecutionsIn(vs ...int64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldSuccessfulExecutions, vs...))
}

// SuccessfulExecutionsNotIn applies the NotIn predicate on the "successful_executions" field.
func SuccessfulExecutionsNotIn(vs ...int64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldSuccessfulExecutions, vs...))
}

// SuccessfulExecutionsGT applies the GT predicate on the "successful_executions" field.
func SuccessfulExecutionsGT(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldSuccessfulExecutions, v))
}

// SuccessfulExecutionsGTE applies the GTE predicate on the "successful_executions" field.
func SuccessfulExecutionsGTE(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldSuccessfulExecutions, v))
}

// SuccessfulExecutionsLT applies the LT predicate on the "successful_executions" field.
func SuccessfulExecutionsLT(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldSuccessfulExecutions, v))
}

// SuccessfulExecutionsLTE applies the LTE predicate on the "successful_executions" field.
func SuccessfulExecutionsLTE(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldSuccessfulExecutions, v))
}

// FailedExecutionsEQ applies the EQ predicate on the "failed_executions" field.
func FailedExecutionsEQ(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldFailedExecutions, v))
}

// FailedExecutionsNEQ applies the NEQ predicate on the "failed_executions" field.
func FailedExecutionsNEQ(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldFailedExecutions, v))
}

// FailedExecutionsIn applies the In predicate on the "failed_executions" field.
func FailedExecutionsIn(vs ...int64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldFailedExecutions, vs...))
}

// FailedExecutionsNotIn applies the NotIn predicate on the "failed_executions" field.
func FailedExecutionsNotIn(vs ...int64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldFailedExecutions, vs...))
}

// FailedExecutionsGT applies the GT predicate on the "failed_executions" field.
func FailedExecutionsGT(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldFailedExecutions, v))
}

// FailedExecutionsGTE applies the GTE predicate on the "failed_executions" field.
func FailedExecutionsGTE(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldFailedExecutions, v))
}

// FailedExecutionsLT applies the LT predicate on the "failed_executions" field.
func FailedExecutionsLT(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldFailedExecutions, v))
}

// FailedExecutionsLTE applies the LTE predicate on the "failed_executions" field.
func FailedExecutionsLTE(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldFailedExecutions, v))
}

// AvgDurationMsEQ applies the EQ predicate on the "avg_duration_ms" field.
func AvgDurationMsEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAvgDurationMs, v))
}

// AvgDurationMsNEQ applies the NEQ predicate on the "avg_duration_ms" field.
func AvgDurationMsNEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAvgDurationMs, v))
}

// AvgDurationMsIn applies the In predicate on the "avg_duration_ms" field.
func AvgDurationMsIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAvgDurationMs, vs...))
}

// AvgDurationMsNotIn applies the NotIn predicate on the "avg_duration_ms" field.
func AvgDurationMsNotIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAvgDurationMs, vs...))
}

// AvgDurationMsGT applies the GT predicate on the "avg_duration_ms" field.
func AvgDurationMsGT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAvgDurationMs, v))
}

// AvgDurationMsGTE applies the GTE predicate on the "avg_duration_ms" field.
func AvgDurationMsGTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAvgDurationMs, v))
}

// AvgDurationMsLT applies the LT predicate on the "avg_duration_ms" field.
func AvgDurationMsLT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAvgDurationMs, v))
}

// AvgDurationMsLTE applies the LTE predicate on the "avg_duration_ms" field.
func AvgDurationMsLTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAvgDurationMs, v))
}

// LastExecutedAtEQ applies the EQ predicate on the "last_executed_at" field.
func LastExecutedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastExecutedAt, v))
}

// LastExecutedAtNEQ applies the NEQ predicate on the "last_executed_at" field.
func LastExecutedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastExecutedAt, v))
}

// LastExecutedAtIn applies the In predicate on the "last_executed_at" field.
func LastExecutedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastExecutedAt, vs...))
}

// LastExecutedAtNotIn applies the NotIn predicate on the "last_executed_at" field.
func LastExecutedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastExecutedAt, vs...))
}

// LastExecutedAtGT applies the GT predicate on the "last_executed_at" field.
func LastExecutedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastExecutedAt, v))
}

// LastExecutedAtGTE applies the GTE predicate on the "last_executed_at" field.
func LastExecutedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastExecutedAt, v))
}

// LastExecutedAtLT applies the LT predicate on the "last_executed_at" field.
func LastExecutedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastExecutedAt, v))
}

// LastExecutedAtLTE applies the LTE predicate on the "last_executed_at" field.
func LastExecutedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastExecutedAt, v))
}

// LastExecutedAtIsNil applies the IsNil predicate on the "last_executed_at" field.
func LastExecutedAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastExecutedAt))
}

// LastExecutedAtNotNil applies the NotNil predicate on the "last_executed_at" field.
func LastExecutedAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastExecutedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.Execution) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
