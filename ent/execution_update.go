// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/executionlog"
	"github.com/agent-orchestra/orchestra/ent/predicate"
)

// ExecutionUpdate is the builder for updating Execution entities.
type ExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionMutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdate) Where(ps ...predicate.Execution) *ExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *ExecutionUpdate) SetState(v execution.State) *ExecutionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableState(v *execution.State) *ExecutionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ExecutionUpdate) SetPriority(v int) *ExecutionUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillablePriority(v *int) *ExecutionUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ExecutionUpdate) AddPriority(v int) *ExecutionUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetInput sets the "input" field.
func (_u *ExecutionUpdate) SetInput(v string) *ExecutionUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableInput(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionUpdate) SetOutput(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExecutionUpdate) ClearOutput() *ExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *ExecutionUpdate) SetError(v string) *ExecutionUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableError(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ExecutionUpdate) ClearError() *ExecutionUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *ExecutionUpdate) SetTrigger(v execution.Trigger) *ExecutionUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableTrigger(v *execution.Trigger) *ExecutionUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *ExecutionUpdate) SetEnvironment(v string) *ExecutionUpdate {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableEnvironment(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// SetConfigOverride sets the "config_override" field.
func (_u *ExecutionUpdate) SetConfigOverride(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetConfigOverride(v)
	return _u
}

// ClearConfigOverride clears the value of the "config_override" field.
func (_u *ExecutionUpdate) ClearConfigOverride() *ExecutionUpdate {
	_u.mutation.ClearConfigOverride()
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *ExecutionUpdate) SetTimeoutMs(v int64) *ExecutionUpdate {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableTimeoutMs(v *int64) *ExecutionUpdate {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *ExecutionUpdate) AddTimeoutMs(v int64) *ExecutionUpdate {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ExecutionUpdate) SetPodID(v string) *ExecutionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillablePodID(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ExecutionUpdate) ClearPodID() *ExecutionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionUpdate) SetStartedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStartedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionUpdate) ClearStartedAt() *ExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdate) SetCompletedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdate) ClearCompletedAt() *ExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionUpdate) SetDurationMs(v int64) *ExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableDurationMs(v *int64) *ExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionUpdate) AddDurationMs(v int64) *ExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExecutionUpdate) ClearDurationMs() *ExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ExecutionUpdate) SetTokensUsed(v int) *ExecutionUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableTokensUsed(v *int) *ExecutionUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ExecutionUpdate) AddTokensUsed(v int) *ExecutionUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (_u *ExecutionUpdate) ClearTokensUsed() *ExecutionUpdate {
	_u.mutation.ClearTokensUsed()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *ExecutionUpdate) SetCostUsd(v float64) *ExecutionUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCostUsd(v *float64) *ExecutionUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *ExecutionUpdate) AddCostUsd(v float64) *ExecutionUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *ExecutionUpdate) ClearCostUsd() *ExecutionUpdate {
	_u.mutation.ClearCostUsd()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExecutionUpdate) SetMetadata(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExecutionUpdate) ClearMetadata() *ExecutionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ExecutionUpdate) SetLastHeartbeatAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableLastHeartbeatAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *ExecutionUpdate) ClearLastHeartbeatAt() *ExecutionUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddLogIDs adds the "logs" edge to the ExecutionLog entity by IDs.
func (_u *ExecutionUpdate) AddLogIDs(ids ...string) *ExecutionUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ExecutionLog entity.
func (_u *ExecutionUpdate) AddLogs(v ...*ExecutionLog) *ExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdate) Mutation() *ExecutionMutation {
	return _u.mutation
}

// ClearLogs clears all "logs" edges to the ExecutionLog entity.
func (_u *ExecutionUpdate) ClearLogs() *ExecutionUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ExecutionLog entities by IDs.
func (_u *ExecutionUpdate) RemoveLogIDs(ids ...string) *ExecutionUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ExecutionLog entities.
func (_u *ExecutionUpdate) RemoveLogs(v ...*ExecutionLog) *ExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := execution.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Execution.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := execution.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "Execution.trigger": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Execution.agent"`)
	}
	if _u.mutation.SubmitterCleared() && len(_u.mutation.SubmitterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Execution.submitter"`)
	}
	return nil
}

func (_u *ExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(execution.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(execution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(execution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(execution.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(execution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(execution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(execution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(execution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(execution.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(execution.FieldEnvironment, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigOverride(); ok {
		_spec.SetField(execution.FieldConfigOverride, field.TypeJSON, value)
	}
	if _u.mutation.ConfigOverrideCleared() {
		_spec.ClearField(execution.FieldConfigOverride, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(execution.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(execution.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(execution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(execution.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(execution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(execution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(execution.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(execution.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(execution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(execution.FieldTokensUsed, field.TypeInt, value)
	}
	if _u.mutation.TokensUsedCleared() {
		_spec.ClearField(execution.FieldTokensUsed, field.TypeInt)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(execution.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(execution.FieldCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(execution.FieldCostUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(execution.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(execution.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(execution.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(execution.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionUpdateOne is the builder for updating a single Execution entity.
type ExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionMutation
}

// SetState sets the "state" field.
func (_u *ExecutionUpdateOne) SetState(v execution.State) *ExecutionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableState(v *execution.State) *ExecutionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ExecutionUpdateOne) SetPriority(v int) *ExecutionUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillablePriority(v *int) *ExecutionUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ExecutionUpdateOne) AddPriority(v int) *ExecutionUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetInput sets the "input" field.
func (_u *ExecutionUpdateOne) SetInput(v string) *ExecutionUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableInput(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionUpdateOne) SetOutput(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExecutionUpdateOne) ClearOutput() *ExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *ExecutionUpdateOne) SetError(v string) *ExecutionUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableError(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ExecutionUpdateOne) ClearError() *ExecutionUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *ExecutionUpdateOne) SetTrigger(v execution.Trigger) *ExecutionUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableTrigger(v *execution.Trigger) *ExecutionUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *ExecutionUpdateOne) SetEnvironment(v string) *ExecutionUpdateOne {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableEnvironment(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// SetConfigOverride sets the "config_override" field.
func (_u *ExecutionUpdateOne) SetConfigOverride(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetConfigOverride(v)
	return _u
}

// ClearConfigOverride clears the value of the "config_override" field.
func (_u *ExecutionUpdateOne) ClearConfigOverride() *ExecutionUpdateOne {
	_u.mutation.ClearConfigOverride()
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *ExecutionUpdateOne) SetTimeoutMs(v int64) *ExecutionUpdateOne {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableTimeoutMs(v *int64) *ExecutionUpdateOne {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *ExecutionUpdateOne) AddTimeoutMs(v int64) *ExecutionUpdateOne {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ExecutionUpdateOne) SetPodID(v string) *ExecutionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillablePodID(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ExecutionUpdateOne) ClearPodID() *ExecutionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionUpdateOne) SetStartedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionUpdateOne) ClearStartedAt() *ExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdateOne) SetCompletedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdateOne) ClearCompletedAt() *ExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionUpdateOne) SetDurationMs(v int64) *ExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableDurationMs(v *int64) *ExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionUpdateOne) AddDurationMs(v int64) *ExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExecutionUpdateOne) ClearDurationMs() *ExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ExecutionUpdateOne) SetTokensUsed(v int) *ExecutionUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableTokensUsed(v *int) *ExecutionUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ExecutionUpdateOne) AddTokensUsed(v int) *ExecutionUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (_u *ExecutionUpdateOne) ClearTokensUsed() *ExecutionUpdateOne {
	_u.mutation.ClearTokensUsed()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *ExecutionUpdateOne) SetCostUsd(v float64) *ExecutionUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCostUsd(v *float64) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *ExecutionUpdateOne) AddCostUsd(v float64) *ExecutionUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *ExecutionUpdateOne) ClearCostUsd() *ExecutionUpdateOne {
	_u.mutation.ClearCostUsd()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExecutionUpdateOne) SetMetadata(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExecutionUpdateOne) ClearMetadata() *ExecutionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ExecutionUpdateOne) SetLastHeartbeatAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *ExecutionUpdateOne) ClearLastHeartbeatAt() *ExecutionUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddLogIDs adds the "logs" edge to the ExecutionLog entity by IDs.
func (_u *ExecutionUpdateOne) AddLogIDs(ids ...string) *ExecutionUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ExecutionLog entity.
func (_u *ExecutionUpdateOne) AddLogs(v ...*ExecutionLog) *ExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdateOne) Mutation() *ExecutionMutation {
	return _u.mutation
}

// ClearLogs clears all "logs" edges to the ExecutionLog entity.
func (_u *ExecutionUpdateOne) ClearLogs() *ExecutionUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ExecutionLog entities by IDs.
func (_u *ExecutionUpdateOne) RemoveLogIDs(ids ...string) *ExecutionUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ExecutionLog entities.
func (_u *ExecutionUpdateOne) RemoveLogs(v ...*ExecutionLog) *ExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdateOne) Where(ps ...predicate.Execution) *ExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionUpdateOne) Select(field string, fields ...string) *ExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Execution entity.
func (_u *ExecutionUpdateOne) Save(ctx context.Context) (*Execution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdateOne) SaveX(ctx context.Context) *Execution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := execution.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Execution.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := execution.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "Execution.trigger": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Execution.agent"`)
	}
	if _u.mutation.SubmitterCleared() && len(_u.mutation.SubmitterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Execution.submitter"`)
	}
	return nil
}

func (_u *ExecutionUpdateOne) sqlSave(ctx context.Context) (_node *Execution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Execution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, execution.FieldID)
		for _, f := range fields {
			if !execution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != execution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(execution.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(execution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(execution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(execution.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(execution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(execution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(execution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(execution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(execution.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(execution.FieldEnvironment, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigOverride(); ok {
		_spec.SetField(execution.FieldConfigOverride, field.TypeJSON, value)
	}
	if _u.mutation.ConfigOverrideCleared() {
		_spec.ClearField(execution.FieldConfigOverride, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(execution.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(execution.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(execution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(execution.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(execution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(execution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(execution.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(execution.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(execution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(execution.FieldTokensUsed, field.TypeInt, value)
	}
	if _u.mutation.TokensUsedCleared() {
		_spec.ClearField(execution.FieldTokensUsed, field.TypeInt)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(execution.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(execution.FieldCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(execution.FieldCostUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(execution.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(execution.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(execution.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(execution.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Execution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
