// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agent-orchestra/orchestra/ent/agent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFramework sets the "framework" field.
func (_u *AgentUpdate) SetFramework(v string) *AgentUpdate {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableFramework(v *string) *AgentUpdate {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// SetConfiguration sets the "configuration" field.
func (_u *AgentUpdate) SetConfiguration(v map[string]interface{}) *AgentUpdate {
	_u.mutation.SetConfiguration(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *AgentUpdate) SetTags(v []string) *AgentUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *AgentUpdate) AppendTags(v []string) *AgentUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *AgentUpdate) ClearTags() *AgentUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetActive sets the "active" field.
func (_u *AgentUpdate) SetActive(v bool) *AgentUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableActive(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetTotalExecutions sets the "total_executions" field.
func (_u *AgentUpdate) SetTotalExecutions(v int64) *AgentUpdate {
	_u.mutation.ResetTotalExecutions()
	_u.mutation.SetTotalExecutions(v)
	return _u
}

// SetNillableTotalExecutions sets the "total_executions" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTotalExecutions(v *int64) *AgentUpdate {
	if v != nil {
		_u.SetTotalExecutions(*v)
	}
	return _u
}

// AddTotalExecutions adds value to the "total_executions" field.
func (_u *AgentUpdate) AddTotalExecutions(v int64) *AgentUpdate {
	_u.mutation.AddTotalExecutions(v)
	return _u
}

// SetSuccessfulExecutions sets the "successful_executions" field.
func (_u *AgentUpdate) SetSuccessfulExecutions(v int64) *AgentUpdate {
	_u.mutation.ResetSuccessfulExecutions()
	_u.mutation.SetSuccessfulExecutions(v)
	return _u
}

// SetNillableSuccessfulExecutions sets the "successful_executions" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSuccessfulExecutions(v *int64) *AgentUpdate {
	if v != nil {
		_u.SetSuccessfulExecutions(*v)
	}
	return _u
}

// AddSuccessfulExecutions adds value to the "successful_executions" field.
func (_u *AgentUpdate) AddSuccessfulExecutions(v int64) *AgentUpdate {
	_u.mutation.AddSuccessfulExecutions(v)
	return _u
}

// SetFailedExecutions sets the "failed_executions" field.
func (_u *AgentUpdate) SetFailedExecutions(v int64) *AgentUpdate {
	_u.mutation.ResetFailedExecutions()
	_u.mutation.SetFailedExecutions(v)
	return _u
}

// SetNillableFailedExecutions sets the "failed_executions" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableFailedExecutions(v *int64) *AgentUpdate {
	if v != nil {
		_u.SetFailedExecutions(*v)
	}
	return _u
}

// AddFailedExecutions adds value to the "failed_executions" field.
func (_u *AgentUpdate) AddFailedExecutions(v int64) *AgentUpdate {
	_u.mutation.AddFailedExecutions(v)
	return _u
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_u *AgentUpdate) SetAvgDurationMs(v float64) *AgentUpdate {
	_u.mutation.ResetAvgDurationMs()
	_u.mutation.SetAvgDurationMs(v)
	return _u
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAvgDurationMs(v *float64) *AgentUpdate {
	if v != nil {
		_u.SetAvgDurationMs(*v)
	}
	return _u
}

// AddAvgDurationMs adds value to the "avg_duration_ms" field.
func (_u *AgentUpdate) AddAvgDurationMs(v float64) *AgentUpdate {
	_u.mutation.AddAvgDurationMs(v)
	return _u
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (_u *AgentUpdate) SetLastExecutedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastExecutedAt(v)
	return _u
}

// SetNillableLastExecutedAt sets the "last_executed_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastExecutedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastExecutedAt(*v)
	}
	return _u
}

// ClearLastExecutedAt clears the value of the "last_executed_at" field.
func (_u *AgentUpdate) ClearLastExecutedAt() *AgentUpdate {
	_u.mutation.ClearLastExecutedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_u *AgentUpdate) AddExecutionIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_u *AgentUpdate) AddExecutions(v ...*Execution) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the Execution entity.
func (_u *AgentUpdate) ClearExecutions() *AgentUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to Execution entities by IDs.
func (_u *AgentUpdate) RemoveExecutionIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to Execution entities.
func (_u *AgentUpdate) RemoveExecutions(v ...*Execution) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.owner"`)
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(agent.FieldFramework, field.TypeString, value)
	}
	if value, ok := _u.mutation.Configuration(); ok {
		_spec.SetField(agent.FieldConfiguration, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(agent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(agent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(agent.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalExecutions(); ok {
		_spec.SetField(agent.FieldTotalExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalExecutions(); ok {
		_spec.AddField(agent.FieldTotalExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SuccessfulExecutions(); ok {
		_spec.SetField(agent.FieldSuccessfulExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulExecutions(); ok {
		_spec.AddField(agent.FieldSuccessfulExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FailedExecutions(); ok {
		_spec.SetField(agent.FieldFailedExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailedExecutions(); ok {
		_spec.AddField(agent.FieldFailedExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgDurationMs(); ok {
		_spec.SetField(agent.FieldAvgDurationMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgDurationMs(); ok {
		_spec.AddField(agent.FieldAvgDurationMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastExecutedAt(); ok {
		_spec.SetField(agent.FieldLastExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.LastExecutedAtCleared() {
		_spec.ClearField(agent.FieldLastExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ExecutionsTable,
			Columns: []string{agent.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ExecutionsTable,
			Columns: []string{agent.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ExecutionsTable,
			Columns: []string{agent.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFramework sets the "framework" field.
func (_u *AgentUpdateOne) SetFramework(v string) *AgentUpdateOne {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableFramework(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// SetConfiguration sets the "configuration" field.
func (_u *AgentUpdateOne) SetConfiguration(v map[string]interface{}) *AgentUpdateOne {
	_u.mutation.SetConfiguration(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *AgentUpdateOne) SetTags(v []string) *AgentUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *AgentUpdateOne) AppendTags(v []string) *AgentUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *AgentUpdateOne) ClearTags() *AgentUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetActive sets the "active" field.
func (_u *AgentUpdateOne) SetActive(v bool) *AgentUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableActive(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetTotalExecutions sets the "total_executions" field.
func (_u *AgentUpdateOne) SetTotalExecutions(v int64) *AgentUpdateOne {
	_u.mutation.ResetTotalExecutions()
	_u.mutation.SetTotalExecutions(v)
	return _u
}

// SetNillableTotalExecutions sets the "total_executions" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTotalExecutions(v *int64) *AgentUpdateOne {
	if v != nil {
		_u.SetTotalExecutions(*v)
	}
	return _u
}

// AddTotalExecutions adds value to the "total_executions" field.
func (_u *AgentUpdateOne) AddTotalExecutions(v int64) *AgentUpdateOne {
	_u.mutation.AddTotalExecutions(v)
	return _u
}

// SetSuccessfulExecutions sets the "successful_executions" field.
func (_u *AgentUpdateOne) SetSuccessfulExecutions(v int64) *AgentUpdateOne {
	_u.mutation.ResetSuccessfulExecutions()
	_u.mutation.SetSuccessfulExecutions(v)
	return _u
}

// SetNillableSuccessfulExecutions sets the "successful_executions" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSuccessfulExecutions(v *int64) *AgentUpdateOne {
	if v != nil {
		_u.SetSuccessfulExecutions(*v)
	}
	return _u
}

// AddSuccessfulExecutions adds value to the "successful_executions" field.
func (_u *AgentUpdateOne) AddSuccessfulExecutions(v int64) *AgentUpdateOne {
	_u.mutation.AddSuccessfulExecutions(v)
	return _u
}

// SetFailedExecutions sets the "failed_executions" field.
func (_u *AgentUpdateOne) SetFailedExecutions(v int64) *AgentUpdateOne {
	_u.mutation.ResetFailedExecutions()
	_u.mutation.SetFailedExecutions(v)
	return _u
}

// SetNillableFailedExecutions sets the "failed_executions" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableFailedExecutions(v *int64) *AgentUpdateOne {
	if v != nil {
		_u.SetFailedExecutions(*v)
	}
	return _u
}

// AddFailedExecutions adds value to the "failed_executions" field.
func (_u *AgentUpdateOne) AddFailedExecutions(v int64) *AgentUpdateOne {
	_u.mutation.AddFailedExecutions(v)
	return _u
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_u *AgentUpdateOne) SetAvgDurationMs(v float64) *AgentUpdateOne {
	_u.mutation.ResetAvgDurationMs()
	_u.mutation.SetAvgDurationMs(v)
	return _u
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAvgDurationMs(v *float64) *AgentUpdateOne {
	if v != nil {
		_u.SetAvgDurationMs(*v)
	}
	return _u
}

// AddAvgDurationMs adds value to the "avg_duration_ms" field.
func (_u *AgentUpdateOne) AddAvgDurationMs(v float64) *AgentUpdateOne {
	_u.mutation.AddAvgDurationMs(v)
	return _u
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (_u *AgentUpdateOne) SetLastExecutedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastExecutedAt(v)
	return _u
}

// SetNillableLastExecutedAt sets the "last_executed_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastExecutedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastExecutedAt(*v)
	}
	return _u
}

// ClearLastExecutedAt clears the value of the "last_executed_at" field.
func (_u *AgentUpdateOne) ClearLastExecutedAt() *AgentUpdateOne {
	_u.mutation.ClearLastExecutedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_u *AgentUpdateOne) AddExecutionIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_u *AgentUpdateOne) AddExecutions(v ...*Execution) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the Execution entity.
func (_u *AgentUpdateOne) ClearExecutions() *AgentUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to Execution entities by IDs.
func (_u *AgentUpdateOne) RemoveExecutionIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to Execution entities.
func (_u *AgentUpdateOne) RemoveExecutions(v ...*Execution) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.owner"`)
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(agent.FieldFramework, field.TypeString, value)
	}
	if value, ok := _u.mutation.Configuration(); ok {
		_spec.SetField(agent.FieldConfiguration, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(agent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(agent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(agent.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalExecutions(); ok {
		_spec.SetField(agent.FieldTotalExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalExecutions(); ok {
		_spec.AddField(agent.FieldTotalExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SuccessfulExecutions(); ok {
		_spec.SetField(agent.FieldSuccessfulExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulExecutions(); ok {
		_spec.AddField(agent.FieldSuccessfulExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FailedExecutions(); ok {
		_spec.SetField(agent.FieldFailedExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailedExecutions(); ok {
		_spec.AddField(agent.FieldFailedExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgDurationMs(); ok {
		_spec.SetField(agent.FieldAvgDurationMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgDurationMs(); ok {
		_spec.AddField(agent.FieldAvgDurationMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastExecutedAt(); ok {
		_spec.SetField(agent.FieldLastExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.LastExecutedAtCleared() {
		_spec.ClearField(agent.FieldLastExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ExecutionsTable,
			Columns: []string{agent.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ExecutionsTable,
			Columns: []string{agent.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ExecutionsTable,
			Columns: []string{agent.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
