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
	"github.com/agent-orchestra/orchestra/ent/predicate"
	"github.com/agent-orchestra/orchestra/ent/scheduledjob"
)

// ScheduledJobUpdate is the builder for updating ScheduledJob entities.
type ScheduledJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledJobMutation
}

// Where appends a list predicates to the ScheduledJobUpdate builder.
func (_u *ScheduledJobUpdate) Where(ps ...predicate.ScheduledJob) *ScheduledJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *ScheduledJobUpdate) SetKey(v string) *ScheduledJobUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableKey(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetQueue sets the "queue" field.
func (_u *ScheduledJobUpdate) SetQueue(v scheduledjob.Queue) *ScheduledJobUpdate {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableQueue(v *scheduledjob.Queue) *ScheduledJobUpdate {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ScheduledJobUpdate) SetKind(v scheduledjob.Kind) *ScheduledJobUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableKind(v *scheduledjob.Kind) *ScheduledJobUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCronExpr sets the "cron_expr" field.
func (_u *ScheduledJobUpdate) SetCronExpr(v string) *ScheduledJobUpdate {
	_u.mutation.SetCronExpr(v)
	return _u
}

// SetNillableCronExpr sets the "cron_expr" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableCronExpr(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetCronExpr(*v)
	}
	return _u
}

// ClearCronExpr clears the value of the "cron_expr" field.
func (_u *ScheduledJobUpdate) ClearCronExpr() *ScheduledJobUpdate {
	_u.mutation.ClearCronExpr()
	return _u
}

// SetRunAt sets the "run_at" field.
func (_u *ScheduledJobUpdate) SetRunAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetRunAt(v)
	return _u
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableRunAt(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetRunAt(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ScheduledJobUpdate) SetPayload(v map[string]interface{}) *ScheduledJobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ScheduledJobUpdate) ClearPayload() *ScheduledJobUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetActive sets the "active" field.
func (_u *ScheduledJobUpdate) SetActive(v bool) *ScheduledJobUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableActive(v *bool) *ScheduledJobUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledJobUpdate) SetLastRunAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableLastRunAt(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledJobUpdate) ClearLastRunAt() *ScheduledJobUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ScheduledJobUpdate) SetLastError(v string) *ScheduledJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableLastError(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ScheduledJobUpdate) ClearLastError() *ScheduledJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledJobUpdate) SetUpdatedAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_u *ScheduledJobUpdate) Mutation() *ScheduledJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledJobUpdate) check() error {
	if v, ok := _u.mutation.Queue(); ok {
		if err := scheduledjob.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.queue": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := scheduledjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledjob.Table, scheduledjob.Columns, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(scheduledjob.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(scheduledjob.FieldQueue, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(scheduledjob.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CronExpr(); ok {
		_spec.SetField(scheduledjob.FieldCronExpr, field.TypeString, value)
	}
	if _u.mutation.CronExprCleared() {
		_spec.ClearField(scheduledjob.FieldCronExpr, field.TypeString)
	}
	if value, ok := _u.mutation.RunAt(); ok {
		_spec.SetField(scheduledjob.FieldRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(scheduledjob.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(scheduledjob.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(scheduledjob.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledjob.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledjob.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(scheduledjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(scheduledjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledJobUpdateOne is the builder for updating a single ScheduledJob entity.
type ScheduledJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledJobMutation
}

// SetKey sets the "key" field.
func (_u *ScheduledJobUpdateOne) SetKey(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableKey(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetQueue sets the "queue" field.
func (_u *ScheduledJobUpdateOne) SetQueue(v scheduledjob.Queue) *ScheduledJobUpdateOne {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableQueue(v *scheduledjob.Queue) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ScheduledJobUpdateOne) SetKind(v scheduledjob.Kind) *ScheduledJobUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableKind(v *scheduledjob.Kind) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCronExpr sets the "cron_expr" field.
func (_u *ScheduledJobUpdateOne) SetCronExpr(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetCronExpr(v)
	return _u
}

// SetNillableCronExpr sets the "cron_expr" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableCronExpr(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetCronExpr(*v)
	}
	return _u
}

// ClearCronExpr clears the value of the "cron_expr" field.
func (_u *ScheduledJobUpdateOne) ClearCronExpr() *ScheduledJobUpdateOne {
	_u.mutation.ClearCronExpr()
	return _u
}

// SetRunAt sets the "run_at" field.
func (_u *ScheduledJobUpdateOne) SetRunAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetRunAt(v)
	return _u
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableRunAt(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetRunAt(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ScheduledJobUpdateOne) SetPayload(v map[string]interface{}) *ScheduledJobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ScheduledJobUpdateOne) ClearPayload() *ScheduledJobUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetActive sets the "active" field.
func (_u *ScheduledJobUpdateOne) SetActive(v bool) *ScheduledJobUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableActive(v *bool) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledJobUpdateOne) SetLastRunAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableLastRunAt(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledJobUpdateOne) ClearLastRunAt() *ScheduledJobUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ScheduledJobUpdateOne) SetLastError(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableLastError(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ScheduledJobUpdateOne) ClearLastError() *ScheduledJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledJobUpdateOne) SetUpdatedAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_u *ScheduledJobUpdateOne) Mutation() *ScheduledJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledJobUpdate builder.
func (_u *ScheduledJobUpdateOne) Where(ps ...predicate.ScheduledJob) *ScheduledJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledJobUpdateOne) Select(field string, fields ...string) *ScheduledJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledJob entity.
func (_u *ScheduledJobUpdateOne) Save(ctx context.Context) (*ScheduledJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledJobUpdateOne) SaveX(ctx context.Context) *ScheduledJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledJobUpdateOne) check() error {
	if v, ok := _u.mutation.Queue(); ok {
		if err := scheduledjob.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.queue": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := scheduledjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledJobUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledjob.Table, scheduledjob.Columns, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledjob.FieldID)
		for _, f := range fields {
			if !scheduledjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledjob.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(scheduledjob.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(scheduledjob.FieldQueue, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(scheduledjob.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CronExpr(); ok {
		_spec.SetField(scheduledjob.FieldCronExpr, field.TypeString, value)
	}
	if _u.mutation.CronExprCleared() {
		_spec.ClearField(scheduledjob.FieldCronExpr, field.TypeString)
	}
	if value, ok := _u.mutation.RunAt(); ok {
		_spec.SetField(scheduledjob.FieldRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(scheduledjob.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(scheduledjob.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(scheduledjob.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledjob.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledjob.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(scheduledjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(scheduledjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ScheduledJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
