// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agent-orchestra/orchestra/ent/scheduledjob"
)

// ScheduledJobCreate is the builder for creating a ScheduledJob entity.
type ScheduledJobCreate struct {
	config
	mutation *ScheduledJobMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *ScheduledJobCreate) SetKey(v string) *ScheduledJobCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetQueue sets the "queue" field.
func (_c *ScheduledJobCreate) SetQueue(v scheduledjob.Queue) *ScheduledJobCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ScheduledJobCreate) SetKind(v scheduledjob.Kind) *ScheduledJobCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCronExpr sets the "cron_expr" field.
func (_c *ScheduledJobCreate) SetCronExpr(v string) *ScheduledJobCreate {
	_c.mutation.SetCronExpr(v)
	return _c
}

// SetNillableCronExpr sets the "cron_expr" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableCronExpr(v *string) *ScheduledJobCreate {
	if v != nil {
		_c.SetCronExpr(*v)
	}
	return _c
}

// SetRunAt sets the "run_at" field.
func (_c *ScheduledJobCreate) SetRunAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetRunAt(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ScheduledJobCreate) SetPayload(v map[string]interface{}) *ScheduledJobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ScheduledJobCreate) SetActive(v bool) *ScheduledJobCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableActive(v *bool) *ScheduledJobCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *ScheduledJobCreate) SetLastRunAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableLastRunAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ScheduledJobCreate) SetLastError(v string) *ScheduledJobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableLastError(v *string) *ScheduledJobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledJobCreate) SetCreatedAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableCreatedAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduledJobCreate) SetUpdatedAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableUpdatedAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledJobCreate) SetID(v string) *ScheduledJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_c *ScheduledJobCreate) Mutation() *ScheduledJobMutation {
	return _c.mutation
}

// Save creates the ScheduledJob in the database.
func (_c *ScheduledJobCreate) Save(ctx context.Context) (*ScheduledJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledJobCreate) SaveX(ctx context.Context) *ScheduledJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledJobCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := scheduledjob.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scheduledjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledJobCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "ScheduledJob.key"`)}
	}
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "ScheduledJob.queue"`)}
	}
	if v, ok := _c.mutation.Queue(); ok {
		if err := scheduledjob.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.queue": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ScheduledJob.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := scheduledjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RunAt(); !ok {
		return &ValidationError{Name: "run_at", err: errors.New(`ent: missing required field "ScheduledJob.run_at"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ScheduledJob.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScheduledJob.updated_at"`)}
	}
	return nil
}

func (_c *ScheduledJobCreate) sqlSave(ctx context.Context) (*ScheduledJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ScheduledJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledJobCreate) createSpec() (*ScheduledJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledjob.Table, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(scheduledjob.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(scheduledjob.FieldQueue, field.TypeEnum, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(scheduledjob.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.CronExpr(); ok {
		_spec.SetField(scheduledjob.FieldCronExpr, field.TypeString, value)
		_node.CronExpr = value
	}
	if value, ok := _c.mutation.RunAt(); ok {
		_spec.SetField(scheduledjob.FieldRunAt, field.TypeTime, value)
		_node.RunAt = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(scheduledjob.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(scheduledjob.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledjob.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(scheduledjob.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ScheduledJobCreateBulk is the builder for creating many ScheduledJob entities in bulk.
type ScheduledJobCreateBulk struct {
	config
	err      error
	builders []*ScheduledJobCreate
}

// Save creates the ScheduledJob entities in the database.
func (_c *ScheduledJobCreateBulk) Save(ctx context.Context) ([]*ScheduledJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScheduledJobCreateBulk) SaveX(ctx context.Context) []*ScheduledJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
