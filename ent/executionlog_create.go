// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/executionlog"
)

// ExecutionLogCreate is the builder for creating a ExecutionLog entity.
type ExecutionLogCreate struct {
	config
	mutation *ExecutionLogMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *ExecutionLogCreate) SetExecutionID(v string) *ExecutionLogCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *ExecutionLogCreate) SetLevel(v executionlog.Level) *ExecutionLogCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ExecutionLogCreate) SetMessage(v string) *ExecutionLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *ExecutionLogCreate) SetSequence(v int) *ExecutionLogCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ExecutionLogCreate) SetMetadata(v map[string]interface{}) *ExecutionLogCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionLogCreate) SetCreatedAt(v time.Time) *ExecutionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableCreatedAt(v *time.Time) *ExecutionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionLogCreate) SetID(v string) *ExecutionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecution sets the "execution" edge to the Execution entity.
func (_c *ExecutionLogCreate) SetExecution(v *Execution) *ExecutionLogCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_c *ExecutionLogCreate) Mutation() *ExecutionLogMutation {
	return _c.mutation
}

// Save creates the ExecutionLog in the database.
func (_c *ExecutionLogCreate) Save(ctx context.Context) (*ExecutionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionLogCreate) SaveX(ctx context.Context) *ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionLogCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ExecutionLog.execution_id"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ExecutionLog.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := executionlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ExecutionLog.message"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExecutionLog.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionLog.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "ExecutionLog.execution"`)}
	}
	return nil
}

func (_c *ExecutionLogCreate) sqlSave(ctx context.Context) (*ExecutionLog, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionLogCreate) createSpec() (*ExecutionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionlog.Table, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(executionlog.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(executionlog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(executionlog.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(executionlog.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionlog.ExecutionTable,
			Columns: []string{executionlog.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionLogCreateBulk is the builder for creating many ExecutionLog entities in bulk.
type ExecutionLogCreateBulk struct {
	config
	err      error
	builders []*ExecutionLogCreate
}

// Save creates the ExecutionLog entities in the database.
func (_c *ExecutionLogCreateBulk) Save(ctx context.Context) ([]*ExecutionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionLogMutation)
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
func (_c *ExecutionLogCreateBulk) SaveX(ctx context.Context) []*ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
