// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agent-orchestra/orchestra/ent/agent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/user"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *AgentCreate) SetOwnerID(v string) *AgentCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFramework sets the "framework" field.
func (_c *AgentCreate) SetFramework(v string) *AgentCreate {
	_c.mutation.SetFramework(v)
	return _c
}

// SetConfiguration sets the "configuration" field.
func (_c *AgentCreate) SetConfiguration(v map[string]interface{}) *AgentCreate {
	_c.mutation.SetConfiguration(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *AgentCreate) SetTags(v []string) *AgentCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *AgentCreate) SetActive(v bool) *AgentCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *AgentCreate) SetNillableActive(v *bool) *AgentCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetTotalExecutions sets the "total_executions" field.
func (_c *AgentCreate) SetTotalExecutions(v int64) *AgentCreate {
	_c.mutation.SetTotalExecutions(v)
	return _c
}

// SetNillableTotalExecutions sets the "total_executions" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTotalExecutions(v *int64) *AgentCreate {
	if v != nil {
		_c.SetTotalExecutions(*v)
	}
	return _c
}

// SetSuccessfulExecutions sets the "successful_executions" field.
func (_c *AgentCreate) SetSuccessfulExecutions(v int64) *AgentCreate {
	_c.mutation.SetSuccessfulExecutions(v)
	return _c
}

// SetNillableSuccessfulExecutions sets the "successful_executions" field if the given value is not nil.
func (_c *AgentCreate) SetNillableSuccessfulExecutions(v *int64) *AgentCreate {
	if v != nil {
		_c.SetSuccessfulExecutions(*v)
	}
	return _c
}

// SetFailedExecutions sets the "failed_executions" field.
func (_c *AgentCreate) SetFailedExecutions(v int64) *AgentCreate {
	_c.mutation.SetFailedExecutions(v)
	return _c
}

// SetNillableFailedExecutions sets the "failed_executions" field if the given value is not nil.
func (_c *AgentCreate) SetNillableFailedExecutions(v *int64) *AgentCreate {
	if v != nil {
		_c.SetFailedExecutions(*v)
	}
	return _c
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_c *AgentCreate) SetAvgDurationMs(v float64) *AgentCreate {
	_c.mutation.SetAvgDurationMs(v)
	return _c
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_c *AgentCreate) SetNillableAvgDurationMs(v *float64) *AgentCreate {
	if v != nil {
		_c.SetAvgDurationMs(*v)
	}
	return _c
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (_c *AgentCreate) SetLastExecutedAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastExecutedAt(v)
	return _c
}

// SetNillableLastExecutedAt sets the "last_executed_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastExecutedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastExecutedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentCreate) SetUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *AgentCreate) SetOwner(v *User) *AgentCreate {
	return _c.SetOwnerID(v.ID)
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_c *AgentCreate) AddExecutionIDs(ids ...string) *AgentCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_c *AgentCreate) AddExecutions(v ...*Execution) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := agent.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.TotalExecutions(); !ok {
		v := agent.DefaultTotalExecutions
		_c.mutation.SetTotalExecutions(v)
	}
	if _, ok := _c.mutation.SuccessfulExecutions(); !ok {
		v := agent.DefaultSuccessfulExecutions
		_c.mutation.SetSuccessfulExecutions(v)
	}
	if _, ok := _c.mutation.FailedExecutions(); !ok {
		v := agent.DefaultFailedExecutions
		_c.mutation.SetFailedExecutions(v)
	}
	if _, ok := _c.mutation.AvgDurationMs(); !ok {
		v := agent.DefaultAvgDurationMs
		_c.mutation.SetAvgDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Agent.owner_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if _, ok := _c.mutation.Framework(); !ok {
		return &ValidationError{Name: "framework", err: errors.New(`ent: missing required field "Agent.framework"`)}
	}
	if _, ok := _c.mutation.Configuration(); !ok {
		return &ValidationError{Name: "configuration", err: errors.New(`ent: missing required field "Agent.configuration"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Agent.active"`)}
	}
	if _, ok := _c.mutation.TotalExecutions(); !ok {
		return &ValidationError{Name: "total_executions", err: errors.New(`ent: missing required field "Agent.total_executions"`)}
	}
	if _, ok := _c.mutation.SuccessfulExecutions(); !ok {
		return &ValidationError{Name: "successful_executions", err: errors.New(`ent: missing required field "Agent.successful_executions"`)}
	}
	if _, ok := _c.mutation.FailedExecutions(); !ok {
		return &ValidationError{Name: "failed_executions", err: errors.New(`ent: missing required field "Agent.failed_executions"`)}
	}
	if _, ok := _c.mutation.AvgDurationMs(); !ok {
		return &ValidationError{Name: "avg_duration_ms", err: errors.New(`ent: missing required field "Agent.avg_duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agent.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Agent.owner"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Framework(); ok {
		_spec.SetField(agent.FieldFramework, field.TypeString, value)
		_node.Framework = value
	}
	if value, ok := _c.mutation.Configuration(); ok {
		_spec.SetField(agent.FieldConfiguration, field.TypeJSON, value)
		_node.Configuration = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(agent.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(agent.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.TotalExecutions(); ok {
		_spec.SetField(agent.FieldTotalExecutions, field.TypeInt64, value)
		_node.TotalExecutions = value
	}
	if value, ok := _c.mutation.SuccessfulExecutions(); ok {
		_spec.SetField(agent.FieldSuccessfulExecutions, field.TypeInt64, value)
		_node.SuccessfulExecutions = value
	}
	if value, ok := _c.mutation.FailedExecutions(); ok {
		_spec.SetField(agent.FieldFailedExecutions, field.TypeInt64, value)
		_node.FailedExecutions = value
	}
	if value, ok := _c.mutation.AvgDurationMs(); ok {
		_spec.SetField(agent.FieldAvgDurationMs, field.TypeFloat64, value)
		_node.AvgDurationMs = value
	}
	if value, ok := _c.mutation.LastExecutedAt(); ok {
		_spec.SetField(agent.FieldLastExecutedAt, field.TypeTime, value)
		_node.LastExecutedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.OwnerTable,
			Columns: []string{agent.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OwnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
