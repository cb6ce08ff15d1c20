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
	"github.com/agent-orchestra/orchestra/ent/executionlog"
	"github.com/agent-orchestra/orchestra/ent/user"
)

// ExecutionCreate is the builder for creating a Execution entity.
type ExecutionCreate struct {
	config
	mutation *ExecutionMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *ExecutionCreate) SetAgentID(v string) *ExecutionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetSubmitterID sets the "submitter_id" field.
func (_c *ExecutionCreate) SetSubmitterID(v string) *ExecutionCreate {
	_c.mutation.SetSubmitterID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ExecutionCreate) SetState(v execution.State) *ExecutionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableState(v *execution.State) *ExecutionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ExecutionCreate) SetPriority(v int) *ExecutionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillablePriority(v *int) *ExecutionCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *ExecutionCreate) SetInput(v string) *ExecutionCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *ExecutionCreate) SetOutput(v map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetError sets the "error" field.
func (_c *ExecutionCreate) SetError(v string) *ExecutionCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableError(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *ExecutionCreate) SetTrigger(v execution.Trigger) *ExecutionCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableTrigger(v *execution.Trigger) *ExecutionCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetEnvironment sets the "environment" field.
func (_c *ExecutionCreate) SetEnvironment(v string) *ExecutionCreate {
	_c.mutation.SetEnvironment(v)
	return _c
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableEnvironment(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetEnvironment(*v)
	}
	return _c
}

// SetConfigOverride sets the "config_override" field.
func (_c *ExecutionCreate) SetConfigOverride(v map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetConfigOverride(v)
	return _c
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_c *ExecutionCreate) SetTimeoutMs(v int64) *ExecutionCreate {
	_c.mutation.SetTimeoutMs(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ExecutionCreate) SetPodID(v string) *ExecutionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillablePodID(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionCreate) SetStartedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStartedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionCreate) SetCompletedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCompletedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ExecutionCreate) SetDurationMs(v int64) *ExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableDurationMs(v *int64) *ExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *ExecutionCreate) SetTokensUsed(v int) *ExecutionCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableTokensUsed(v *int) *ExecutionCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *ExecutionCreate) SetCostUsd(v float64) *ExecutionCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCostUsd(v *float64) *ExecutionCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ExecutionCreate) SetMetadata(v map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *ExecutionCreate) SetLastHeartbeatAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableLastHeartbeatAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionCreate) SetCreatedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCreatedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionCreate) SetID(v string) *ExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *ExecutionCreate) SetAgent(v *Agent) *ExecutionCreate {
	return _c.SetAgentID(v.ID)
}

// SetSubmitter sets the "submitter" edge to the User entity.
func (_c *ExecutionCreate) SetSubmitter(v *User) *ExecutionCreate {
	return _c.SetSubmitterID(v.ID)
}

// AddLogIDs adds the "logs" edge to the ExecutionLog entity by IDs.
func (_c *ExecutionCreate) AddLogIDs(ids ...string) *ExecutionCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the ExecutionLog entity.
func (_c *ExecutionCreate) AddLogs(v ...*ExecutionLog) *ExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_c *ExecutionCreate) Mutation() *ExecutionMutation {
	return _c.mutation
}

// Save creates the Execution in the database.
func (_c *ExecutionCreate) Save(ctx context.Context) (*Execution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionCreate) SaveX(ctx context.Context) *Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := execution.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := execution.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		v := execution.DefaultTrigger
		_c.mutation.SetTrigger(v)
	}
	if _, ok := _c.mutation.Environment(); !ok {
		v := execution.DefaultEnvironment
		_c.mutation.SetEnvironment(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := execution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Execution.agent_id"`)}
	}
	if _, ok := _c.mutation.SubmitterID(); !ok {
		return &ValidationError{Name: "submitter_id", err: errors.New(`ent: missing required field "Execution.submitter_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Execution.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := execution.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Execution.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Execution.priority"`)}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "Execution.input"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "Execution.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := execution.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "Execution.trigger": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Environment(); !ok {
		return &ValidationError{Name: "environment", err: errors.New(`ent: missing required field "Execution.environment"`)}
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		return &ValidationError{Name: "timeout_ms", err: errors.New(`ent: missing required field "Execution.timeout_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Execution.created_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "Execution.agent"`)}
	}
	if len(_c.mutation.SubmitterIDs()) == 0 {
		return &ValidationError{Name: "submitter", err: errors.New(`ent: missing required edge "Execution.submitter"`)}
	}
	return nil
}

func (_c *ExecutionCreate) sqlSave(ctx context.Context) (*Execution, error) {
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
			return nil, fmt.Errorf("unexpected Execution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionCreate) createSpec() (*Execution, *sqlgraph.CreateSpec) {
	var (
		_node = &Execution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(execution.Table, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(execution.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(execution.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(execution.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(execution.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(execution.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(execution.FieldTrigger, field.TypeEnum, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.Environment(); ok {
		_spec.SetField(execution.FieldEnvironment, field.TypeString, value)
		_node.Environment = value
	}
	if value, ok := _c.mutation.ConfigOverride(); ok {
		_spec.SetField(execution.FieldConfigOverride, field.TypeJSON, value)
		_node.ConfigOverride = value
	}
	if value, ok := _c.mutation.TimeoutMs(); ok {
		_spec.SetField(execution.FieldTimeoutMs, field.TypeInt64, value)
		_node.TimeoutMs = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(execution.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(execution.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(execution.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = &value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(execution.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(execution.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(execution.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(execution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   execution.AgentTable,
			Columns: []string{execution.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubmitterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   execution.SubmitterTable,
			Columns: []string{execution.SubmitterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubmitterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionCreateBulk is the builder for creating many Execution entities in bulk.
type ExecutionCreateBulk struct {
	config
	err      error
	builders []*ExecutionCreate
}

// Save creates the Execution entities in the database.
func (_c *ExecutionCreateBulk) Save(ctx context.Context) ([]*Execution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Execution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionMutation)
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
func (_c *ExecutionCreateBulk) SaveX(ctx context.Context) []*Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
