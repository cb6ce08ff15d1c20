// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agent-orchestra/orchestra/ent/apikey"
	"github.com/agent-orchestra/orchestra/ent/apikeyusage"
)

// ApiKeyUsageCreate is the builder for creating a ApiKeyUsage entity.
type ApiKeyUsageCreate struct {
	config
	mutation *ApiKeyUsageMutation
	hooks    []Hook
}

// SetAPIKeyID sets the "api_key_id" field.
func (_c *ApiKeyUsageCreate) SetAPIKeyID(v string) *ApiKeyUsageCreate {
	_c.mutation.SetAPIKeyID(v)
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *ApiKeyUsageCreate) SetEndpoint(v string) *ApiKeyUsageCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *ApiKeyUsageCreate) SetMethod(v string) *ApiKeyUsageCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *ApiKeyUsageCreate) SetStatusCode(v int) *ApiKeyUsageCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetIP sets the "ip" field.
func (_c *ApiKeyUsageCreate) SetIP(v string) *ApiKeyUsageCreate {
	_c.mutation.SetIP(v)
	return _c
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_c *ApiKeyUsageCreate) SetNillableIP(v *string) *ApiKeyUsageCreate {
	if v != nil {
		_c.SetIP(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *ApiKeyUsageCreate) SetUserAgent(v string) *ApiKeyUsageCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *ApiKeyUsageCreate) SetNillableUserAgent(v *string) *ApiKeyUsageCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApiKeyUsageCreate) SetCreatedAt(v time.Time) *ApiKeyUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApiKeyUsageCreate) SetNillableCreatedAt(v *time.Time) *ApiKeyUsageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApiKeyUsageCreate) SetID(v string) *ApiKeyUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAPIKey sets the "api_key" edge to the ApiKey entity.
func (_c *ApiKeyUsageCreate) SetAPIKey(v *ApiKey) *ApiKeyUsageCreate {
	return _c.SetAPIKeyID(v.ID)
}

// Mutation returns the ApiKeyUsageMutation object of the builder.
func (_c *ApiKeyUsageCreate) Mutation() *ApiKeyUsageMutation {
	return _c.mutation
}

// Save creates the ApiKeyUsage in the database.
func (_c *ApiKeyUsageCreate) Save(ctx context.Context) (*ApiKeyUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApiKeyUsageCreate) SaveX(ctx context.Context) *ApiKeyUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiKeyUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiKeyUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApiKeyUsageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := apikeyusage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApiKeyUsageCreate) check() error {
	if _, ok := _c.mutation.APIKeyID(); !ok {
		return &ValidationError{Name: "api_key_id", err: errors.New(`ent: missing required field "ApiKeyUsage.api_key_id"`)}
	}
	if _, ok := _c.mutation.Endpoint(); !ok {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required field "ApiKeyUsage.endpoint"`)}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "ApiKeyUsage.method"`)}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "ApiKeyUsage.status_code"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApiKeyUsage.created_at"`)}
	}
	if len(_c.mutation.APIKeyIDs()) == 0 {
		return &ValidationError{Name: "api_key", err: errors.New(`ent: missing required edge "ApiKeyUsage.api_key"`)}
	}
	return nil
}

func (_c *ApiKeyUsageCreate) sqlSave(ctx context.Context) (*ApiKeyUsage, error) {
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
			return nil, fmt.Errorf("unexpected ApiKeyUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApiKeyUsageCreate) createSpec() (*ApiKeyUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &ApiKeyUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apikeyusage.Table, sqlgraph.NewFieldSpec(apikeyusage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(apikeyusage.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(apikeyusage.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(apikeyusage.FieldStatusCode, field.TypeInt, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.IP(); ok {
		_spec.SetField(apikeyusage.FieldIP, field.TypeString, value)
		_node.IP = value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(apikeyusage.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(apikeyusage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.APIKeyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   apikeyusage.APIKeyTable,
			Columns: []string{apikeyusage.APIKeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.APIKeyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApiKeyUsageCreateBulk is the builder for creating many ApiKeyUsage entities in bulk.
type ApiKeyUsageCreateBulk struct {
	config
	err      error
	builders []*ApiKeyUsageCreate
}

// Save creates the ApiKeyUsage entities in the database.
func (_c *ApiKeyUsageCreateBulk) Save(ctx context.Context) ([]*ApiKeyUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApiKeyUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApiKeyUsageMutation)
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
func (_c *ApiKeyUsageCreateBulk) SaveX(ctx context.Context) []*ApiKeyUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiKeyUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiKeyUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
