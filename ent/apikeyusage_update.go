// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agent-orchestra/orchestra/ent/apikeyusage"
	"github.com/agent-orchestra/orchestra/ent/predicate"
)

// ApiKeyUsageUpdate is the builder for updating ApiKeyUsage entities.
type ApiKeyUsageUpdate struct {
	config
	hooks    []Hook
	mutation *ApiKeyUsageMutation
}

// Where appends a list predicates to the ApiKeyUsageUpdate builder.
func (_u *ApiKeyUsageUpdate) Where(ps ...predicate.ApiKeyUsage) *ApiKeyUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *ApiKeyUsageUpdate) SetEndpoint(v string) *ApiKeyUsageUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *ApiKeyUsageUpdate) SetNillableEndpoint(v *string) *ApiKeyUsageUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *ApiKeyUsageUpdate) SetMethod(v string) *ApiKeyUsageUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ApiKeyUsageUpdate) SetNillableMethod(v *string) *ApiKeyUsageUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *ApiKeyUsageUpdate) SetStatusCode(v int) *ApiKeyUsageUpdate {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *ApiKeyUsageUpdate) SetNillableStatusCode(v *int) *ApiKeyUsageUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *ApiKeyUsageUpdate) AddStatusCode(v int) *ApiKeyUsageUpdate {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetIP sets the "ip" field.
func (_u *ApiKeyUsageUpdate) SetIP(v string) *ApiKeyUsageUpdate {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *ApiKeyUsageUpdate) SetNillableIP(v *string) *ApiKeyUsageUpdate {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *ApiKeyUsageUpdate) ClearIP() *ApiKeyUsageUpdate {
	_u.mutation.ClearIP()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *ApiKeyUsageUpdate) SetUserAgent(v string) *ApiKeyUsageUpdate {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *ApiKeyUsageUpdate) SetNillableUserAgent(v *string) *ApiKeyUsageUpdate {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *ApiKeyUsageUpdate) ClearUserAgent() *ApiKeyUsageUpdate {
	_u.mutation.ClearUserAgent()
	return _u
}

// Mutation returns the ApiKeyUsageMutation object of the builder.
func (_u *ApiKeyUsageUpdate) Mutation() *ApiKeyUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApiKeyUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiKeyUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApiKeyUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiKeyUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApiKeyUsageUpdate) check() error {
	if _u.mutation.APIKeyCleared() && len(_u.mutation.APIKeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApiKeyUsage.api_key"`)
	}
	return nil
}

func (_u *ApiKeyUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apikeyusage.Table, apikeyusage.Columns, sqlgraph.NewFieldSpec(apikeyusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(apikeyusage.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(apikeyusage.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(apikeyusage.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(apikeyusage.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(apikeyusage.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(apikeyusage.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(apikeyusage.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(apikeyusage.FieldUserAgent, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apikeyusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApiKeyUsageUpdateOne is the builder for updating a single ApiKeyUsage entity.
type ApiKeyUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApiKeyUsageMutation
}

// SetEndpoint sets the "endpoint" field.
func (_u *ApiKeyUsageUpdateOne) SetEndpoint(v string) *ApiKeyUsageUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *ApiKeyUsageUpdateOne) SetNillableEndpoint(v *string) *ApiKeyUsageUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *ApiKeyUsageUpdateOne) SetMethod(v string) *ApiKeyUsageUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ApiKeyUsageUpdateOne) SetNillableMethod(v *string) *ApiKeyUsageUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *ApiKeyUsageUpdateOne) SetStatusCode(v int) *ApiKeyUsageUpdateOne {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *ApiKeyUsageUpdateOne) SetNillableStatusCode(v *int) *ApiKeyUsageUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *ApiKeyUsageUpdateOne) AddStatusCode(v int) *ApiKeyUsageUpdateOne {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetIP sets the "ip" field.
func (_u *ApiKeyUsageUpdateOne) SetIP(v string) *ApiKeyUsageUpdateOne {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *ApiKeyUsageUpdateOne) SetNillableIP(v *string) *ApiKeyUsageUpdateOne {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *ApiKeyUsageUpdateOne) ClearIP() *ApiKeyUsageUpdateOne {
	_u.mutation.ClearIP()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *ApiKeyUsageUpdateOne) SetUserAgent(v string) *ApiKeyUsageUpdateOne {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *ApiKeyUsageUpdateOne) SetNillableUserAgent(v *string) *ApiKeyUsageUpdateOne {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *ApiKeyUsageUpdateOne) ClearUserAgent() *ApiKeyUsageUpdateOne {
	_u.mutation.ClearUserAgent()
	return _u
}

// Mutation returns the ApiKeyUsageMutation object of the builder.
func (_u *ApiKeyUsageUpdateOne) Mutation() *ApiKeyUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApiKeyUsageUpdate builder.
func (_u *ApiKeyUsageUpdateOne) Where(ps ...predicate.ApiKeyUsage) *ApiKeyUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApiKeyUsageUpdateOne) Select(field string, fields ...string) *ApiKeyUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApiKeyUsage entity.
func (_u *ApiKeyUsageUpdateOne) Save(ctx context.Context) (*ApiKeyUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiKeyUsageUpdateOne) SaveX(ctx context.Context) *ApiKeyUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApiKeyUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiKeyUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApiKeyUsageUpdateOne) check() error {
	if _u.mutation.APIKeyCleared() && len(_u.mutation.APIKeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApiKeyUsage.api_key"`)
	}
	return nil
}

func (_u *ApiKeyUsageUpdateOne) sqlSave(ctx context.Context) (_node *ApiKeyUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apikeyusage.Table, apikeyusage.Columns, sqlgraph.NewFieldSpec(apikeyusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApiKeyUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apikeyusage.FieldID)
		for _, f := range fields {
			if !apikeyusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apikeyusage.FieldID {
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
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(apikeyusage.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(apikeyusage.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(apikeyusage.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(apikeyusage.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(apikeyusage.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(apikeyusage.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(apikeyusage.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(apikeyusage.FieldUserAgent, field.TypeString)
	}
	_node = &ApiKeyUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apikeyusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
