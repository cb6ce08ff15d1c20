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
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
)

// WebhookDeliveryUpdate is the builder for updating WebhookDelivery entities.
type WebhookDeliveryUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdate) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookDeliveryUpdate) SetPayload(v map[string]interface{}) *WebhookDeliveryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetState sets the "state" field.
func (_u *WebhookDeliveryUpdate) SetState(v webhookdelivery.State) *WebhookDeliveryUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableState(v *webhookdelivery.State) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *WebhookDeliveryUpdate) SetAttemptCount(v int) *WebhookDeliveryUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableAttemptCount(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *WebhookDeliveryUpdate) AddAttemptCount(v int) *WebhookDeliveryUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *WebhookDeliveryUpdate) SetScheduledAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableScheduledAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *WebhookDeliveryUpdate) SetDeliveredAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableDeliveredAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *WebhookDeliveryUpdate) ClearDeliveredAt() *WebhookDeliveryUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *WebhookDeliveryUpdate) SetFailedAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableFailedAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *WebhookDeliveryUpdate) ClearFailedAt() *WebhookDeliveryUpdate {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetLastStatusCode sets the "last_status_code" field.
func (_u *WebhookDeliveryUpdate) SetLastStatusCode(v int) *WebhookDeliveryUpdate {
	_u.mutation.ResetLastStatusCode()
	_u.mutation.SetLastStatusCode(v)
	return _u
}

// SetNillableLastStatusCode sets the "last_status_code" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableLastStatusCode(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetLastStatusCode(*v)
	}
	return _u
}

// AddLastStatusCode adds value to the "last_status_code" field.
func (_u *WebhookDeliveryUpdate) AddLastStatusCode(v int) *WebhookDeliveryUpdate {
	_u.mutation.AddLastStatusCode(v)
	return _u
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (_u *WebhookDeliveryUpdate) ClearLastStatusCode() *WebhookDeliveryUpdate {
	_u.mutation.ClearLastStatusCode()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *WebhookDeliveryUpdate) SetLastError(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableLastError(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *WebhookDeliveryUpdate) ClearLastError() *WebhookDeliveryUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdate) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookDeliveryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookDeliveryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := webhookdelivery.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.state": %w`, err)}
		}
	}
	if _u.mutation.WebhookCleared() && len(_u.mutation.WebhookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookDelivery.webhook"`)
	}
	return nil
}

func (_u *WebhookDeliveryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookdelivery.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(webhookdelivery.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(webhookdelivery.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(webhookdelivery.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(webhookdelivery.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(webhookdelivery.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(webhookdelivery.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(webhookdelivery.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(webhookdelivery.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastStatusCode(); ok {
		_spec.SetField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStatusCode(); ok {
		_spec.AddField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if _u.mutation.LastStatusCodeCleared() {
		_spec.ClearField(webhookdelivery.FieldLastStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(webhookdelivery.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(webhookdelivery.FieldLastError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookDeliveryUpdateOne is the builder for updating a single WebhookDelivery entity.
type WebhookDeliveryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// SetPayload sets the "payload" field.
func (_u *WebhookDeliveryUpdateOne) SetPayload(v map[string]interface{}) *WebhookDeliveryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetState sets the "state" field.
func (_u *WebhookDeliveryUpdateOne) SetState(v webhookdelivery.State) *WebhookDeliveryUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableState(v *webhookdelivery.State) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *WebhookDeliveryUpdateOne) SetAttemptCount(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableAttemptCount(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *WebhookDeliveryUpdateOne) AddAttemptCount(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *WebhookDeliveryUpdateOne) SetScheduledAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableScheduledAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *WebhookDeliveryUpdateOne) SetDeliveredAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableDeliveredAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *WebhookDeliveryUpdateOne) ClearDeliveredAt() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *WebhookDeliveryUpdateOne) SetFailedAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableFailedAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *WebhookDeliveryUpdateOne) ClearFailedAt() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetLastStatusCode sets the "last_status_code" field.
func (_u *WebhookDeliveryUpdateOne) SetLastStatusCode(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.ResetLastStatusCode()
	_u.mutation.SetLastStatusCode(v)
	return _u
}

// SetNillableLastStatusCode sets the "last_status_code" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableLastStatusCode(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetLastStatusCode(*v)
	}
	return _u
}

// AddLastStatusCode adds value to the "last_status_code" field.
func (_u *WebhookDeliveryUpdateOne) AddLastStatusCode(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.AddLastStatusCode(v)
	return _u
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (_u *WebhookDeliveryUpdateOne) ClearLastStatusCode() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearLastStatusCode()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *WebhookDeliveryUpdateOne) SetLastError(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableLastError(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *WebhookDeliveryUpdateOne) ClearLastError() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdateOne) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdateOne) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookDeliveryUpdateOne) Select(field string, fields ...string) *WebhookDeliveryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookDelivery entity.
func (_u *WebhookDeliveryUpdateOne) Save(ctx context.Context) (*WebhookDelivery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) SaveX(ctx context.Context) *WebhookDelivery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookDeliveryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := webhookdelivery.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.state": %w`, err)}
		}
	}
	if _u.mutation.WebhookCleared() && len(_u.mutation.WebhookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookDelivery.webhook"`)
	}
	return nil
}

func (_u *WebhookDeliveryUpdateOne) sqlSave(ctx context.Context) (_node *WebhookDelivery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookDelivery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookdelivery.FieldID)
		for _, f := range fields {
			if !webhookdelivery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookdelivery.FieldID {
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
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookdelivery.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(webhookdelivery.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(webhookdelivery.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(webhookdelivery.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(webhookdelivery.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(webhookdelivery.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(webhookdelivery.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(webhookdelivery.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(webhookdelivery.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastStatusCode(); ok {
		_spec.SetField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStatusCode(); ok {
		_spec.AddField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if _u.mutation.LastStatusCodeCleared() {
		_spec.ClearField(webhookdelivery.FieldLastStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(webhookdelivery.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(webhookdelivery.FieldLastError, field.TypeString)
	}
	_node = &WebhookDelivery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
