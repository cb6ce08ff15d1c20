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
	"github.com/agent-orchestra/orchestra/ent/predicate"
	"github.com/agent-orchestra/orchestra/ent/webhook"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
)

// WebhookUpdate is the builder for updating Webhook entities.
type WebhookUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookMutation
}

// Where appends a list predicates to the WebhookUpdate builder.
func (_u *WebhookUpdate) Where(ps ...predicate.Webhook) *WebhookUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookUpdate) SetURL(v string) *WebhookUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookUpdate) SetNillableURL(v *string) *WebhookUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSubscribedEvents sets the "subscribed_events" field.
func (_u *WebhookUpdate) SetSubscribedEvents(v []string) *WebhookUpdate {
	_u.mutation.SetSubscribedEvents(v)
	return _u
}

// AppendSubscribedEvents appends value to the "subscribed_events" field.
func (_u *WebhookUpdate) AppendSubscribedEvents(v []string) *WebhookUpdate {
	_u.mutation.AppendSubscribedEvents(v)
	return _u
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (_u *WebhookUpdate) SetSecretEncrypted(v string) *WebhookUpdate {
	_u.mutation.SetSecretEncrypted(v)
	return _u
}

// SetNillableSecretEncrypted sets the "secret_encrypted" field if the given value is not nil.
func (_u *WebhookUpdate) SetNillableSecretEncrypted(v *string) *WebhookUpdate {
	if v != nil {
		_u.SetSecretEncrypted(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *WebhookUpdate) SetActive(v bool) *WebhookUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WebhookUpdate) SetNillableActive(v *bool) *WebhookUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetDisabledReason sets the "disabled_reason" field.
func (_u *WebhookUpdate) SetDisabledReason(v string) *WebhookUpdate {
	_u.mutation.SetDisabledReason(v)
	return _u
}

// SetNillableDisabledReason sets the "disabled_reason" field if the given value is not nil.
func (_u *WebhookUpdate) SetNillableDisabledReason(v *string) *WebhookUpdate {
	if v != nil {
		_u.SetDisabledReason(*v)
	}
	return _u
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (_u *WebhookUpdate) ClearDisabledReason() *WebhookUpdate {
	_u.mutation.ClearDisabledReason()
	return _u
}

// SetDisabledAt sets the "disabled_at" field.
func (_u *WebhookUpdate) SetDisabledAt(v time.Time) *WebhookUpdate {
	_u.mutation.SetDisabledAt(v)
	return _u
}

// SetNillableDisabledAt sets the "disabled_at" field if the given value is not nil.
func (_u *WebhookUpdate) SetNillableDisabledAt(v *time.Time) *WebhookUpdate {
	if v != nil {
		_u.SetDisabledAt(*v)
	}
	return _u
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (_u *WebhookUpdate) ClearDisabledAt() *WebhookUpdate {
	_u.mutation.ClearDisabledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookUpdate) SetUpdatedAt(v time.Time) *WebhookUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_u *WebhookUpdate) AddDeliveryIDs(ids ...string) *WebhookUpdate {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookUpdate) AddDeliveries(v ...*WebhookDelivery) *WebhookUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// Mutation returns the WebhookMutation object of the builder.
func (_u *WebhookUpdate) Mutation() *WebhookMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookUpdate) ClearDeliveries() *WebhookUpdate {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to WebhookDelivery entities by IDs.
func (_u *WebhookUpdate) RemoveDeliveryIDs(ids ...string) *WebhookUpdate {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to WebhookDelivery entities.
func (_u *WebhookUpdate) RemoveDeliveries(v ...*WebhookDelivery) *WebhookUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhook.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookUpdate) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Webhook.owner"`)
	}
	return nil
}

func (_u *WebhookUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhook.Table, webhook.Columns, sqlgraph.NewFieldSpec(webhook.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhook.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubscribedEvents(); ok {
		_spec.SetField(webhook.FieldSubscribedEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubscribedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhook.FieldSubscribedEvents, value)
		})
	}
	if value, ok := _u.mutation.SecretEncrypted(); ok {
		_spec.SetField(webhook.FieldSecretEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(webhook.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisabledReason(); ok {
		_spec.SetField(webhook.FieldDisabledReason, field.TypeString, value)
	}
	if _u.mutation.DisabledReasonCleared() {
		_spec.ClearField(webhook.FieldDisabledReason, field.TypeString)
	}
	if value, ok := _u.mutation.DisabledAt(); ok {
		_spec.SetField(webhook.FieldDisabledAt, field.TypeTime, value)
	}
	if _u.mutation.DisabledAtCleared() {
		_spec.ClearField(webhook.FieldDisabledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhook.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhook.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookUpdateOne is the builder for updating a single Webhook entity.
type WebhookUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookMutation
}

// SetURL sets the "url" field.
func (_u *WebhookUpdateOne) SetURL(v string) *WebhookUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookUpdateOne) SetNillableURL(v *string) *WebhookUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSubscribedEvents sets the "subscribed_events" field.
func (_u *WebhookUpdateOne) SetSubscribedEvents(v []string) *WebhookUpdateOne {
	_u.mutation.SetSubscribedEvents(v)
	return _u
}

// AppendSubscribedEvents appends value to the "subscribed_events" field.
func (_u *WebhookUpdateOne) AppendSubscribedEvents(v []string) *WebhookUpdateOne {
	_u.mutation.AppendSubscribedEvents(v)
	return _u
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (_u *WebhookUpdateOne) SetSecretEncrypted(v string) *WebhookUpdateOne {
	_u.mutation.SetSecretEncrypted(v)
	return _u
}

// SetNillableSecretEncrypted sets the "secret_encrypted" field if the given value is not nil.
func (_u *WebhookUpdateOne) SetNillableSecretEncrypted(v *string) *WebhookUpdateOne {
	if v != nil {
		_u.SetSecretEncrypted(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *WebhookUpdateOne) SetActive(v bool) *WebhookUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WebhookUpdateOne) SetNillableActive(v *bool) *WebhookUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetDisabledReason sets the "disabled_reason" field.
func (_u *WebhookUpdateOne) SetDisabledReason(v string) *WebhookUpdateOne {
	_u.mutation.SetDisabledReason(v)
	return _u
}

// SetNillableDisabledReason sets the "disabled_reason" field if the given value is not nil.
func (_u *WebhookUpdateOne) SetNillableDisabledReason(v *string) *WebhookUpdateOne {
	if v != nil {
		_u.SetDisabledReason(*v)
	}
	return _u
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (_u *WebhookUpdateOne) ClearDisabledReason() *WebhookUpdateOne {
	_u.mutation.ClearDisabledReason()
	return _u
}

// SetDisabledAt sets the "disabled_at" field.
func (_u *WebhookUpdateOne) SetDisabledAt(v time.Time) *WebhookUpdateOne {
	_u.mutation.SetDisabledAt(v)
	return _u
}

// SetNillableDisabledAt sets the "disabled_at" field if the given value is not nil.
func (_u *WebhookUpdateOne) SetNillableDisabledAt(v *time.Time) *WebhookUpdateOne {
	if v != nil {
		_u.SetDisabledAt(*v)
	}
	return _u
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (_u *WebhookUpdateOne) ClearDisabledAt() *WebhookUpdateOne {
	_u.mutation.ClearDisabledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookUpdateOne) SetUpdatedAt(v time.Time) *WebhookUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_u *WebhookUpdateOne) AddDeliveryIDs(ids ...string) *WebhookUpdateOne {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookUpdateOne) AddDeliveries(v ...*WebhookDelivery) *WebhookUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// Mutation returns the WebhookMutation object of the builder.
func (_u *WebhookUpdateOne) Mutation() *WebhookMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookUpdateOne) ClearDeliveries() *WebhookUpdateOne {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to WebhookDelivery entities by IDs.
func (_u *WebhookUpdateOne) RemoveDeliveryIDs(ids ...string) *WebhookUpdateOne {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to WebhookDelivery entities.
func (_u *WebhookUpdateOne) RemoveDeliveries(v ...*WebhookDelivery) *WebhookUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// Where appends a list predicates to the WebhookUpdate builder.
func (_u *WebhookUpdateOne) Where(ps ...predicate.Webhook) *WebhookUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookUpdateOne) Select(field string, fields ...string) *WebhookUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Webhook entity.
func (_u *WebhookUpdateOne) Save(ctx context.Context) (*Webhook, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookUpdateOne) SaveX(ctx context.Context) *Webhook {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhook.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookUpdateOne) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Webhook.owner"`)
	}
	return nil
}

func (_u *WebhookUpdateOne) sqlSave(ctx context.Context) (_node *Webhook, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhook.Table, webhook.Columns, sqlgraph.NewFieldSpec(webhook.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Webhook.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhook.FieldID)
		for _, f := range fields {
			if !webhook.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhook.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhook.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubscribedEvents(); ok {
		_spec.SetField(webhook.FieldSubscribedEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubscribedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhook.FieldSubscribedEvents, value)
		})
	}
	if value, ok := _u.mutation.SecretEncrypted(); ok {
		_spec.SetField(webhook.FieldSecretEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(webhook.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisabledReason(); ok {
		_spec.SetField(webhook.FieldDisabledReason, field.TypeString, value)
	}
	if _u.mutation.DisabledReasonCleared() {
		_spec.ClearField(webhook.FieldDisabledReason, field.TypeString)
	}
	if value, ok := _u.mutation.DisabledAt(); ok {
		_spec.SetField(webhook.FieldDisabledAt, field.TypeTime, value)
	}
	if _u.mutation.DisabledAtCleared() {
		_spec.ClearField(webhook.FieldDisabledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhook.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Webhook{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhook.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
