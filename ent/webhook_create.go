// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/ent/webhook"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
)

// WebhookCreate is the builder for creating a Webhook entity.
type WebhookCreate struct {
	config
	mutation *WebhookMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *WebhookCreate) SetOwnerID(v string) *WebhookCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *WebhookCreate) SetURL(v string) *WebhookCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetSubscribedEvents sets the "subscribed_events" field.
func (_c *WebhookCreate) SetSubscribedEvents(v []string) *WebhookCreate {
	_c.mutation.SetSubscribedEvents(v)
	return _c
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (_c *WebhookCreate) SetSecretEncrypted(v string) *WebhookCreate {
	_c.mutation.SetSecretEncrypted(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *WebhookCreate) SetActive(v bool) *WebhookCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *WebhookCreate) SetNillableActive(v *bool) *WebhookCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetDisabledReason sets the "disabled_reason" field.
func (_c *WebhookCreate) SetDisabledReason(v string) *WebhookCreate {
	_c.mutation.SetDisabledReason(v)
	return _c
}

// SetNillableDisabledReason sets the "disabled_reason" field if the given value is not nil.
func (_c *WebhookCreate) SetNillableDisabledReason(v *string) *WebhookCreate {
	if v != nil {
		_c.SetDisabledReason(*v)
	}
	return _c
}

// SetDisabledAt sets the "disabled_at" field.
func (_c *WebhookCreate) SetDisabledAt(v time.Time) *WebhookCreate {
	_c.mutation.SetDisabledAt(v)
	return _c
}

// SetNillableDisabledAt sets the "disabled_at" field if the given value is not nil.
func (_c *WebhookCreate) SetNillableDisabledAt(v *time.Time) *WebhookCreate {
	if v != nil {
		_c.SetDisabledAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookCreate) SetCreatedAt(v time.Time) *WebhookCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookCreate) SetNillableCreatedAt(v *time.Time) *WebhookCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WebhookCreate) SetUpdatedAt(v time.Time) *WebhookCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WebhookCreate) SetNillableUpdatedAt(v *time.Time) *WebhookCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookCreate) SetID(v string) *WebhookCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *WebhookCreate) SetOwner(v *User) *WebhookCreate {
	return _c.SetOwnerID(v.ID)
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_c *WebhookCreate) AddDeliveryIDs(ids ...string) *WebhookCreate {
	_c.mutation.AddDeliveryIDs(ids...)
	return _c
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_c *WebhookCreate) AddDeliveries(v ...*WebhookDelivery) *WebhookCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeliveryIDs(ids...)
}

// Mutation returns the WebhookMutation object of the builder.
func (_c *WebhookCreate) Mutation() *WebhookMutation {
	return _c.mutation
}

// Save creates the Webhook in the database.
func (_c *WebhookCreate) Save(ctx context.Context) (*Webhook, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookCreate) SaveX(ctx context.Context) *Webhook {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := webhook.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhook.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := webhook.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Webhook.owner_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Webhook.url"`)}
	}
	if _, ok := _c.mutation.SubscribedEvents(); !ok {
		return &ValidationError{Name: "subscribed_events", err: errors.New(`ent: missing required field "Webhook.subscribed_events"`)}
	}
	if _, ok := _c.mutation.SecretEncrypted(); !ok {
		return &ValidationError{Name: "secret_encrypted", err: errors.New(`ent: missing required field "Webhook.secret_encrypted"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Webhook.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Webhook.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Webhook.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Webhook.owner"`)}
	}
	return nil
}

func (_c *WebhookCreate) sqlSave(ctx context.Context) (*Webhook, error) {
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
			return nil, fmt.Errorf("unexpected Webhook.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookCreate) createSpec() (*Webhook, *sqlgraph.CreateSpec) {
	var (
		_node = &Webhook{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhook.Table, sqlgraph.NewFieldSpec(webhook.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(webhook.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.SubscribedEvents(); ok {
		_spec.SetField(webhook.FieldSubscribedEvents, field.TypeJSON, value)
		_node.SubscribedEvents = value
	}
	if value, ok := _c.mutation.SecretEncrypted(); ok {
		_spec.SetField(webhook.FieldSecretEncrypted, field.TypeString, value)
		_node.SecretEncrypted = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(webhook.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.DisabledReason(); ok {
		_spec.SetField(webhook.FieldDisabledReason, field.TypeString, value)
		_node.DisabledReason = &value
	}
	if value, ok := _c.mutation.DisabledAt(); ok {
		_spec.SetField(webhook.FieldDisabledAt, field.TypeTime, value)
		_node.DisabledAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhook.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(webhook.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   webhook.OwnerTable,
			Columns: []string{webhook.OwnerColumn},
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
	if nodes := _c.mutation.DeliveriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WebhookCreateBulk is the builder for creating many Webhook entities in bulk.
type WebhookCreateBulk struct {
	config
	err      error
	builders []*WebhookCreate
}

// Save creates the Webhook entities in the database.
func (_c *WebhookCreateBulk) Save(ctx context.Context) ([]*Webhook, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Webhook, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookMutation)
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
func (_c *WebhookCreateBulk) SaveX(ctx context.Context) []*Webhook {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
