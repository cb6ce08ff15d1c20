// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agent-orchestra/orchestra/ent/apikeyusage"
	"github.com/agent-orchestra/orchestra/ent/predicate"
)

// ApiKeyUsageDelete is the builder for deleting a ApiKeyUsage entity.
type ApiKeyUsageDelete struct {
	config
	hooks    []Hook
	mutation *ApiKeyUsageMutation
}

// Where appends a list predicates to the ApiKeyUsageDelete builder.
func (_d *ApiKeyUsageDelete) Where(ps ...predicate.ApiKeyUsage) *ApiKeyUsageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ApiKeyUsageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApiKeyUsageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ApiKeyUsageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(apikeyusage.Table, sqlgraph.NewFieldSpec(apikeyusage.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ApiKeyUsageDeleteOne is the builder for deleting a single ApiKeyUsage entity.
type ApiKeyUsageDeleteOne struct {
	_d *ApiKeyUsageDelete
}

// Where appends a list predicates to the ApiKeyUsageDelete builder.
func (_d *ApiKeyUsageDeleteOne) Where(ps ...predicate.ApiKeyUsage) *ApiKeyUsageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ApiKeyUsageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{apikeyusage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApiKeyUsageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
