// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cogniquest/cogniquest/ent/historyitem"
	"github.com/cogniquest/cogniquest/ent/predicate"
)

// HistoryItemDelete is the builder for deleting a HistoryItem entity.
type HistoryItemDelete struct {
	config
	hooks    []Hook
	mutation *HistoryItemMutation
}

// Where appends a list predicates to the HistoryItemDelete builder.
func (_d *HistoryItemDelete) Where(ps ...predicate.HistoryItem) *HistoryItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HistoryItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HistoryItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HistoryItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(historyitem.Table, sqlgraph.NewFieldSpec(historyitem.FieldID, field.TypeInt))
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

// HistoryItemDeleteOne is the builder for deleting a single HistoryItem entity.
type HistoryItemDeleteOne struct {
	_d *HistoryItemDelete
}

// Where appends a list predicates to the HistoryItemDelete builder.
func (_d *HistoryItemDeleteOne) Where(ps ...predicate.HistoryItem) *HistoryItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HistoryItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{historyitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HistoryItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
