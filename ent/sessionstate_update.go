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
	"github.com/cogniquest/cogniquest/ent/predicate"
	"github.com/cogniquest/cogniquest/ent/sessionstate"
)

// SessionStateUpdate is the builder for updating SessionState entities.
type SessionStateUpdate struct {
	config
	hooks    []Hook
	mutation *SessionStateMutation
}

// Where appends a list predicates to the SessionStateUpdate builder.
func (_u *SessionStateUpdate) Where(ps ...predicate.SessionState) *SessionStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlot sets the "slot" field.
func (_u *SessionStateUpdate) SetSlot(v string) *SessionStateUpdate {
	_u.mutation.SetSlot(v)
	return _u
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_u *SessionStateUpdate) SetNillableSlot(v *string) *SessionStateUpdate {
	if v != nil {
		_u.SetSlot(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionStateUpdate) SetUpdatedAt(v time.Time) *SessionStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetData sets the "data" field.
func (_u *SessionStateUpdate) SetData(v map[string]interface{}) *SessionStateUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the SessionStateMutation object of the builder.
func (_u *SessionStateUpdate) Mutation() *SessionStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionstate.Table, sessionstate.Columns, sqlgraph.NewFieldSpec(sessionstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slot(); ok {
		_spec.SetField(sessionstate.FieldSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(sessionstate.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionStateUpdateOne is the builder for updating a single SessionState entity.
type SessionStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionStateMutation
}

// SetSlot sets the "slot" field.
func (_u *SessionStateUpdateOne) SetSlot(v string) *SessionStateUpdateOne {
	_u.mutation.SetSlot(v)
	return _u
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_u *SessionStateUpdateOne) SetNillableSlot(v *string) *SessionStateUpdateOne {
	if v != nil {
		_u.SetSlot(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionStateUpdateOne) SetUpdatedAt(v time.Time) *SessionStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetData sets the "data" field.
func (_u *SessionStateUpdateOne) SetData(v map[string]interface{}) *SessionStateUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the SessionStateMutation object of the builder.
func (_u *SessionStateUpdateOne) Mutation() *SessionStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionStateUpdate builder.
func (_u *SessionStateUpdateOne) Where(ps ...predicate.SessionState) *SessionStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionStateUpdateOne) Select(field string, fields ...string) *SessionStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionState entity.
func (_u *SessionStateUpdateOne) Save(ctx context.Context) (*SessionState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionStateUpdateOne) SaveX(ctx context.Context) *SessionState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionStateUpdateOne) sqlSave(ctx context.Context) (_node *SessionState, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionstate.Table, sessionstate.Columns, sqlgraph.NewFieldSpec(sessionstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionstate.FieldID)
		for _, f := range fields {
			if !sessionstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionstate.FieldID {
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
	if value, ok := _u.mutation.Slot(); ok {
		_spec.SetField(sessionstate.FieldSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(sessionstate.FieldData, field.TypeJSON, value)
	}
	_node = &SessionState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
