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
	"github.com/cogniquest/cogniquest/ent/sessionstate"
)

// SessionStateCreate is the builder for creating a SessionState entity.
type SessionStateCreate struct {
	config
	mutation *SessionStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSlot sets the "slot" field.
func (_c *SessionStateCreate) SetSlot(v string) *SessionStateCreate {
	_c.mutation.SetSlot(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionStateCreate) SetUpdatedAt(v time.Time) *SessionStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionStateCreate) SetNillableUpdatedAt(v *time.Time) *SessionStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *SessionStateCreate) SetData(v map[string]interface{}) *SessionStateCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the SessionStateMutation object of the builder.
func (_c *SessionStateCreate) Mutation() *SessionStateMutation {
	return _c.mutation
}

// Save creates the SessionState in the database.
func (_c *SessionStateCreate) Save(ctx context.Context) (*SessionState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionStateCreate) SaveX(ctx context.Context) *SessionState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionStateCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionStateCreate) check() error {
	if _, ok := _c.mutation.Slot(); !ok {
		return &ValidationError{Name: "slot", err: errors.New(`ent: missing required field "SessionState.slot"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionState.updated_at"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "SessionState.data"`)}
	}
	return nil
}

func (_c *SessionStateCreate) sqlSave(ctx context.Context) (*SessionState, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionStateCreate) createSpec() (*SessionState, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionstate.Table, sqlgraph.NewFieldSpec(sessionstate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Slot(); ok {
		_spec.SetField(sessionstate.FieldSlot, field.TypeString, value)
		_node.Slot = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(sessionstate.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionState.Create().
//		SetSlot(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionStateUpsert) {
//			SetSlot(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionStateCreate) OnConflict(opts ...sql.ConflictOption) *SessionStateUpsertOne {
	_c.conflict = opts
	return &SessionStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionStateCreate) OnConflictColumns(columns ...string) *SessionStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionStateUpsertOne{
		create: _c,
	}
}

type (
	// SessionStateUpsertOne is the builder for "upsert"-ing
	//  one SessionState node.
	SessionStateUpsertOne struct {
		create *SessionStateCreate
	}

	// SessionStateUpsert is the "OnConflict" setter.
	SessionStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetSlot sets the "slot" field.
func (u *SessionStateUpsert) SetSlot(v string) *SessionStateUpsert {
	u.Set(sessionstate.FieldSlot, v)
	return u
}

// UpdateSlot sets the "slot" field to the value that was provided on create.
func (u *SessionStateUpsert) UpdateSlot() *SessionStateUpsert {
	u.SetExcluded(sessionstate.FieldSlot)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionStateUpsert) SetUpdatedAt(v time.Time) *SessionStateUpsert {
	u.Set(sessionstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionStateUpsert) UpdateUpdatedAt() *SessionStateUpsert {
	u.SetExcluded(sessionstate.FieldUpdatedAt)
	return u
}

// SetData sets the "data" field.
func (u *SessionStateUpsert) SetData(v map[string]interface{}) *SessionStateUpsert {
	u.Set(sessionstate.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *SessionStateUpsert) UpdateData() *SessionStateUpsert {
	u.SetExcluded(sessionstate.FieldData)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SessionState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionStateUpsertOne) UpdateNewValues() *SessionStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionStateUpsertOne) Ignore() *SessionStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionStateUpsertOne) DoNothing() *SessionStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionStateCreate.OnConflict
// documentation for more info.
func (u *SessionStateUpsertOne) Update(set func(*SessionStateUpsert)) *SessionStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlot sets the "slot" field.
func (u *SessionStateUpsertOne) SetSlot(v string) *SessionStateUpsertOne {
	return u.Update(func(s *SessionStateUpsert) {
		s.SetSlot(v)
	})
}

// UpdateSlot sets the "slot" field to the value that was provided on create.
func (u *SessionStateUpsertOne) UpdateSlot() *SessionStateUpsertOne {
	return u.Update(func(s *SessionStateUpsert) {
		s.UpdateSlot()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionStateUpsertOne) SetUpdatedAt(v time.Time) *SessionStateUpsertOne {
	return u.Update(func(s *SessionStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionStateUpsertOne) UpdateUpdatedAt() *SessionStateUpsertOne {
	return u.Update(func(s *SessionStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetData sets the "data" field.
func (u *SessionStateUpsertOne) SetData(v map[string]interface{}) *SessionStateUpsertOne {
	return u.Update(func(s *SessionStateUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *SessionStateUpsertOne) UpdateData() *SessionStateUpsertOne {
	return u.Update(func(s *SessionStateUpsert) {
		s.UpdateData()
	})
}

// Exec executes the query.
func (u *SessionStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionStateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionStateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionStateCreateBulk is the builder for creating many SessionState entities in bulk.
type SessionStateCreateBulk struct {
	config
	err      error
	builders []*SessionStateCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionState entities in the database.
func (_c *SessionStateCreateBulk) Save(ctx context.Context) ([]*SessionState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionStateMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *SessionStateCreateBulk) SaveX(ctx context.Context) []*SessionState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionStateUpsert) {
//			SetSlot(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionStateUpsertBulk {
	_c.conflict = opts
	return &SessionStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionStateCreateBulk) OnConflictColumns(columns ...string) *SessionStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionStateUpsertBulk{
		create: _c,
	}
}

// SessionStateUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionState nodes.
type SessionStateUpsertBulk struct {
	create *SessionStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionStateUpsertBulk) UpdateNewValues() *SessionStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionStateUpsertBulk) Ignore() *SessionStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionStateUpsertBulk) DoNothing() *SessionStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionStateCreateBulk.OnConflict
// documentation for more info.
func (u *SessionStateUpsertBulk) Update(set func(*SessionStateUpsert)) *SessionStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlot sets the "slot" field.
func (u *SessionStateUpsertBulk) SetSlot(v string) *SessionStateUpsertBulk {
	return u.Update(func(s *SessionStateUpsert) {
		s.SetSlot(v)
	})
}

// UpdateSlot sets the "slot" field to the value that was provided on create.
func (u *SessionStateUpsertBulk) UpdateSlot() *SessionStateUpsertBulk {
	return u.Update(func(s *SessionStateUpsert) {
		s.UpdateSlot()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionStateUpsertBulk) SetUpdatedAt(v time.Time) *SessionStateUpsertBulk {
	return u.Update(func(s *SessionStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionStateUpsertBulk) UpdateUpdatedAt() *SessionStateUpsertBulk {
	return u.Update(func(s *SessionStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetData sets the "data" field.
func (u *SessionStateUpsertBulk) SetData(v map[string]interface{}) *SessionStateUpsertBulk {
	return u.Update(func(s *SessionStateUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *SessionStateUpsertBulk) UpdateData() *SessionStateUpsertBulk {
	return u.Update(func(s *SessionStateUpsert) {
		s.UpdateData()
	})
}

// Exec executes the query.
func (u *SessionStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
