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
	"github.com/cogniquest/cogniquest/ent/historyitem"
)

// HistoryItemCreate is the builder for creating a HistoryItem entity.
type HistoryItemCreate struct {
	config
	mutation *HistoryItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTimestamp sets the "timestamp" field.
func (_c *HistoryItemCreate) SetTimestamp(v time.Time) *HistoryItemCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *HistoryItemCreate) SetNillableTimestamp(v *time.Time) *HistoryItemCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *HistoryItemCreate) SetTopic(v string) *HistoryItemCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *HistoryItemCreate) SetScore(v float64) *HistoryItemCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *HistoryItemCreate) SetTotalQuestions(v int) *HistoryItemCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *HistoryItemCreate) SetPayload(v map[string]interface{}) *HistoryItemCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// Mutation returns the HistoryItemMutation object of the builder.
func (_c *HistoryItemCreate) Mutation() *HistoryItemMutation {
	return _c.mutation
}

// Save creates the HistoryItem in the database.
func (_c *HistoryItemCreate) Save(ctx context.Context) (*HistoryItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HistoryItemCreate) SaveX(ctx context.Context) *HistoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HistoryItemCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := historyitem.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HistoryItemCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "HistoryItem.timestamp"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "HistoryItem.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := historyitem.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "HistoryItem.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "HistoryItem.score"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "HistoryItem.total_questions"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "HistoryItem.payload"`)}
	}
	return nil
}

func (_c *HistoryItemCreate) sqlSave(ctx context.Context) (*HistoryItem, error) {
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

func (_c *HistoryItemCreate) createSpec() (*HistoryItem, *sqlgraph.CreateSpec) {
	var (
		_node = &HistoryItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(historyitem.Table, sqlgraph.NewFieldSpec(historyitem.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(historyitem.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(historyitem.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(historyitem.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(historyitem.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(historyitem.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HistoryItem.Create().
//		SetTimestamp(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HistoryItemUpsert) {
//			SetTimestamp(v+v).
//		}).
//		Exec(ctx)
func (_c *HistoryItemCreate) OnConflict(opts ...sql.ConflictOption) *HistoryItemUpsertOne {
	_c.conflict = opts
	return &HistoryItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HistoryItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HistoryItemCreate) OnConflictColumns(columns ...string) *HistoryItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HistoryItemUpsertOne{
		create: _c,
	}
}

type (
	// HistoryItemUpsertOne is the builder for "upsert"-ing
	//  one HistoryItem node.
	HistoryItemUpsertOne struct {
		create *HistoryItemCreate
	}

	// HistoryItemUpsert is the "OnConflict" setter.
	HistoryItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetTimestamp sets the "timestamp" field.
func (u *HistoryItemUpsert) SetTimestamp(v time.Time) *HistoryItemUpsert {
	u.Set(historyitem.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *HistoryItemUpsert) UpdateTimestamp() *HistoryItemUpsert {
	u.SetExcluded(historyitem.FieldTimestamp)
	return u
}

// SetTopic sets the "topic" field.
func (u *HistoryItemUpsert) SetTopic(v string) *HistoryItemUpsert {
	u.Set(historyitem.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *HistoryItemUpsert) UpdateTopic() *HistoryItemUpsert {
	u.SetExcluded(historyitem.FieldTopic)
	return u
}

// SetScore sets the "score" field.
func (u *HistoryItemUpsert) SetScore(v float64) *HistoryItemUpsert {
	u.Set(historyitem.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *HistoryItemUpsert) UpdateScore() *HistoryItemUpsert {
	u.SetExcluded(historyitem.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *HistoryItemUpsert) AddScore(v float64) *HistoryItemUpsert {
	u.Add(historyitem.FieldScore, v)
	return u
}

// SetTotalQuestions sets the "total_questions" field.
func (u *HistoryItemUpsert) SetTotalQuestions(v int) *HistoryItemUpsert {
	u.Set(historyitem.FieldTotalQuestions, v)
	return u
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *HistoryItemUpsert) UpdateTotalQuestions() *HistoryItemUpsert {
	u.SetExcluded(historyitem.FieldTotalQuestions)
	return u
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *HistoryItemUpsert) AddTotalQuestions(v int) *HistoryItemUpsert {
	u.Add(historyitem.FieldTotalQuestions, v)
	return u
}

// SetPayload sets the "payload" field.
func (u *HistoryItemUpsert) SetPayload(v map[string]interface{}) *HistoryItemUpsert {
	u.Set(historyitem.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *HistoryItemUpsert) UpdatePayload() *HistoryItemUpsert {
	u.SetExcluded(historyitem.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.HistoryItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HistoryItemUpsertOne) UpdateNewValues() *HistoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HistoryItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HistoryItemUpsertOne) Ignore() *HistoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HistoryItemUpsertOne) DoNothing() *HistoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HistoryItemCreate.OnConflict
// documentation for more info.
func (u *HistoryItemUpsertOne) Update(set func(*HistoryItemUpsert)) *HistoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HistoryItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *HistoryItemUpsertOne) SetTimestamp(v time.Time) *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *HistoryItemUpsertOne) UpdateTimestamp() *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.UpdateTimestamp()
	})
}

// SetTopic sets the "topic" field.
func (u *HistoryItemUpsertOne) SetTopic(v string) *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *HistoryItemUpsertOne) UpdateTopic() *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.UpdateTopic()
	})
}

// SetScore sets the "score" field.
func (u *HistoryItemUpsertOne) SetScore(v float64) *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *HistoryItemUpsertOne) AddScore(v float64) *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *HistoryItemUpsertOne) UpdateScore() *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.UpdateScore()
	})
}

// SetTotalQuestions sets the "total_questions" field.
func (u *HistoryItemUpsertOne) SetTotalQuestions(v int) *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.SetTotalQuestions(v)
	})
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *HistoryItemUpsertOne) AddTotalQuestions(v int) *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.AddTotalQuestions(v)
	})
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *HistoryItemUpsertOne) UpdateTotalQuestions() *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.UpdateTotalQuestions()
	})
}

// SetPayload sets the "payload" field.
func (u *HistoryItemUpsertOne) SetPayload(v map[string]interface{}) *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *HistoryItemUpsertOne) UpdatePayload() *HistoryItemUpsertOne {
	return u.Update(func(s *HistoryItemUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *HistoryItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HistoryItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HistoryItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HistoryItemUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HistoryItemUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HistoryItemCreateBulk is the builder for creating many HistoryItem entities in bulk.
type HistoryItemCreateBulk struct {
	config
	err      error
	builders []*HistoryItemCreate
	conflict []sql.ConflictOption
}

// Save creates the HistoryItem entities in the database.
func (_c *HistoryItemCreateBulk) Save(ctx context.Context) ([]*HistoryItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HistoryItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HistoryItemMutation)
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
func (_c *HistoryItemCreateBulk) SaveX(ctx context.Context) []*HistoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HistoryItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HistoryItemUpsert) {
//			SetTimestamp(v+v).
//		}).
//		Exec(ctx)
func (_c *HistoryItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *HistoryItemUpsertBulk {
	_c.conflict = opts
	return &HistoryItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HistoryItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HistoryItemCreateBulk) OnConflictColumns(columns ...string) *HistoryItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HistoryItemUpsertBulk{
		create: _c,
	}
}

// HistoryItemUpsertBulk is the builder for "upsert"-ing
// a bulk of HistoryItem nodes.
type HistoryItemUpsertBulk struct {
	create *HistoryItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HistoryItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HistoryItemUpsertBulk) UpdateNewValues() *HistoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HistoryItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HistoryItemUpsertBulk) Ignore() *HistoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HistoryItemUpsertBulk) DoNothing() *HistoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HistoryItemCreateBulk.OnConflict
// documentation for more info.
func (u *HistoryItemUpsertBulk) Update(set func(*HistoryItemUpsert)) *HistoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HistoryItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *HistoryItemUpsertBulk) SetTimestamp(v time.Time) *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *HistoryItemUpsertBulk) UpdateTimestamp() *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.UpdateTimestamp()
	})
}

// SetTopic sets the "topic" field.
func (u *HistoryItemUpsertBulk) SetTopic(v string) *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *HistoryItemUpsertBulk) UpdateTopic() *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.UpdateTopic()
	})
}

// SetScore sets the "score" field.
func (u *HistoryItemUpsertBulk) SetScore(v float64) *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *HistoryItemUpsertBulk) AddScore(v float64) *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *HistoryItemUpsertBulk) UpdateScore() *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.UpdateScore()
	})
}

// SetTotalQuestions sets the "total_questions" field.
func (u *HistoryItemUpsertBulk) SetTotalQuestions(v int) *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.SetTotalQuestions(v)
	})
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *HistoryItemUpsertBulk) AddTotalQuestions(v int) *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.AddTotalQuestions(v)
	})
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *HistoryItemUpsertBulk) UpdateTotalQuestions() *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.UpdateTotalQuestions()
	})
}

// SetPayload sets the "payload" field.
func (u *HistoryItemUpsertBulk) SetPayload(v map[string]interface{}) *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *HistoryItemUpsertBulk) UpdatePayload() *HistoryItemUpsertBulk {
	return u.Update(func(s *HistoryItemUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *HistoryItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HistoryItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HistoryItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HistoryItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
