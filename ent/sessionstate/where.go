// Code generated by ent, DO NOT EDIT.

package sessionstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cogniquest/cogniquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldID, id))
}

// Slot applies equality check predicate on the "slot" field. It's identical to SlotEQ.
func Slot(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldSlot, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldUpdatedAt, v))
}

// SlotEQ applies the EQ predicate on the "slot" field.
func SlotEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldSlot, v))
}

// SlotNEQ applies the NEQ predicate on the "slot" field.
func SlotNEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldSlot, v))
}

// SlotIn applies the In predicate on the "slot" field.
func SlotIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldSlot, vs...))
}

// SlotNotIn applies the NotIn predicate on the "slot" field.
func SlotNotIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldSlot, vs...))
}

// SlotGT applies the GT predicate on the "slot" field.
func SlotGT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldSlot, v))
}

// SlotGTE applies the GTE predicate on the "slot" field.
func SlotGTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldSlot, v))
}

// SlotLT applies the LT predicate on the "slot" field.
func SlotLT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldSlot, v))
}

// SlotLTE applies the LTE predicate on the "slot" field.
func SlotLTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldSlot, v))
}

// SlotContains applies the Contains predicate on the "slot" field.
func SlotContains(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContains(FieldSlot, v))
}

// SlotHasPrefix applies the HasPrefix predicate on the "slot" field.
func SlotHasPrefix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasPrefix(FieldSlot, v))
}

// SlotHasSuffix applies the HasSuffix predicate on the "slot" field.
func SlotHasSuffix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasSuffix(FieldSlot, v))
}

// SlotEqualFold applies the EqualFold predicate on the "slot" field.
func SlotEqualFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEqualFold(FieldSlot, v))
}

// SlotContainsFold applies the ContainsFold predicate on the "slot" field.
func SlotContainsFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContainsFold(FieldSlot, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.NotPredicates(p))
}
