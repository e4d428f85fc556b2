// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cogniquest/cogniquest/ent/sessionstate"
)

// SessionState is the model entity for the SessionState schema.
type SessionState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Fixed key, always "current"
	Slot string `json:"slot,omitempty"`
	// When the snapshot was last written
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Full application state as an opaque JSON blob
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionstate.FieldData:
			values[i] = new([]byte)
		case sessionstate.FieldID:
			values[i] = new(sql.NullInt64)
		case sessionstate.FieldSlot:
			values[i] = new(sql.NullString)
		case sessionstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionState fields.
func (_m *SessionState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionstate.FieldSlot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slot", values[i])
			} else if value.Valid {
				_m.Slot = value.String
			}
		case sessionstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case sessionstate.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionState.
// This includes values selected through modifiers, order, etc.
func (_m *SessionState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionState.
// Note that you need to call SessionState.Unwrap() before calling this method if this SessionState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionState) Update() *SessionStateUpdateOne {
	return NewSessionStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionState) Unwrap() *SessionState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionState) String() string {
	var builder strings.Builder
	builder.WriteString("SessionState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("slot=")
	builder.WriteString(_m.Slot)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// SessionStates is a parsable slice of SessionState.
type SessionStates []*SessionState
