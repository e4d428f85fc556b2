// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cogniquest/cogniquest/ent/historyitem"
)

// HistoryItem is the model entity for the HistoryItem schema.
type HistoryItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// When the attempt was submitted
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Derived topic label, editable by the user
	Topic string `json:"topic,omitempty"`
	// Final score after any negative-marking penalty
	Score float64 `json:"score,omitempty"`
	// Number of questions in the quiz
	TotalQuestions int `json:"total_questions,omitempty"`
	// Full quiz, answers, confidence, config, materials, and summary
	Payload      map[string]interface{} `json:"payload,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HistoryItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case historyitem.FieldPayload:
			values[i] = new([]byte)
		case historyitem.FieldScore:
			values[i] = new(sql.NullFloat64)
		case historyitem.FieldID, historyitem.FieldTotalQuestions:
			values[i] = new(sql.NullInt64)
		case historyitem.FieldTopic:
			values[i] = new(sql.NullString)
		case historyitem.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HistoryItem fields.
func (_m *HistoryItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case historyitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case historyitem.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case historyitem.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case historyitem.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case historyitem.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case historyitem.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HistoryItem.
// This includes values selected through modifiers, order, etc.
func (_m *HistoryItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HistoryItem.
// Note that you need to call HistoryItem.Unwrap() before calling this method if this HistoryItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HistoryItem) Update() *HistoryItemUpdateOne {
	return NewHistoryItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HistoryItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HistoryItem) Unwrap() *HistoryItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HistoryItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HistoryItem) String() string {
	var builder strings.Builder
	builder.WriteString("HistoryItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteByte(')')
	return builder.String()
}

// HistoryItems is a parsable slice of HistoryItem.
type HistoryItems []*HistoryItem
