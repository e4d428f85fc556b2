package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryItem records one completed quiz attempt. Created at submission,
// overwritten on retake-and-resubmit (same id reused), deleted only by
// explicit user action.
type HistoryItem struct {
	ent.Schema
}

func (HistoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the attempt was submitted"),
		field.String("topic").
			NotEmpty().
			Comment("Derived topic label, editable by the user"),
		field.Float("score").
			Comment("Final score after any negative-marking penalty"),
		field.Int("total_questions").
			Comment("Number of questions in the quiz"),
		field.JSON("payload", map[string]any{}).
			Comment("Full quiz, answers, confidence, config, materials, and summary"),
	}
}

func (HistoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
