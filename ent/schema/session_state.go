package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SessionState is the singleton "current session" slot: the most recent
// application state snapshot, restored at startup to resume a session.
type SessionState struct {
	ent.Schema
}

func (SessionState) Fields() []ent.Field {
	return []ent.Field{
		field.String("slot").
			Unique().
			Comment("Fixed key, always \"current\""),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the snapshot was last written"),
		field.JSON("data", map[string]any{}).
			Comment("Full application state as an opaque JSON blob"),
	}
}
