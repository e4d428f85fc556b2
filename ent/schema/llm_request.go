package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequest records one call to the generation gateway's provider, for
// the `cogniquest llm` inspection commands.
type LLMRequest struct {
	ent.Schema
}

func (LLMRequest) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the request"),
		field.String("provider").
			Comment("Provider identifier"),
		field.String("model").
			Comment("Model that served the request"),
		field.String("purpose").
			Comment("quiz-gen, hint, summary, flashcards, or chat"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Default(false),
		field.String("error_message").
			Optional(),
		field.Text("request_body").
			Optional().
			Comment("Serialized prompt for debugging"),
		field.Text("response_body").
			Optional(),
	}
}

func (LLMRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("purpose"),
	}
}
