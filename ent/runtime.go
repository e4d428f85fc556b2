// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cogniquest/cogniquest/ent/historyitem"
	"github.com/cogniquest/cogniquest/ent/llmrequest"
	"github.com/cogniquest/cogniquest/ent/schema"
	"github.com/cogniquest/cogniquest/ent/sessionstate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	historyitemFields := schema.HistoryItem{}.Fields()
	_ = historyitemFields
	// historyitemDescTimestamp is the schema descriptor for timestamp field.
	historyitemDescTimestamp := historyitemFields[0].Descriptor()
	// historyitem.DefaultTimestamp holds the default value on creation for the timestamp field.
	historyitem.DefaultTimestamp = historyitemDescTimestamp.Default.(func() time.Time)
	// historyitemDescTopic is the schema descriptor for topic field.
	historyitemDescTopic := historyitemFields[1].Descriptor()
	// historyitem.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	historyitem.TopicValidator = historyitemDescTopic.Validators[0].(func(string) error)
	llmrequestFields := schema.LLMRequest{}.Fields()
	_ = llmrequestFields
	// llmrequestDescTimestamp is the schema descriptor for timestamp field.
	llmrequestDescTimestamp := llmrequestFields[0].Descriptor()
	// llmrequest.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequest.DefaultTimestamp = llmrequestDescTimestamp.Default.(func() time.Time)
	// llmrequestDescInputTokens is the schema descriptor for input_tokens field.
	llmrequestDescInputTokens := llmrequestFields[4].Descriptor()
	// llmrequest.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequest.DefaultInputTokens = llmrequestDescInputTokens.Default.(int)
	// llmrequestDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequestDescOutputTokens := llmrequestFields[5].Descriptor()
	// llmrequest.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequest.DefaultOutputTokens = llmrequestDescOutputTokens.Default.(int)
	// llmrequestDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequestDescLatencyMs := llmrequestFields[6].Descriptor()
	// llmrequest.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequest.DefaultLatencyMs = llmrequestDescLatencyMs.Default.(int64)
	// llmrequestDescSuccess is the schema descriptor for success field.
	llmrequestDescSuccess := llmrequestFields[7].Descriptor()
	// llmrequest.DefaultSuccess holds the default value on creation for the success field.
	llmrequest.DefaultSuccess = llmrequestDescSuccess.Default.(bool)
	sessionstateFields := schema.SessionState{}.Fields()
	_ = sessionstateFields
	// sessionstateDescUpdatedAt is the schema descriptor for updated_at field.
	sessionstateDescUpdatedAt := sessionstateFields[1].Descriptor()
	// sessionstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionstate.DefaultUpdatedAt = sessionstateDescUpdatedAt.Default.(func() time.Time)
	// sessionstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionstate.UpdateDefaultUpdatedAt = sessionstateDescUpdatedAt.UpdateDefault.(func() time.Time)
}
