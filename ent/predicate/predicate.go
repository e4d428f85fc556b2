// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// HistoryItem is the predicate function for historyitem builders.
type HistoryItem func(*sql.Selector)

// LLMRequest is the predicate function for llmrequest builders.
type LLMRequest func(*sql.Selector)

// SessionState is the predicate function for sessionstate builders.
type SessionState func(*sql.Selector)
