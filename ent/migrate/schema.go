// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HistoryItemsColumns holds the columns for the "history_items" table.
	HistoryItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "payload", Type: field.TypeJSON},
	}
	// HistoryItemsTable holds the schema information for the "history_items" table.
	HistoryItemsTable = &schema.Table{
		Name:       "history_items",
		Columns:    HistoryItemsColumns,
		PrimaryKey: []*schema.Column{HistoryItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "historyitem_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HistoryItemsColumns[1]},
			},
		},
	}
	// LlmRequestsColumns holds the columns for the "llm_requests" table.
	LlmRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// LlmRequestsTable holds the schema information for the "llm_requests" table.
	LlmRequestsTable = &schema.Table{
		Name:       "llm_requests",
		Columns:    LlmRequestsColumns,
		PrimaryKey: []*schema.Column{LlmRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequest_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[1]},
			},
			{
				Name:    "llmrequest_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[4]},
			},
		},
	}
	// SessionStatesColumns holds the columns for the "session_states" table.
	SessionStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slot", Type: field.TypeString, Unique: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SessionStatesTable holds the schema information for the "session_states" table.
	SessionStatesTable = &schema.Table{
		Name:       "session_states",
		Columns:    SessionStatesColumns,
		PrimaryKey: []*schema.Column{SessionStatesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HistoryItemsTable,
		LlmRequestsTable,
		SessionStatesTable,
	}
)

func init() {
}
