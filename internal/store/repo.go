package store

import (
	"context"
	"errors"
	"time"

	"github.com/cogniquest/cogniquest/internal/quiz"
)

// ErrNotFound is returned when a history update references an absent id.
// Rare in practice: it indicates the id invariant was violated upstream.
var ErrNotFound = errors.New("record not found")

// SessionRepo manages the singleton "current session" slot. Saves are
// best-effort from the state machine's perspective: callers log failures
// but never surface them to the user.
type SessionRepo interface {
	// SaveSession upserts the singleton snapshot. Idempotent.
	SaveSession(ctx context.Context, state *quiz.AppState) error

	// GetSession returns the snapshot, or nil when absent. Used once at
	// startup to decide between resume and a fresh start.
	GetSession(ctx context.Context) (*quiz.AppState, error)

	// ClearSession deletes the singleton.
	ClearSession(ctx context.Context) error
}

// HistoryItem is one persisted quiz attempt.
type HistoryItem struct {
	ID             int
	Timestamp      time.Time
	Topic          string
	Score          float64
	TotalQuestions int
	Payload        quiz.HistorySnapshot
}

// HistoryPatch carries partial fields for UpdateHistory. Nil fields are
// left unchanged.
type HistoryPatch struct {
	Topic          *string
	Score          *float64
	TotalQuestions *int
	Timestamp      *time.Time
	Payload        *quiz.HistorySnapshot
}

// HistoryRepo manages the append-only history collection.
type HistoryRepo interface {
	// SaveHistory inserts a record and returns the generated id.
	SaveHistory(ctx context.Context, item HistoryItem) (int, error)

	// UpdateHistory merges patch onto the existing record. Returns
	// ErrNotFound when the id is absent.
	UpdateHistory(ctx context.Context, id int, patch HistoryPatch) error

	// ListHistory returns all records, newest first.
	ListHistory(ctx context.Context) ([]HistoryItem, error)

	// DeleteHistory removes one record. Idempotent on an absent id.
	DeleteHistory(ctx context.Context, id int) error
}

// RequestLogEntry captures one LLM call for the request log.
type RequestLogEntry struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// RequestLogRecord is a stored log entry with its assigned id.
type RequestLogRecord struct {
	ID        int
	Timestamp time.Time
	RequestLogEntry
}

// RequestLogRepo provides append and query access to the LLM request log.
type RequestLogRepo interface {
	AppendRequest(ctx context.Context, entry RequestLogEntry) error
	ListRequests(ctx context.Context, limit int) ([]RequestLogRecord, error)
	GetRequest(ctx context.Context, id int) (*RequestLogRecord, error)
}
