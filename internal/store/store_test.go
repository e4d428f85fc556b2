package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cogniquest/cogniquest/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionSaveGetClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// No session yet.
	got, err := repo.GetSession(ctx)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil session when none saved")
	}

	state := quiz.NewAppState()
	state.Status = quiz.StatusInProgress
	state.QuizTitle = "Photosynthesis Basics"
	if err := repo.SaveSession(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.GetSession(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil session")
	}
	if got.Status != quiz.StatusInProgress {
		t.Errorf("status = %q, want %q", got.Status, quiz.StatusInProgress)
	}
	if got.QuizTitle != "Photosynthesis Basics" {
		t.Errorf("title = %q, want 'Photosynthesis Basics'", got.QuizTitle)
	}

	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = repo.GetSession(ctx)
	if err != nil {
		t.Fatalf("get (after clear): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil session after clear")
	}
}

func TestSessionSaveOverwritesSingleton(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	first := quiz.NewAppState()
	first.QuizTitle = "first"
	if err := repo.SaveSession(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := quiz.NewAppState()
	second.QuizTitle = "second"
	if err := repo.SaveSession(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	count, err := s.Client().SessionState.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("session rows = %d, want 1", count)
	}

	got, err := repo.GetSession(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.QuizTitle != "second" {
		t.Errorf("title = %q, want 'second'", got.QuizTitle)
	}
}

func TestHistorySaveListDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	var ids []int
	for i := 0; i < 3; i++ {
		id, err := repo.SaveHistory(ctx, HistoryItem{
			Timestamp:      base.Add(time.Duration(i) * time.Minute),
			Topic:          "Cell Biology",
			Score:          float64(i),
			TotalQuestions: 10,
			Payload:        quiz.HistorySnapshot{Title: "Cell Biology"},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		ids = append(ids, id)
	}

	items, err := repo.ListHistory(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	// Newest first.
	if items[0].Score != 2 {
		t.Errorf("items[0].Score = %v, want 2", items[0].Score)
	}
	if items[0].Payload.Title != "Cell Biology" {
		t.Errorf("payload title = %q, want 'Cell Biology'", items[0].Payload.Title)
	}

	if err := repo.DeleteHistory(ctx, ids[0]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Deleting again is a no-op.
	if err := repo.DeleteHistory(ctx, ids[0]); err != nil {
		t.Fatalf("delete (repeat): %v", err)
	}

	items, err = repo.ListHistory(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len(items) = %d, want 2", len(items))
	}
}

func TestHistoryUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	id, err := repo.SaveHistory(ctx, HistoryItem{
		Timestamp:      time.Now().UTC(),
		Topic:          "Draft Topic",
		Score:          0,
		TotalQuestions: 5,
		Payload:        quiz.HistorySnapshot{Title: "Draft Topic"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	topic := "Renamed Topic"
	score := 3.5
	err = repo.UpdateHistory(ctx, id, HistoryPatch{Topic: &topic, Score: &score})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	items, err := repo.ListHistory(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items[0].Topic != "Renamed Topic" {
		t.Errorf("topic = %q, want 'Renamed Topic'", items[0].Topic)
	}
	if items[0].Score != 3.5 {
		t.Errorf("score = %v, want 3.5", items[0].Score)
	}
	if items[0].TotalQuestions != 5 {
		t.Errorf("total = %d, want 5 (unpatched field changed)", items[0].TotalQuestions)
	}
}

func TestHistoryUpdateMissingID(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()

	topic := "anything"
	err := repo.UpdateHistory(context.Background(), 9999, HistoryPatch{Topic: &topic})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRequestLogAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.RequestLogRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		err := repo.AppendRequest(ctx, RequestLogEntry{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "quiz-gen",
			InputTokens:  100 + i,
			OutputTokens: 200,
			LatencyMs:    int64(50 * i),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.ListRequests(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	all, err := repo.ListRequests(ctx, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("len(all) = %d, want 4", len(all))
	}

	got, err := repo.GetRequest(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Provider != "mock" {
		t.Errorf("provider = %q, want 'mock'", got.Provider)
	}

	_, err = repo.GetRequest(ctx, 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("get missing: err = %v, want ErrNotFound", err)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"session_states", "history_items", "llm_requests"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
