package results

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/cogniquest/cogniquest/internal/gateway"
	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/screens"
	"github.com/cogniquest/cogniquest/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type mockHistory struct {
	nextID  int
	saved   []store.HistoryItem
	updates map[int]store.HistoryPatch
}

func newMockHistory() *mockHistory {
	return &mockHistory{nextID: 1, updates: make(map[int]store.HistoryPatch)}
}

func (m *mockHistory) SaveHistory(_ context.Context, item store.HistoryItem) (int, error) {
	id := m.nextID
	m.nextID++
	item.ID = id
	m.saved = append(m.saved, item)
	return id, nil
}

func (m *mockHistory) UpdateHistory(_ context.Context, id int, patch store.HistoryPatch) error {
	m.updates[id] = patch
	return nil
}

func (m *mockHistory) ListHistory(context.Context) ([]store.HistoryItem, error) {
	return m.saved, nil
}

func (m *mockHistory) DeleteHistory(context.Context, int) error { return nil }

func strptr(s string) *string { return &s }

// completedState builds a finished two-question attempt with one miss.
func completedState() *quiz.AppState {
	st := quiz.NewAppState()
	st.SourceMaterials = []quiz.SourceMaterial{{Kind: quiz.MaterialText, FileName: "prompt", Content: "cells"}}
	st.Config = quiz.DefaultQuizConfig()
	st.QuizTitle = "Cell Biology"
	st.Questions = []quiz.Question{
		{ID: "q1", Type: quiz.TypeMCQ, Prompt: "Powerhouse?", Options: []string{"Nucleus", "Mitochondrion"}, CorrectAnswer: "Mitochondrion", Category: "Cells"},
		{ID: "q2", Type: quiz.TypeMCQ, Prompt: "Protein factory?", Options: []string{"Ribosome", "Golgi"}, CorrectAnswer: "Ribosome", Category: "Cells"},
	}
	st.Answers = map[string]*string{
		"q1": strptr("Mitochondrion"),
		"q2": strptr("Golgi"),
	}
	started := time.Now().Add(-5 * time.Minute)
	finished := time.Now()
	st.StartedAt = &started
	st.FinishedAt = &finished
	st.Status = quiz.StatusCompleted
	return st
}

func testDeps(st *quiz.AppState, history store.HistoryRepo) screens.Deps {
	return screens.Deps{
		State:   st,
		Gateway: gateway.New(llm.NewMockProvider(), gateway.DefaultConfig()),
		History: history,
	}
}

func TestResultsScreen_PersistsNewAttempt(t *testing.T) {
	st := completedState()
	repo := newMockHistory()
	s := New(testDeps(st, repo))

	msg := s.persistHistory()()
	saved, ok := msg.(historySavedMsg)
	if !ok {
		t.Fatalf("persistHistory returned %T", msg)
	}
	if saved.Err != nil {
		t.Fatalf("save err: %v", saved.Err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved %d items, want 1", len(repo.saved))
	}
	item := repo.saved[0]
	if item.Topic != "Cell Biology" || item.TotalQuestions != 2 {
		t.Errorf("stored item = %+v", item)
	}
	if item.Score != 1 {
		t.Errorf("score = %v, want 1", item.Score)
	}

	s.Update(saved)
	if st.CurrentHistoryID != saved.ID {
		t.Errorf("history ID = %d, want %d", st.CurrentHistoryID, saved.ID)
	}
}

func TestResultsScreen_RetakeOverwritesHistory(t *testing.T) {
	st := completedState()
	st.CurrentHistoryID = 7
	repo := newMockHistory()
	s := New(testDeps(st, repo))

	msg := s.persistHistory()()
	saved := msg.(historySavedMsg)
	if saved.ID != 7 {
		t.Fatalf("saved ID = %d, want 7", saved.ID)
	}
	if len(repo.saved) != 0 {
		t.Error("retake must update, not insert")
	}
	patch, ok := repo.updates[7]
	if !ok {
		t.Fatal("expected an update for record 7")
	}
	if patch.Topic == nil || *patch.Topic != "Cell Biology" {
		t.Errorf("patch topic = %v", patch.Topic)
	}
}

func TestResultsScreen_HistoryFailureIsSilent(t *testing.T) {
	st := completedState()
	s := New(testDeps(st, nil))

	_, cmd := s.Update(historySavedMsg{Err: errors.New("db locked")})
	if cmd != nil {
		t.Error("a failed save should not trigger follow-up work")
	}
	if st.CurrentHistoryID != 0 {
		t.Error("failed save must not record an ID")
	}
}

func TestResultsScreen_SummaryApplied(t *testing.T) {
	st := completedState()
	s := New(testDeps(st, nil))

	genID, err := quiz.BeginSummary(st)
	if err != nil {
		t.Fatalf("BeginSummary: %v", err)
	}
	s.Update(summaryReadyMsg{GenID: genID, Text: "Solid on organelles."})

	if st.Summary != "Solid on organelles." {
		t.Errorf("summary = %q", st.Summary)
	}
	if st.GeneratingSummary {
		t.Error("generating flag should be cleared")
	}
}

func TestResultsScreen_SummaryFailureKeepsResultsUsable(t *testing.T) {
	st := completedState()
	s := New(testDeps(st, nil))

	genID, err := quiz.BeginSummary(st)
	if err != nil {
		t.Fatalf("BeginSummary: %v", err)
	}
	s.Update(summaryReadyMsg{GenID: genID, Err: errors.New("provider down")})

	if st.Summary != "" {
		t.Error("no summary should be stored on failure")
	}
	if st.Status != quiz.StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", st.Status)
	}
}

func TestResultsScreen_ReviewDoesNotGenerateSummary(t *testing.T) {
	st := completedState()
	st.ReviewingHistory = true
	st.Summary = ""
	repo := newMockHistory()
	s := New(testDeps(st, repo))

	s.Init()

	if st.GeneratingSummary {
		t.Error("a read-only review must not start a summary call")
	}
	if len(repo.saved) != 0 || len(repo.updates) != 0 {
		t.Error("a read-only review must not touch history")
	}
}

func TestResultsScreen_FreshAttemptStartsSummary(t *testing.T) {
	st := completedState()
	s := New(testDeps(st, nil))

	s.Init()

	if !st.GeneratingSummary {
		t.Error("a fresh attempt should start summary generation")
	}
}

func TestResultsScreen_StaleSummaryDropped(t *testing.T) {
	st := completedState()
	s := New(testDeps(st, nil))

	if _, err := quiz.BeginSummary(st); err != nil {
		t.Fatalf("BeginSummary: %v", err)
	}
	s.Update(summaryReadyMsg{GenID: "stale", Text: "Old run."})

	if st.Summary != "" {
		t.Error("stale summary must not be applied")
	}
}

func TestResultsScreen_FlashcardsNothingMissed(t *testing.T) {
	st := completedState()
	st.Answers["q2"] = strptr("Ribosome")
	s := New(testDeps(st, nil))

	if cmd := s.startFlashcards(); cmd != nil {
		t.Error("a clean attempt should not start generation")
	}
	if s.notice == "" {
		t.Error("expected a notice explaining there is nothing to drill")
	}
	if st.GeneratingFlashcards {
		t.Error("generating flag must stay clear")
	}
}

func TestResultsScreen_FlashcardsReadyEntersDeck(t *testing.T) {
	st := completedState()
	s := New(testDeps(st, nil))

	genID, err := quiz.BeginFlashcards(st)
	if err != nil {
		t.Fatalf("BeginFlashcards: %v", err)
	}
	cards := []quiz.Flashcard{{Front: "Ribosome", Back: "Builds proteins."}}
	_, cmd := s.Update(flashcardsReadyMsg{GenID: genID, Cards: cards})

	if st.Status != quiz.StatusFlashcards {
		t.Fatalf("status = %s, want FLASHCARDS", st.Status)
	}
	if cmd == nil {
		t.Error("expected a command pushing the flashcards screen")
	}
}

func TestResultsScreen_StartChatBindsQuestion(t *testing.T) {
	st := completedState()
	s := New(testDeps(st, nil))

	// Menu item one opens the question browser.
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	ss := scr.(*ResultsScreen)
	if ss.focus != focusQuestions {
		t.Fatal("expected question browser focus")
	}

	scr, _ = ss.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // mode picker
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	if st.Status != quiz.StatusChatting {
		t.Fatalf("status = %s, want CHATTING", st.Status)
	}
	if st.Chat == nil || st.Chat.Question.ID != "q2" {
		t.Fatalf("chat context = %+v, want bound to q2", st.Chat)
	}
	if st.Chat.Mode != quiz.ChatStandard {
		t.Errorf("mode = %s, want standard default", st.Chat.Mode)
	}
	if cmd == nil {
		t.Error("expected a command pushing the chat screen")
	}
}

func TestResultsScreen_RetakeKeepsHistoryID(t *testing.T) {
	st := completedState()
	st.CurrentHistoryID = 3
	s := New(testDeps(st, nil))

	if cmd := s.retake(); cmd == nil {
		t.Fatal("expected a command resetting to the quiz screen")
	}
	if st.Status != quiz.StatusInProgress {
		t.Fatalf("status = %s, want IN_PROGRESS", st.Status)
	}
	if len(st.Answers) != 0 {
		t.Error("answers should be cleared for the retake")
	}
	if st.CurrentHistoryID != 3 {
		t.Error("retake must keep the history ID so the record is overwritten")
	}
}

func TestResultsScreen_EscInReviewReturnsToDashboard(t *testing.T) {
	st := completedState()
	st.ReviewingHistory = true
	s := New(testDeps(st, nil))

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if st.Status != quiz.StatusDashboard {
		t.Fatalf("status = %s, want DASHBOARD", st.Status)
	}
	if cmd == nil {
		t.Error("expected a command popping back to the dashboard")
	}
}
