package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

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
	items   []store.HistoryItem
	deleted []int
	updates map[int]store.HistoryPatch
	listErr error
}

func newMockHistory(items ...store.HistoryItem) *mockHistory {
	return &mockHistory{items: items, updates: make(map[int]store.HistoryPatch)}
}

func (m *mockHistory) SaveHistory(_ context.Context, item store.HistoryItem) (int, error) {
	m.items = append(m.items, item)
	return len(m.items), nil
}

func (m *mockHistory) UpdateHistory(_ context.Context, id int, patch store.HistoryPatch) error {
	m.updates[id] = patch
	return nil
}

func (m *mockHistory) ListHistory(context.Context) ([]store.HistoryItem, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockHistory) DeleteHistory(_ context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func attempt(id int, topic string) store.HistoryItem {
	return store.HistoryItem{
		ID:             id,
		Timestamp:      time.Now(),
		Topic:          topic,
		Score:          4,
		TotalQuestions: 5,
		Payload: quiz.HistorySnapshot{
			Title: topic,
			Questions: []quiz.Question{{
				ID:            "q1",
				Type:          quiz.TypeMCQ,
				Prompt:        "Powerhouse?",
				Options:       []string{"Nucleus", "Mitochondrion"},
				CorrectAnswer: "Mitochondrion",
			}},
			Config: quiz.DefaultQuizConfig(),
		},
	}
}

// loadedDashboard builds a dashboard with history already loaded and the
// history pane focused.
func loadedDashboard(repo *mockHistory) (*DashboardScreen, *quiz.AppState) {
	st := quiz.NewAppState()
	quiz.GoToDashboard(st)
	s := New(screens.Deps{State: st, History: repo})
	s.Update(s.Init()())
	s.Update(specialKey(tea.KeyTab))
	return s, st
}

func TestDashboard_LoadsHistory(t *testing.T) {
	repo := newMockHistory(attempt(1, "Cells"), attempt(2, "Rome"))
	st := quiz.NewAppState()
	quiz.GoToDashboard(st)
	s := New(screens.Deps{State: st, History: repo})

	msg := s.Init()()
	s.Update(msg)

	if s.loading {
		t.Error("loading flag should clear once history arrives")
	}
	if len(s.items) != 2 {
		t.Fatalf("items = %d, want 2", len(s.items))
	}
}

func TestDashboard_LoadFailureShowsError(t *testing.T) {
	repo := newMockHistory()
	repo.listErr = errors.New("db locked")
	st := quiz.NewAppState()
	quiz.GoToDashboard(st)
	s := New(screens.Deps{State: st, History: repo})

	s.Update(s.Init()())

	if s.errMsg == "" {
		t.Error("expected the load error to surface")
	}
}

func TestDashboard_TabNeedsHistory(t *testing.T) {
	st := quiz.NewAppState()
	quiz.GoToDashboard(st)
	s := New(screens.Deps{State: st})
	s.Init()

	s.Update(specialKey(tea.KeyTab))
	if s.focus != focusMenu {
		t.Error("tab should be inert with no past attempts")
	}
}

func TestDashboard_ReviewOpensPastAttempt(t *testing.T) {
	repo := newMockHistory(attempt(1, "Cells"))
	s, st := loadedDashboard(repo)

	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if st.Status != quiz.StatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", st.Status)
	}
	if !st.ReviewingHistory {
		t.Error("review must be flagged read-only")
	}
	if st.CurrentHistoryID != 1 {
		t.Errorf("history ID = %d, want 1", st.CurrentHistoryID)
	}
	if cmd == nil {
		t.Error("expected a command pushing the results screen")
	}
}

func TestDashboard_RetakeStartsQuiz(t *testing.T) {
	repo := newMockHistory(attempt(1, "Cells"))
	s, st := loadedDashboard(repo)

	_, cmd := s.Update(keyPress('r'))

	if st.Status != quiz.StatusInProgress {
		t.Fatalf("status = %s, want IN_PROGRESS", st.Status)
	}
	if st.CurrentHistoryID != 1 {
		t.Error("retake must keep the record ID to overwrite it")
	}
	if len(st.Answers) != 0 {
		t.Error("answers must start blank on a retake")
	}
	if cmd == nil {
		t.Error("expected a command resetting to the quiz screen")
	}
}

func TestDashboard_DeleteNeedsConfirmation(t *testing.T) {
	repo := newMockHistory(attempt(1, "Cells"))
	s, _ := loadedDashboard(repo)

	s.Update(keyPress('d'))
	if !s.pendingDelete {
		t.Fatal("expected delete confirmation")
	}

	s.Update(keyPress('n'))
	if s.pendingDelete {
		t.Error("n should cancel")
	}
	if len(repo.deleted) != 0 {
		t.Fatal("nothing should be deleted before confirming")
	}

	s.Update(keyPress('d'))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected the delete command")
	}
	cmd()
	if len(repo.deleted) != 1 || repo.deleted[0] != 1 {
		t.Errorf("deleted = %v, want [1]", repo.deleted)
	}
}

func TestDashboard_Rename(t *testing.T) {
	repo := newMockHistory(attempt(1, "Cells"))
	s, _ := loadedDashboard(repo)

	s.Update(keyPress('n'))
	if !s.renaming {
		t.Fatal("expected rename input")
	}

	s.renameInput.SetValue("Cell Biology Midterm")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected the rename command")
	}
	cmd()

	patch, ok := repo.updates[1]
	if !ok || patch.Topic == nil || *patch.Topic != "Cell Biology Midterm" {
		t.Errorf("patch = %+v, want the new topic", patch)
	}
}
