package dashboard

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/router"
	"github.com/cogniquest/cogniquest/internal/screen"
	"github.com/cogniquest/cogniquest/internal/screens"
	"github.com/cogniquest/cogniquest/internal/screens/quizscreen"
	"github.com/cogniquest/cogniquest/internal/screens/results"
	"github.com/cogniquest/cogniquest/internal/screens/upload"
	"github.com/cogniquest/cogniquest/internal/store"
	"github.com/cogniquest/cogniquest/internal/ui/components"
	"github.com/cogniquest/cogniquest/internal/ui/layout"
)

// Focus areas on the dashboard.
const (
	focusMenu = iota
	focusHistory
)

// DashboardScreen is the home base: start a new quiz or work with past
// attempts (review, retake, rename, delete).
type DashboardScreen struct {
	deps  screens.Deps
	menu  components.Menu
	items []store.HistoryItem

	focus         int
	hIndex        int
	pendingDelete bool
	renaming      bool
	renameInput   components.TextInput
	loading       bool
	errMsg        string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(deps screens.Deps) *DashboardScreen {
	s := &DashboardScreen{deps: deps, loading: true}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "New Quiz", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: upload.New(s.deps)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *DashboardScreen) Init() tea.Cmd {
	return s.loadHistory()
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	if s.renaming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save name"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.pendingDelete {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	if s.focus == focusHistory {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Review"},
			{Key: "R", Description: "Retake"},
			{Key: "N", Description: "Rename"},
			{Key: "D", Description: "Delete"},
			{Key: "Tab", Description: "Menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Tab", Description: "History"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// loadHistory reads the attempt list newest first.
func (s *DashboardScreen) loadHistory() tea.Cmd {
	repo := s.deps.History
	if repo == nil {
		s.loading = false
		return nil
	}
	return func() tea.Msg {
		items, err := repo.ListHistory(context.Background())
		return historyLoadedMsg{Items: items, Err: err}
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.items = msg.Items
		if s.hIndex >= len(s.items) {
			s.hIndex = len(s.items) - 1
		}
		if s.hIndex < 0 {
			s.hIndex = 0
		}
		return s, nil

	case historyChangedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.loadHistory()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.renaming {
		return s.handleRenameKey(msg)
	}
	if s.pendingDelete {
		return s.handleDeleteConfirmKey(msg)
	}

	if msg.String() == "tab" && len(s.items) > 0 {
		if s.focus == focusMenu {
			s.focus = focusHistory
		} else {
			s.focus = focusMenu
		}
		return s, nil
	}

	if s.focus == focusHistory {
		return s.handleHistoryKey(msg)
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DashboardScreen) handleHistoryKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	item := s.selectedItem()
	if item == nil {
		s.focus = focusMenu
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.hIndex > 0 {
			s.hIndex--
		}
	case "down", "j":
		if s.hIndex < len(s.items)-1 {
			s.hIndex++
		}
	case "enter":
		return s.review(*item)
	case "r":
		return s.retake(*item)
	case "d":
		s.pendingDelete = true
	case "n":
		s.renaming = true
		s.renameInput = components.NewTextInput("Quiz name", false, 60)
		s.renameInput.SetValue(item.Topic)
		return s, s.renameInput.Init()
	case "esc":
		s.focus = focusMenu
	}
	return s, nil
}

func (s *DashboardScreen) handleDeleteConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		s.pendingDelete = false
		item := s.selectedItem()
		if item == nil {
			return s, nil
		}
		repo := s.deps.History
		id := item.ID
		return s, func() tea.Msg {
			return historyChangedMsg{Err: repo.DeleteHistory(context.Background(), id)}
		}
	case "n", "N", "esc":
		s.pendingDelete = false
	}
	return s, nil
}

func (s *DashboardScreen) handleRenameKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.renaming = false
		return s, nil
	case "enter":
		s.renaming = false
		item := s.selectedItem()
		if item == nil {
			return s, nil
		}
		topic := s.renameInput.Value()
		repo := s.deps.History
		id := item.ID
		return s, func() tea.Msg {
			patch := store.HistoryPatch{Topic: &topic}
			return historyChangedMsg{Err: repo.UpdateHistory(context.Background(), id, patch)}
		}
	}

	var cmd tea.Cmd
	s.renameInput, cmd = s.renameInput.Update(msg)
	return s, cmd
}

func (s *DashboardScreen) selectedItem() *store.HistoryItem {
	if s.hIndex < 0 || s.hIndex >= len(s.items) {
		return nil
	}
	return &s.items[s.hIndex]
}

// review opens a past attempt read-only.
func (s *DashboardScreen) review(item store.HistoryItem) (screen.Screen, tea.Cmd) {
	if err := quiz.ReviewHistory(s.deps.State, item.ID, item.Payload); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(s.deps)}
	}
}

// retake reloads the attempt's questions and starts answering from
// scratch. The finished retake overwrites the same history record.
func (s *DashboardScreen) retake(item store.HistoryItem) (screen.Screen, tea.Cmd) {
	st := s.deps.State
	if err := quiz.ReviewHistory(st, item.ID, item.Payload); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if err := quiz.Retake(st, time.Now()); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s, tea.Batch(
		s.deps.SaveSessionCmd(),
		func() tea.Msg {
			return router.ResetToMsg{Screen: quizscreen.New(s.deps, "")}
		},
	)
}
