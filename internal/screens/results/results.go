package results

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/router"
	"github.com/cogniquest/cogniquest/internal/screen"
	"github.com/cogniquest/cogniquest/internal/screens"
	"github.com/cogniquest/cogniquest/internal/screens/chat"
	"github.com/cogniquest/cogniquest/internal/screens/configure"
	"github.com/cogniquest/cogniquest/internal/screens/flashcards"
	"github.com/cogniquest/cogniquest/internal/screens/quizscreen"
	"github.com/cogniquest/cogniquest/internal/store"
	"github.com/cogniquest/cogniquest/internal/ui/components"
	"github.com/cogniquest/cogniquest/internal/ui/layout"
)

// Focus areas on the results screen.
const (
	focusMenu = iota
	focusQuestions
	focusChatMode
)

// ResultsScreen shows the score breakdown, generates the performance
// summary, and branches into flashcards and tutoring chat. It also
// persists the attempt to history, overwriting on retakes.
type ResultsScreen struct {
	deps    screens.Deps
	result  quiz.Result
	menu    components.Menu
	spinner components.Spinner
	mode    components.Cycler

	focus  int
	qIndex int
	notice string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen over the completed attempt.
func New(deps screens.Deps) *ResultsScreen {
	st := deps.State
	s := &ResultsScreen{
		deps:    deps,
		result:  quiz.Evaluate(st.Questions, st.Answers, st.Confidence, st.Config),
		spinner: components.NewSpinner(),
		mode: components.NewCycler("Tutor style", []string{
			string(quiz.ChatStandard),
			string(quiz.ChatSocratic),
			string(quiz.ChatELI5),
		}, string(quiz.ChatStandard)),
	}
	s.menu = components.NewMenu(s.menuItems())
	return s
}

func (s *ResultsScreen) menuItems() []components.MenuItem {
	return []components.MenuItem{
		{Label: "Discuss a question with the tutor", Action: func() tea.Cmd {
			s.focus = focusQuestions
			return nil
		}},
		{Label: "Flashcards for missed questions", Action: s.startFlashcards},
		{Label: "Retake this quiz", Action: s.retake},
		{Label: "New quiz from the same material", Action: s.restart},
		{Label: "Back to dashboard", Action: func() tea.Cmd {
			return func() tea.Msg { return screens.GoToDashboardMsg{} }
		}},
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	st := s.deps.State
	cmds := []tea.Cmd{s.spinner.Init()}
	if !st.ReviewingHistory {
		// Reviews are read-only: no history write, no summary call. A
		// reviewed attempt shows whatever summary its snapshot carried.
		cmds = append(cmds, s.persistHistory())
		if st.Summary == "" && !st.GeneratingSummary {
			cmds = append(cmds, s.startSummary())
		}
	}
	return tea.Batch(cmds...)
}

func (s *ResultsScreen) Title() string {
	if s.deps.State.ReviewingHistory {
		return "Past Attempt"
	}
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	switch s.focus {
	case focusQuestions:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Question"},
			{Key: "Enter", Description: "Discuss"},
			{Key: "Esc", Description: "Back"},
		}
	case focusChatMode:
		return []layout.KeyHint{
			{Key: "←→", Description: "Tutor style"},
			{Key: "Enter", Description: "Start chat"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Dashboard"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historySavedMsg:
		return s.handleHistorySaved(msg)

	case summaryReadyMsg:
		return s.handleSummaryReady(msg)

	case flashcardsReadyMsg:
		return s.handleFlashcardsReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.deps.State.GeneratingSummary || s.deps.State.GeneratingFlashcards {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *ResultsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	st := s.deps.State

	switch s.focus {
	case focusQuestions:
		switch msg.String() {
		case "esc":
			s.focus = focusMenu
		case "up", "k":
			if s.qIndex > 0 {
				s.qIndex--
			}
		case "down", "j":
			if s.qIndex < len(st.Questions)-1 {
				s.qIndex++
			}
		case "enter":
			s.focus = focusChatMode
		}
		return s, nil

	case focusChatMode:
		switch msg.String() {
		case "esc":
			s.focus = focusQuestions
		case "left":
			s.mode.Prev()
		case "right":
			s.mode.Next()
		case "enter":
			return s.startChat()
		}
		return s, nil
	}

	if msg.String() == "esc" {
		if st.ReviewingHistory {
			quiz.GoToDashboard(st)
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, func() tea.Msg { return screens.GoToDashboardMsg{} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// persistHistory writes the attempt. A fresh attempt inserts; a retake
// overwrites the record it came from.
func (s *ResultsScreen) persistHistory() tea.Cmd {
	st := s.deps.State
	repo := s.deps.History
	if repo == nil {
		return nil
	}

	when := time.Now()
	if st.FinishedAt != nil {
		when = *st.FinishedAt
	}
	item := store.HistoryItem{
		Timestamp:      when,
		Topic:          st.QuizTitle,
		Score:          s.result.Score,
		TotalQuestions: len(st.Questions),
		Payload:        st.Snapshot(),
	}
	id := st.CurrentHistoryID

	return func() tea.Msg {
		ctx := context.Background()
		if id == 0 {
			newID, err := repo.SaveHistory(ctx, item)
			return historySavedMsg{ID: newID, Err: err}
		}
		patch := store.HistoryPatch{
			Topic:          &item.Topic,
			Score:          &item.Score,
			TotalQuestions: &item.TotalQuestions,
			Timestamp:      &item.Timestamp,
			Payload:        &item.Payload,
		}
		return historySavedMsg{ID: id, Err: repo.UpdateHistory(ctx, id, patch)}
	}
}

func (s *ResultsScreen) handleHistorySaved(msg historySavedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// History is best-effort; the results stay usable without it.
		return s, nil
	}
	s.deps.State.CurrentHistoryID = msg.ID
	return s, s.deps.SaveSessionCmd()
}

func (s *ResultsScreen) startSummary() tea.Cmd {
	st := s.deps.State
	genID, err := quiz.BeginSummary(st)
	if err != nil {
		return nil
	}

	gw := s.deps.Gateway
	questions := st.Questions
	answers := st.Answers
	confidence := st.Confidence
	cfg := st.Config
	return func() tea.Msg {
		text, err := gw.GenerateSummary(context.Background(), questions, answers, confidence, cfg)
		return summaryReadyMsg{GenID: genID, Text: text, Err: err}
	}
}

func (s *ResultsScreen) handleSummaryReady(msg summaryReadyMsg) (screen.Screen, tea.Cmd) {
	st := s.deps.State
	if msg.Err != nil {
		quiz.FailSummary(st, msg.GenID, msg.Err)
		return s, nil
	}
	if !quiz.ApplySummary(st, msg.GenID, msg.Text) {
		return s, nil
	}

	// Re-persist so the stored attempt carries the summary.
	cmds := []tea.Cmd{s.deps.SaveSessionCmd()}
	if !st.ReviewingHistory {
		cmds = append(cmds, s.persistHistory())
	}
	return s, tea.Batch(cmds...)
}

func (s *ResultsScreen) startFlashcards() tea.Cmd {
	st := s.deps.State
	if st.GeneratingFlashcards {
		return nil
	}

	// Already generated this attempt, jump straight in.
	if len(st.Flashcards) > 0 {
		st.Status = quiz.StatusFlashcards
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: flashcards.New(s.deps)}
		}
	}

	if len(s.result.IncorrectQuestions) == 0 {
		s.notice = "Nothing missed, nothing to drill. Nice work!"
		return nil
	}

	genID, err := quiz.BeginFlashcards(st)
	if err != nil {
		return nil
	}

	gw := s.deps.Gateway
	incorrect := s.result.IncorrectQuestions
	materials := st.SourceMaterials
	return func() tea.Msg {
		cards, err := gw.GenerateFlashcards(context.Background(), incorrect, materials)
		return flashcardsReadyMsg{GenID: genID, Cards: cards, Err: err}
	}
}

func (s *ResultsScreen) handleFlashcardsReady(msg flashcardsReadyMsg) (screen.Screen, tea.Cmd) {
	st := s.deps.State
	if msg.Err != nil {
		quiz.FailFlashcards(st, msg.GenID, msg.Err)
		s.notice = st.Err
		return s, nil
	}
	if !quiz.ApplyFlashcards(st, msg.GenID, msg.Cards) {
		return s, nil
	}
	if st.Status != quiz.StatusFlashcards {
		s.notice = "Nothing missed, nothing to drill. Nice work!"
		return s, nil
	}

	return s, tea.Batch(
		s.deps.SaveSessionCmd(),
		func() tea.Msg {
			return router.PushScreenMsg{Screen: flashcards.New(s.deps)}
		},
	)
}

func (s *ResultsScreen) startChat() (screen.Screen, tea.Cmd) {
	st := s.deps.State
	q := st.QuestionAt(s.qIndex)
	if q == nil {
		return s, nil
	}

	if err := quiz.StartChat(st, q.ID, quiz.ChatMode(s.mode.Value())); err != nil {
		s.notice = err.Error()
		return s, nil
	}

	s.focus = focusMenu
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: chat.New(s.deps)}
	}
}

func (s *ResultsScreen) retake() tea.Cmd {
	if err := quiz.Retake(s.deps.State, time.Now()); err != nil {
		s.notice = err.Error()
		return nil
	}
	return tea.Batch(
		s.deps.SaveSessionCmd(),
		func() tea.Msg {
			return router.ResetToMsg{Screen: quizscreen.New(s.deps, "")}
		},
	)
}

func (s *ResultsScreen) restart() tea.Cmd {
	quiz.Restart(s.deps.State)
	return tea.Batch(
		s.deps.SaveSessionCmd(),
		func() tea.Msg {
			return router.ResetToMsg{Screen: configure.New(s.deps)}
		},
	)
}
