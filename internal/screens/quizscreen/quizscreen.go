package quizscreen

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/screen"
	"github.com/cogniquest/cogniquest/internal/screens"
	"github.com/cogniquest/cogniquest/internal/ui/components"
	"github.com/cogniquest/cogniquest/internal/ui/layout"
)

// QuizScreen runs the active quiz: the generation spinner first, then
// question-by-question answering with optional timers, hints, and
// confidence capture.
type QuizScreen struct {
	deps  screens.Deps
	genID string

	spinner components.Spinner
	picker  components.OptionPicker
	input   components.TextInput

	showQuitConfirm    bool
	awaitingConfidence bool
	showFeedback       bool

	questionStart time.Time
	now           time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates the quiz screen. A non-empty genID means generation is in
// flight and this screen resolves it; empty means the questions already
// exist (resumed session or retake).
func New(deps screens.Deps, genID string) *QuizScreen {
	s := &QuizScreen{
		deps:    deps,
		genID:   genID,
		spinner: components.NewSpinner(),
		now:     time.Now(),
	}
	if deps.State.Status == quiz.StatusInProgress {
		s.syncQuestion()
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.deps.State.Status == quiz.StatusGenerating {
		return tea.Batch(s.spinner.Init(), s.generate())
	}
	return tea.Batch(s.input.Init(), s.tickCmd())
}

func (s *QuizScreen) Title() string {
	if s.deps.State.Status == quiz.StatusGenerating {
		return "Generating"
	}
	if t := s.deps.State.QuizTitle; t != "" {
		return t
	}
	return "Quiz"
}

// Status renders the header's live progress and timer readout.
func (s *QuizScreen) Status() string {
	st := s.deps.State
	if st.Status != quiz.StatusInProgress {
		return ""
	}
	progress := fmt.Sprintf("Q %d/%d", st.CurrentIndex+1, len(st.Questions))
	if remaining, ok := s.remaining(); ok {
		return progress + " · " + formatDuration(remaining)
	}
	return progress
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	st := s.deps.State
	if st.Status == quiz.StatusGenerating {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.awaitingConfidence {
		return []layout.KeyHint{
			{Key: "1-3", Description: "Confidence"},
			{Key: "Enter", Description: "Skip"},
		}
	}
	if s.showFeedback {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}

	hints := []layout.KeyHint{{Key: "Enter", Description: "Answer"}}
	q := st.CurrentQuestion()
	if q != nil && q.Type == quiz.TypeFillBlank {
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+S", Description: "Skip"},
			layout.KeyHint{Key: "Ctrl+G", Description: "Hint"},
			layout.KeyHint{Key: "Tab", Description: "Next"},
		)
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "S", Description: "Skip"},
			layout.KeyHint{Key: "H", Description: "Hint"},
			layout.KeyHint{Key: "←→", Description: "Move"},
		)
	}
	hints = append(hints,
		layout.KeyHint{Key: "Ctrl+E", Description: "Finish"},
		layout.KeyHint{Key: "Esc", Description: "Leave"},
	)
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)

	case hintReadyMsg:
		quiz.ApplyHint(s.deps.State, msg.GenID, msg.QuestionID, msg.Hint)
		return s, nil

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.deps.State.Status == quiz.StatusGenerating {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

// generate runs quiz generation in the background.
func (s *QuizScreen) generate() tea.Cmd {
	st := s.deps.State
	gw := s.deps.Gateway
	genID := s.genID
	materials := st.SourceMaterials
	cfg := st.Config
	return func() tea.Msg {
		title, questions, err := gw.GenerateQuiz(context.Background(), materials, cfg)
		return quizReadyMsg{GenID: genID, Title: title, Questions: questions, Err: err}
	}
}

func (s *QuizScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	st := s.deps.State

	if msg.Err != nil {
		if !quiz.FailGeneration(st, msg.GenID, msg.Err) {
			return s, nil
		}
		return s, func() tea.Msg { return screens.GoToConfigureMsg{} }
	}

	if !quiz.ApplyQuizResult(st, msg.GenID, msg.Title, msg.Questions, time.Now()) {
		return s, nil
	}
	if st.Status == quiz.StatusConfiguring {
		// Provider returned an empty quiz.
		return s, func() tea.Msg { return screens.GoToConfigureMsg{} }
	}

	s.genID = ""
	s.questionStart = time.Now()
	s.syncQuestion()
	return s, tea.Batch(s.deps.SaveSessionCmd(), s.input.Init(), s.tickCmd())
}

// syncQuestion rebuilds the input widgets for the current question,
// preloading any previously recorded answer.
func (s *QuizScreen) syncQuestion() {
	st := s.deps.State
	q := st.CurrentQuestion()
	if q == nil {
		return
	}

	s.showFeedback = false
	s.awaitingConfidence = false
	s.questionStart = time.Now()

	s.input = components.NewTextInput("Type your answer...", false, 60)
	switch q.Type {
	case quiz.TypeFillBlank:
		if prior := st.Answers[q.ID]; prior != nil {
			s.input.SetValue(*prior)
		}
	default:
		s.picker = components.NewOptionPicker(q.Options, q.CorrectAnswer, st.Answers[q.ID])
	}
}

// tickCmd schedules the next timer tick when a timer mode is active.
func (s *QuizScreen) tickCmd() tea.Cmd {
	if s.deps.State.Config.TimerMode == quiz.TimerOff {
		return nil
	}
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// remaining returns the active countdown, if any.
func (s *QuizScreen) remaining() (time.Duration, bool) {
	st := s.deps.State
	switch st.Config.TimerMode {
	case quiz.TimerOverall:
		if st.StartedAt == nil {
			return 0, false
		}
		deadline := st.StartedAt.Add(time.Duration(st.Config.TimerValue) * time.Minute)
		return deadline.Sub(s.now), true
	case quiz.TimerPerQuestion:
		deadline := s.questionStart.Add(time.Duration(st.Config.TimerValue) * time.Second)
		return deadline.Sub(s.now), true
	}
	return 0, false
}

func (s *QuizScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	st := s.deps.State
	if st.Status != quiz.StatusInProgress {
		return s, nil
	}
	s.now = time.Time(msg)

	remaining, ok := s.remaining()
	if !ok || remaining > 0 {
		return s, s.tickCmd()
	}

	if st.Config.TimerMode == quiz.TimerOverall {
		return s.finish()
	}

	// Per-question expiry counts as a skip.
	if q := st.CurrentQuestion(); q != nil {
		quiz.Skip(st, q.ID)
	}
	return s.advance()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	st := s.deps.State
	key := msg.String()

	if st.Status == quiz.StatusGenerating {
		return s, nil
	}

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return screens.GoToDashboardMsg{} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	if s.awaitingConfidence {
		return s.handleConfidenceKey(key)
	}

	if s.showFeedback {
		return s.advance()
	}

	q := st.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.showQuitConfirm = true
		return s, nil
	case "ctrl+e":
		return s.finish()
	}

	if q.Type == quiz.TypeFillBlank {
		return s.handleFillBlankKey(msg, q)
	}
	return s.handleOptionKey(msg, q)
}

func (s *QuizScreen) handleOptionKey(msg tea.KeyMsg, q *quiz.Question) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s.recordAnswer(q, s.picker.Choose())
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if idx < len(q.Options) {
			s.picker.Selected = idx
			return s.recordAnswer(q, s.picker.Choose())
		}
		return s, nil
	case "s":
		quiz.Skip(s.deps.State, q.ID)
		return s.advance()
	case "h":
		return s, s.requestHint(q)
	case "left":
		quiz.Prev(s.deps.State)
		s.syncQuestion()
		return s, nil
	case "right":
		quiz.Next(s.deps.State)
		s.syncQuestion()
		return s, nil
	}

	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleFillBlankKey(msg tea.KeyMsg, q *quiz.Question) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s.recordAnswer(q, s.input.Value())
	case "ctrl+s":
		quiz.Skip(s.deps.State, q.ID)
		return s.advance()
	case "ctrl+g":
		return s, s.requestHint(q)
	case "shift+tab":
		quiz.Prev(s.deps.State)
		s.syncQuestion()
		return s, nil
	case "tab":
		quiz.Next(s.deps.State)
		s.syncQuestion()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// recordAnswer stores the answer and moves to the confidence prompt.
// An answer that trims to empty is recorded as a skip and advances.
func (s *QuizScreen) recordAnswer(q *quiz.Question, answer string) (screen.Screen, tea.Cmd) {
	st := s.deps.State
	quiz.Answer(st, q.ID, answer)
	if st.Answers[q.ID] == nil {
		return s.advance()
	}
	s.awaitingConfidence = true
	return s, s.deps.SaveSessionCmd()
}

func (s *QuizScreen) handleConfidenceKey(key string) (screen.Screen, tea.Cmd) {
	st := s.deps.State
	q := st.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	switch key {
	case "1":
		quiz.SetConfidence(st, q.ID, quiz.ConfidenceGuessing)
	case "2":
		quiz.SetConfidence(st, q.ID, quiz.ConfidenceUnsure)
	case "3":
		quiz.SetConfidence(st, q.ID, quiz.ConfidenceConfident)
	case "enter":
		// Confidence is optional.
	default:
		return s, nil
	}

	s.awaitingConfidence = false

	if st.Config.Feedback == quiz.FeedbackInstant {
		s.showFeedback = true
		s.picker.Reveal()
		return s, s.deps.SaveSessionCmd()
	}
	return s.advance()
}

// requestHint starts hint generation for the question unless one is
// already present or in flight.
func (s *QuizScreen) requestHint(q *quiz.Question) tea.Cmd {
	st := s.deps.State
	if _, ok := st.Hints[q.ID]; ok {
		return nil
	}
	if st.LoadingHints[q.ID] {
		return nil
	}

	genID := quiz.SetHintLoading(st, q.ID)
	gw := s.deps.Gateway
	materials := st.SourceMaterials
	question := *q
	return func() tea.Msg {
		hint := gw.GenerateHint(context.Background(), materials, question)
		return hintReadyMsg{GenID: genID, QuestionID: question.ID, Hint: hint}
	}
}

// advance moves to the next question, or finishes after the last one.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	st := s.deps.State
	if st.CurrentIndex >= len(st.Questions)-1 {
		return s.finish()
	}
	quiz.Next(st)
	s.syncQuestion()
	return s, tea.Batch(s.deps.SaveSessionCmd(), s.input.Init())
}

func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	st := s.deps.State
	if !quiz.Finish(st, time.Now()) {
		return s, nil
	}
	return s, tea.Batch(
		s.deps.SaveSessionCmd(),
		func() tea.Msg { return screens.GoToResultsMsg{} },
	)
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	m := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, sec)
}
