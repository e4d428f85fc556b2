package configure

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/router"
	"github.com/cogniquest/cogniquest/internal/screen"
	"github.com/cogniquest/cogniquest/internal/screens"
	"github.com/cogniquest/cogniquest/internal/screens/quizscreen"
	"github.com/cogniquest/cogniquest/internal/ui/components"
	"github.com/cogniquest/cogniquest/internal/ui/layout"
	"github.com/cogniquest/cogniquest/internal/ui/theme"
)

// Rows on the configuration screen, top to bottom. Conditional rows
// (penalty, timer value) are skipped while hidden.
const (
	rowCount = iota
	rowVariety
	rowComplexity
	rowTone
	rowFeedback
	rowNegative
	rowPenalty
	rowTimerMode
	rowTimerValue
	rowStart
	rowMax
)

// ConfigureScreen edits the quiz configuration and launches generation.
type ConfigureScreen struct {
	deps screens.Deps

	count      components.TextInput
	variety    components.Cycler
	complexity components.Cycler
	tone       components.Cycler
	feedback   components.Cycler
	negative   components.Cycler
	penalty    components.Cycler
	timerMode  components.Cycler
	timerValue components.TextInput

	focus  int
	errMsg string
}

var _ screen.Screen = (*ConfigureScreen)(nil)
var _ screen.KeyHintProvider = (*ConfigureScreen)(nil)

// New creates the configuration screen preloaded from the current state,
// so retakes and resumed sessions keep their previous settings.
func New(deps screens.Deps) *ConfigureScreen {
	cfg := deps.State.Config

	count := components.NewTextInput("10", true, 3)
	count.SetValue(strconv.Itoa(cfg.NumQuestions))

	timerValue := components.NewTextInput("", true, 3)
	if cfg.TimerValue > 0 {
		timerValue.SetValue(strconv.Itoa(cfg.TimerValue))
	}

	negative := "Off"
	if cfg.NegativeMarking {
		negative = "On"
	}

	return &ConfigureScreen{
		deps:  deps,
		count: count,
		variety: components.NewCycler("Question types", []string{
			string(quiz.VarietyMixed),
			string(quiz.VarietyMCQOnly),
			string(quiz.VarietyTrueFalse),
			string(quiz.VarietyFillBlank),
		}, string(cfg.Variety)),
		complexity: components.NewCycler("Difficulty", []string{
			string(quiz.ComplexityEasy),
			string(quiz.ComplexityMedium),
			string(quiz.ComplexityHard),
		}, string(cfg.Complexity)),
		tone: components.NewCycler("Tone", []string{
			"neutral", "encouraging", "humorous", "exam-strict",
		}, cfg.Tone),
		feedback: components.NewCycler("Feedback", []string{
			string(quiz.FeedbackEnd),
			string(quiz.FeedbackInstant),
		}, string(cfg.Feedback)),
		negative: components.NewCycler("Negative marking", []string{"Off", "On"}, negative),
		penalty: components.NewCycler("Penalty per wrong", []string{
			"0.25", "0.5", "1",
		}, strconv.FormatFloat(cfg.Penalty, 'g', -1, 64)),
		timerMode: components.NewCycler("Timer", []string{
			string(quiz.TimerOff),
			string(quiz.TimerOverall),
			string(quiz.TimerPerQuestion),
		}, string(cfg.TimerMode)),
		timerValue: timerValue,
		errMsg:     deps.State.Err,
	}
}

func (s *ConfigureScreen) Init() tea.Cmd {
	return s.count.Init()
}

func (s *ConfigureScreen) Title() string {
	return "Quiz Setup"
}

func (s *ConfigureScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Dashboard"},
	}
}

// rowHidden reports whether a conditional row is currently inapplicable.
func (s *ConfigureScreen) rowHidden(row int) bool {
	switch row {
	case rowPenalty:
		return s.negative.Value() != "On"
	case rowTimerValue:
		return s.timerMode.Value() == string(quiz.TimerOff)
	}
	return false
}

func (s *ConfigureScreen) moveFocus(delta int) {
	for i := 0; i < rowMax; i++ {
		s.focus = (s.focus + delta + rowMax) % rowMax
		if !s.rowHidden(s.focus) {
			return
		}
	}
}

func (s *ConfigureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return screens.GoToDashboardMsg{} }

	case "up", "shift+tab":
		s.moveFocus(-1)
		return s, nil

	case "down", "tab":
		s.moveFocus(1)
		return s, nil

	case "left":
		s.cycle(-1)
		return s, nil

	case "right":
		s.cycle(1)
		return s, nil

	case "enter":
		if s.focus == rowStart {
			return s.start()
		}
		s.moveFocus(1)
		return s, nil
	}

	var cmd tea.Cmd
	switch s.focus {
	case rowCount:
		s.count, cmd = s.count.Update(msg)
	case rowTimerValue:
		s.timerValue, cmd = s.timerValue.Update(msg)
	}
	return s, cmd
}

func (s *ConfigureScreen) cycle(delta int) {
	cyclers := map[int]*components.Cycler{
		rowVariety:    &s.variety,
		rowComplexity: &s.complexity,
		rowTone:       &s.tone,
		rowFeedback:   &s.feedback,
		rowNegative:   &s.negative,
		rowPenalty:    &s.penalty,
		rowTimerMode:  &s.timerMode,
	}
	c, ok := cyclers[s.focus]
	if !ok {
		return
	}
	if delta > 0 {
		c.Next()
	} else {
		c.Prev()
	}
}

// buildConfig assembles a QuizConfig from the current field values.
func (s *ConfigureScreen) buildConfig() (quiz.QuizConfig, error) {
	cfg := s.deps.State.Config

	count, err := s.count.NumericValue()
	if err != nil {
		return cfg, err
	}
	cfg.NumQuestions = count

	cfg.Variety = quiz.Variety(s.variety.Value())
	cfg.Complexity = quiz.Complexity(s.complexity.Value())
	cfg.Tone = s.tone.Value()
	cfg.Feedback = quiz.FeedbackMode(s.feedback.Value())
	cfg.NegativeMarking = s.negative.Value() == "On"
	if cfg.NegativeMarking {
		cfg.Penalty, _ = strconv.ParseFloat(s.penalty.Value(), 64)
	}

	cfg.TimerMode = quiz.TimerMode(s.timerMode.Value())
	cfg.TimerValue = 0
	if cfg.TimerMode != quiz.TimerOff {
		v, err := s.timerValue.NumericValue()
		if err != nil {
			return cfg, err
		}
		cfg.TimerValue = v
	}

	return cfg, nil
}

// start validates and hands off to the quiz screen, which owns the
// pending generation.
func (s *ConfigureScreen) start() (screen.Screen, tea.Cmd) {
	cfg, err := s.buildConfig()
	if err != nil {
		s.errMsg = "enter a number for every numeric field"
		return s, nil
	}

	genID, err := quiz.BeginGeneration(s.deps.State, cfg)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	next := quizscreen.New(s.deps, genID)
	return s, tea.Batch(
		s.deps.SaveSessionCmd(),
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
	)
}

func (s *ConfigureScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("  Configure your quiz") + "\n\n")

	b.WriteString(s.inputRow(rowCount, "Questions (5-150)", s.count.View()))
	b.WriteString(s.variety.View(s.focus == rowVariety) + "\n")
	b.WriteString(s.complexity.View(s.focus == rowComplexity) + "\n")
	b.WriteString(s.tone.View(s.focus == rowTone) + "\n")
	b.WriteString(s.feedback.View(s.focus == rowFeedback) + "\n")
	b.WriteString(s.negative.View(s.focus == rowNegative) + "\n")
	if !s.rowHidden(rowPenalty) {
		b.WriteString(s.penalty.View(s.focus == rowPenalty) + "\n")
	}
	b.WriteString(s.timerMode.View(s.focus == rowTimerMode) + "\n")
	if !s.rowHidden(rowTimerValue) {
		label := "Minutes total"
		if s.timerMode.Value() == string(quiz.TimerPerQuestion) {
			label = "Seconds per question"
		}
		b.WriteString(s.inputRow(rowTimerValue, label, s.timerValue.View()))
	}

	b.WriteString("\n")
	start := components.NewButton("Start Quiz", s.focus == rowStart, nil)
	b.WriteString(start.View() + "\n")

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render("  "+s.errMsg) + "\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *ConfigureScreen) inputRow(row int, label, view string) string {
	line := "  " + padLabel(label) + " " + view
	if s.focus == row {
		return theme.Selected.Render("  "+padLabel(label)) + " " + view + "\n"
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
}

func padLabel(label string) string {
	for len(label) < 22 {
		label += " "
	}
	return label
}
