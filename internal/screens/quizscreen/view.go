package quizscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/ui/components"
	"github.com/cogniquest/cogniquest/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	st := s.deps.State

	if st.Status == quiz.StatusGenerating {
		return s.renderGenerating(width)
	}
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderQuestionView(width)
}

func (s *QuizScreen) renderGenerating(width int) string {
	st := s.deps.State
	msg := fmt.Sprintf("%s Generating %d questions from your material...",
		s.spinner.View(), st.Config.NumQuestions)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\n" + msg + "\n\n" + theme.Hint.Render("This can take a little while for long documents."))
}

func renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\nLeave this quiz?\n\nYour answers so far are saved and the quiz\ncan be resumed next time you open CogniQuest.\n\n" +
			theme.Selected.Render("Y") + " leave    " + theme.Selected.Render("N") + " keep going")
}

func (s *QuizScreen) renderQuestionView(width int) string {
	st := s.deps.State
	q := st.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Progress and category line.
	percent := float64(st.CurrentIndex) / float64(len(st.Questions))
	bar := components.NewProgressBar("", percent, false, width-30)
	infoLeft := "  " + bar.View()
	infoRight := lipgloss.NewStyle().Foreground(theme.Secondary).Render(q.Category)
	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", pad) + infoRight + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))) + "\n\n")

	// Question prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		PaddingLeft(2).
		Render(fmt.Sprintf("%d. %s", st.CurrentIndex+1, q.Prompt)))
	b.WriteString("\n\n")

	// Answer area.
	if q.Type == quiz.TypeFillBlank {
		b.WriteString("  Answer: " + s.input.View() + "\n")
	} else {
		b.WriteString(s.picker.View())
	}

	// Hint, once loaded.
	if st.LoadingHints[q.ID] {
		b.WriteString("\n" + theme.Hint.Render("  Thinking of a hint...") + "\n")
	} else if hint, ok := st.Hints[q.ID]; ok {
		b.WriteString("\n" + theme.Hint.Render("  Hint: "+hint) + "\n")
	}

	if s.awaitingConfidence {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Text).Render("  How sure were you?  ") +
			theme.Selected.Render("1") + " Guessing   " +
			theme.Selected.Render("2") + " Unsure   " +
			theme.Selected.Render("3") + " Confident" + "\n")
	}

	if s.showFeedback {
		b.WriteString("\n" + s.renderFeedback(q, width))
	}

	return b.String()
}

// renderFeedback shows correctness and the explanation in instant mode.
func (s *QuizScreen) renderFeedback(q *quiz.Question, width int) string {
	st := s.deps.State

	var verdict string
	if a := st.Answers[q.ID]; a != nil && quiz.IsCorrect(*q, *a) {
		verdict = theme.Correct.Render("  Correct!")
	} else {
		verdict = theme.Incorrect.Render("  Not quite.") + " " +
			lipgloss.NewStyle().Foreground(theme.Text).Render("The answer is: "+q.CorrectAnswer)
	}

	explanation := lipgloss.NewStyle().
		Width(width-4).
		Foreground(theme.TextDim).
		PaddingLeft(2).
		Render(q.Explanation)

	return verdict + "\n\n" + explanation + "\n\n" + theme.Hint.Render("  Press any key to continue") + "\n"
}
