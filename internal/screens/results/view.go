package results

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	if s.focus == focusQuestions || s.focus == focusChatMode {
		return s.renderQuestionBrowser(width, height)
	}
	return s.renderOverview(width)
}

func (s *ResultsScreen) renderOverview(width int) string {
	st := s.deps.State
	r := s.result

	var b strings.Builder

	title := st.QuizTitle
	if title == "" {
		title = "Quiz complete"
	}
	b.WriteString(theme.Title.Render("  "+title) + "\n\n")

	scoreLine := fmt.Sprintf("  Score %s   %s correct · %s wrong · %s skipped   Accuracy %.0f%%",
		theme.Correct.Render(fmt.Sprintf("%.2g/%d", r.Score, r.Total)),
		theme.Correct.Render(fmt.Sprintf("%d", r.Correct)),
		theme.Incorrect.Render(fmt.Sprintf("%d", r.Incorrect)),
		theme.Skipped.Render(fmt.Sprintf("%d", r.Skipped)),
		r.Accuracy,
	)
	b.WriteString(scoreLine + "\n")

	if r.BlindSpots > 0 {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  %d blind spot(s): confident but wrong", r.BlindSpots)) + "\n")
	}
	b.WriteString("\n")

	// Category breakdown, stable order.
	cats := make([]string, 0, len(r.ByCategory))
	for cat := range r.ByCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		tally := r.ByCategory[cat]
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("    %-24s %d/%d", cat, tally[0], tally[1])) + "\n")
	}
	b.WriteString("\n")

	switch {
	case st.GeneratingSummary:
		b.WriteString("  " + s.spinner.View() + " Writing your performance summary...\n\n")
	case st.Summary != "":
		summary := lipgloss.NewStyle().
			Width(width - 6).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(st.Summary)
		b.WriteString(summary + "\n\n")
	}

	if st.GeneratingFlashcards {
		b.WriteString("  " + s.spinner.View() + " Building flashcards...\n\n")
	}

	b.WriteString(s.menu.View())

	if s.notice != "" {
		b.WriteString("\n" + theme.Hint.Render("  "+s.notice) + "\n")
	}

	return b.String()
}

// renderQuestionBrowser lists the questions with their outcomes for
// picking one to discuss with the tutor.
func (s *ResultsScreen) renderQuestionBrowser(width, height int) string {
	st := s.deps.State

	var b strings.Builder
	b.WriteString(theme.Title.Render("  Pick a question to discuss") + "\n\n")

	// Keep the selection visible on small terminals.
	visible := height - 8
	if visible < 3 {
		visible = 3
	}
	start := 0
	if s.qIndex >= visible {
		start = s.qIndex - visible + 1
	}

	for i := start; i < len(st.Questions) && i < start+visible; i++ {
		q := st.Questions[i]
		line := fmt.Sprintf("%d. %s", i+1, truncate(q.Prompt, width-16))

		mark := theme.Skipped.Render("·")
		if a := st.Answers[q.ID]; a != nil {
			if quiz.IsCorrect(q, *a) {
				mark = theme.Correct.Render("✓")
			} else {
				mark = theme.Incorrect.Render("✗")
			}
		}

		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.qIndex {
			prefix = "  ▸ "
			style = theme.Selected
		}
		b.WriteString(prefix + mark + " " + style.Render(line) + "\n")
	}

	b.WriteString("\n")
	if s.focus == focusChatMode {
		b.WriteString(s.mode.View(true) + "\n")
		b.WriteString(theme.Hint.Render("  Enter to start the chat") + "\n")
	}

	return b.String()
}

func truncate(text string, limit int) string {
	if limit < 4 {
		limit = 4
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
