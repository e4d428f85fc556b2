package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cogniquest/cogniquest/internal/ui/theme"
)

func (s *DashboardScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("  Turn anything into a quiz") + "\n\n")
	b.WriteString(s.menu.View() + "\n")

	header := "  Past quizzes"
	if s.focus == focusHistory {
		header = theme.Selected.Render(header)
	} else {
		header = theme.Subtitle.Render(header)
	}
	b.WriteString(header + "\n")

	switch {
	case s.loading:
		b.WriteString(theme.Hint.Render("  Loading...") + "\n")
	case len(s.items) == 0:
		b.WriteString(theme.Hint.Render("  Nothing yet. Your finished quizzes land here.") + "\n")
	default:
		b.WriteString(s.renderHistory(width, height))
	}

	if s.pendingDelete {
		b.WriteString("\n" + theme.Incorrect.Render("  Delete this attempt? (y/n)") + "\n")
	}
	if s.renaming {
		b.WriteString("\n  New name: " + s.renameInput.View() + "\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render("  "+s.errMsg) + "\n")
	}

	return b.String()
}

func (s *DashboardScreen) renderHistory(width, height int) string {
	var b strings.Builder

	visible := height - 10
	if visible < 3 {
		visible = 3
	}
	start := 0
	if s.hIndex >= visible {
		start = s.hIndex - visible + 1
	}

	for i := start; i < len(s.items) && i < start+visible; i++ {
		item := s.items[i]

		topic := item.Topic
		if topic == "" {
			topic = "(untitled)"
		}
		maxTopic := width - 40
		if maxTopic < 12 {
			maxTopic = 12
		}
		if r := []rune(topic); len(r) > maxTopic {
			topic = string(r[:maxTopic-3]) + "..."
		}

		line := fmt.Sprintf("%-*s  %5.2g/%-3d  %s",
			maxTopic, topic, item.Score, item.TotalQuestions,
			item.Timestamp.Format("Jan 2 15:04"))

		if s.focus == focusHistory && i == s.hIndex {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("    "+line) + "\n")
		}
	}

	return b.String()
}
