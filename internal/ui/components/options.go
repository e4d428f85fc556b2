package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cogniquest/cogniquest/internal/ui/theme"
)

// OptionPicker is a vertical answer selector for MCQ and True/False
// questions. Correctness coloring is applied only after Reveal.
type OptionPicker struct {
	Options       []string
	CorrectAnswer string
	Selected      int
	Revealed      bool
	Chosen        string
}

// NewOptionPicker creates a picker over the question's options. A
// previously recorded answer preselects its option.
func NewOptionPicker(options []string, correctAnswer string, prior *string) OptionPicker {
	p := OptionPicker{
		Options:       options,
		CorrectAnswer: correctAnswer,
	}
	if prior != nil {
		for i, opt := range options {
			if opt == *prior {
				p.Selected = i
				p.Chosen = *prior
			}
		}
	}
	return p
}

// Update handles keyboard navigation.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	if p.Revealed {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}

	return p, nil
}

// Choose records the currently highlighted option as the answer.
func (p *OptionPicker) Choose() string {
	p.Chosen = p.Options[p.Selected]
	return p.Chosen
}

// Reveal switches the picker to feedback coloring.
func (p *OptionPicker) Reveal() {
	p.Revealed = true
}

// View renders the options.
func (p OptionPicker) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range p.Options {
		label := "•"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == p.Selected && !p.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)
		marker := ""
		if opt == p.Chosen {
			marker = "  ←"
		}

		if p.Revealed {
			switch {
			case opt == p.CorrectAnswer:
				s += theme.Correct.Render(line+marker) + "\n"
			case opt == p.Chosen:
				s += theme.Incorrect.Render(line+marker) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		if i == p.Selected {
			s += theme.Selected.Render(line+marker) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line+marker) + "\n"
		}
	}

	return s
}
