package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/cogniquest/cogniquest/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with CogniQuest styling.
type Spinner struct {
	Model spinner.Model
}

// NewSpinner creates a dot spinner in the accent color.
func NewSpinner() Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.Selected
	return Spinner{Model: s}
}

// Init starts the spinner ticking.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the current frame.
func (s Spinner) View() string {
	return s.Model.View()
}
