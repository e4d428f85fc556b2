package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/cogniquest/cogniquest/internal/ui/theme"
)

// Cycler is a horizontal value selector used on the configuration
// screen: left/right cycles through a fixed option list.
type Cycler struct {
	Label   string
	Options []string
	Index   int
}

// NewCycler creates a cycler preselecting the given value when present.
func NewCycler(label string, options []string, current string) Cycler {
	c := Cycler{Label: label, Options: options}
	for i, opt := range options {
		if opt == current {
			c.Index = i
		}
	}
	return c
}

// Next advances to the next option, wrapping around.
func (c *Cycler) Next() {
	c.Index = (c.Index + 1) % len(c.Options)
}

// Prev moves to the previous option, wrapping around.
func (c *Cycler) Prev() {
	c.Index = (c.Index - 1 + len(c.Options)) % len(c.Options)
}

// Value returns the currently selected option.
func (c Cycler) Value() string {
	return c.Options[c.Index]
}

// View renders the cycler line. Focused rows get the selection style.
func (c Cycler) View(focused bool) string {
	value := fmt.Sprintf("‹ %s ›", c.Value())
	if focused {
		return theme.Selected.Render(fmt.Sprintf("  %-22s %s", c.Label, value))
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("  %-22s %s", c.Label, c.Value()))
}
