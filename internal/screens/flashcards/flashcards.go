package flashcards

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/router"
	"github.com/cogniquest/cogniquest/internal/screen"
	"github.com/cogniquest/cogniquest/internal/screens"
	"github.com/cogniquest/cogniquest/internal/ui/layout"
	"github.com/cogniquest/cogniquest/internal/ui/theme"
)

// FlashcardsScreen flips through the study cards generated for the
// questions the learner missed.
type FlashcardsScreen struct {
	deps    screens.Deps
	index   int
	flipped bool
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)
var _ screen.StatusProvider = (*FlashcardsScreen)(nil)

// New creates the flashcards screen over the cards already on the state.
func New(deps screens.Deps) *FlashcardsScreen {
	return &FlashcardsScreen{deps: deps}
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardsScreen) Status() string {
	cards := s.deps.State.Flashcards
	if len(cards) == 0 {
		return ""
	}
	return fmt.Sprintf("Card %d/%d", s.index+1, len(cards))
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Card"},
		{Key: "Esc", Description: "Back to results"},
	}
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	cards := s.deps.State.Flashcards

	switch kmsg.String() {
	case "esc", "q":
		quiz.ExitFlashcards(s.deps.State)
		return s, tea.Batch(
			s.deps.SaveSessionCmd(),
			func() tea.Msg { return router.PopScreenMsg{} },
		)

	case "space", "enter":
		s.flipped = !s.flipped

	case "left", "h":
		if s.index > 0 {
			s.index--
			s.flipped = false
		}

	case "right", "l":
		if s.index < len(cards)-1 {
			s.index++
			s.flipped = false
		}
	}

	return s, nil
}

func (s *FlashcardsScreen) View(width, height int) string {
	cards := s.deps.State.Flashcards
	if len(cards) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo flashcards to show.")
	}

	card := cards[s.index]

	side := theme.Subtitle.Render("front")
	text := card.Front
	if s.flipped {
		side = theme.Subtitle.Render("back")
		text = card.Back
	}

	cardWidth := width - 16
	if cardWidth < 30 {
		cardWidth = 30
	}

	face := theme.Card.
		Width(cardWidth).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Text).Bold(!s.flipped).Render(text))

	body := side + "\n\n" + face + "\n\n" + theme.Hint.Render("space to flip")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
