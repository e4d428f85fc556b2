package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/router"
	"github.com/cogniquest/cogniquest/internal/screen"
	"github.com/cogniquest/cogniquest/internal/screens"
	"github.com/cogniquest/cogniquest/internal/ui/components"
	"github.com/cogniquest/cogniquest/internal/ui/layout"
	"github.com/cogniquest/cogniquest/internal/ui/theme"
)

// ChatScreen is the per-question tutoring dialogue. Assistant turns
// stream in chunk by chunk; each chunk message schedules the next read.
type ChatScreen struct {
	deps  screens.Deps
	input components.TextInput

	// cancel stops the in-flight stream when the user leaves or starts
	// a new turn.
	cancel context.CancelFunc
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.StatusProvider = (*ChatScreen)(nil)

// New creates the chat screen. StartChat must have run already.
func New(deps screens.Deps) *ChatScreen {
	return &ChatScreen{
		deps:  deps,
		input: components.NewTextInput("Ask the tutor anything about this question...", false, 0),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Tutor Chat"
}

// Status shows the active tutoring style in the header.
func (s *ChatScreen) Status() string {
	if c := s.deps.State.Chat; c != nil {
		return string(c.Mode)
	}
	return ""
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+O", Description: "Tutor style"},
		{Key: "Esc", Description: "Back to results"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case chunkMsg:
		return s.handleChunk(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	st := s.deps.State
	c := st.Chat
	if c == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg.String() {
	case "esc":
		s.stopStream()
		quiz.ExitChat(st)
		return s, tea.Batch(
			s.deps.SaveSessionCmd(),
			func() tea.Msg { return router.PopScreenMsg{} },
		)

	case "ctrl+o":
		c.Mode = nextMode(c.Mode)
		return s, nil

	case "enter":
		return s.send()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func nextMode(m quiz.ChatMode) quiz.ChatMode {
	switch m {
	case quiz.ChatStandard:
		return quiz.ChatSocratic
	case quiz.ChatSocratic:
		return quiz.ChatELI5
	default:
		return quiz.ChatStandard
	}
}

// send appends the user turn, opens the stream, and seeds an empty
// assistant message for the chunks to land in.
func (s *ChatScreen) send() (screen.Screen, tea.Cmd) {
	st := s.deps.State
	c := st.Chat
	text := strings.TrimSpace(s.input.Value())
	if text == "" || c.Streaming {
		return s, nil
	}

	c.Messages = append(c.Messages, quiz.ChatMessage{Role: quiz.ChatRoleUser, Text: text})
	turn := *c
	c.Messages = append(c.Messages, quiz.ChatMessage{Role: quiz.ChatRoleAssistant, Text: ""})
	c.Streaming = true
	s.input.SetValue("")

	genID := st.StampGeneration(quiz.SlotChat)
	gw := s.deps.Gateway
	materials := st.SourceMaterials

	s.stopStream()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	return s, func() tea.Msg {
		ch := gw.Chat(ctx, turn, materials)
		return readChunk(genID, ch)
	}
}

// stopStream releases the previous turn's stream, if any.
func (s *ChatScreen) stopStream() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// readChunk blocks on the next chunk. A closed channel without a final
// Done marker still terminates the turn.
func readChunk(genID string, ch <-chan llm.StreamChunk) chunkMsg {
	c, ok := <-ch
	if !ok {
		c = llm.StreamChunk{Done: true}
	}
	return chunkMsg{GenID: genID, Chunk: c, ch: ch}
}

func (s *ChatScreen) handleChunk(msg chunkMsg) (screen.Screen, tea.Cmd) {
	st := s.deps.State
	c := st.Chat
	if c == nil || !st.GenerationCurrent(quiz.SlotChat, msg.GenID) {
		return s, nil
	}

	if len(c.Messages) > 0 {
		last := len(c.Messages) - 1
		if msg.Chunk.Err != nil {
			// A failed turn replaces whatever partial text arrived.
			c.Messages[last].Text = msg.Chunk.Text
		} else if msg.Chunk.Text != "" {
			c.Messages[last].Text += msg.Chunk.Text
		}
	}

	if msg.Chunk.Done {
		c.Streaming = false
		s.stopStream()
		return s, s.deps.SaveSessionCmd()
	}

	return s, func() tea.Msg { return readChunk(msg.GenID, msg.ch) }
}

func (s *ChatScreen) View(width, height int) string {
	c := s.deps.State.Chat
	if c == nil {
		return ""
	}

	var b strings.Builder

	// Question context banner.
	banner := theme.Card.Width(width - 4).Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Question.Prompt) + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answer: "+c.Question.CorrectAnswer+"  ·  Yours: "+describeAnswer(c.UserAnswer)),
	)
	b.WriteString(banner + "\n\n")

	// Transcript, newest messages kept in view.
	lines := transcriptLines(c, width-6)
	avail := height - lipgloss.Height(banner) - 5
	if avail < 3 {
		avail = 3
	}
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	for _, line := range lines {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  " + s.input.View() + "\n")
	return b.String()
}

func describeAnswer(a *string) string {
	if a == nil {
		return "skipped"
	}
	return *a
}

func transcriptLines(c *quiz.ChatContext, width int) []string {
	if width < 20 {
		width = 20
	}

	var lines []string
	for i, m := range c.Messages {
		var prefix string
		var style lipgloss.Style
		if m.Role == quiz.ChatRoleUser {
			prefix = "You: "
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		} else {
			prefix = "Tutor: "
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}

		text := m.Text
		if m.Role == quiz.ChatRoleAssistant && text == "" && c.Streaming && i == len(c.Messages)-1 {
			text = "..."
		}

		wrapped := lipgloss.NewStyle().Width(width).Render(prefix + text)
		lines = append(lines, strings.Split(style.Render(wrapped), "\n")...)
		lines = append(lines, "")
	}
	return lines
}
