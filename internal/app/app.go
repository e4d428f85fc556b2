package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/router"
	"github.com/cogniquest/cogniquest/internal/screen"
	"github.com/cogniquest/cogniquest/internal/screens"
	"github.com/cogniquest/cogniquest/internal/screens/configure"
	"github.com/cogniquest/cogniquest/internal/screens/dashboard"
	"github.com/cogniquest/cogniquest/internal/screens/quizscreen"
	"github.com/cogniquest/cogniquest/internal/screens/results"
	"github.com/cogniquest/cogniquest/internal/screens/upload"
	"github.com/cogniquest/cogniquest/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   screens.Deps
	width  int
	height int
}

// newAppModel picks the initial screen from the restored session state.
func newAppModel(deps screens.Deps) AppModel {
	return AppModel{
		router: router.New(initialScreen(deps)),
		deps:   deps,
	}
}

// initialScreen maps a restored status onto a screen. In-flight
// generation is abandoned across restarts, so GENERATING resumes at the
// configuration screen; chat and flashcard sub-screens resume at the
// results screen they were entered from.
func initialScreen(deps screens.Deps) screen.Screen {
	st := deps.State
	switch st.Status {
	case quiz.StatusConfiguring:
		return configure.New(deps)
	case quiz.StatusGenerating:
		st.Status = quiz.StatusConfiguring
		st.Err = "quiz generation was interrupted, start it again"
		return configure.New(deps)
	case quiz.StatusInProgress:
		return quizscreen.New(deps, "")
	case quiz.StatusCompleted, quiz.StatusChatting, quiz.StatusFlashcards:
		quiz.ExitChat(st)
		quiz.ExitFlashcards(st)
		return results.New(deps)
	case quiz.StatusInitial:
		return upload.New(deps)
	default:
		quiz.GoToDashboard(st)
		return dashboard.New(deps)
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screens.GoToDashboardMsg:
		quiz.GoToDashboard(m.deps.State)
		m.deps.ClearSession()
		return m, m.router.ResetTo(dashboard.New(m.deps))

	case screens.GoToConfigureMsg:
		return m, m.router.Replace(configure.New(m.deps))

	case screens.GoToResultsMsg:
		return m, m.router.Replace(results.New(m.deps))

	case tea.KeyMsg:
		// Screens own every other key, including esc: the quiz screen
		// uses it for its quit confirmation.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps screens.Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
