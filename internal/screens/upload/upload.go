package upload

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cogniquest/cogniquest/internal/ingest"
	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/router"
	"github.com/cogniquest/cogniquest/internal/screen"
	"github.com/cogniquest/cogniquest/internal/screens"
	"github.com/cogniquest/cogniquest/internal/screens/configure"
	"github.com/cogniquest/cogniquest/internal/ui/components"
	"github.com/cogniquest/cogniquest/internal/ui/layout"
	"github.com/cogniquest/cogniquest/internal/ui/theme"
)

// Focus areas on the upload screen.
const (
	focusPrompt = iota
	focusFiles
	focusSubmit
)

// UploadScreen collects source material: a typed prompt, file paths, or
// both. Ingestion runs in a command so slow disks never block the UI.
type UploadScreen struct {
	deps      screens.Deps
	prompt    components.TextArea
	files     components.TextInput
	focus     int
	ingesting bool
	errMsg    string
}

var _ screen.Screen = (*UploadScreen)(nil)
var _ screen.KeyHintProvider = (*UploadScreen)(nil)

// New creates the upload screen.
func New(deps screens.Deps) *UploadScreen {
	return &UploadScreen{
		deps:   deps,
		prompt: components.NewTextArea("Paste or type the material you want to be quizzed on...", 70, 8),
		files:  components.NewTextInput("notes.md, diagram.png (comma-separated paths)", false, 0),
	}
}

func (s *UploadScreen) Init() tea.Cmd {
	return s.prompt.Init()
}

func (s *UploadScreen) Title() string {
	return "New Quiz"
}

func (s *UploadScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Continue"},
		{Key: "Esc", Description: "Dashboard"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *UploadScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case materialsReadyMsg:
		return s.handleMaterialsReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *UploadScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.ingesting {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return screens.GoToDashboardMsg{} }

	case "tab":
		s.focus = (s.focus + 1) % 3
		return s, s.focusCmd()

	case "shift+tab":
		s.focus = (s.focus + 2) % 3
		return s, s.focusCmd()

	case "ctrl+s":
		return s.submit()

	case "enter":
		switch s.focus {
		case focusFiles:
			s.focus = focusSubmit
			return s, nil
		case focusSubmit:
			return s.submit()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusPrompt:
		s.prompt, cmd = s.prompt.Update(msg)
	case focusFiles:
		s.files, cmd = s.files.Update(msg)
	}
	return s, cmd
}

func (s *UploadScreen) focusCmd() tea.Cmd {
	s.prompt.Model.Blur()
	s.files.Model.Blur()
	switch s.focus {
	case focusPrompt:
		return s.prompt.Model.Focus()
	case focusFiles:
		return s.files.Model.Focus()
	}
	return nil
}

// submit kicks off ingestion of whatever the user entered.
func (s *UploadScreen) submit() (screen.Screen, tea.Cmd) {
	prompt := s.prompt.Value()
	paths := splitPaths(s.files.Value())

	if strings.TrimSpace(prompt) == "" && len(paths) == 0 {
		s.errMsg = quiz.ErrNoMaterials.Error()
		return s, nil
	}

	s.ingesting = true
	s.errMsg = ""
	return s, func() tea.Msg {
		var materials []quiz.SourceMaterial
		if strings.TrimSpace(prompt) != "" {
			m, err := ingest.FromPrompt(prompt)
			if err != nil {
				return materialsReadyMsg{Err: err}
			}
			materials = append(materials, m)
		}
		if len(paths) > 0 {
			fromFiles, err := ingest.FromFiles(paths)
			if err != nil {
				return materialsReadyMsg{Err: err}
			}
			materials = append(materials, fromFiles...)
		}
		return materialsReadyMsg{Materials: materials}
	}
}

func (s *UploadScreen) handleMaterialsReady(msg materialsReadyMsg) (screen.Screen, tea.Cmd) {
	s.ingesting = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	if err := quiz.SubmitMaterials(s.deps.State, msg.Materials); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	return s, tea.Batch(
		s.deps.SaveSessionCmd(),
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: configure.New(s.deps)}
		},
	)
}

// splitPaths parses the comma-separated path field.
func splitPaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func (s *UploadScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("  What should the quiz cover?") + "\n\n")

	promptLabel := "  Typed material"
	filesLabel := "  Files (text or images)"
	if s.focus == focusPrompt {
		promptLabel = theme.Selected.Render(promptLabel)
	} else {
		promptLabel = theme.Subtitle.Render(promptLabel)
	}
	if s.focus == focusFiles {
		filesLabel = theme.Selected.Render(filesLabel)
	} else {
		filesLabel = theme.Subtitle.Render(filesLabel)
	}

	b.WriteString(promptLabel + "\n")
	b.WriteString(s.prompt.View() + "\n\n")
	b.WriteString(filesLabel + "\n")
	b.WriteString("  " + s.files.View() + "\n\n")

	submit := components.NewButton("Continue", s.focus == focusSubmit, nil)
	b.WriteString(submit.View() + "\n")

	if s.ingesting {
		b.WriteString("\n" + theme.Subtitle.Render("  Reading files...") + "\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render("  "+s.errMsg) + "\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}
