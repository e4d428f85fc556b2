// Package screens holds the dependency bundle shared by all screen
// packages and the cross-screen navigation messages the root model
// resolves. Screens mutate the shared application state only through
// the quiz package's transition functions.
package screens

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/cogniquest/cogniquest/internal/gateway"
	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/store"
)

// Deps carries the shared state container and collaborators every
// screen needs. One instance lives for the whole program run.
type Deps struct {
	State    *quiz.AppState
	Gateway  *gateway.Gateway
	Sessions store.SessionRepo
	History  store.HistoryRepo
}

// GoToDashboardMsg asks the root model to reset navigation to a fresh
// dashboard. Screens deep in the quiz flow emit it instead of
// importing the dashboard package directly.
type GoToDashboardMsg struct{}

// GoToConfigureMsg asks the root model to replace the active screen
// with the configuration screen, used when generation fails and the
// quiz screen sends the user back to adjust settings.
type GoToConfigureMsg struct{}

// GoToResultsMsg asks the root model to replace the active screen with
// the results screen once the attempt finishes.
type GoToResultsMsg struct{}

// SaveSession persists the current snapshot best-effort. Persistence
// failures are logged and never surface to the user.
func (d Deps) SaveSession() {
	if d.Sessions == nil {
		return
	}
	if err := d.Sessions.SaveSession(context.Background(), d.State); err != nil {
		slog.Warn("session save failed", "error", err)
	}
}

// SaveSessionCmd wraps SaveSession as a background command.
func (d Deps) SaveSessionCmd() tea.Cmd {
	return func() tea.Msg {
		d.SaveSession()
		return nil
	}
}

// ClearSession removes the persisted snapshot best-effort.
func (d Deps) ClearSession() {
	if d.Sessions == nil {
		return
	}
	if err := d.Sessions.ClearSession(context.Background()); err != nil {
		slog.Warn("session clear failed", "error", err)
	}
}
