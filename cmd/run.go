package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cogniquest/cogniquest/internal/app"
	"github.com/cogniquest/cogniquest/internal/gateway"
	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/screens"
	"github.com/cogniquest/cogniquest/internal/store"
)

// runApp opens the store, builds the dependency bundle, restores any
// saved session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	closeLogs, err := setupLogging(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging unavailable:", err)
	} else {
		defer func() { _ = closeLogs() }()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, st.RequestLogRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set an API key (e.g. ANTHROPIC_API_KEY) and try again.")
		return err
	}

	state, err := st.SessionRepo().GetSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not restore the previous session:", err)
	}
	if state == nil {
		state = quiz.NewAppState()
	}

	deps := screens.Deps{
		State:    state,
		Gateway:  gateway.New(provider, gateway.DefaultConfig()),
		Sessions: st.SessionRepo(),
		History:  st.HistoryRepo(),
	}

	return app.Run(deps)
}
