package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cogniquest/cogniquest/internal/logging"
	"github.com/cogniquest/cogniquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cogniquest",
	Short: "Turn documents and notes into interactive quizzes",
	Long:  "CogniQuest is an AI-native terminal app that turns your documents, images, and notes into interactive quizzes with tutoring, summaries, and flashcards.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() {
		// A .env in the working directory supplies API keys in dev.
		_ = godotenv.Load()
	})

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COGNIQUEST_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then COGNIQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// setupLogging routes slog to the rotating log file. The TUI owns
// stdout, so nothing may log there.
func setupLogging(cmd *cobra.Command) (func() error, error) {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.Setup(logging.DefaultLogPath(), logging.ParseLevel(level))
}
