package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cogniquest/cogniquest/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved session and all quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This deletes the saved session and every past attempt. Continue? [y/N] ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(line), "y") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		if err := s.SessionRepo().ClearSession(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}

		items, err := s.HistoryRepo().ListHistory(ctx)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		for _, item := range items {
			if err := s.HistoryRepo().DeleteHistory(ctx, item.ID); err != nil {
				return fmt.Errorf("delete attempt %d: %w", item.ID, err)
			}
		}

		fmt.Printf("Removed the saved session and %d past attempt(s).\n", len(items))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
