package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cogniquest/cogniquest/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		items, err := s.HistoryRepo().ListHistory(context.Background())
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No quiz attempts yet.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-40s  %s\n", "ID", "Date", "Topic", "Score")
		fmt.Println(strings.Repeat("─", 80))
		for _, item := range items {
			topic := item.Topic
			if topic == "" {
				topic = "(untitled)"
			}
			if len(topic) > 40 {
				topic = topic[:37] + "..."
			}
			fmt.Printf("%-5d  %-16s  %-40s  %.2g/%d\n",
				item.ID,
				item.Timestamp.Local().Format("2006-01-02 15:04"),
				topic,
				item.Score,
				item.TotalQuestions,
			)
		}
		return nil
	},
}
