package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rlemos/provinha/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show finished attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		rows, err := s.EventRepo().RecentAttempts(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No finished attempts yet.")
			return nil
		}

		fmt.Printf("%-19s  %-32s  %9s  %6s  %6s  %8s\n",
			"Date", "Content", "Questões", "Score", "Pts", "Duration")
		fmt.Println(strings.Repeat("─", 92))

		for _, r := range rows {
			title := r.ContentTitle
			if len(title) > 32 {
				title = title[:29] + "..."
			}
			score := float64(r.ScoreHalves) / 2
			mins := r.DurationSecs / 60
			secs := r.DurationSecs % 60
			fmt.Printf("%-19s  %-32s  %9d  %6.1f  %6d  %5d:%02d\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				title, r.QuestionsPresented, score, r.TotalPoints, mins, secs)
		}
		fmt.Printf("\n%d attempts\n", len(rows))
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
