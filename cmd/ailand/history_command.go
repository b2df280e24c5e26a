package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/VaibhavSomanna/AI-land/internal/session"
)

func newHistoryCommand(configFlag *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded workout sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*configFlag)
			if err != nil {
				return err
			}
			defer store.Close()

			sessions, err := store.Sessions().List(limit)
			if err != nil {
				return fmt.Errorf("list sessions: %w", err)
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workout sessions recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				rows = append(rows, []string{
					shortID(s.ID),
					s.Exercise,
					s.StartedAt.Local().Format("2006-01-02 15:04"),
					sessionDuration(s),
					strconv.Itoa(s.Reps),
				})
			}

			out := renderTable(
				[]string{"ID", "EXERCISE", "STARTED", "DURATION", "REPS"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of sessions to show (0 for all)")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// sessionDuration formats the session length, or marks it in progress.
func sessionDuration(s session.Session) string {
	if s.EndedAt == nil {
		return "active"
	}
	return s.EndedAt.Sub(s.StartedAt).Round(time.Second).String()
}
