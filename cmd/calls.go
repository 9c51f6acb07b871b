package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/heartrisk/internal/store"
)

var callsCmd = &cobra.Command{
	Use:   "calls",
	Short: "Inspect recorded prediction service calls",
}

var callsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent prediction calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		outcome, _ := cmd.Flags().GetString("outcome")

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
		events, err := s.EventRepo().QueryCallEvents(ctx, store.QueryOpts{Limit: limit, Outcome: outcome})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(events) == 0 {
			if outcome != "" {
				fmt.Fprintf(w, "No %s calls recorded.\n", outcome)
			} else {
				fmt.Fprintln(w, "No prediction calls recorded.")
			}
			return nil
		}

		// Header.
		fmt.Fprintf(w, "%-5s  %-19s  %-10s  %-6s  %-7s  %-36s  %s\n",
			"ID", "Timestamp", "Outcome", "Status", "Ms", "Submission", "Error")
		fmt.Fprintln(w, strings.Repeat("─", 110))

		for _, e := range events {
			status := "-"
			if e.StatusCode != 0 {
				status = fmt.Sprintf("%d", e.StatusCode)
			}
			fmt.Fprintf(w, "%-5d  %-19s  %-10s  %-6s  %-7d  %-36s  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Outcome,
				status,
				e.LatencyMs,
				e.SubmissionID,
				truncate(e.ErrorMessage, 40),
			)
		}
		return nil
	},
}

var callsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show call counts and latency by outcome",
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

		ctx := context.Background()
		stats, err := s.EventRepo().CallStats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No prediction calls recorded.")
			return nil
		}

		fmt.Println("Calls by Outcome")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-12s  %8s  %10s\n", "Outcome", "Calls", "Avg Ms")
		fmt.Println(strings.Repeat("─", 40))

		var total int
		for _, st := range stats {
			fmt.Printf("%-12s  %8d  %10d\n", st.Outcome, st.Calls, st.AvgLatencyMs)
			total += st.Calls
		}

		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-12s  %8d\n", "TOTAL", total)
		return nil
	},
}

var callsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete recorded calls older than a given age",
	RunE: func(cmd *cobra.Command, args []string) error {
		olderThan, _ := cmd.Flags().GetDuration("older-than")
		all, _ := cmd.Flags().GetBool("all")
		if !all && olderThan <= 0 {
			return fmt.Errorf("pass --older-than with a positive duration, or --all")
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

		var cutoff time.Time
		if !all {
			cutoff = time.Now().Add(-olderThan)
		}

		n, err := s.EventRepo().PruneCallEvents(context.Background(), cutoff)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d call event(s).\n", n)
		return nil
	},
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func init() {
	callsPruneCmd.Flags().Duration("older-than", 0, "Delete calls recorded longer ago than this, e.g. 720h")
	callsPruneCmd.Flags().Bool("all", false, "Delete every recorded call")
	callsCmd.AddCommand(callsPruneCmd)

	callsListCmd.Flags().Int("limit", 20, "Maximum number of calls to show")
	callsListCmd.Flags().String("outcome", "", "Only show calls with this outcome (success, transport, service, malformed)")

	callsCmd.AddCommand(callsListCmd)
	callsCmd.AddCommand(callsStatsCmd)
}
