// ABOUTME: Stats command for the mediaforge CLI
// ABOUTME: Shows completed-generation counts and credit usage by type

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your usage statistics",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStats(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// runStats fetches and prints usage statistics
func runStats(ctx context.Context, w io.Writer) int {
	ctrl := newController()

	stats, err := ctrl.API().GetStats(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not fetch your statistics."))
		return 1
	}

	if IsJSONOutput() {
		printJSON(w, stats)
		return 0
	}

	fmt.Fprintf(w, "Generations:  %d\n", stats.TotalGenerations)
	fmt.Fprintf(w, "Credits used: %d\n", stats.CreditsUsed)

	if len(stats.ByType) > 0 {
		fmt.Fprintln(w, "\nBy type:")
		types := make([]string, 0, len(stats.ByType))
		for t := range stats.ByType {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Fprintf(w, "  %-20s %d\n", t, stats.ByType[t])
		}
	}
	return 0
}
