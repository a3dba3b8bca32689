// ABOUTME: History command for the mediaforge CLI
// ABOUTME: Lists past generations from the users, images, or videos endpoints

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/spf13/cobra"
)

var (
	historySource string
	historyLimit  int
	historyOffset int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past generations",
	Long: `List your generation history, newest first.

Sources:
  users   - all generation types (default)
  images  - image, banner, logo, and background removal only
  videos  - video, presenter, and voiceover only`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHistory(ctx, os.Stdout, historySource, historyLimit, historyOffset)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historySource, "source", "users", "History source: users, images, or videos")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum records to fetch")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "Records to skip")
}

// runHistory fetches and prints generation history
func runHistory(ctx context.Context, w io.Writer, source string, limit, offset int) int {
	ctrl := newController()
	client := ctrl.API()

	var items []api.Generation
	var err error
	switch source {
	case "users":
		var page *api.HistoryPage
		page, err = client.UserHistory(ctx, limit, offset)
		if page != nil {
			items = page.Items
		}
	case "images":
		items, err = client.ImageHistory(ctx, limit, offset)
	case "videos":
		items, err = client.VideoHistory(ctx, limit, offset)
	default:
		fmt.Fprintf(w, "Error: unknown source %q (expected users, images, or videos)\n", source)
		return 2
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not fetch history."))
		return 1
	}

	if IsJSONOutput() {
		printJSON(w, items)
		return 0
	}

	if len(items) == 0 {
		fmt.Fprintln(w, "No generations yet.")
		return 0
	}

	for _, gen := range items {
		fmt.Fprintln(w, formatHistoryLine(&gen))
	}
	return 0
}

// formatHistoryLine renders one record as a single line
func formatHistoryLine(gen *api.Generation) string {
	line := fmt.Sprintf("%s  %-18s %-10s %3d credits",
		gen.CreatedAt.Format("2006-01-02 15:04"), gen.Type, gen.Status, gen.CreditsUsed)
	if gen.Prompt != "" {
		prompt := gen.Prompt
		if len(prompt) > 40 {
			prompt = prompt[:37] + "..."
		}
		line += "  " + prompt
	}
	return line
}
