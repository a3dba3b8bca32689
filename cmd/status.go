// ABOUTME: Status command for the mediaforge CLI
// ABOUTME: Fetches the state of one generation, optionally polling to completion

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

var statusWatch bool

var statusCmd = &cobra.Command{
	Use:   "status <generation-id>",
	Short: "Show the status of a generation",
	Long:  `Fetch the current state of a generation by ID. With --watch, poll until it completes or fails.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStatus(ctx, os.Stdout, args[0], statusWatch)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "Poll until the generation completes")
}

// runStatus fetches the generation state and returns an exit code
func runStatus(ctx context.Context, w io.Writer, id string, watch bool) int {
	ctrl := newController()

	gen, err := ctrl.RefreshStatus(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not fetch the generation status."))
		return 1
	}

	if watch && !gen.Terminal() {
		gen, err = ctrl.WaitForCompletion(ctx, id, watchInterval)
		if err != nil {
			fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not fetch the generation status."))
			return 1
		}
	}

	if IsJSONOutput() {
		printJSON(w, gen)
		return 0
	}

	printGeneration(w, gen)
	if gen.Status == api.StatusFailed {
		return 1
	}
	return 0
}
