// ABOUTME: Health command for the mediaforge CLI
// ABOUTME: Verifies backend connectivity for scripts and monitoring

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long: `Check that the backend is reachable and healthy.

Exit codes:
  0 - Backend healthy
  1 - Backend unhealthy or unreachable`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	ctrl := newController()

	health, err := ctrl.API().Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if IsJSONOutput() {
		printJSON(w, health)
		return 0
	}

	fmt.Fprintf(w, "Backend: %s (%s)\n", health.Status, GetAPIURL())
	return 0
}
