// ABOUTME: Credits command for the mediaforge CLI
// ABOUTME: Shows the current balance, with an optional minimum check for CI

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

var creditsMinimum int

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Show the current credit balance",
	Long: `Show the credit balance for the logged-in user.

With --minimum, exit non-zero when the balance is below the given value,
so pipelines can fail before submitting generations that would be rejected.

Exit codes:
  0 - Balance fetched (and above --minimum when set)
  1 - Balance below --minimum
  2 - Error (not logged in, connectivity)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCredits(ctx, os.Stdout, creditsMinimum)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(creditsCmd)
	creditsCmd.Flags().IntVar(&creditsMinimum, "minimum", 0, "Fail when the balance is below this value")
}

// runCredits fetches the balance and applies the optional minimum check
func runCredits(ctx context.Context, w io.Writer, minimum int) int {
	ctrl := newController()

	balance, err := ctrl.API().GetCredits(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not fetch your credit balance."))
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, balance)
	} else {
		fmt.Fprintf(w, "Credits: %d\n", balance.Credits)
	}

	if minimum > 0 && balance.Credits < minimum {
		if !IsJSONOutput() {
			fmt.Fprintf(w, "FAILED: balance below minimum of %d\n", minimum)
		}
		return 1
	}
	return 0
}
