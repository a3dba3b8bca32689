// ABOUTME: Whoami command for the mediaforge CLI
// ABOUTME: Shows the current profile and credit balance

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

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Long:  `Fetch the current profile using the stored token and display it.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami resumes the session from the persisted token and prints the profile
func runWhoami(ctx context.Context, w io.Writer) int {
	ctrl := newController()

	ok, err := ctrl.Session().Resume(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not fetch your profile."))
		return 1
	}
	if !ok {
		fmt.Fprintln(w, "Not logged in. Run 'mediaforge login' first.")
		return 1
	}

	user := ctrl.Session().User()
	if IsJSONOutput() {
		printJSON(w, user)
		return 0
	}

	fmt.Fprintf(w, `User:     %s
Email:    %s
Role:     %s
Credits:  %d
`, user.FullName, user.Email, user.Role, user.Credits)
	if user.Company != "" {
		fmt.Fprintf(w, "Company:  %s\n", user.Company)
	}
	return 0
}
