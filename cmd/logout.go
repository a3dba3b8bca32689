// ABOUTME: Logout command for the mediaforge CLI
// ABOUTME: Clears the session and removes the persisted token

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored token",
	Long:  `Remove the persisted bearer token. No backend call is made.`,
	Run: func(cmd *cobra.Command, args []string) {
		runLogout(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears local state; it cannot fail
func runLogout(w io.Writer) {
	ctrl := newController()
	ctrl.Logout()
	fmt.Fprintln(w, "Logged out.")
}
