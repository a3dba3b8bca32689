// ABOUTME: Command that launches the interactive studio TUI
// ABOUTME: Builds a controller with a quiet 401 hook so the display stays clean

package cmd

import (
	"fmt"
	"os"

	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/mediaforge/mediaforge-cli/internal/debuglog"
	"github.com/mediaforge/mediaforge-cli/internal/generation"
	"github.com/mediaforge/mediaforge-cli/internal/session"
	"github.com/mediaforge/mediaforge-cli/internal/studio"
	"github.com/mediaforge/mediaforge-cli/internal/tokenfile"
	"github.com/mediaforge/mediaforge-cli/internal/tui"
	"github.com/spf13/cobra"
)

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Open the interactive studio",
	Long: `Open a full-screen terminal studio for generating content,
browsing history, and managing your account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir := tokenfile.DefaultConfigDir()
		if err := debuglog.Init(configDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug logging disabled: %v\n", err)
		}
		defer debuglog.Close()

		tokens := tokenfile.New(configDir)
		client := api.New(GetAPIURL(), tokens, api.WithUnauthorizedHandler(func() {
			debuglog.Warn("backend rejected the token, returning to login")
		}))
		sess := session.New(client, tokens)
		ctrl := studio.New(client, sess, generation.New())

		debuglog.Log("studio starting, api=%s", GetAPIURL())
		return tui.Run(ctrl)
	},
}

func init() {
	rootCmd.AddCommand(studioCmd)
}
