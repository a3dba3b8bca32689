// ABOUTME: Root command for the mediaforge CLI
// ABOUTME: Handles global flags and wires the stores, gateway, and controller

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/mediaforge/mediaforge-cli/internal/config"
	"github.com/mediaforge/mediaforge-cli/internal/generation"
	"github.com/mediaforge/mediaforge-cli/internal/session"
	"github.com/mediaforge/mediaforge-cli/internal/studio"
	"github.com/mediaforge/mediaforge-cli/internal/tokenfile"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "mediaforge",
	Short: "CLI for the mediaforge AI content platform",
	Long: `mediaforge is a command-line client for the mediaforge content
generation platform. Log in, spend credits on image, video, and voiceover
generations, review history, and administer users.

Environment Variables:
  MEDIAFORGE_API_URL  Backend API URL (default: http://localhost:8000/api/v1)`,
}

// Execute runs the root command
func Execute() error {
	config.LoadEnv()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides MEDIAFORGE_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	return config.APIURL(apiURL)
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newController builds the store/gateway stack for one command invocation
func newController() *studio.Controller {
	tokens := tokenfile.New(tokenfile.DefaultConfigDir())
	client := api.New(GetAPIURL(), tokens, api.WithUnauthorizedHandler(func() {
		fmt.Fprintln(os.Stderr, "Session expired. Run 'mediaforge login' to sign in again.")
	}))
	sess := session.New(client, tokens)
	gens := generation.New()
	return studio.New(client, sess, gens)
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v interface{}) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(data))
}
