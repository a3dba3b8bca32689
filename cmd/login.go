// ABOUTME: Login command for the mediaforge CLI
// ABOUTME: Obtains a bearer token and persists it for subsequent commands

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the platform",
	Long:  `Authenticate with email and password. The bearer token is stored in the config directory and used by every other command.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if loginEmail == "" || loginPassword == "" {
			if err := promptCredentials(&loginEmail, &loginPassword); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
		}

		exitCode := runLogin(ctx, os.Stdout, loginEmail, loginPassword)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}

// promptCredentials asks for anything not supplied via flags
func promptCredentials(email, password *string) error {
	var fields []huh.Field
	if *email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(email))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password))
	}
	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeBase())
	return form.Run()
}

// runLogin performs the login flow and returns an exit code
func runLogin(ctx context.Context, w io.Writer, email, password string) int {
	ctrl := newController()

	if err := ctrl.Session().Login(ctx, email, password); err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Login failed. Check your credentials and try again."))
		return 1
	}

	user := ctrl.Session().User()
	if IsJSONOutput() {
		printJSON(w, user)
		return 0
	}

	fmt.Fprintf(w, "Logged in as %s (%s)\n", user.FullName, user.Email)
	fmt.Fprintf(w, "Credits: %d\n", user.Credits)
	return 0
}
