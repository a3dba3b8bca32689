// ABOUTME: Register command for the mediaforge CLI
// ABOUTME: Creates an account and logs in with the same credentials

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

// minPasswordLength matches the backend's password policy; checking it here
// avoids a round trip that is guaranteed to fail.
const minPasswordLength = 8

var (
	registerEmail    string
	registerPassword string
	registerFullName string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long:  `Create an account and log in automatically. New accounts start with a free credit balance.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if registerEmail == "" || registerPassword == "" || registerFullName == "" {
			if err := promptRegistration(&registerEmail, &registerPassword, &registerFullName); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
		}

		exitCode := runRegister(ctx, os.Stdout, registerEmail, registerPassword, registerFullName)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (min 8 characters)")
	registerCmd.Flags().StringVar(&registerFullName, "full-name", "", "Display name")
}

// promptRegistration collects missing fields, with a confirmation password
// checked locally before any network call
func promptRegistration(email, password, fullName *string) error {
	var confirm string
	var fields []huh.Field
	if *fullName == "" {
		fields = append(fields, huh.NewInput().Title("Full name").Value(fullName))
	}
	if *email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(email))
	}
	if *password == "" {
		fields = append(fields,
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password),
			huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&confirm))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeBase())
	if err := form.Run(); err != nil {
		return err
	}
	if confirm != "" && confirm != *password {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

// validateRegistration enforces the client-side rules before any request
func validateRegistration(email, password, fullName string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if fullName == "" {
		return fmt.Errorf("full name is required")
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

// runRegister performs registration plus auto-login and returns an exit code
func runRegister(ctx context.Context, w io.Writer, email, password, fullName string) int {
	if err := validateRegistration(email, password, fullName); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	ctrl := newController()

	if err := ctrl.Session().Register(ctx, email, password, fullName); err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Registration failed. Please try again."))
		return 1
	}

	user := ctrl.Session().User()
	if IsJSONOutput() {
		printJSON(w, user)
		return 0
	}

	fmt.Fprintf(w, "Account created. Logged in as %s (%s)\n", user.FullName, user.Email)
	fmt.Fprintf(w, "Credits: %d\n", user.Credits)
	return 0
}
