// ABOUTME: Profile command for the mediaforge CLI
// ABOUTME: Updates the caller's display name, avatar, or company

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
	profileFullName  string
	profileAvatarURL string
	profileCompany   string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProfileUpdate(ctx, os.Stdout, profileFullName, profileAvatarURL, profileCompany)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileUpdateCmd.Flags().StringVar(&profileFullName, "full-name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&profileAvatarURL, "avatar-url", "", "Avatar image URL")
	profileUpdateCmd.Flags().StringVar(&profileCompany, "company", "", "Company name")
}

// runProfileUpdate patches the profile with any supplied fields
func runProfileUpdate(ctx context.Context, w io.Writer, fullName, avatarURL, company string) int {
	if fullName == "" && avatarURL == "" && company == "" {
		fmt.Fprintln(w, "Error: nothing to update; pass at least one of --full-name, --avatar-url, --company")
		return 2
	}

	ctrl := newController()

	user, err := ctrl.API().UpdateProfile(ctx, &api.ProfileUpdate{
		FullName:  fullName,
		AvatarURL: avatarURL,
		Company:   company,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not update your profile."))
		return 1
	}

	if IsJSONOutput() {
		printJSON(w, user)
		return 0
	}

	fmt.Fprintf(w, "Profile updated: %s", user.FullName)
	if user.Company != "" {
		fmt.Fprintf(w, " (%s)", user.Company)
	}
	fmt.Fprintln(w)
	return 0
}
