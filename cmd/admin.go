// ABOUTME: Admin command group for the mediaforge CLI
// ABOUTME: User management, credit adjustments, and platform analytics

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer users and credits",
	Long:  `User management, credit adjustments, and platform analytics. All subcommands require an admin account.`,
}

var (
	adminUsersLimit  int
	adminUsersOffset int
)

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAdminUsersList(ctx, os.Stdout, adminUsersLimit, adminUsersOffset)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var adminUsersGetCmd = &cobra.Command{
	Use:   "get <user-id>",
	Short: "Show one user account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAdminUsersGet(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var (
	adminUpdateRole    string
	adminUpdateActive  bool
	adminUpdateCredits int
)

var adminUsersUpdateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update a user's role, active flag, or balance",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		update := &api.AdminUserUpdate{}
		if cmd.Flags().Changed("role") {
			update.Role = &adminUpdateRole
		}
		if cmd.Flags().Changed("active") {
			update.IsActive = &adminUpdateActive
		}
		if cmd.Flags().Changed("credits") {
			update.Credits = &adminUpdateCredits
		}

		exitCode := runAdminUsersUpdate(ctx, os.Stdout, args[0], update)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var adminUsersDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Deactivate a user account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAdminUsersDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var (
	adminCreditsAmount int
	adminCreditsReason string
)

var adminCreditsCmd = &cobra.Command{
	Use:   "credits <user-id>",
	Short: "Adjust a user's credit balance",
	Long:  `Add credits (positive --amount) or remove them (negative --amount). A reason is required for the audit trail.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAdminCredits(ctx, os.Stdout, args[0], adminCreditsAmount, adminCreditsReason)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var adminAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show platform analytics",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAdminAnalytics(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminCreditsCmd)
	adminCmd.AddCommand(adminAnalyticsCmd)

	adminUsersCmd.AddCommand(adminUsersListCmd)
	adminUsersCmd.AddCommand(adminUsersGetCmd)
	adminUsersCmd.AddCommand(adminUsersUpdateCmd)
	adminUsersCmd.AddCommand(adminUsersDeleteCmd)

	adminUsersListCmd.Flags().IntVar(&adminUsersLimit, "limit", 50, "Maximum users to fetch")
	adminUsersListCmd.Flags().IntVar(&adminUsersOffset, "offset", 0, "Users to skip")

	adminUsersUpdateCmd.Flags().StringVar(&adminUpdateRole, "role", "", "Account role: user or admin")
	adminUsersUpdateCmd.Flags().BoolVar(&adminUpdateActive, "active", true, "Whether the account is active")
	adminUsersUpdateCmd.Flags().IntVar(&adminUpdateCredits, "credits", 0, "Set the balance directly")

	adminCreditsCmd.Flags().IntVar(&adminCreditsAmount, "amount", 0, "Credits to add (positive) or remove (negative)")
	adminCreditsCmd.Flags().StringVar(&adminCreditsReason, "reason", "", "Reason for the adjustment")
}

func runAdminUsersList(ctx context.Context, w io.Writer, limit, offset int) int {
	ctrl := newController()

	users, err := ctrl.API().AdminListUsers(ctx, limit, offset)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not list users."))
		return 1
	}

	if IsJSONOutput() {
		printJSON(w, users)
		return 0
	}

	for _, u := range users {
		active := "active"
		if !u.IsActive {
			active = "inactive"
		}
		fmt.Fprintf(w, "%s  %-30s %-6s %-8s %5d credits\n", u.ID, u.Email, u.Role, active, u.Credits)
	}
	return 0
}

func runAdminUsersGet(ctx context.Context, w io.Writer, id string) int {
	ctrl := newController()

	user, err := ctrl.API().AdminGetUser(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not fetch the user."))
		return 1
	}

	if IsJSONOutput() {
		printJSON(w, user)
		return 0
	}

	active := "yes"
	if !user.IsActive {
		active = "no"
	}
	fmt.Fprintf(w, `ID:       %s
Name:     %s
Email:    %s
Role:     %s
Active:   %s
Credits:  %d
`, user.ID, user.FullName, user.Email, user.Role, active, user.Credits)
	return 0
}

func runAdminUsersUpdate(ctx context.Context, w io.Writer, id string, update *api.AdminUserUpdate) int {
	if update.Role == nil && update.IsActive == nil && update.Credits == nil {
		fmt.Fprintln(w, "Error: nothing to update; pass at least one of --role, --active, --credits")
		return 2
	}

	ctrl := newController()

	user, err := ctrl.API().AdminUpdateUser(ctx, id, update)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not update the user."))
		return 1
	}

	if IsJSONOutput() {
		printJSON(w, user)
		return 0
	}

	fmt.Fprintf(w, "Updated %s: role=%s credits=%d active=%t\n", user.Email, user.Role, user.Credits, user.IsActive)
	return 0
}

func runAdminUsersDelete(ctx context.Context, w io.Writer, id string) int {
	ctrl := newController()

	receipt, err := ctrl.API().AdminDeleteUser(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not delete the user."))
		return 1
	}

	if IsJSONOutput() {
		printJSON(w, receipt)
		return 0
	}

	fmt.Fprintf(w, "%s (%s)\n", receipt.Message, receipt.UserID)
	return 0
}

func runAdminCredits(ctx context.Context, w io.Writer, id string, amount int, reason string) int {
	if amount == 0 {
		fmt.Fprintln(w, "Error: --amount must be non-zero")
		return 2
	}
	if reason == "" {
		fmt.Fprintln(w, "Error: --reason is required")
		return 2
	}

	ctrl := newController()

	receipt, err := ctrl.API().AdminAdjustCredits(ctx, id, &api.CreditsAdjustment{
		Amount: amount,
		Reason: reason,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not adjust credits."))
		return 1
	}

	if IsJSONOutput() {
		printJSON(w, receipt)
		return 0
	}

	fmt.Fprintf(w, "Adjusted %+d credits for %s (new balance: %d)\n", receipt.Adjustment, receipt.UserID, receipt.NewBalance)
	return 0
}

func runAdminAnalytics(ctx context.Context, w io.Writer) int {
	ctrl := newController()

	analytics, err := ctrl.API().AdminAnalytics(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not fetch analytics."))
		return 1
	}

	if IsJSONOutput() {
		printJSON(w, analytics)
		return 0
	}

	fmt.Fprintf(w, `Users:            %d (%d active)
Generations:      %d
Credits consumed: %d
`, analytics.TotalUsers, analytics.ActiveUsers, analytics.TotalGenerations, analytics.CreditsConsumed)

	if len(analytics.PopularTypes) > 0 {
		fmt.Fprintln(w, "\nPopular types:")
		types := make([]string, 0, len(analytics.PopularTypes))
		for t := range analytics.PopularTypes {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Fprintf(w, "  %-20s %d\n", t, analytics.PopularTypes[t])
		}
	}
	return 0
}
