package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexus-mod-tracker/logger"
	"nexus-mod-tracker/nexus"
	"nexus-mod-tracker/ui"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configured API key and show the account behind it",
	Long: `Validate the configured NEXUS_API_KEY against the API and print
the account it belongs to, including membership status and the current
rate-limit quota.`,
	Run: func(_ *cobra.Command, _ []string) {
		runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate() {
	_, client := bootstrap(".")

	var limits *nexus.RateLimits
	client.RateLimitFunc = func(rl nexus.RateLimits) {
		limits = &rl
	}

	user, err := client.Validate(context.Background())
	if err != nil {
		logger.Log.Fatalw("Validation failed", zap.String("reason", describeError(err)), zap.Error(err))
	}

	logger.Log.Infow("API key validated", zap.String("user", user.Name), zap.Uint64("user_id", user.UserID))

	fmt.Printf("%s (id %d)\n", user.Name, user.UserID)
	fmt.Printf("  email:   %s\n", user.Email)
	fmt.Printf("  profile: %s\n", user.ProfileURL)
	fmt.Printf("  %s  %s\n",
		ui.MembershipBadge("premium", user.IsPremium()),
		ui.MembershipBadge("supporter", user.IsSupporter()),
	)
	if limits != nil {
		fmt.Printf("  quota:   %d/%d hourly, %d/%d daily\n",
			limits.Hourly().Remaining, limits.Hourly().Limit,
			limits.Daily().Remaining, limits.Daily().Limit,
		)
	}
}
