package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexus-mod-tracker/db"
	"nexus-mod-tracker/logger"
)

// untrackCmd represents the untrack command
var untrackCmd = &cobra.Command{
	Use:   "untrack [modID]",
	Short: "Stop tracking a mod",
	Long: `Stop tracking a mod in a game domain.
Example: nexus-mod-tracker untrack 266 --game skyrim`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		domain, _ := cmd.Flags().GetString("game")
		runUntrack(domain, args[0])
	},
}

func init() {
	rootCmd.AddCommand(untrackCmd)
	untrackCmd.Flags().StringP("game", "g", "", "Game domain slug (defaults to GAME_DOMAIN)")
}

func runUntrack(domainFlag, rawID string) {
	cfg, client := bootstrap(".")
	domain := resolveDomain(cfg, domainFlag)

	modID, err := parseModID(rawID)
	if err != nil {
		logger.Log.Fatalw("Bad argument", zap.Error(err))
	}

	if err := client.UntrackMod(context.Background(), domain, modID); err != nil {
		logger.Log.Fatalw("Untrack failed",
			zap.String("domain", domain),
			zap.Uint64("mod_id", modID),
			zap.String("reason", describeError(err)),
			zap.Error(err),
		)
	}

	if err := db.DB.
		Where("domain_name = ? AND mod_id = ?", domain, modID).
		Delete(&db.TrackedMod{}).Error; err != nil {
		logger.Log.Warnw("Failed to remove tracked mod from cache", zap.Error(err))
	}

	logger.Log.Infow("Stopped tracking mod", zap.String("domain", domain), zap.Uint64("mod_id", modID))
	fmt.Printf("Stopped tracking mod %d in %s\n", modID, domain)
}
