package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexus-mod-tracker/db"
	"nexus-mod-tracker/logger"
)

// trackCmd represents the track command
var trackCmd = &cobra.Command{
	Use:   "track [modID]",
	Short: "Start tracking a mod",
	Long: `Start tracking a mod in a game domain.
Example: nexus-mod-tracker track 266 --game skyrim

The API reports whether the mod was newly tracked or tracked already;
both count as success.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		domain, _ := cmd.Flags().GetString("game")
		runTrack(domain, args[0])
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.Flags().StringP("game", "g", "", "Game domain slug (defaults to GAME_DOMAIN)")
}

func runTrack(domainFlag, rawID string) {
	cfg, client := bootstrap(".")
	domain := resolveDomain(cfg, domainFlag)

	modID, err := parseModID(rawID)
	if err != nil {
		logger.Log.Fatalw("Bad argument", zap.Error(err))
	}

	status, err := client.TrackMod(context.Background(), domain, modID)
	if err != nil {
		logger.Log.Fatalw("Track failed",
			zap.String("domain", domain),
			zap.Uint64("mod_id", modID),
			zap.String("reason", describeError(err)),
			zap.Error(err),
		)
	}

	// Keep the local cache in step without a full sync.
	row := db.TrackedMod{DomainName: domain, ModID: status.ModID().Uint64()}
	if err := db.DB.
		Where("domain_name = ? AND mod_id = ?", domain, status.ModID().Uint64()).
		Assign(db.TrackedMod{LastSeen: time.Now()}).
		FirstOrCreate(&row).Error; err != nil {
		logger.Log.Warnw("Failed to cache tracked mod", zap.Error(err))
	}

	if status.NewlyTracked() {
		logger.Log.Infow("Now tracking mod", zap.String("domain", domain), zap.String("mod_id", status.ModID().String()))
		fmt.Printf("Now tracking mod %s in %s\n", status.ModID(), domain)
	} else {
		fmt.Printf("Already tracking mod %s in %s\n", status.ModID(), domain)
	}
}
