package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexus-mod-tracker/db"
	"nexus-mod-tracker/logger"
	"nexus-mod-tracker/nexus"
	"nexus-mod-tracker/ui"
)

// endorsementsCmd represents the endorsements command
var endorsementsCmd = &cobra.Command{
	Use:   "endorsements",
	Short: "Show your endorsement history",
	Run: func(_ *cobra.Command, _ []string) {
		runEndorsements()
	},
}

func init() {
	rootCmd.AddCommand(endorsementsCmd)
}

func runEndorsements() {
	_, client := bootstrap(".")

	endorsements, err := client.Endorsements(context.Background())
	if err != nil {
		logger.Log.Fatalw("Failed to fetch endorsements", zap.String("reason", describeError(err)), zap.Error(err))
	}

	cacheEndorsements(endorsements)

	if len(endorsements) == 0 {
		fmt.Println("No endorsements.")
		return
	}
	for _, e := range endorsements {
		version := "-"
		if e.Version != nil {
			version = *e.Version
		}
		fmt.Printf("%-12s %-10s %-10s %s  %s\n",
			e.DomainName,
			e.ModID,
			version,
			e.Date.Time().Format("2006-01-02"),
			ui.EndorseBadge(e.Status.String()),
		)
	}
}

// cacheEndorsements replaces the cached endorsement history with the
// fresh response.
func cacheEndorsements(endorsements []nexus.Endorsement) {
	if err := db.DB.Where("1 = 1").Delete(&db.EndorsementRecord{}).Error; err != nil {
		logger.Log.Warnw("Failed to clear endorsement cache", zap.Error(err))
		return
	}
	for _, e := range endorsements {
		version := ""
		if e.Version != nil {
			version = *e.Version
		}
		record := db.EndorsementRecord{
			DomainName: e.DomainName,
			ModID:      e.ModID.Uint64(),
			Status:     e.Status.String(),
			Version:    version,
			EndorsedAt: e.Date.Time(),
		}
		if err := db.DB.Create(&record).Error; err != nil {
			logger.Log.Warnw("Failed to cache endorsement",
				zap.String("domain", e.DomainName),
				zap.String("mod_id", e.ModID.String()),
				zap.Error(err),
			)
		}
	}
}
