package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexus-mod-tracker/config"
	"nexus-mod-tracker/db"
	"nexus-mod-tracker/logger"
	"nexus-mod-tracker/ui"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked mods grouped by game",
	Long: `List your tracked mods grouped by game domain. The live response
refreshes the local cache; --offline serves the last cached snapshot
without touching the API.`,
	Run: func(cmd *cobra.Command, _ []string) {
		offline, _ := cmd.Flags().GetBool("offline")
		runList(offline)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("offline", false, "Serve the cached snapshot instead of calling the API")
}

func runList(offline bool) {
	if offline {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			logger.Log.Fatalw("Failed to load configuration", zap.Error(err))
		}
		db.InitDatabase(cfg.DatabasePath)
		listOffline()
		return
	}

	_, client := bootstrap(".")

	view, err := client.TrackedMods(context.Background())
	if err != nil {
		logger.Log.Fatalw("Failed to fetch tracked mods", zap.String("reason", describeError(err)), zap.Error(err))
	}

	syncTrackedCache(view)

	if view.Len() == 0 {
		fmt.Println("No tracked mods.")
		return
	}
	for _, domain := range view.Domains() {
		fmt.Println(ui.DomainHeader(domain))
		for _, mod := range view.Mods(domain) {
			fmt.Printf("  %s\n", mod)
		}
	}
	fmt.Printf("%d tracked mods across %d games\n", view.Len(), len(view.Domains()))
}

// listOffline prints the cached snapshot. The cache stores plain ids, so
// grouping happens here rather than through the typed view.
func listOffline() {
	var rows []db.TrackedMod
	if err := db.DB.Order("domain_name, id").Find(&rows).Error; err != nil {
		logger.Log.Fatalw("Failed to read tracked-mod cache", zap.Error(err))
	}
	if len(rows) == 0 {
		fmt.Println("No tracked mods cached. Run list online first.")
		return
	}
	current := ""
	for _, row := range rows {
		if row.DomainName != current {
			current = row.DomainName
			fmt.Println(ui.DomainHeader(current))
		}
		fmt.Printf("  %d\n", row.ModID)
	}
}
