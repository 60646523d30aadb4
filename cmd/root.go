package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexus-mod-tracker/logger"
)

// rootCmd is the base command all subcommands hang off.
var rootCmd = &cobra.Command{
	Use:   "nexus-mod-tracker",
	Short: "Track and inspect your Nexus Mods account from the terminal",
	Long: `nexus-mod-tracker talks to the Nexus Mods API with your personal
API key: validate the key, track and untrack mods, list tracked mods
grouped by game, review endorsements, and browse game and file metadata.

Tracked mods are cached in a local SQLite database so listing works
offline.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Log.Fatalw("Command failed", zap.Error(err))
	}
}
