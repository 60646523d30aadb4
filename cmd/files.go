package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexus-mod-tracker/logger"
	"nexus-mod-tracker/nexus"
)

// filesCmd represents the files command
var filesCmd = &cobra.Command{
	Use:   "files [modID]",
	Short: "List the files of a mod",
	Long: `List the files of a mod, newest information straight from the API.
Example: nexus-mod-tracker files 266 --game skyrim --category main,update

--dedup collapses files that share a display name, keeping the first of
each; useful when variants of the same file clutter the listing.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		domain, _ := cmd.Flags().GetString("game")
		categories, _ := cmd.Flags().GetString("category")
		fileID, _ := cmd.Flags().GetUint64("file")
		dedup, _ := cmd.Flags().GetBool("dedup")
		runFiles(domain, args[0], categories, fileID, dedup)
	},
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.Flags().StringP("game", "g", "", "Game domain slug (defaults to GAME_DOMAIN)")
	filesCmd.Flags().String("category", "", "Comma-separated category filter (main,update,optional,old_version,miscellaneous,removed)")
	filesCmd.Flags().Uint64("file", 0, "Show a single file by file id")
	filesCmd.Flags().Bool("dedup", false, "Collapse files sharing a display name")
}

func runFiles(domainFlag, rawID, rawCategories string, fileID uint64, dedup bool) {
	cfg, client := bootstrap(".")
	domain := resolveDomain(cfg, domainFlag)

	modID, err := parseModID(rawID)
	if err != nil {
		logger.Log.Fatalw("Bad argument", zap.Error(err))
	}

	if fileID != 0 {
		file, err := client.ModFile(context.Background(), domain, modID, fileID)
		if err != nil {
			logger.Log.Fatalw("Failed to fetch file", zap.String("reason", describeError(err)), zap.Error(err))
		}
		printFile(file)
		return
	}

	categories, err := parseFileCategories(rawCategories)
	if err != nil {
		logger.Log.Fatalw("Bad argument", zap.Error(err))
	}

	files, err := client.ModFiles(context.Background(), domain, modID, categories...)
	if err != nil {
		logger.Log.Fatalw("Failed to fetch files", zap.String("reason", describeError(err)), zap.Error(err))
	}

	listing := files.Files
	if dedup {
		listing = files.Dedup(func(a, b nexus.ModFile) bool {
			return a.Name == b.Name
		})
	}

	for _, f := range listing {
		printFile(f)
	}
	if len(files.FileUpdates) > 0 {
		fmt.Printf("%d file updates recorded\n", len(files.FileUpdates))
	}
}

func printFile(f nexus.ModFile) {
	fmt.Printf("%-10d %-40s %-12s %-13s %8d kB  %s\n",
		f.FileID,
		f.Name,
		f.Version,
		f.Category,
		f.SizeKB,
		f.UploadedTime.Time().Format("2006-01-02"),
	)
}
