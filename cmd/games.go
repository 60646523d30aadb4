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

// gamesCmd represents the games command
var gamesCmd = &cobra.Command{
	Use:   "games [domain]",
	Short: "List games or show one game's details and categories",
	Long: `Without an argument, list the games hosted on Nexus Mods.
With a domain slug, show that game's metadata and its category list,
with child categories traced to their parents.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		unapproved, _ := cmd.Flags().GetBool("unapproved")
		if len(args) == 1 {
			runGame(args[0])
			return
		}
		runGames(unapproved)
	},
}

func init() {
	rootCmd.AddCommand(gamesCmd)
	gamesCmd.Flags().Bool("unapproved", false, "Include games awaiting approval")
}

func runGames(includeUnapproved bool) {
	_, client := bootstrap(".")

	games, err := client.Games(context.Background(), includeUnapproved)
	if err != nil {
		logger.Log.Fatalw("Failed to fetch games", zap.String("reason", describeError(err)), zap.Error(err))
	}

	for _, g := range games {
		fmt.Printf("%-24s %-32s %6d mods\n", g.DomainName, g.Name, g.Mods)
	}
	fmt.Printf("%d games\n", len(games))
}

func runGame(domain string) {
	_, client := bootstrap(".")

	game, err := client.Game(context.Background(), domain)
	if err != nil {
		logger.Log.Fatalw("Failed to fetch game",
			zap.String("domain", domain),
			zap.String("reason", describeError(err)),
			zap.Error(err),
		)
	}

	fmt.Println(ui.DomainHeader(game.Name))
	fmt.Printf("  domain:       %s\n", game.DomainName)
	fmt.Printf("  genre:        %s\n", game.Genre)
	fmt.Printf("  mods:         %d\n", game.Mods)
	fmt.Printf("  files:        %d\n", game.FileCount)
	fmt.Printf("  authors:      %d\n", game.Authors)
	fmt.Printf("  endorsements: %d\n", game.FileEndorsements)
	fmt.Printf("  approved:     %s\n", game.ApprovedDate.Time().Format("2006-01-02"))
	fmt.Printf("  forum:        %s\n", game.ForumURL)
	fmt.Printf("  page:         %s\n", game.NexusmodsURL)

	if len(game.Categories) > 0 {
		fmt.Println("  categories:")
		for _, cat := range game.Categories {
			fmt.Printf("    %s\n", formatCategory(game, cat))
		}
	}
}

// formatCategory renders a category with its traced parent, if any.
func formatCategory(game nexus.GameInfo, cat nexus.GameCategory) string {
	parent, ok := game.TraceParentCategory(cat)
	if !ok {
		return cat.Name
	}
	return fmt.Sprintf("%s < %s", cat.Name, parent.Name)
}
