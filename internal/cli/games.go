package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"arcade-roulette-service/internal/catalog"
	domaingames "arcade-roulette-service/internal/domain/games"
)

func newGamesCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Inspect the catalogue",
	}

	var category, search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalogue games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			games := catalog.Filter{Category: category, Search: search}.Apply(e.components().Catalog.All())
			if len(games) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("no games match"))
				return nil
			}
			for _, g := range games {
				printGameRow(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}
	list.Flags().StringVar(&category, "category", "", "Only games in this category")
	list.Flags().StringVar(&search, "search", "", "Match title, creator or description")

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Show one game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := e.components().Catalog.FindByID(args[0])
			if !ok {
				return fmt.Errorf("game %q not found", args[0])
			}
			printGameDetail(cmd.OutOrStdout(), g)
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func printGameRow(w io.Writer, g domaingames.Game) {
	fmt.Fprintf(w, "%-4s %-28s %-20s %s\n", g.ID, g.Title, g.Creator, color.CyanString(strings.Join(g.Categories, ", ")))
}

func printGameDetail(w io.Writer, g domaingames.Game) {
	playable := color.YellowString("placeholder")
	if g.Playable() {
		playable = color.GreenString("playable")
	}
	fmt.Fprintf(w, "  %-12s %s\n", "id:", g.ID)
	fmt.Fprintf(w, "  %-12s %s\n", "title:", g.Title)
	fmt.Fprintf(w, "  %-12s %s\n", "creator:", g.Creator)
	fmt.Fprintf(w, "  %-12s %s\n", "categories:", strings.Join(g.Categories, ", "))
	fmt.Fprintf(w, "  %-12s %s (%s)\n", "url:", g.URL, playable)
	if g.Description != "" {
		fmt.Fprintf(w, "  %-12s %s\n", "description:", g.Description)
	}
}
