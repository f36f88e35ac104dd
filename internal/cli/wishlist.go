package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newWishlistCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage saved games",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved game ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comps := e.components()
			ids := comps.Wishlist.List(cmdContext(cmd))
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("wishlist is empty"))
				return nil
			}
			for _, id := range ids {
				if g, ok := comps.Catalog.FindByID(id); ok {
					printGameRow(cmd.OutOrStdout(), g)
					continue
				}
				// Stale ids stay listed so they can be removed.
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %s\n", id, color.RedString("not in catalogue"))
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add ID",
		Short: "Save a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comps := e.components()
			if _, ok := comps.Catalog.FindByID(args[0]); !ok {
				return fmt.Errorf("game %q not found", args[0])
			}
			if err := comps.Wishlist.Save(cmdContext(cmd), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("saved"), args[0])
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.components().Wishlist.Remove(cmdContext(cmd), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("removed"), args[0])
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}
