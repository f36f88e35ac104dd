package cli

import (
	"github.com/spf13/cobra"
)

func newRandomCommand(e *env) *cobra.Command {
	var exclude string
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := e.components().Selector.PickRandom(exclude)
			if err != nil {
				return err
			}
			printGameDetail(cmd.OutOrStdout(), g)
			return nil
		},
	}
	cmd.Flags().StringVar(&exclude, "exclude", "", "Never pick the game with this id")
	return cmd
}
