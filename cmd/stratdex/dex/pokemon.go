package dex

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPokemonCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pokemon [alias]",
		Short: "List the strategies of a pokemon",
		Long:  `Fetch the strategies of one pokemon by alias (e.g. great-tusk) and list each format with its set names.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := args[0]

			gen, client, err := opts.prepare()
			if err != nil {
				return err
			}

			resp, err := client.GetPokemon(cmd.Context(), gen, alias)
			if err != nil {
				return fmt.Errorf("failed to get pokemon %s: %w", alias, err)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, resp)
			}

			if len(resp.Strategies) == 0 {
				fmt.Fprintf(out, "%s has no strategies in %s\n", alias, gen)
				return nil
			}

			fmt.Fprintf(out, "%s (%s)\n", alias, gen)
			for _, strategy := range resp.Strategies {
				fmt.Fprintf(out, "\n%s: %d sets\n", strategy.Format, len(strategy.MoveSets))
				for _, set := range strategy.MoveSets {
					fmt.Fprintf(out, "  - %s\n", set.Name)
				}
			}
			return nil
		},
	}
}
