package dex

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format [alias]",
		Short: "Describe a format",
		Long:  `Fetch a format by alias (e.g. ou) and print its description and the pokemon with strategies in it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := args[0]

			gen, client, err := opts.prepare()
			if err != nil {
				return err
			}

			resp, err := client.GetFormat(cmd.Context(), gen, alias)
			if err != nil {
				return fmt.Errorf("failed to get format %s: %w", alias, err)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, resp)
			}

			fmt.Fprintf(out, "%s (%s)\n", alias, gen)
			if resp.Description != "" {
				fmt.Fprintf(out, "\nDescription:\n%s\n", resp.Description)
			}

			fmt.Fprintf(out, "\nPokemon with strategies: %d\n", len(resp.PokemonWithStrategies))
			for _, name := range resp.PokemonWithStrategies {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}
}
