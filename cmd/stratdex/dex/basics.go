package dex

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBasicsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "basics",
		Short: "Summarize the basics listing of a generation",
		Long:  `Fetch the bulk listing of a generation and print its counts and standard pokemon.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, client, err := opts.prepare()
			if err != nil {
				return err
			}

			basics, err := client.GetBasics(cmd.Context(), gen)
			if err != nil {
				return fmt.Errorf("failed to get basics: %w", err)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, basics)
			}

			standard := basics.StandardPokemon()
			fmt.Fprintf(out, "Generation: %s\n", gen)
			fmt.Fprintf(out, "Pokemon: %d (%d standard)\n", len(basics.Pokemon), len(standard))
			fmt.Fprintf(out, "Formats: %d\n", len(basics.Formats))
			fmt.Fprintf(out, "Abilities: %d\n", len(basics.Abilities))
			fmt.Fprintf(out, "Moves: %d\n", len(basics.Moves))
			fmt.Fprintf(out, "Items: %d\n", len(basics.Items))

			if len(standard) > 0 {
				fmt.Fprintf(out, "\nStandard pokemon:\n")
				for _, p := range standard {
					fmt.Fprintf(out, "  %s\n", p.Name)
				}
			}
			return nil
		},
	}
}
