package main

import (
	"context"
	"fmt"
	"io"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/strat-dex/internal/config"
	"github.com/KirkDiggler/strat-dex/internal/entities/dex"
	"github.com/KirkDiggler/strat-dex/internal/orchestrators/randomizer"
	"github.com/KirkDiggler/strat-dex/internal/pkg/idgen"
	"github.com/KirkDiggler/strat-dex/internal/services/export"
)

var maxAttempts int

var randomizeCmd = &cobra.Command{
	Use:   "randomize",
	Short: "Draw a random set",
	Long:  `Draw a random standard pokemon, one of its strategies and one of that strategy's sets, then print the set.`,
}

var randomizeAnyCmd = &cobra.Command{
	Use:   "any",
	Short: "Draw from a random generation in any format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newRandomizer()
		if err != nil {
			return err
		}
		return runRandomize(cmd.Context(), svc, &randomizer.RandomizeInput{MaxAttempts: maxAttempts}, cmd.OutOrStdout())
	},
}

var randomizeCustomCmd = &cobra.Command{
	Use:   "custom [gen] [format]",
	Short: "Draw from a chosen generation and format",
	Long: `Draw a set from a generation code (sv, ss, sm, xy, bw, dp, rs, gs, rb) and a format label (e.g. OU).
Missing arguments fall back to the config file, then to a random generation and any format.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := customInput(args, settings)
		if err != nil {
			return err
		}

		svc, err := newRandomizer()
		if err != nil {
			return err
		}
		return runRandomize(cmd.Context(), svc, input, cmd.OutOrStdout())
	},
}

func init() {
	randomizeCmd.PersistentFlags().IntVar(&maxAttempts, "max-attempts", 0, "Maximum draws before giving up (0 uses the configured default)")

	randomizeCmd.AddCommand(randomizeAnyCmd)
	randomizeCmd.AddCommand(randomizeCustomCmd)
}

func newRandomizer() (randomizer.Service, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}

	return randomizer.NewOrchestrator(&randomizer.Config{
		Client:      client,
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID("run"),
		MaxAttempts: settings.Randomizer.MaxAttempts,
	})
}

// customInput builds the randomize input from positional arguments, using
// the config file for whatever was left out
func customInput(args []string, cfg *config.Config) (*randomizer.RandomizeInput, error) {
	input := &randomizer.RandomizeInput{
		Format:      cfg.Randomizer.Format,
		MaxAttempts: maxAttempts,
	}

	gen, err := cfg.DefaultGeneration()
	if err != nil {
		return nil, err
	}
	input.Generation = gen

	if len(args) > 0 {
		parsed, err := dex.ParseGeneration(args[0])
		if err != nil {
			return nil, err
		}
		input.Generation = &parsed
	}
	if len(args) > 1 {
		input.Format = args[1]
	}

	return input, nil
}

func runRandomize(ctx context.Context, svc randomizer.Service, input *randomizer.RandomizeInput, out io.Writer) error {
	output, err := svc.Randomize(ctx, input)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(out, export.Document(output.Generation, output.Format, output.MoveSet))
	return err
}
