// Package dex provides commands for inspecting the raw strategy dex records
package dex

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/strat-dex/internal/clients/stratdex"
	"github.com/KirkDiggler/strat-dex/internal/entities/dex"
)

// ClientFactory builds the dex client once flags and the config file have
// been resolved
type ClientFactory func() (stratdex.Client, error)

type options struct {
	newClient  ClientFactory
	genCode    string
	jsonOutput bool
}

// NewDexCmd creates the dex command and its basics, pokemon and format subcommands
func NewDexCmd(newClient ClientFactory) *cobra.Command {
	opts := &options{newClient: newClient}

	cmd := &cobra.Command{
		Use:   "dex",
		Short: "Inspect strategy dex records",
		Long:  `Dex commands fetch a single record from the strategy dex and print a summary or the decoded JSON.`,
	}

	// Add persistent flags for all dex commands
	cmd.PersistentFlags().StringVar(&opts.genCode, "gen", dex.CodeScarletViolet, "Generation code (sv, ss, sm, xy, bw, dp, rs, gs, rb)")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")

	cmd.AddCommand(newBasicsCmd(opts))
	cmd.AddCommand(newPokemonCmd(opts))
	cmd.AddCommand(newFormatCmd(opts))

	return cmd
}

// prepare parses the generation flag and builds the client
func (o *options) prepare() (dex.Generation, stratdex.Client, error) {
	gen, err := dex.ParseGeneration(o.genCode)
	if err != nil {
		return 0, nil, err
	}

	client, err := o.newClient()
	if err != nil {
		return 0, nil, err
	}
	return gen, client, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
