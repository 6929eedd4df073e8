// Package randomizer picks a random strategy dex set: a standard pokemon, one
// of its strategies and one of that strategy's sets
package randomizer

//go:generate mockgen -destination=mock/mock_service.go -package=randomizermock github.com/KirkDiggler/strat-dex/internal/orchestrators/randomizer Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/strat-dex/internal/clients/stratdex"
	"github.com/KirkDiggler/strat-dex/internal/entities/dex"
	"github.com/KirkDiggler/strat-dex/internal/errors"
	"github.com/KirkDiggler/strat-dex/internal/pkg/clock"
	"github.com/KirkDiggler/strat-dex/internal/pkg/idgen"
)

// DefaultMaxAttempts bounds the draws of one Randomize call
const DefaultMaxAttempts = 50

// Service defines the interface for randomizer operations
type Service interface {
	// Resolve makes one attempt: draw a standard pokemon, fetch its strategies,
	// draw a strategy in the requested format and then a set. A nil MoveSet
	// in the output means the draw found nothing usable.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// Randomize fetches the basics listing and repeats Resolve until a set is
	// found or the attempt bound is reached
	Randomize(ctx context.Context, input *RandomizeInput) (*RandomizeOutput, error)
}

// Config holds the dependencies for the randomizer orchestrator
type Config struct {
	Client      stratdex.Client
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock // optional, defaults to the system clock
	MaxAttempts int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	errors.ValidateMin("MaxAttempts", c.MaxAttempts, 1, vb)

	return vb.Build()
}

type orchestrator struct {
	client      stratdex.Client
	roller      dice.Roller
	idGen       idgen.Generator
	clock       clock.Clock
	maxAttempts int
}

// NewOrchestrator creates a new randomizer orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:      cfg.Client,
		roller:      cfg.Roller,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		maxAttempts: cfg.MaxAttempts,
	}, nil
}

// IsEmptyUniverse reports whether err means the basics listing had no
// standard pokemon at all
func IsEmptyUniverse(err error) bool {
	return errors.IsFailedPrecondition(err)
}

// IsResolutionExhausted reports whether err means every attempt came back
// without a usable set
func IsResolutionExhausted(err error) bool {
	return errors.IsResourceExhausted(err)
}

func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Basics == nil {
		return nil, errors.InvalidArgument("basics listing is required")
	}
	if !input.Generation.Valid() {
		return nil, errors.InvalidArgumentf("unknown generation %d", int(input.Generation))
	}

	standard := input.Basics.StandardPokemon()
	if len(standard) == 0 {
		return nil, emptyUniverse(input.Generation)
	}

	idx, err := o.pick(len(standard))
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw pokemon")
	}
	pokemon := standard[idx]

	detail, alias, err := o.fetchPokemon(ctx, input.Generation, pokemon.Name)
	if err != nil {
		return nil, err
	}

	output := &ResolveOutput{
		Pokemon: pokemon,
		Alias:   alias,
	}

	strategies := detail.StrategiesForFormat(input.Format)
	if len(strategies) == 0 {
		slog.DebugContext(ctx, "no strategy in requested format",
			"pokemon", pokemon.Name,
			"format", input.Format,
		)
		return output, nil
	}

	idx, err = o.pick(len(strategies))
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw strategy")
	}
	strategy := strategies[idx]
	output.Format = strategy.Format

	if len(strategy.MoveSets) == 0 {
		slog.DebugContext(ctx, "strategy has no sets",
			"pokemon", pokemon.Name,
			"format", strategy.Format,
		)
		return output, nil
	}

	idx, err = o.pick(len(strategy.MoveSets))
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw set")
	}
	set := strategy.MoveSets[idx]
	output.MoveSet = &set

	return output, nil
}

func (o *orchestrator) Randomize(ctx context.Context, input *RandomizeInput) (*RandomizeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	maxAttempts := input.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = o.maxAttempts
	}
	if maxAttempts < 0 {
		return nil, errors.InvalidArgumentf("max attempts must be positive, got %d", maxAttempts)
	}

	var gen dex.Generation
	if input.Generation != nil {
		gen = *input.Generation
	} else {
		all := dex.AllGenerations()
		idx, err := o.pick(len(all))
		if err != nil {
			return nil, errors.Wrap(err, "failed to draw generation")
		}
		gen = all[idx]
	}
	if !gen.Valid() {
		return nil, errors.InvalidArgumentf("unknown generation %d", int(gen))
	}

	runID := o.idGen.Generate()
	start := o.clock.Now()
	slog.DebugContext(ctx, "randomizer run started",
		"run_id", runID,
		"generation", gen.Code(),
		"format", input.Format,
		"max_attempts", maxAttempts,
	)

	basics, err := o.client.GetBasics(ctx, gen)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch basics for %s", gen)
	}
	if len(basics.StandardPokemon()) == 0 {
		return nil, emptyUniverse(gen)
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return nil, errors.Canceled("randomizer run canceled").
				WithMeta("run_id", runID).
				WithMeta("attempts", attempt-1)
		}

		resolved, err := o.Resolve(ctx, &ResolveInput{
			Basics:     basics,
			Generation: gen,
			Format:     input.Format,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "attempt %d failed", attempt)
		}

		if resolved.MoveSet == nil {
			slog.DebugContext(ctx, "attempt found no usable set",
				"run_id", runID,
				"attempt", attempt,
				"pokemon", resolved.Pokemon.Name,
			)
			continue
		}

		elapsed := o.clock.Since(start)
		slog.InfoContext(ctx, "randomizer resolved a set",
			"run_id", runID,
			"generation", gen.Code(),
			"format", resolved.Format,
			"pokemon", resolved.Pokemon.Name,
			"set", resolved.MoveSet.Name,
			"attempts", attempt,
			"elapsed", elapsed,
		)

		return &RandomizeOutput{
			RunID:      runID,
			Generation: gen,
			Format:     resolved.Format,
			Pokemon:    resolved.Pokemon,
			MoveSet:    resolved.MoveSet,
			Attempts:   attempt,
			Elapsed:    elapsed,
		}, nil
	}

	slog.WarnContext(ctx, "randomizer gave up",
		"run_id", runID,
		"attempts", maxAttempts,
		"elapsed", o.clock.Since(start),
	)
	return nil, errors.ResourceExhaustedf("no usable set found after %d attempts", maxAttempts).
		WithMeta("run_id", runID).
		WithMeta("attempts", maxAttempts).
		WithMeta("generation", gen.Code()).
		WithMeta("format", input.Format)
}

// fetchPokemon looks the pokemon up by its alias, retrying once with the
// "-mega" free alias when the first lookup fails
func (o *orchestrator) fetchPokemon(ctx context.Context, gen dex.Generation, name string) (*dex.PokemonResponse, string, error) {
	primary := Alias(name)
	detail, err := o.client.GetPokemon(ctx, gen, primary)
	if err == nil {
		return detail, primary, nil
	}

	if ctx.Err() != nil {
		return nil, primary, errors.WrapWithCode(err, errors.CodeCanceled, "pokemon lookup canceled")
	}

	fallback := FallbackAlias(primary)
	slog.WarnContext(ctx, "pokemon lookup failed, retrying with fallback alias",
		"alias", primary,
		"fallback", fallback,
		"error", err,
	)

	detail, err = o.client.GetPokemon(ctx, gen, fallback)
	if err != nil {
		return nil, fallback, errors.Wrapf(err, "failed to fetch pokemon %q", name)
	}
	return detail, fallback, nil
}

// pick draws a uniform index in [0, n)
func (o *orchestrator) pick(n int) (int, error) {
	if n <= 0 {
		return 0, errors.Internalf("cannot draw from %d options", n)
	}

	roll, err := o.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", n)
	}
	if roll < 1 || roll > n {
		return 0, errors.Internalf("roller returned %d for d%d", roll, n)
	}
	return roll - 1, nil
}

func emptyUniverse(gen dex.Generation) error {
	return errors.FailedPreconditionf("no standard pokemon in %s basics", gen).
		WithMeta("generation", gen.Code())
}
