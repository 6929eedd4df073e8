// Package testutils provides fixtures and deterministic helpers for tests
package testutils

import (
	"github.com/KirkDiggler/strat-dex/internal/clients/stratdex"
	"github.com/KirkDiggler/strat-dex/internal/entities/dex"
	"github.com/KirkDiggler/strat-dex/internal/errors"
)

// Fixture names
const (
	FormatOU = "OU"
	FormatUU = "UU"
)

// BulbasaurMoveSet is the special attacker set used across renderer and
// randomizer tests
func BulbasaurMoveSet() *dex.MoveSet {
	return &dex.MoveSet{
		Name:      "Special Attacker",
		Pokemon:   "Bulbasaur",
		Items:     []string{"Leftovers"},
		Abilities: []string{"Overgrow"},
		EVConfigs: []dex.StatSpread{{HP: 0, Atk: 0, Def: 4, SpA: 252, SpD: 0, Spe: 252}},
		Natures:   []string{"Modest"},
		MoveSlots: [][]dex.MoveSlot{
			{{Move: "Giga Drain"}},
		},
	}
}

// BulbasaurExport is the rendered text of BulbasaurMoveSet
const BulbasaurExport = "Bulbasaur @ Leftovers\n" +
	"Ability: Overgrow\n" +
	"EVs: 4 Def / 252 SpA / 252 Spe\n" +
	"Modest Nature\n" +
	"- Giga Drain\n"

// CreateTestBasics builds a basics listing with the given standardness
// flags keyed by pokemon name, in the order given by names
func CreateTestBasics(names []string, status map[string]string) *dex.BasicsResponse {
	basics := &dex.BasicsResponse{}
	for _, name := range names {
		flag, ok := status[name]
		if !ok {
			flag = dex.StandardStatus
		}
		basics.Pokemon = append(basics.Pokemon, dex.BasicsPokemon{
			Name:          name,
			IsNonstandard: flag,
		})
	}
	return basics
}

// CreateTestPokemon builds a pokemon detail with one strategy per format,
// each holding the given sets
func CreateTestPokemon(sets map[string][]dex.MoveSet, formats ...string) *dex.PokemonResponse {
	resp := &dex.PokemonResponse{Languages: []string{dex.LanguageEnglish}}
	for _, format := range formats {
		resp.Strategies = append(resp.Strategies, dex.Strategy{
			Format:   format,
			MoveSets: sets[format],
		})
	}
	return resp
}

// NotFoundError is the fetch error the client returns for an unknown alias
func NotFoundError(alias string) error {
	return errors.Unavailable("dump-pokemon: unexpected status 404").
		WithMeta("endpoint", stratdex.EndpointPokemon).
		WithMeta("alias", alias).
		WithMeta("status", 404)
}
