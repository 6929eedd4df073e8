// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	stratdexmock "github.com/KirkDiggler/strat-dex/internal/clients/stratdex/mock"
	"github.com/KirkDiggler/strat-dex/internal/entities/dex"
	"github.com/KirkDiggler/strat-dex/internal/testutils"
)

// ExpectBasics sets up a single basics fetch returning the named pokemon, all standard
func ExpectBasics(
	ctx context.Context, mockClient *stratdexmock.MockClient,
	gen dex.Generation, names ...string,
) *gomock.Call {
	return mockClient.EXPECT().
		GetBasics(ctx, gen).
		Return(testutils.CreateTestBasics(names, nil), nil)
}

// ExpectPokemonSets sets up a single pokemon lookup returning one strategy in
// format holding sets
func ExpectPokemonSets(
	ctx context.Context, mockClient *stratdexmock.MockClient,
	gen dex.Generation, alias, format string, sets ...dex.MoveSet,
) *gomock.Call {
	return mockClient.EXPECT().
		GetPokemon(ctx, gen, alias).
		Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{format: sets}, format), nil)
}

// ExpectPokemonNotFound sets up a single pokemon lookup that fails the way
// the dex reports an unknown alias
func ExpectPokemonNotFound(
	ctx context.Context, mockClient *stratdexmock.MockClient,
	gen dex.Generation, alias string,
) *gomock.Call {
	return mockClient.EXPECT().
		GetPokemon(ctx, gen, alias).
		Return(nil, testutils.NotFoundError(alias))
}
