package randomizer_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/strat-dex/internal/clients/stratdex"
	stratdexmock "github.com/KirkDiggler/strat-dex/internal/clients/stratdex/mock"
	"github.com/KirkDiggler/strat-dex/internal/entities/dex"
	"github.com/KirkDiggler/strat-dex/internal/errors"
	"github.com/KirkDiggler/strat-dex/internal/orchestrators/randomizer"
	mockclock "github.com/KirkDiggler/strat-dex/internal/pkg/clock/mock"
	"github.com/KirkDiggler/strat-dex/internal/pkg/idgen"
	"github.com/KirkDiggler/strat-dex/internal/services/export"
	"github.com/KirkDiggler/strat-dex/internal/testutils"
	"github.com/KirkDiggler/strat-dex/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *stratdexmock.MockClient
	ctx        context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = stratdexmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(roller dice.Roller, maxAttempts int) randomizer.Service {
	o, err := randomizer.NewOrchestrator(&randomizer.Config{
		Client:      s.mockClient,
		Roller:      roller,
		IDGenerator: idgen.NewSequential("run"),
		MaxAttempts: maxAttempts,
	})
	s.Require().NoError(err)
	return o
}

func (s *OrchestratorTestSuite) TestRandomizeSingleCandidate() {
	roller := testutils.NewScriptedRoller(1, 1, 1)
	o := s.newOrchestrator(roller, 0)
	gen := dex.ScarletViolet

	s.mockClient.EXPECT().
		GetBasics(s.ctx, dex.ScarletViolet).
		Return(testutils.CreateTestBasics([]string{"Bulbasaur"}, nil), nil)
	s.mockClient.EXPECT().
		GetPokemon(s.ctx, dex.ScarletViolet, "bulbasaur").
		Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{
			testutils.FormatOU: {*testutils.BulbasaurMoveSet()},
		}, testutils.FormatOU), nil)

	output, err := o.Randomize(s.ctx, &randomizer.RandomizeInput{
		Generation: &gen,
		Format:     testutils.FormatOU,
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.MoveSet)

	s.Equal("run_1", output.RunID)
	s.Equal(dex.ScarletViolet, output.Generation)
	s.Equal(testutils.FormatOU, output.Format)
	s.Equal("Bulbasaur", output.Pokemon.Name)
	s.Equal(1, output.Attempts)
	s.Equal(testutils.BulbasaurExport, export.Render(output.MoveSet))
	s.Equal(0, roller.Remaining())
}

func (s *OrchestratorTestSuite) TestRandomizeReportsElapsedTime() {
	mockClock := mockclock.NewMockClock(s.ctrl)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockClock.EXPECT().Now().Return(start)
	mockClock.EXPECT().Since(start).Return(1500 * time.Millisecond)

	o, err := randomizer.NewOrchestrator(&randomizer.Config{
		Client:      s.mockClient,
		Roller:      testutils.NewScriptedRoller(1, 1, 1),
		IDGenerator: idgen.NewSequential("run"),
		Clock:       mockClock,
	})
	s.Require().NoError(err)
	gen := dex.XY

	mocks.ExpectBasics(s.ctx, s.mockClient, dex.XY, "Charizard-Mega-X")
	gomock.InOrder(
		mocks.ExpectPokemonNotFound(s.ctx, s.mockClient, dex.XY, "charizard-mega-x"),
		mocks.ExpectPokemonSets(s.ctx, s.mockClient, dex.XY, "charizard-x", testutils.FormatOU,
			dex.MoveSet{Name: "Dragon Dance", Pokemon: "Charizard-Mega-X"}),
	)

	output, err := o.Randomize(s.ctx, &randomizer.RandomizeInput{Generation: &gen})
	s.Require().NoError(err)
	s.Equal(1500*time.Millisecond, output.Elapsed)
	s.Equal("Dragon Dance", output.MoveSet.Name)
}

func (s *OrchestratorTestSuite) TestResolveOnlyDrawsStandardPokemon() {
	roller := testutils.NewScriptedRoller(2, 1, 1)
	o := s.newOrchestrator(roller, 0)

	basics := testutils.CreateTestBasics(
		[]string{"Mewtwo", "Bulbasaur", "Missingno.", "Venusaur"},
		map[string]string{"Mewtwo": "Past", "Missingno.": "Unobtainable"},
	)

	s.mockClient.EXPECT().
		GetPokemon(s.ctx, dex.SunMoon, "venusaur").
		Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{
			testutils.FormatOU: {{Name: "Sun", Pokemon: "Venusaur"}},
		}, testutils.FormatOU), nil)

	output, err := o.Resolve(s.ctx, &randomizer.ResolveInput{
		Basics:     basics,
		Generation: dex.SunMoon,
	})
	s.Require().NoError(err)
	s.Equal("Venusaur", output.Pokemon.Name)
	s.Equal("venusaur", output.Alias)
	s.Require().NotNil(output.MoveSet)
	s.Equal("Sun", output.MoveSet.Name)
	s.Equal([]int{2, 1, 1}, roller.Sizes)
}

func (s *OrchestratorTestSuite) TestResolveFallsBackToMegaFreeAlias() {
	roller := testutils.NewScriptedRoller(1, 1, 1)
	o := s.newOrchestrator(roller, 0)

	basics := testutils.CreateTestBasics([]string{"Charizard-Mega-X"}, nil)

	gomock.InOrder(
		s.mockClient.EXPECT().
			GetPokemon(s.ctx, dex.XY, "charizard-mega-x").
			Return(nil, testutils.NotFoundError("charizard-mega-x")),
		s.mockClient.EXPECT().
			GetPokemon(s.ctx, dex.XY, "charizard-x").
			Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{
				testutils.FormatOU: {{Name: "Dragon Dance", Pokemon: "Charizard-Mega-X"}},
			}, testutils.FormatOU), nil),
	)

	output, err := o.Resolve(s.ctx, &randomizer.ResolveInput{
		Basics:     basics,
		Generation: dex.XY,
		Format:     testutils.FormatOU,
	})
	s.Require().NoError(err)
	s.Equal("charizard-x", output.Alias)
	s.Require().NotNil(output.MoveSet)
	s.Equal("Dragon Dance", output.MoveSet.Name)
}

func (s *OrchestratorTestSuite) TestResolveRetriesOnceWithoutMegaSuffix() {
	roller := testutils.NewScriptedRoller(1, 1, 1)
	o := s.newOrchestrator(roller, 0)

	basics := testutils.CreateTestBasics([]string{"Great Tusk"}, nil)

	gomock.InOrder(
		s.mockClient.EXPECT().
			GetPokemon(s.ctx, dex.ScarletViolet, "great-tusk").
			Return(nil, testutils.NotFoundError("great-tusk")),
		s.mockClient.EXPECT().
			GetPokemon(s.ctx, dex.ScarletViolet, "great-tusk").
			Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{
				testutils.FormatOU: {{Name: "Rapid Spin", Pokemon: "Great Tusk"}},
			}, testutils.FormatOU), nil),
	)

	output, err := o.Resolve(s.ctx, &randomizer.ResolveInput{
		Basics:     basics,
		Generation: dex.ScarletViolet,
	})
	s.Require().NoError(err)
	s.Equal("great-tusk", output.Alias)
	s.Require().NotNil(output.MoveSet)
}

func (s *OrchestratorTestSuite) TestResolveSecondFetchFailurePropagates() {
	roller := testutils.NewScriptedRoller(1)
	o := s.newOrchestrator(roller, 0)

	basics := testutils.CreateTestBasics([]string{"Charizard-Mega-X"}, nil)

	gomock.InOrder(
		s.mockClient.EXPECT().
			GetPokemon(s.ctx, dex.XY, "charizard-mega-x").
			Return(nil, testutils.NotFoundError("charizard-mega-x")),
		s.mockClient.EXPECT().
			GetPokemon(s.ctx, dex.XY, "charizard-x").
			Return(nil, testutils.NotFoundError("charizard-x")),
	)

	output, err := o.Resolve(s.ctx, &randomizer.ResolveInput{
		Basics:     basics,
		Generation: dex.XY,
	})
	s.Require().Error(err)
	s.Nil(output)
	s.True(stratdex.IsFetchError(err))
	s.Equal("charizard-x", errors.GetMeta(err)["alias"])
}

func (s *OrchestratorTestSuite) TestResolveNarrowsToRequestedFormat() {
	roller := testutils.NewScriptedRoller(1, 1, 1)
	o := s.newOrchestrator(roller, 0)

	basics := testutils.CreateTestBasics([]string{"Bulbasaur"}, nil)

	s.mockClient.EXPECT().
		GetPokemon(s.ctx, dex.ScarletViolet, "bulbasaur").
		Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{
			testutils.FormatUU: {{Name: "UU Set"}},
			testutils.FormatOU: {{Name: "OU Set"}},
			"LC":               {{Name: "LC Set"}},
		}, testutils.FormatUU, testutils.FormatOU, "LC"), nil)

	output, err := o.Resolve(s.ctx, &randomizer.ResolveInput{
		Basics:     basics,
		Generation: dex.ScarletViolet,
		Format:     testutils.FormatOU,
	})
	s.Require().NoError(err)
	s.Equal(testutils.FormatOU, output.Format)
	s.Require().NotNil(output.MoveSet)
	s.Equal("OU Set", output.MoveSet.Name)
	s.Equal([]int{1, 1, 1}, roller.Sizes)
}

func (s *OrchestratorTestSuite) TestResolveWithoutFilterDrawsAcrossFormats() {
	roller := testutils.NewScriptedRoller(1, 2, 2)
	o := s.newOrchestrator(roller, 0)

	basics := testutils.CreateTestBasics([]string{"Bulbasaur"}, nil)

	s.mockClient.EXPECT().
		GetPokemon(s.ctx, dex.ScarletViolet, "bulbasaur").
		Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{
			testutils.FormatUU: {{Name: "UU Set"}},
			testutils.FormatOU: {{Name: "OU Set A"}, {Name: "OU Set B"}},
		}, testutils.FormatUU, testutils.FormatOU), nil)

	output, err := o.Resolve(s.ctx, &randomizer.ResolveInput{
		Basics:     basics,
		Generation: dex.ScarletViolet,
	})
	s.Require().NoError(err)
	s.Equal(testutils.FormatOU, output.Format)
	s.Require().NotNil(output.MoveSet)
	s.Equal("OU Set B", output.MoveSet.Name)
	s.Equal([]int{1, 2, 2}, roller.Sizes)
}

func (s *OrchestratorTestSuite) TestResolveNoStrategyInFormatIsNotAnError() {
	roller := testutils.NewScriptedRoller(1)
	o := s.newOrchestrator(roller, 0)

	basics := testutils.CreateTestBasics([]string{"Bulbasaur"}, nil)

	s.mockClient.EXPECT().
		GetPokemon(s.ctx, dex.ScarletViolet, "bulbasaur").
		Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{
			testutils.FormatOU: {{Name: "OU Set"}},
		}, testutils.FormatOU), nil)

	output, err := o.Resolve(s.ctx, &randomizer.ResolveInput{
		Basics:     basics,
		Generation: dex.ScarletViolet,
		Format:     "LC",
	})
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Nil(output.MoveSet)
	s.Equal("Bulbasaur", output.Pokemon.Name)
	s.Equal([]int{1}, roller.Sizes)
}

func (s *OrchestratorTestSuite) TestResolveStrategyWithoutSetsIsNotAnError() {
	roller := testutils.NewScriptedRoller(1, 1)
	o := s.newOrchestrator(roller, 0)

	basics := testutils.CreateTestBasics([]string{"Bulbasaur"}, nil)

	s.mockClient.EXPECT().
		GetPokemon(s.ctx, dex.ScarletViolet, "bulbasaur").
		Return(testutils.CreateTestPokemon(nil, testutils.FormatOU), nil)

	output, err := o.Resolve(s.ctx, &randomizer.ResolveInput{
		Basics:     basics,
		Generation: dex.ScarletViolet,
		Format:     testutils.FormatOU,
	})
	s.Require().NoError(err)
	s.Nil(output.MoveSet)
	s.Equal(testutils.FormatOU, output.Format)
}

func (s *OrchestratorTestSuite) TestResolveEmptyUniverse() {
	o := s.newOrchestrator(testutils.NewScriptedRoller(), 0)

	basics := testutils.CreateTestBasics(
		[]string{"Missingno."},
		map[string]string{"Missingno.": "Unobtainable"},
	)

	_, err := o.Resolve(s.ctx, &randomizer.ResolveInput{
		Basics:     basics,
		Generation: dex.RedBlue,
	})
	s.Require().Error(err)
	s.True(randomizer.IsEmptyUniverse(err))
	s.False(randomizer.IsResolutionExhausted(err))
}

func (s *OrchestratorTestSuite) TestResolveRejectsBadInput() {
	o := s.newOrchestrator(testutils.NewScriptedRoller(), 0)

	_, err := o.Resolve(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = o.Resolve(s.ctx, &randomizer.ResolveInput{Generation: dex.XY})
	s.True(errors.IsInvalidArgument(err))

	_, err = o.Resolve(s.ctx, &randomizer.ResolveInput{
		Basics:     testutils.CreateTestBasics([]string{"Bulbasaur"}, nil),
		Generation: dex.Generation(99),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestResolveRollerFailure() {
	o := s.newOrchestrator(testutils.NewScriptedRoller(), 0)

	_, err := o.Resolve(s.ctx, &randomizer.ResolveInput{
		Basics:     testutils.CreateTestBasics([]string{"Bulbasaur"}, nil),
		Generation: dex.ScarletViolet,
	})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "scripted roller exhausted")
}

func (s *OrchestratorTestSuite) TestRandomizeDrawsAgainAfterEmptyAttempt() {
	roller := testutils.NewScriptedRoller(2, 1, 1, 1)
	o := s.newOrchestrator(roller, 0)
	gen := dex.ScarletViolet

	s.mockClient.EXPECT().
		GetBasics(s.ctx, dex.ScarletViolet).
		Return(testutils.CreateTestBasics([]string{"Bulbasaur", "Squirtle"}, nil), nil)
	s.mockClient.EXPECT().
		GetPokemon(s.ctx, dex.ScarletViolet, "squirtle").
		Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{
			testutils.FormatUU: {{Name: "Rain"}},
		}, testutils.FormatUU), nil)
	s.mockClient.EXPECT().
		GetPokemon(s.ctx, dex.ScarletViolet, "bulbasaur").
		Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{
			testutils.FormatOU: {*testutils.BulbasaurMoveSet()},
		}, testutils.FormatOU), nil)

	output, err := o.Randomize(s.ctx, &randomizer.RandomizeInput{
		Generation: &gen,
		Format:     testutils.FormatOU,
	})
	s.Require().NoError(err)
	s.Equal(2, output.Attempts)
	s.Equal("Bulbasaur", output.Pokemon.Name)
	s.Equal([]int{2, 2, 1, 1}, roller.Sizes)
}

func (s *OrchestratorTestSuite) TestRandomizeExhaustsAttempts() {
	roller := testutils.FixedRoller{Face: 1}
	o := s.newOrchestrator(roller, 0)
	gen := dex.ScarletViolet

	s.mockClient.EXPECT().
		GetBasics(s.ctx, dex.ScarletViolet).
		Return(testutils.CreateTestBasics([]string{"Bulbasaur"}, nil), nil)
	s.mockClient.EXPECT().
		GetPokemon(s.ctx, dex.ScarletViolet, "bulbasaur").
		Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{
			testutils.FormatOU: {{Name: "OU Set"}},
		}, testutils.FormatOU), nil).
		Times(3)

	output, err := o.Randomize(s.ctx, &randomizer.RandomizeInput{
		Generation:  &gen,
		Format:      "VGC",
		MaxAttempts: 3,
	})
	s.Require().Error(err)
	s.Nil(output)
	s.True(randomizer.IsResolutionExhausted(err))
	s.False(stratdex.IsFetchError(err))

	meta := errors.GetMeta(err)
	s.Equal(3, meta["attempts"])
	s.Equal("VGC", meta["format"])
}

func (s *OrchestratorTestSuite) TestRandomizeUsesConfiguredAttemptBound() {
	o := s.newOrchestrator(testutils.FixedRoller{Face: 1}, 2)
	gen := dex.BlackWhite

	s.mockClient.EXPECT().
		GetBasics(s.ctx, dex.BlackWhite).
		Return(testutils.CreateTestBasics([]string{"Excadrill"}, nil), nil)
	s.mockClient.EXPECT().
		GetPokemon(s.ctx, dex.BlackWhite, "excadrill").
		Return(&dex.PokemonResponse{}, nil).
		Times(2)

	_, err := o.Randomize(s.ctx, &randomizer.RandomizeInput{Generation: &gen})
	s.Require().Error(err)
	s.True(randomizer.IsResolutionExhausted(err))
}

func (s *OrchestratorTestSuite) TestRandomizeEmptyUniverse() {
	o := s.newOrchestrator(testutils.NewScriptedRoller(), 0)
	gen := dex.RedBlue

	s.mockClient.EXPECT().
		GetBasics(s.ctx, dex.RedBlue).
		Return(testutils.CreateTestBasics(
			[]string{"Missingno."},
			map[string]string{"Missingno.": "Unobtainable"},
		), nil)

	_, err := o.Randomize(s.ctx, &randomizer.RandomizeInput{Generation: &gen})
	s.Require().Error(err)
	s.True(randomizer.IsEmptyUniverse(err))
	s.Equal("rb", errors.GetMeta(err)["generation"])
}

func (s *OrchestratorTestSuite) TestRandomizePicksGenerationWhenUnset() {
	roller := testutils.NewScriptedRoller(3, 1, 1, 1)
	o := s.newOrchestrator(roller, 0)

	s.mockClient.EXPECT().
		GetBasics(s.ctx, dex.SunMoon).
		Return(testutils.CreateTestBasics([]string{"Bulbasaur"}, nil), nil)
	s.mockClient.EXPECT().
		GetPokemon(s.ctx, dex.SunMoon, "bulbasaur").
		Return(testutils.CreateTestPokemon(map[string][]dex.MoveSet{
			testutils.FormatOU: {*testutils.BulbasaurMoveSet()},
		}, testutils.FormatOU), nil)

	output, err := o.Randomize(s.ctx, &randomizer.RandomizeInput{})
	s.Require().NoError(err)
	s.Equal(dex.SunMoon, output.Generation)
	s.Equal(9, roller.Sizes[0])
}

func (s *OrchestratorTestSuite) TestRandomizeBasicsFailure() {
	o := s.newOrchestrator(testutils.NewScriptedRoller(), 0)
	gen := dex.ScarletViolet

	s.mockClient.EXPECT().
		GetBasics(s.ctx, dex.ScarletViolet).
		Return(nil, errors.Unavailable("dump-basics request failed").
			WithMeta("endpoint", stratdex.EndpointBasics))

	_, err := o.Randomize(s.ctx, &randomizer.RandomizeInput{Generation: &gen})
	s.Require().Error(err)
	s.True(stratdex.IsFetchError(err))
}

func (s *OrchestratorTestSuite) TestRandomizeStopsWhenCanceled() {
	o := s.newOrchestrator(testutils.NewScriptedRoller(), 0)
	gen := dex.ScarletViolet

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockClient.EXPECT().
		GetBasics(gomock.Any(), dex.ScarletViolet).
		Return(testutils.CreateTestBasics([]string{"Bulbasaur"}, nil), nil)

	_, err := o.Randomize(ctx, &randomizer.RandomizeInput{Generation: &gen})
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}

func (s *OrchestratorTestSuite) TestRandomizeRejectsNegativeAttempts() {
	o := s.newOrchestrator(testutils.NewScriptedRoller(), 0)
	gen := dex.ScarletViolet

	_, err := o.Randomize(s.ctx, &randomizer.RandomizeInput{Generation: &gen, MaxAttempts: -1})
	s.True(errors.IsInvalidArgument(err))

	_, err = o.Randomize(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestNewOrchestratorValidatesConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     *randomizer.Config
		message string
	}{
		{
			name:    "nil config",
			cfg:     nil,
			message: "config is required",
		},
		{
			name:    "missing dependencies",
			cfg:     &randomizer.Config{},
			message: "Client: is required",
		},
		{
			name: "negative attempts",
			cfg: &randomizer.Config{
				Client:      stratdexmock.NewMockClient(gomock.NewController(t)),
				Roller:      dice.DefaultRoller,
				IDGenerator: idgen.NewSequential(""),
				MaxAttempts: -5,
			},
			message: "MaxAttempts: must be at least 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := randomizer.NewOrchestrator(tc.cfg)
			require.Error(t, err)
			assert.Nil(t, o)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestConfigDefaultsMaxAttempts(t *testing.T) {
	cfg := &randomizer.Config{
		Client:      stratdexmock.NewMockClient(gomock.NewController(t)),
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewSequential(""),
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, randomizer.DefaultMaxAttempts, cfg.MaxAttempts)
}
