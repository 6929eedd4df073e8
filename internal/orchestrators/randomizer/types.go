package randomizer

import (
	"time"

	"github.com/KirkDiggler/strat-dex/internal/entities/dex"
)

// ResolveInput defines the request for a single resolution attempt
type ResolveInput struct {
	Basics     *dex.BasicsResponse
	Generation dex.Generation
	Format     string // empty matches every format
}

// ResolveOutput is the result of one attempt. MoveSet is nil when the drawn
// pokemon had no usable set; the caller should draw again.
type ResolveOutput struct {
	Pokemon dex.BasicsPokemon
	Alias   string // alias that resolved the pokemon detail
	Format  string
	MoveSet *dex.MoveSet
}

// RandomizeInput defines the request for a full randomizer run
type RandomizeInput struct {
	Generation  *dex.Generation // nil picks a random generation
	Format      string          // empty matches every format
	MaxAttempts int             // 0 uses the configured bound
}

// RandomizeOutput is a resolved set together with where it came from
type RandomizeOutput struct {
	RunID      string
	Generation dex.Generation
	Format     string
	Pokemon    dex.BasicsPokemon
	MoveSet    *dex.MoveSet
	Attempts   int
	Elapsed    time.Duration
}
