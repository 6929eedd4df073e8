package testutils

import (
	"fmt"
	"sync"
)

// ScriptedRoller is a dice.Roller that returns queued results in order.
// It records every die size it was asked to roll.
type ScriptedRoller struct {
	mu      sync.Mutex
	results []int
	Sizes   []int
}

// NewScriptedRoller queues results; each must be within 1..size of the
// roll that consumes it
func NewScriptedRoller(results ...int) *ScriptedRoller {
	return &ScriptedRoller{results: results}
}

// Roll returns the next queued result
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sizes = append(r.Sizes, size)
	if len(r.results) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted (d%d)", size)
	}

	next := r.results[0]
	r.results = r.results[1:]
	if next < 1 || next > size {
		return 0, fmt.Errorf("scripted result %d out of range for d%d", next, size)
	}
	return next, nil
}

// RollN returns the next count queued results
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Remaining returns how many queued results were not consumed
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

// FixedRoller always returns the same face, clamped to the die size
type FixedRoller struct {
	Face int
}

// Roll returns Face, or size when Face is larger
func (r FixedRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	if r.Face > size {
		return size, nil
	}
	if r.Face < 1 {
		return 1, nil
	}
	return r.Face, nil
}

// RollN rolls count dice of the given size
func (r FixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
