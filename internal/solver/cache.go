package solver

import (
	"io"
	"log"

	"github.com/SeamusWaldron/pocketcube"
)

// Cache stores solutions by state.
type Cache interface {
	// Lookup returns the cached moves for state. ok is false on a miss.
	Lookup(state pocketcube.State) (moves []pocketcube.Move, ok bool, err error)
	// Store records moves as the solution of state.
	Store(state pocketcube.State, moves []pocketcube.Move) error
}

// Cached puts a Cache in front of another pocketcube.Solver. Cache failures
// are logged and fall through to the wrapped solver.
type Cached struct {
	pocketcube.Solver
	cache  Cache
	logger *log.Logger
}

// NewCached wraps s with cache. A nil logger discards output.
func NewCached(s pocketcube.Solver, cache Cache, logger *log.Logger) *Cached {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Cached{Solver: s, cache: cache, logger: logger}
}

// Solve returns the cached solution for state or solves and stores it.
func (c *Cached) Solve(state pocketcube.State) ([]pocketcube.Move, error) {
	moves, ok, err := c.cache.Lookup(state)
	if err != nil {
		c.logger.Printf("cache lookup %s: %v", state, err)
	}
	if ok {
		return moves, nil
	}

	moves, err = c.Solver.Solve(state)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Store(state, moves); err != nil {
		c.logger.Printf("cache store %s: %v", state, err)
	}
	return moves, nil
}
