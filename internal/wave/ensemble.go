package wave

import (
	"context"
	"sync"

	"github.com/r7vme/ripple/internal/field"
)

// InitFunc produces the initial displacement and velocity grids for one
// seeded ensemble member.
type InitFunc func(seed int64) (u0, v0 *field.Grid, err error)

// Ensemble runs seeded variants of the same pond in parallel. Each member
// gets its own simulator, so no grid is shared between goroutines.
type Ensemble struct {
	size      int
	numRuns   int
	seedStart int64
	init      InitFunc
}

func NewEnsemble(size, numRuns int, seedStart int64, init InitFunc) *Ensemble {
	return &Ensemble{size: size, numRuns: numRuns, seedStart: seedStart, init: init}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			u0, v0, err := e.init(e.seedStart + int64(idx))
			if err != nil {
				errs[idx] = err
				return
			}

			sim, err := New(e.size, u0, v0)
			if err != nil {
				errs[idx] = err
				return
			}

			results[idx], errs[idx] = sim.Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
