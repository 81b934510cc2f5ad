// Package drops generates initial pond conditions. The random source is
// injected so runs are reproducible from a seed.
package drops

import (
	"math/rand"

	"github.com/r7vme/ripple/internal/field"
)

// Random returns an n×n displacement grid with count impulses: each drop
// sets one uniformly chosen cell to a value in [0,1). Drops may land on the
// same cell, in which case the later value wins, matching the reference
// behavior.
func Random(n, count int, rng *rand.Rand) *field.Grid {
	g := field.NewGrid(n, n)
	for i := 0; i < count; i++ {
		r := rng.Intn(n)
		c := rng.Intn(n)
		g.Set(r, c, rng.Float64())
	}
	return g
}

// Single returns an n×n grid with one impulse of the given value. Useful
// for deterministic scenarios and tests.
func Single(n, row, col int, value float64) *field.Grid {
	g := field.NewGrid(n, n)
	g.Set(row, col, value)
	return g
}

// StillWater returns the all-zero n×n velocity grid every run starts from.
func StillWater(n int) *field.Grid {
	return field.NewGrid(n, n)
}
