// Package render turns displacement grids into images. The core knows
// nothing about image formats; everything here is host-side presentation.
package render

import (
	"gonum.org/v1/gonum/floats"

	"github.com/r7vme/ripple/internal/field"
)

// Intensity linearly maps v from [low, high] to [0, 255], clamping outside
// the range.
func Intensity(v, low, high float64) uint8 {
	if high <= low {
		return 0
	}
	t := (v - low) / (high - low)
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 255
	}
	return uint8(t * 255)
}

// AutoRange returns a symmetric normalization range covering the grid's
// extremes. Falls back to [-1, 1] for an all-zero grid so a flat pond
// renders mid-gray.
func AutoRange(g *field.Grid) (low, high float64) {
	data := g.Data()
	max := floats.Max(data)
	min := floats.Min(data)

	bound := max
	if -min > bound {
		bound = -min
	}
	if bound == 0 {
		bound = 1
	}
	return -bound, bound
}
