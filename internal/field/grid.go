package field

import (
	"fmt"
	"math"
)

// Grid is a dense rows×cols field of float64 values backed by a flat slice
// in row-major order.
type Grid struct {
	rows, cols int
	data       []float64
}

// NewGrid returns a zero-filled grid. Panics if either dimension is not
// positive; grid dimensions are fixed for the life of the value.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("field: invalid grid dimensions %dx%d", rows, cols))
	}
	return &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromRows builds a grid from a rectangular [][]float64. Returns
// ErrShapeMismatch if the rows have uneven lengths.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("field: empty input: %w", ErrShapeMismatch)
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.cols {
			return nil, fmt.Errorf("field: row %d has %d cols, want %d: %w", r, len(row), g.cols, ErrShapeMismatch)
		}
		copy(g.data[r*g.cols:(r+1)*g.cols], row)
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Data exposes the backing slice for hot loops. The slice is row-major with
// stride Cols().
func (g *Grid) Data() []float64 { return g.data }

func (g *Grid) At(r, c int) float64 { return g.data[r*g.cols+c] }

func (g *Grid) Set(r, c int, v float64) { g.data[r*g.cols+c] = v }

// SameShape reports whether two grids have identical dimensions.
func (g *Grid) SameShape(other *Grid) bool {
	return other != nil && g.rows == other.rows && g.cols == other.cols
}

func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	copy(c.data, g.data)
	return c
}

// CopyFrom copies src into g. Returns ErrShapeMismatch on differing shapes.
func (g *Grid) CopyFrom(src *Grid) error {
	if !g.SameShape(src) {
		return ErrShapeMismatch
	}
	copy(g.data, src.data)
	return nil
}

// Zero resets every cell to 0.
func (g *Grid) Zero() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// AddScaled adds factor*src to g in place. Returns ErrShapeMismatch on
// differing shapes.
func (g *Grid) AddScaled(factor float64, src *Grid) error {
	if !g.SameShape(src) {
		return ErrShapeMismatch
	}
	for i, v := range src.data {
		g.data[i] += factor * v
	}
	return nil
}

// IsValid reports whether the grid is free of NaN and Inf values.
func (g *Grid) IsValid() bool {
	for _, v := range g.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaxAbs returns the largest absolute cell value.
func (g *Grid) MaxAbs() float64 {
	max := 0.0
	for _, v := range g.data {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}
