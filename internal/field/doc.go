// Package field provides the 2D grid primitives for the wave simulation.
//
// The package defines the fundamental types shared by the rest of the
// repository:
//
//   - [Grid]: a dense rows×cols float64 field backed by a flat slice
//   - [Kernel]: the fixed 3×3 isotropic discrete Laplacian stencil
//   - [Convolve]: same-size zero-padded convolution of a grid with the kernel
//
// # Example
//
//	u := field.NewGrid(500, 500)
//	lap := field.NewGrid(500, 500)
//	field.Convolve(lap, u, field.LaplacianKernel)
//
// # Thread Safety
//
// Grids are plain mutable values and are NOT safe for concurrent mutation.
// [ParallelRows] may be used to split row ranges across goroutines as long
// as every worker writes a disjoint set of rows.
package field
