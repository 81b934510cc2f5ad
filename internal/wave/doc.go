// Package wave implements the damped wave equation on a 2D grid.
//
// A [Simulator] owns a displacement grid U and a velocity grid V of equal
// shape and advances them by explicit Euler steps:
//
//	U' = U + eps*V
//	V' = V + eps*(c²·∇²U - damping*V)
//
// where ∇²U is the isotropic discrete Laplacian from the field package with
// zero padding at the boundary. Both grids are updated from pre-step values
// only and swapped in as a single visible transition.
//
// # Example
//
//	u0 := drops.Random(500, 40, rng)
//	sim, _ := wave.New(500, u0, field.NewGrid(500, 500))
//	sim.Step(wave.ReferenceParams())
//	frame := sim.Displacement()
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. For parallel seeded runs, use
// the [Ensemble] type.
package wave
