// Package compute provides convolution backends for the wave stepper.
//
// The package selects a backend at startup. The default CPU backend splits
// grid rows across worker goroutines; a serial baseline is available by
// name for benchmarking:
//
//	backend := compute.GetBackend()
//	backend.Convolve(dst, src, field.LaplacianKernel)
//
// Small grids run serially on the CPU backend too; the crossover is around
// 64 rows.
package compute
