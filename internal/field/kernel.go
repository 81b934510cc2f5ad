package field

// Kernel is an immutable 3×3 convolution stencil.
type Kernel [3][3]float64

// LaplacianKernel is the isotropic discrete Laplacian. The corner weights
// reduce the directional bias of the plain 5-point stencil. It is never
// renormalized or resized.
var LaplacianKernel = Kernel{
	{0.25, 0.5, 0.25},
	{0.5, -3.0, 0.5},
	{0.25, 0.5, 0.25},
}

// Convolve writes the same-size zero-padded convolution of src with k into
// dst. Out-of-grid neighbors contribute 0 (no wraparound, no reflection).
// dst and src must not alias and must share a shape.
func Convolve(dst, src *Grid, k Kernel) error {
	if !dst.SameShape(src) {
		return ErrShapeMismatch
	}
	ConvolveRows(dst, src, k, 0, src.rows)
	return nil
}

// ConvolveRows convolves rows [start, end) only. Callers splitting work
// across goroutines must give each worker a disjoint row range; every worker
// reads all of src, so src must not be mutated concurrently.
func ConvolveRows(dst, src *Grid, k Kernel, start, end int) {
	rows, cols := src.rows, src.cols
	if start < 0 {
		start = 0
	}
	if end > rows {
		end = rows
	}
	for r := start; r < end; r++ {
		base := r * cols
		for c := 0; c < cols; c++ {
			sum := 0.0
			for dr := -1; dr <= 1; dr++ {
				rr := r + dr
				if rr < 0 || rr >= rows {
					continue
				}
				rowBase := rr * cols
				for dc := -1; dc <= 1; dc++ {
					cc := c + dc
					if cc < 0 || cc >= cols {
						continue
					}
					sum += k[dr+1][dc+1] * src.data[rowBase+cc]
				}
			}
			dst.data[base+c] = sum
		}
	}
}
