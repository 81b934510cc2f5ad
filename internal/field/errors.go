package field

import "errors"

// Domain errors for grid operations.
var (
	// ErrShapeMismatch indicates two grids with differing dimensions were
	// combined, or a grid does not match its declared size.
	ErrShapeMismatch = errors.New("field: grid shape mismatch")

	// ErrInvalidState indicates a grid containing NaN or Inf values where a
	// finite field was required.
	ErrInvalidState = errors.New("field: invalid grid (NaN or Inf detected)")
)
