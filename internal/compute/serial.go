package compute

import "github.com/r7vme/ripple/internal/field"

// SerialBackend convolves on the calling goroutine with no fan-out. Useful
// as a benchmark baseline for the worker-pool backend.
type SerialBackend struct{}

func NewSerialBackend() *SerialBackend { return &SerialBackend{} }

func (s *SerialBackend) Name() string    { return "serial" }
func (s *SerialBackend) Available() bool { return true }
func (s *SerialBackend) Cleanup()        {}

func (s *SerialBackend) Convolve(dst, src *field.Grid, k field.Kernel) error {
	return field.Convolve(dst, src, k)
}
