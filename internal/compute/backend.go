package compute

import (
	"fmt"

	"github.com/r7vme/ripple/internal/field"
)

// Backend performs the grid convolution at the heart of every step. Convolve
// must treat src as read-only and write each dst cell exactly once; it must
// not return before all writes complete.
type Backend interface {
	Name() string
	Available() bool
	Convolve(dst, src *field.Grid, k field.Kernel) error
	Cleanup()
}

var activeBackend Backend

func init() {
	activeBackend = AutoSelectBackend()
}

func SetBackend(b Backend) {
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}

func AutoSelectBackend() Backend {
	return NewCPUBackend()
}

// ByName returns the backend with the given name.
func ByName(name string) (Backend, error) {
	switch name {
	case "cpu":
		return NewCPUBackend(), nil
	case "serial":
		return NewSerialBackend(), nil
	default:
		return nil, fmt.Errorf("compute: unknown backend %q (want cpu or serial)", name)
	}
}
