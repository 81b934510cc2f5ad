package compute

import (
	"runtime"
	"sync"

	"github.com/r7vme/ripple/internal/field"
)

// serialThreshold is the row count below which goroutine fan-out costs more
// than it saves.
const serialThreshold = 64

type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{
		workers: runtime.NumCPU(),
	}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}

func (c *CPUBackend) Convolve(dst, src *field.Grid, k field.Kernel) error {
	if !dst.SameShape(src) {
		return field.ErrShapeMismatch
	}

	rows := src.Rows()
	if rows < serialThreshold || c.workers <= 1 {
		field.ConvolveRows(dst, src, k, 0, rows)
		return nil
	}

	workers := c.workers
	if workers > rows {
		workers = rows
	}
	chunkSize := (rows + workers - 1) / workers

	// Workers write disjoint row ranges of dst and only read src; the wait
	// below is the barrier before any caller may swap buffers.
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > rows {
			end = rows
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			field.ConvolveRows(dst, src, k, s, e)
		}(start, end)
	}
	wg.Wait()

	return nil
}
