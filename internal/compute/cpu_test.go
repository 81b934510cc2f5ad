package compute

import (
	"math"
	"testing"

	"github.com/r7vme/ripple/internal/field"
)

func TestCPUBackend_MatchesSerial(t *testing.T) {
	// 128 rows exceeds the serial threshold, so this exercises the worker
	// fan-out path.
	src := field.NewGrid(128, 128)
	for i := range src.Data() {
		src.Data()[i] = math.Cos(float64(i) * 0.11)
	}

	serial := field.NewGrid(128, 128)
	if err := field.Convolve(serial, src, field.LaplacianKernel); err != nil {
		t.Fatal(err)
	}

	parallel := field.NewGrid(128, 128)
	backend := NewCPUBackend()
	if err := backend.Convolve(parallel, src, field.LaplacianKernel); err != nil {
		t.Fatal(err)
	}

	for i := range serial.Data() {
		if serial.Data()[i] != parallel.Data()[i] {
			t.Fatalf("parallel convolution differs at %d", i)
		}
	}
}

func TestCPUBackend_ShapeMismatch(t *testing.T) {
	backend := NewCPUBackend()
	err := backend.Convolve(field.NewGrid(2, 2), field.NewGrid(3, 3), field.LaplacianKernel)
	if err != field.ErrShapeMismatch {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestAutoSelectBackend(t *testing.T) {
	b := AutoSelectBackend()
	if !b.Available() {
		t.Error("auto-selected backend not available")
	}
	if b.Name() != "cpu" {
		t.Errorf("expected cpu backend, got %s", b.Name())
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"cpu", "serial"} {
		b, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) failed: %v", name, err)
		}
		if b.Name() != name || !b.Available() {
			t.Errorf("ByName(%q) returned %s (available=%v)", name, b.Name(), b.Available())
		}
	}

	if _, err := ByName("gpu"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestSetBackend(t *testing.T) {
	prev := GetBackend()
	defer SetBackend(prev)

	b := NewSerialBackend()
	SetBackend(b)
	if GetBackend() != Backend(b) {
		t.Error("SetBackend did not install the backend")
	}
}

func TestSerialBackend_MatchesCPU(t *testing.T) {
	src := field.NewGrid(64, 64)
	for i := range src.Data() {
		src.Data()[i] = math.Sin(float64(i) * 0.07)
	}

	a := field.NewGrid(64, 64)
	if err := NewSerialBackend().Convolve(a, src, field.LaplacianKernel); err != nil {
		t.Fatal(err)
	}
	b := field.NewGrid(64, 64)
	if err := NewCPUBackend().Convolve(b, src, field.LaplacianKernel); err != nil {
		t.Fatal(err)
	}

	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			t.Fatalf("backends differ at %d", i)
		}
	}
}
