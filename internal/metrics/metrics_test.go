package metrics

import (
	"math"
	"testing"

	"github.com/r7vme/ripple/internal/field"
	"github.com/r7vme/ripple/internal/wave"
)

func TestEnergy_AveragesObservations(t *testing.T) {
	m := NewEnergy(3.0)

	u := field.NewGrid(4, 4)
	v := field.NewGrid(4, 4)
	v.Set(1, 1, 2.0)

	m.Observe(u, v, 1, 0.03)
	want := wave.FieldEnergy(u, v, 3.0)
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("energy = %f, want %f", m.Value(), want)
	}

	v.Set(1, 1, 0)
	m.Observe(u, v, 2, 0.06)
	if math.Abs(m.Value()-want/2) > 1e-12 {
		t.Errorf("average energy = %f, want %f", m.Value(), want/2)
	}
	if m.MaxDrift() != 1.0 {
		t.Errorf("max drift = %f, want 1 (energy fell to zero)", m.MaxDrift())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestPeakAmplitude(t *testing.T) {
	m := NewPeakAmplitude()

	u := field.NewGrid(3, 3)
	v := field.NewGrid(3, 3)

	u.Set(0, 0, -0.5)
	m.Observe(u, v, 1, 0)
	u.Set(0, 0, 0.2)
	m.Observe(u, v, 2, 0)

	if m.Value() != 0.5 {
		t.Errorf("peak = %f, want 0.5", m.Value())
	}
}

func TestStability(t *testing.T) {
	m := NewStability(10.0)

	u := field.NewGrid(2, 2)
	v := field.NewGrid(2, 2)

	m.Observe(u, v, 1, 0)
	u.Set(0, 0, 100.0)
	m.Observe(u, v, 2, 0)
	u.Set(0, 0, math.NaN())
	m.Observe(u, v, 3, 0)
	u.Set(0, 0, 1.0)
	m.Observe(u, v, 4, 0)

	if got := m.Value(); got != 0.5 {
		t.Errorf("stability = %f, want 0.5", got)
	}

	m.Reset()
	if m.Value() != 1.0 {
		t.Errorf("stability after reset = %f, want 1", m.Value())
	}
}
