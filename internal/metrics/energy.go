package metrics

import (
	"math"

	"github.com/r7vme/ripple/internal/field"
	"github.com/r7vme/ripple/internal/wave"
)

// Energy averages the field energy over a run and tracks the peak relative
// drift from the first observation.
type Energy struct {
	name      string
	waveSpeed float64
	samples   int
	total     float64
	initial   float64
	maxDrift  float64
}

func NewEnergy(waveSpeed float64) *Energy {
	return &Energy{name: "energy", waveSpeed: waveSpeed}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(u, v *field.Grid, step int, t float64) {
	energy := wave.FieldEnergy(u, v, e.waveSpeed)

	if e.samples == 0 {
		e.initial = energy
	}
	e.total += energy
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

// MaxDrift returns the largest relative deviation from the initial energy.
func (e *Energy) MaxDrift() float64 { return e.maxDrift }

func (e *Energy) Reset() {
	e.samples = 0
	e.total = 0
	e.initial = 0
	e.maxDrift = 0
}
