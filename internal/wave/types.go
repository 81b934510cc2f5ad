package wave

import (
	"fmt"

	"github.com/r7vme/ripple/internal/field"
)

// Params are the per-step scalar coefficients of the damped wave equation.
// They may vary between steps; the reference run keeps them constant.
type Params struct {
	// Eps is the time step Δt.
	Eps float64
	// Damping is the velocity decay coefficient.
	Damping float64
	// WaveSpeed is the propagation speed c.
	WaveSpeed float64
}

// ReferenceParams returns the raindrops-on-a-pond reference configuration.
func ReferenceParams() Params {
	return Params{Eps: 0.03, Damping: 0.04, WaveSpeed: 3.0}
}

// Metric observes the grids once per step and reduces to a single value.
type Metric interface {
	Name() string
	Observe(u, v *field.Grid, step int, t float64)
	Value() float64
	Reset()
}

// Observer is notified after each completed step with the post-step
// displacement grid. The grid must be treated as read-only.
type Observer interface {
	OnStep(u *field.Grid, step int, t float64)
}

// Config drives a Simulator.Run loop.
type Config struct {
	// Steps is the number of time steps to take.
	Steps int
	// Params are applied unchanged on every step.
	Params Params
	// SampleEvery controls how often a Stats row is recorded; 0 disables
	// sampling, 1 samples every step.
	SampleEvery int
	// ProbeRow, ProbeCol select the cell whose displacement is recorded in
	// each Stats row.
	ProbeRow, ProbeCol int
	// ValidateState stops the run with a StepError when NaN or Inf appears.
	// Off by default: numeric degeneracy propagates silently, matching the
	// reference behavior.
	ValidateState bool
}

// DefaultConfig returns the reference run: 1000 steps, reference
// parameters, a stats row per step.
func DefaultConfig() Config {
	return Config{
		Steps:       1000,
		Params:      ReferenceParams(),
		SampleEvery: 1,
	}
}

// SampleInterval returns the time spacing between consecutive stats rows,
// which is eps times the sampling stride of the run that produced them.
// Returns 0 when the series has fewer than two rows.
func SampleInterval(stats []Stats) float64 {
	if len(stats) < 2 {
		return 0
	}
	return stats[1].Time - stats[0].Time
}

// Stats is one sampled record of the field state during a run.
type Stats struct {
	Step   int     `csv:"step" json:"step"`
	Time   float64 `csv:"time" json:"time"`
	Peak   float64 `csv:"peak" json:"peak"`
	Mean   float64 `csv:"mean" json:"mean"`
	StdDev float64 `csv:"std_dev" json:"std_dev"`
	Energy float64 `csv:"energy" json:"energy"`
	Probe  float64 `csv:"probe" json:"probe"`
}

// Result is the outcome of a Run.
type Result struct {
	Stats      []Stats
	Metrics    map[string]float64
	StepsTaken int
	// Final is the displacement grid after the last completed step.
	Final *field.Grid
	Errors []error
}

// StepError carries the step index and simulated time of a failure.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Err)
}

func (e StepError) Unwrap() error { return e.Err }
