package metrics

import "github.com/r7vme/ripple/internal/field"

// PeakAmplitude records the largest absolute displacement seen during a run.
type PeakAmplitude struct {
	name string
	peak float64
}

func NewPeakAmplitude() *PeakAmplitude {
	return &PeakAmplitude{name: "peak_amplitude"}
}

func (p *PeakAmplitude) Name() string { return p.name }

func (p *PeakAmplitude) Observe(u, v *field.Grid, step int, t float64) {
	if m := u.MaxAbs(); m > p.peak {
		p.peak = m
	}
}

func (p *PeakAmplitude) Value() float64 { return p.peak }

func (p *PeakAmplitude) Reset() { p.peak = 0 }
