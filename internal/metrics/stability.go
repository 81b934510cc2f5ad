package metrics

import "github.com/r7vme/ripple/internal/field"

// Stability reports the fraction of observed steps whose displacement stayed
// finite and below a threshold. 1.0 means the run never misbehaved.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{name: "stability", threshold: threshold}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) Observe(u, v *field.Grid, step int, t float64) {
	s.samples++
	if !u.IsValid() || u.MaxAbs() > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
