package wave

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/r7vme/ripple/internal/compute"
	"github.com/r7vme/ripple/internal/field"
)

// Simulator owns the displacement and velocity grids and advances them
// through discrete time. Construct with New; the zero value is not usable.
type Simulator struct {
	rows, cols int

	u, v *field.Grid

	// Scratch buffers swapped in after each step so readers never observe a
	// half-updated grid.
	uNext, vNext, lap *field.Grid

	backend   compute.Backend
	metrics   []Metric
	observers []Observer

	stepsTaken int
	t          float64
}

// New builds a simulator for an n×n pond from caller-supplied initial
// displacement and velocity grids. The grids are copied, never aliased, so
// later caller mutation cannot corrupt a step. Both grids must be n×n;
// otherwise field.ErrShapeMismatch is returned.
func New(n int, u0, v0 *field.Grid) (*Simulator, error) {
	if u0 == nil || v0 == nil {
		return nil, fmt.Errorf("wave: nil initial grid: %w", field.ErrShapeMismatch)
	}
	if u0.Rows() != n || u0.Cols() != n {
		return nil, fmt.Errorf("wave: displacement grid is %dx%d, want %dx%d: %w",
			u0.Rows(), u0.Cols(), n, n, field.ErrShapeMismatch)
	}
	if !u0.SameShape(v0) {
		return nil, fmt.Errorf("wave: velocity grid is %dx%d, want %dx%d: %w",
			v0.Rows(), v0.Cols(), n, n, field.ErrShapeMismatch)
	}

	return &Simulator{
		rows:    n,
		cols:    n,
		u:       u0.Clone(),
		v:       v0.Clone(),
		uNext:   field.NewGrid(n, n),
		vNext:   field.NewGrid(n, n),
		lap:     field.NewGrid(n, n),
		backend: compute.GetBackend(),
	}, nil
}

// UseBackend replaces the convolution backend. Not safe to call during a
// step.
func (s *Simulator) UseBackend(b compute.Backend) { s.backend = b }

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Size() int       { return s.rows }
func (s *Simulator) StepsTaken() int { return s.stepsTaken }
func (s *Simulator) Time() float64   { return s.t }

// Displacement returns a copy of U after the most recently completed step.
func (s *Simulator) Displacement() *field.Grid { return s.u.Clone() }

// Velocity returns a copy of V after the most recently completed step.
func (s *Simulator) Velocity() *field.Grid { return s.v.Clone() }

// CopyDisplacement copies U after the most recently completed step into dst,
// letting steady consumers reuse one scratch grid instead of cloning every
// frame. Returns field.ErrShapeMismatch if dst has a different shape.
func (s *Simulator) CopyDisplacement(dst *field.Grid) error { return dst.CopyFrom(s.u) }

// CopyVelocity copies V after the most recently completed step into dst.
func (s *Simulator) CopyVelocity(dst *field.Grid) error { return dst.CopyFrom(s.v) }

// Splash sets one displacement cell between steps, so a running pond can
// take a new drop without losing its step count or clock.
func (s *Simulator) Splash(row, col int, value float64) error {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return fmt.Errorf("wave: splash cell (%d,%d) outside %dx%d grid", row, col, s.rows, s.cols)
	}
	s.u.Set(row, col, value)
	return nil
}

// Laplacian convolves g with the isotropic kernel using the simulator's
// backend. Pure function over g; exposed for diagnostics and tests.
func (s *Simulator) Laplacian(g *field.Grid) (*field.Grid, error) {
	out := field.NewGrid(g.Rows(), g.Cols())
	if err := s.backend.Convolve(out, g, field.LaplacianKernel); err != nil {
		return nil, err
	}
	return out, nil
}

// Step advances U and V by one explicit Euler step. Both updates read only
// pre-step values; the new grids become visible together when the buffers
// are swapped at the end.
func (s *Simulator) Step(p Params) error {
	if err := s.backend.Convolve(s.lap, s.u, field.LaplacianKernel); err != nil {
		return err
	}

	eps := p.Eps
	damping := p.Damping
	c2 := p.WaveSpeed * p.WaveSpeed

	u := s.u.Data()
	v := s.v.Data()
	lap := s.lap.Data()
	un := s.uNext.Data()
	vn := s.vNext.Data()

	cols := s.cols
	field.ParallelRows(s.rows, 128, func(start, end int) {
		for i := start * cols; i < end*cols; i++ {
			un[i] = u[i] + eps*v[i]
			vn[i] = v[i] + eps*(c2*lap[i]-damping*v[i])
		}
	})

	s.u, s.uNext = s.uNext, s.u
	s.v, s.vNext = s.vNext, s.v

	s.stepsTaken++
	s.t += eps
	return nil
}

// Run advances the simulation cfg.Steps times, sampling stats and feeding
// metrics and observers along the way. Stops early on context cancellation
// (returning the partial result with the context error) or, when
// cfg.ValidateState is set, on the first NaN/Inf step.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Stats:   make([]Stats, 0, sampleCapacity(cfg)),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		if err := s.Step(cfg.Params); err != nil {
			s.finish(result)
			return result, err
		}

		for _, m := range s.metrics {
			m.Observe(s.u, s.v, s.stepsTaken, s.t)
		}
		for _, obs := range s.observers {
			obs.OnStep(s.u, s.stepsTaken, s.t)
		}

		if cfg.SampleEvery > 0 && (i+1)%cfg.SampleEvery == 0 {
			result.Stats = append(result.Stats, s.sample(cfg))
		}
		result.StepsTaken++

		if cfg.ValidateState && !s.u.IsValid() {
			err := StepError{Step: s.stepsTaken, Time: s.t, Err: field.ErrInvalidState}
			result.Errors = append(result.Errors, err)
			break
		}
	}

	s.finish(result)
	return result, nil
}

func (s *Simulator) finish(result *Result) {
	result.Final = s.u.Clone()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) sample(cfg Config) Stats {
	mean, std := stat.MeanStdDev(s.u.Data(), nil)
	return Stats{
		Step:   s.stepsTaken,
		Time:   s.t,
		Peak:   s.u.MaxAbs(),
		Mean:   mean,
		StdDev: std,
		Energy: FieldEnergy(s.u, s.v, cfg.Params.WaveSpeed),
		Probe:  s.u.At(cfg.ProbeRow, cfg.ProbeCol),
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Steps <= 0 {
		return fmt.Errorf("wave: steps must be positive, got %d", cfg.Steps)
	}
	if cfg.SampleEvery < 0 {
		return fmt.Errorf("wave: sample interval must be non-negative, got %d", cfg.SampleEvery)
	}
	if cfg.ProbeRow < 0 || cfg.ProbeRow >= s.rows || cfg.ProbeCol < 0 || cfg.ProbeCol >= s.cols {
		return fmt.Errorf("wave: probe cell (%d,%d) outside %dx%d grid", cfg.ProbeRow, cfg.ProbeCol, s.rows, s.cols)
	}
	return nil
}

func sampleCapacity(cfg Config) int {
	if cfg.SampleEvery <= 0 {
		return 0
	}
	return cfg.Steps / cfg.SampleEvery
}
