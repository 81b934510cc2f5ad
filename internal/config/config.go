package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSize      = 500
	DefaultDrops     = 40
	DefaultSteps     = 1000
	DefaultEps       = 0.03
	DefaultDamping   = 0.04
	DefaultWaveSpeed = 3.0
	// DefaultRenderRange is the symmetric displacement range mapped onto
	// the full intensity scale when rendering frames.
	DefaultRenderRange = 0.1
)

type Config struct {
	Size      int     `yaml:"size"`
	Drops     int     `yaml:"drops"`
	Steps     int     `yaml:"steps"`
	Eps       float64 `yaml:"eps"`
	Damping   float64 `yaml:"damping"`
	WaveSpeed float64 `yaml:"wave_speed"`
	Seed      int64   `yaml:"seed"`

	// SampleEvery controls stats sampling; 1 records a row per step.
	SampleEvery int `yaml:"sample_every"`

	// Probe selects the cell tracked in the stats series. Negative values
	// mean the grid center.
	Probe ProbeConfig `yaml:"probe"`

	Render RenderConfig `yaml:"render"`
}

type ProbeConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

type RenderConfig struct {
	// FramesEvery writes a PNG frame every N steps; 0 disables frames.
	FramesEvery int `yaml:"frames_every"`
	// Low and High bound the linear intensity mapping.
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:        DefaultSize,
		Drops:       DefaultDrops,
		Steps:       DefaultSteps,
		Eps:         DefaultEps,
		Damping:     DefaultDamping,
		WaveSpeed:   DefaultWaveSpeed,
		SampleEvery: 1,
		Probe:       ProbeConfig{Row: -1, Col: -1},
		Render: RenderConfig{
			Low:  -DefaultRenderRange,
			High: DefaultRenderRange,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Size < 3 {
		return fmt.Errorf("config: size must be at least 3, got %d", c.Size)
	}
	if c.Drops < 0 {
		return fmt.Errorf("config: drops must be non-negative, got %d", c.Drops)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("config: steps must be positive, got %d", c.Steps)
	}
	if c.Render.High <= c.Render.Low {
		return fmt.Errorf("config: render range [%f, %f] is empty", c.Render.Low, c.Render.High)
	}
	return nil
}

// ProbeCell resolves the probe position, mapping negative values to the
// grid center.
func (c *Config) ProbeCell() (row, col int) {
	row, col = c.Probe.Row, c.Probe.Col
	if row < 0 {
		row = c.Size / 2
	}
	if col < 0 {
		col = c.Size / 2
	}
	return row, col
}
