package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Size != 500 {
		t.Errorf("expected size 500, got %d", cfg.Size)
	}
	if cfg.Drops != 40 {
		t.Errorf("expected 40 drops, got %d", cfg.Drops)
	}
	if cfg.Steps != 1000 {
		t.Errorf("expected 1000 steps, got %d", cfg.Steps)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.Size = 2 }},
		{"negative drops", func(c *Config) { c.Drops = -1 }},
		{"zero steps", func(c *Config) { c.Steps = 0 }},
		{"empty render range", func(c *Config) { c.Render.Low, c.Render.High = 0.1, -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pond.yaml")

	cfg := DefaultConfig()
	cfg.Size = 64
	cfg.Seed = 99
	cfg.Render.FramesEvery = 5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Size != 64 || loaded.Seed != 99 || loaded.Render.FramesEvery != 5 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")

	cfg := DefaultConfig()
	cfg.Steps = -1
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error loading invalid config")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("drizzle")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Drops != 5 {
		t.Errorf("expected 5 drops, got %d", cfg.Drops)
	}
	// Presets inherit ambient defaults they do not override.
	if cfg.SampleEvery != 1 {
		t.Errorf("expected sample_every 1, got %d", cfg.SampleEvery)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}

	found := false
	for _, n := range names {
		if n == "reference" {
			found = true
		}
	}
	if !found {
		t.Error("reference preset missing")
	}
}

func TestProbeCell_DefaultsToCenter(t *testing.T) {
	cfg := DefaultConfig()
	row, col := cfg.ProbeCell()
	if row != 250 || col != 250 {
		t.Errorf("probe = (%d,%d), want (250,250)", row, col)
	}

	cfg.Probe = ProbeConfig{Row: 10, Col: 20}
	row, col = cfg.ProbeCell()
	if row != 10 || col != 20 {
		t.Errorf("probe = (%d,%d), want (10,20)", row, col)
	}
}
