package config

import "sort"

var Presets = map[string]*Config{
	// The raindrops-on-a-pond reference run.
	"reference": {
		Size: 500, Drops: 40, Steps: 1000,
		Eps: 0.03, Damping: 0.04, WaveSpeed: 3.0,
	},
	// A handful of drops on a small pond; good for quick checks.
	"drizzle": {
		Size: 200, Drops: 5, Steps: 500,
		Eps: 0.03, Damping: 0.04, WaveSpeed: 3.0,
	},
	// Heavy rain, strong damping.
	"downpour": {
		Size: 500, Drops: 200, Steps: 1000,
		Eps: 0.03, Damping: 0.1, WaveSpeed: 3.0,
	},
	// One centered drop with no damping; rings propagate until they hit
	// the zero-padded boundary.
	"single": {
		Size: 300, Drops: 1, Steps: 800,
		Eps: 0.03, Damping: 0.0, WaveSpeed: 3.0, Seed: 1,
	},
	// Undisturbed pond; every grid stays identically zero.
	"mirror": {
		Size: 100, Drops: 0, Steps: 200,
		Eps: 0.03, Damping: 0.04, WaveSpeed: 3.0,
	},
}

func GetPreset(name string) *Config {
	base, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Size = base.Size
	cfg.Drops = base.Drops
	cfg.Steps = base.Steps
	cfg.Eps = base.Eps
	cfg.Damping = base.Damping
	cfg.WaveSpeed = base.WaveSpeed
	cfg.Seed = base.Seed
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
