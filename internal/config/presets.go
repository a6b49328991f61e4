package config

import (
	"fmt"
	"sort"
)

// Presets are ready-made parameter sets for the standard grid sizes,
// so a run does not require a parameter file on disk.
var Presets = map[string]*Params{
	"128x128": {
		NX: 128, NY: 128, MaxIters: 1000, ReynoldsDim: 128,
		Density: 1.0, Accel: 0.005, Omega: 1.7,
	},
	"128x256": {
		NX: 128, NY: 256, MaxIters: 1000, ReynoldsDim: 128,
		Density: 1.0, Accel: 0.005, Omega: 1.6,
	},
	"256x256": {
		NX: 256, NY: 256, MaxIters: 1000, ReynoldsDim: 256,
		Density: 1.0, Accel: 0.005, Omega: 1.5,
	},
	"1024x1024": {
		NX: 1024, NY: 1024, MaxIters: 200, ReynoldsDim: 1024,
		Density: 1.0, Accel: 0.005, Omega: 1.4,
	},
}

// GetPreset returns a copy of the named preset, so callers may adjust
// fields without mutating the shared table.
func GetPreset(name string) (*Params, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("config: unknown preset %q (have %v)", name, ListPresets())
	}
	cp := *p
	return &cp, nil
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
