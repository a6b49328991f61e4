package config

import (
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFinalStatePath = "final_state.dat"
	DefaultAvVelsPath     = "av_vels.dat"
)

// RunConfig holds run settings that are not part of the physics
// parameter file: how to partition the grid and where results go.
type RunConfig struct {
	Workers        int    `yaml:"workers"`
	FinalStatePath string `yaml:"final_state_path"`
	AvVelsPath     string `yaml:"av_vels_path"`
	Plot           bool   `yaml:"plot"`
	Live           bool   `yaml:"live"`
}

func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		Workers:        runtime.NumCPU(),
		FinalStatePath: DefaultFinalStatePath,
		AvVelsPath:     DefaultAvVelsPath,
	}
}

func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultRunConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *RunConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
