package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads wallet configuration from a YAML file, layered over
// the defaults for the network the file selects. A missing file is not
// an error; the defaults are returned unchanged.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultMainnet(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// First pass: find the network so defaults match it.
	var probe struct {
		Network NetworkType `yaml:"network"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg := Default(probe.Network)

	// Second pass: overlay everything else onto the defaults.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveFile writes the configuration as YAML.
func SaveFile(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
