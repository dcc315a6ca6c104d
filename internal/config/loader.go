package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	data = substituteEnvVars(data)

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to defaults (with environment
// overrides) when path is empty or unusable.
func LoadOrDefault(path string) *Config {
	if path != "" {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}

	cfg := Default()
	cfg.ApplyEnv()
	return cfg
}
