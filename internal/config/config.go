// Package config loads the application configuration from a YAML file
// with environment variable overrides.
package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/maxbolgarin/errm"

	"github.com/AdenMGB/devtoolbox/internal/provider"
	"github.com/AdenMGB/devtoolbox/internal/server"
)

// Config represents the main application configuration
type Config struct {
	Server   server.Config   `yaml:"server"`
	Provider provider.Config `yaml:"provider"`
}

// Load reads configuration from the given file, falling back to
// environment variables only when no path is set.
// Per-component validation happens when each component is constructed.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, errm.Wrap(err, "failed to read environment")
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, errm.Wrap(err, "failed to read config file")
	}

	return cfg, nil
}
