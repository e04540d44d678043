package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	DatabasePath *string        `env:"LAVKA_DATABASE_PATH"`
	NetworkDelay *time.Duration `env:"LAVKA_NETWORK_DELAY"`
}

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the current values alone.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DatabasePath != nil {
		cfg.DatabasePath = *ec.DatabasePath
	}
	if ec.NetworkDelay != nil {
		cfg.NetworkDelay = *ec.NetworkDelay
	}
}
