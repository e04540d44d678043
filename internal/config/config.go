// Package config assembles runtime settings for the Lavka CLI from
// defaults, an optional JSON file, environment variables and command-line
// flags; later sources take precedence.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: SQLite file the stores live in; ":memory:" is accepted.
//   - NetworkDelay: simulated latency before signup/login/checkout complete.
type Config struct {
	DatabasePath string
	NetworkDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "lavka.db"
	c.NetworkDelay = 1500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
