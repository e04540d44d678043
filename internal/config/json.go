package config

import (
	"encoding/json"
	"os"

	"github.com/dkenzhe/lavka/internal/flagx"
	"github.com/dkenzhe/lavka/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the delay either as a string like
// "1500ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath *string         `json:"database_path"`
	NetworkDelay *timex.Duration `json:"network_delay"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. With no flag present nothing is loaded. Read or decode
// errors panic; the config stage has nothing sensible to fall back to.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.NetworkDelay != nil {
		cfg.NetworkDelay = jc.NetworkDelay.Duration
	}
}
