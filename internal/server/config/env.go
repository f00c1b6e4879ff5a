package config

import "github.com/kelseyhightower/envconfig"

// EnvPrefix prefixes every environment variable read by parseEnv, e.g.
// DUOSYNC_DB_DSN.
const EnvPrefix = "DUOSYNC"

// parseEnv overlays cfg with the DUOSYNC_* variables that are set; unset
// variables leave the current values alone. A malformed value panics.
func parseEnv(cfg *Config) {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		panic(err)
	}
}
