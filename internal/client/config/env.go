package config

import "os"

// Environment variable names.
const (
	EnvBaseURL      = "MEDADVISOR_API_URL"
	EnvDatabasePath = "MEDADVISOR_DB_PATH"
)

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the existing values alone.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvBaseURL); ok && v != "" {
		cfg.ServerBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
}
