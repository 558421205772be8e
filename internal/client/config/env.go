package config

import "os"

// parseEnv overlays FITSCHED_API_URL, FITSCHED_DB and FITSCHED_LOG_LEVEL.
// FITSCHED_DB may be set to an empty string to run without a database file.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("FITSCHED_API_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv("FITSCHED_DB"); ok {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv("FITSCHED_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
}
