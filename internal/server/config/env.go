package config

import "os"

// parseEnv overlays MOCK_ADDR, MOCK_ALLOWED_ORIGIN and MOCK_LOG_LEVEL when set.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("MOCK_ADDR"); ok && v != "" {
		config.Addr = v
	}
	if v, ok := os.LookupEnv("MOCK_ALLOWED_ORIGIN"); ok && v != "" {
		config.AllowedOrigin = v
	}
	if v, ok := os.LookupEnv("MOCK_LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
}
