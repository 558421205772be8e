package config

import "time"

// Config holds runtime settings for the fitsched CLI.
//
// Fields:
//   - APIBaseURL: root of the REST API; paths such as /auth/login/ are appended.
//   - DBPath: local SQLite file holding the session token.
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel: minimum level written to stderr.
type Config struct {
	APIBaseURL     string
	DBPath         string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.DBPath = "fitsched.db"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
