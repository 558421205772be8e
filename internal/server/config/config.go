// Package config handles configuration for the mock backend: defaults, an
// optional YAML file, environment variables and command-line flags, applied
// in that order.
package config

// Config holds runtime settings for the mock backend.
//
// Fields:
//   - Addr: HTTP bind address.
//   - AllowedOrigin: value of Access-Control-Allow-Origin.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Addr          string
	AllowedOrigin string
	LogLevel      string
}

// LoadDefaults populates Config with the development defaults the web client
// expects.
func (c *Config) LoadDefaults() {
	c.Addr = ":8000"
	c.AllowedOrigin = "http://localhost:3000"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional YAML file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseYAML(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
