package config

import (
	"os"

	"github.com/dmitrijs2005/fitsched/internal/flagx"
	"github.com/goccy/go-yaml"
)

// YAMLConfig is the on-disk shape of the config file:
//
//	addr: ":8000"
//	allowed_origin: "http://localhost:3000"
//	log_level: debug
type YAMLConfig struct {
	Addr          string `yaml:"addr"`
	AllowedOrigin string `yaml:"allowed_origin"`
	LogLevel      string `yaml:"log_level"`
}

// parseYAML overlays values from the file named by -c/-config. Keys missing
// from the file keep their current value. Unreadable or malformed files
// panic.
func parseYAML(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &YAMLConfig{}
	if err := yaml.Unmarshal(data, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.AllowedOrigin != "" {
		config.AllowedOrigin = c.AllowedOrigin
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
