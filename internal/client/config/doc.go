// Package config loads runtime configuration for the fitsched CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   API base URL, e.g. http://localhost:8000/api
//	-d string   path of the local SQLite file; "" keeps the session in memory
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	FITSCHED_API_URL, FITSCHED_DB, FITSCHED_LOG_LEVEL
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000/api",
//	  "db_path": "fitsched.db",
//	  "request_timeout": "15s",
//	  "log_level": "info"
//	}
package config
