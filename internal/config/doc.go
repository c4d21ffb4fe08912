// Package config loads the cocktaildb command's settings.
//
// # Resolution Order
//
//  1. Built-in defaults (see Default)
//  2. The TOML file at the given path, or ~/.config/cocktaildb/config.toml
//  3. Environment variables, optionally seeded from a .env file by LoadDotEnv
//
// A missing config file is not an error. Empty values in the file keep the
// defaults.
//
// # TOML Format
//
//	base_url = "https://www.thecocktaildb.com/api/json/v1/1/"
//	timeout = "10s"
//	user_agent = "my-bar/1.0"
//	requests_per_minute = 30.0
//	log_level = "debug"
//	poll_interval = "30s"
//
// # Environment
//
//   - COCKTAILDB_BASE_URL
//   - COCKTAILDB_TIMEOUT (Go duration, e.g. "5s")
//   - COCKTAILDB_LOG_LEVEL (debug, info, warn, error)
//   - COCKTAILDB_REQUESTS_PER_MINUTE (0 disables throttling)
//
// The library package itself reads none of these; only the command does.
package config
