// Package config loads, validates, and normalizes docket's TOML
// configuration. Configuration is resolved from an explicit path, then
// ~/.config/docket/config.toml, then ./docket.toml; missing files fall back
// to built-in defaults.
package config
