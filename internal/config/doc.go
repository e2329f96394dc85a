// Package config loads, normalizes, and validates the TOML configuration
// for chorus. Defaults live in defaults.go; a commented sample file is
// embedded and written by `chorus config init`.
package config
