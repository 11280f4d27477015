// Package config loads, normalizes, and validates the TOML configuration
// file. Defaults are always usable: a missing config file yields a working
// setup for runs that don't need the language model.
package config
