// Package config loads, normalizes, and validates packsmith configuration.
//
// It supplies repository defaults, reads the TOML config file, layers
// PACKSMITH_* environment overrides on top, and expands user paths (including
// tilde shortcuts). Always obtain settings through this package so downstream
// code receives sanitized paths and validated values.
package config
