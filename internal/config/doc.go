// Package config loads, normalizes, and validates launcher configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the TOML file at ~/.config/tgl/config.toml. The
// Config type centralizes every path the CLI and core need: the game
// installation, the mods directory, the per-user settings root, the log
// directory, and the state database.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths, canonical log formats, and clear validation
// errors.
package config
