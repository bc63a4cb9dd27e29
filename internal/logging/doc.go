// Package logging assembles the structured slog loggers used across the
// launcher core.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so core operations can tag log lines
// with the component name and launch session ID. A no-op logger is provided
// for tests and wiring code that cannot fail.
package logging
