// Package main hosts the tgl CLI entrypoint and command graph.
//
// The Cobra-based command tree covers mod discovery and load ordering,
// presets, launcher preferences, the event-modifier merge, release checks,
// and the launch itself. It centralizes configuration resolution, state
// database access, and structured logging setup so subcommands can focus
// on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags
// here.
package main
