// Package state persists launcher state in a SQLite database.
//
// Two things live here: the load order (enabled flags plus positions per
// mod id) and named presets (snapshots of enabled mod ids). Writes replace
// whole rows inside a transaction so a crash never leaves a half-saved
// order. The schema is embedded and version-checked on open.
package state
