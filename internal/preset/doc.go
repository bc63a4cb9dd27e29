// Package preset saves and restores named snapshots of the enabled mod
// set. A preset records the enabled mod ids in load order; applying one
// rebuilds the load order so those mods come first, enabled, in preset
// order, and everything else is disabled. Mods that vanished since the
// preset was saved are dropped with a debug log, never an error.
package preset
