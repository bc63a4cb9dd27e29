// Package modifiers merges per-mod event_modifiers.txt fragments into one
// artifact carried by the launcher-owned overlay mod.
//
// The game keeps only one event_modifiers.txt in memory, so overlapping
// fragments silently shadow each other unless they are merged up front.
// Merging is last-writer-wins per block id in load order, with blocks
// emitted in order of first appearance. The same inputs in the same order
// always produce byte-identical output. A fragment of an enabled mod that
// cannot be read or parsed aborts the merge; a launch with a half-merged
// artifact would corrupt game behavior silently.
package modifiers
