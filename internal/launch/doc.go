// Package launch assembles and starts the game process.
//
// Building a launch is a pipeline: preflight checks, user directory
// resolution, settings patching, the intro-movie toggle, a fresh merge of
// the event-modifier artifact, then the argument list. The artifact is
// rebuilt on every launch so a stale merge can never reach the game. A
// file lock keeps two launches from racing over the shared artifact and
// settings files.
package launch
