// Package preflight validates the environment before a launch.
//
// Each check returns a Result instead of an error so the CLI can show the
// full picture at once rather than failing on the first problem.
package preflight
