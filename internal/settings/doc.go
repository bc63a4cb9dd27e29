// Package settings edits the game's flat key=value settings file.
//
// The file is user-owned and full of content the launcher does not
// understand (brace blocks, comments, keys added by other tools), so edits
// are conservative patches: a Document keeps every raw line with its
// original terminator and only the first line matching an exact key is ever
// rewritten. Writing an unpatched document back produces a byte-identical
// file. Values are normalized into a small closed set of types at read time
// so callers never guess whether a flag arrived as "1" or 1.
//
// Writes go through a temp file and rename so a crash never leaves a
// half-written settings file behind.
package settings
