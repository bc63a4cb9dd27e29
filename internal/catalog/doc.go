// Package catalog discovers the mods installed under the game's mod
// directory.
//
// Each *.mod descriptor yields one Mod with a stable id derived from the
// descriptor filename. Malformed descriptors are logged and skipped so a
// single broken mod never hides the rest; re-scanning the same directory
// yields an identical catalog. Scans replace the catalog wholesale; Mod
// values are immutable once discovered.
package catalog
