// Package watcher observes the mods directory and reports settled change
// bursts. Installing or removing a mod touches many files in quick
// succession; events are debounced so one install triggers one rescan.
// Writes inside the launcher-owned overlay mod are ignored, otherwise
// every artifact rebuild would trigger another rescan.
package watcher
