package preflight

import (
	"path/filepath"

	"tglauncher/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckExecutable("Game binary", cfg.GameBinaryPath()),
		CheckDirectoryAccess("Mods directory", cfg.Paths.ModsDir),
		CheckDirectoryAccess("User data root", cfg.Paths.UserDirRoot),
		CheckDirectoryAccess("State directory", filepath.Dir(cfg.Paths.StateDB)),
	}
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
