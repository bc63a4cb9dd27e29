package launch

import (
	"os"
	"path/filepath"

	"tglauncher/internal/config"
	"tglauncher/internal/faults"
)

// cacheFolders are the per-user directories the game regenerates on the
// next start. Removing them fixes most asset corruption after mod changes.
var cacheFolders = []string{"map", "gfx", "music"}

// ClearCache deletes the regenerable cache folders inside the resolved
// user dir and returns the paths it removed.
func ClearCache(cfg *config.Config, userDir string) ([]string, error) {
	base := cfg.UserDirPath(userDir)
	var removed []string
	for _, folder := range cacheFolders {
		path := filepath.Join(base, folder)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, faults.Wrap(faults.ErrIO, component, "clear cache", path, err)
		}
		if err := os.RemoveAll(path); err != nil {
			return removed, faults.Wrap(faults.ErrIO, component, "clear cache", path, err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}
