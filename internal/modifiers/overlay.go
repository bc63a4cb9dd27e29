package modifiers

import (
	"os"
	"path/filepath"

	"tglauncher/internal/catalog"
	"tglauncher/internal/faults"
)

const overlayReadme = "This folder and mod is used to fix conflicts with event_modifiers and is hidden by default.\n"

const overlayDescriptor = `name = "z_launcher"
path = "mod/z_launcher"
user_dir = "z_launcher"
`

// EnsureOverlay creates the launcher-owned overlay mod under modsRoot:
// the folder, its descriptor, an empty artifact, and a readme. Existing
// files are left untouched, so repeated calls are safe.
func EnsureOverlay(modsRoot string) error {
	overlayDir := filepath.Join(modsRoot, catalog.OverlayModID)
	commonDir := filepath.Join(overlayDir, "common")
	if err := os.MkdirAll(commonDir, 0o755); err != nil {
		return faults.Wrap(faults.ErrIO, component, "ensure overlay", commonDir, err)
	}

	files := []struct {
		path string
		body string
	}{
		{filepath.Join(modsRoot, catalog.OverlayModID+".mod"), overlayDescriptor},
		{filepath.Join(modsRoot, catalog.OverlayModID, catalog.FragmentRelPath), ""},
		{filepath.Join(overlayDir, "readme.txt"), overlayReadme},
	}
	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return faults.Wrap(faults.ErrIO, component, "ensure overlay", f.path, err)
		}
		if err := os.WriteFile(f.path, []byte(f.body), 0o644); err != nil {
			return faults.Wrap(faults.ErrIO, component, "ensure overlay", f.path, err)
		}
	}
	return nil
}
