package modifiers

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tglauncher/internal/catalog"
	"tglauncher/internal/faults"
	"tglauncher/internal/logging"
)

const component = "modifiers"

// Override records a block that a later mod replaced.
type Override struct {
	BlockID string
	// Winner supplied the surviving body, Loser the shadowed one.
	Winner string
	Loser  string
}

// Result summarizes one merge.
type Result struct {
	// OutputPath is where the artifact was written.
	OutputPath string
	// Fragments is how many enabled mods contributed a fragment.
	Fragments int
	// Blocks is the number of distinct block ids in the artifact.
	Blocks int
	// Overrides lists blocks where a later mod replaced an earlier body.
	Overrides []Override
}

// Merge reads the fragments of the given mods in order and writes the
// merged artifact to outputPath. Later mods win per block id; output order
// is first appearance. Mods without a fragment are skipped; a fragment
// that cannot be read or parsed aborts the merge.
func Merge(cat *catalog.Catalog, orderedIDs []string, outputPath string, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.WithComponent(logger, component)

	bodies := make(map[string]string)
	sources := make(map[string]string)
	var order []string
	result := &Result{OutputPath: outputPath}

	for _, id := range orderedIDs {
		mod, ok := cat.ByID(id)
		if !ok || !mod.HasFragment() {
			continue
		}
		result.Fragments++

		path := mod.FragmentPath()
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, faults.Wrap(faults.ErrMergeConflict, component, "merge",
				fmt.Sprintf("mod %q: unreadable fragment %s", id, path), err)
		}
		blocks, err := ParseFragment(content)
		if err != nil {
			return nil, faults.Wrap(faults.ErrMergeConflict, component, "merge",
				fmt.Sprintf("mod %q: fragment %s", id, path), err)
		}

		for _, block := range blocks {
			if prev, seen := sources[block.ID]; seen {
				if prev != id && bodies[block.ID] != block.Body {
					result.Overrides = append(result.Overrides, Override{
						BlockID: block.ID,
						Winner:  id,
						Loser:   prev,
					})
					logger.Info("block overridden",
						"block", block.ID, "winner", id, "loser", prev)
				}
			} else {
				order = append(order, block.ID)
			}
			bodies[block.ID] = block.Body
			sources[block.ID] = id
		}
	}

	var out strings.Builder
	for _, blockID := range order {
		fmt.Fprintf(&out, "# source: %s\n", sources[blockID])
		fmt.Fprintf(&out, "%s = %s\n", blockID, bodies[blockID])
	}
	result.Blocks = len(order)

	if err := writeAtomic(outputPath, []byte(out.String())); err != nil {
		return nil, faults.Wrap(faults.ErrIO, component, "merge", outputPath, err)
	}

	logger.Info("merged event modifiers",
		"fragments", result.Fragments,
		"blocks", result.Blocks,
		"overrides", len(result.Overrides),
		"output", outputPath)
	return result, nil
}

// Rebuild ensures the overlay mod exists under modsRoot and regenerates
// its artifact from the given mods in order.
func Rebuild(modsRoot string, cat *catalog.Catalog, orderedIDs []string, logger *slog.Logger) (*Result, error) {
	if err := EnsureOverlay(modsRoot); err != nil {
		return nil, err
	}
	outputPath := filepath.Join(modsRoot, catalog.OverlayModID, catalog.FragmentRelPath)
	return Merge(cat, orderedIDs, outputPath, logger)
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".merge-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
