package catalog

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tglauncher/internal/faults"
	"tglauncher/internal/logging"
)

const component = "catalog"

// OverlayModID is the launcher-owned mod that carries the merged
// event-modifier artifact. It is excluded from scans.
const OverlayModID = "z_launcher"

// FragmentRelPath is the fragment file every mod may contribute, relative to
// its folder.
var FragmentRelPath = filepath.Join("common", "event_modifiers.txt")

// Mod describes one discovered modification package. Immutable after a scan.
type Mod struct {
	// ID is the descriptor filename without the .mod extension.
	ID string
	// Name is the display name from the descriptor, or a title-cased ID
	// when the descriptor omits one.
	Name string
	// DescriptorFile is the descriptor filename, e.g. "CoolMod.mod".
	DescriptorFile string
	// Dir is the absolute path of the mod's content folder.
	Dir string
	// Folder is the folder name under the mods root (from the descriptor's
	// path field).
	Folder string
	// UserDir selects the per-user game data directory, when set.
	UserDir string
	// Dependencies are display names of mods that must load before this one.
	Dependencies []string
	// GitHub is the upstream repository URL, when declared.
	GitHub string
	// Version is the installed release tag, when declared.
	Version string
}

// FragmentPath returns the mod's event-modifier fragment location. The file
// may not exist; a mod that contributes no fragment is normal.
func (m Mod) FragmentPath() string {
	return filepath.Join(m.Dir, FragmentRelPath)
}

// HasFragment reports whether the mod contributes a fragment file.
func (m Mod) HasFragment() bool {
	info, err := os.Stat(m.FragmentPath())
	return err == nil && !info.IsDir()
}

// Catalog is the result of one scan, keyed by mod id.
type Catalog struct {
	mods  map[string]Mod
	order []string
}

// Scan reads every *.mod descriptor under modsRoot. Broken descriptors are
// reported as warnings and skipped.
func Scan(modsRoot string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.WithComponent(logger, component)

	entries, err := os.ReadDir(modsRoot)
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, component, "scan", modsRoot, err)
	}

	cat := &Catalog{mods: make(map[string]Mod)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".mod") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".mod")
		if id == OverlayModID {
			continue
		}

		mod, err := readDescriptor(modsRoot, entry.Name())
		if err != nil {
			logger.Warn("skipping malformed mod descriptor",
				"file", entry.Name(), "error", err)
			continue
		}
		cat.mods[mod.ID] = mod
		cat.order = append(cat.order, mod.ID)
	}

	sort.Strings(cat.order)
	return cat, nil
}

// ByID returns the mod for an id.
func (c *Catalog) ByID(id string) (Mod, bool) {
	mod, ok := c.mods[id]
	return mod, ok
}

// ByName returns the mod with the given display name. Dependency hints in
// descriptors reference display names, not ids.
func (c *Catalog) ByName(name string) (Mod, bool) {
	for _, id := range c.order {
		if c.mods[id].Name == name {
			return c.mods[id], true
		}
	}
	return Mod{}, false
}

// IDs returns all mod ids in sorted order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All returns every mod in sorted id order.
func (c *Catalog) All() []Mod {
	out := make([]Mod, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.mods[id])
	}
	return out
}

// Len returns the number of discovered mods.
func (c *Catalog) Len() int {
	return len(c.order)
}

func readDescriptor(modsRoot, file string) (Mod, error) {
	path := filepath.Join(modsRoot, file)
	data, err := os.ReadFile(path)
	if err != nil {
		return Mod{}, faults.Wrap(faults.ErrIO, component, "read descriptor", path, err)
	}

	mod := Mod{
		ID:             strings.TrimSuffix(file, ".mod"),
		DescriptorFile: file,
	}
	for _, rawLine := range strings.Split(string(data), "\n") {
		key, value, ok := parseDescriptorLine(rawLine)
		if !ok {
			continue
		}
		switch key {
		case "name":
			mod.Name = value
		case "path":
			// Typically "mod/Folder"; the folder is the last segment.
			if value != "" {
				parts := strings.Split(value, "/")
				mod.Folder = parts[len(parts)-1]
			}
		case "user_dir":
			mod.UserDir = value
		case "dependencies":
			mod.Dependencies = parseDependencies(value)
		case "github":
			mod.GitHub = value
		case "version":
			mod.Version = value
		}
	}

	if mod.Name == "" {
		mod.Name = titleFromID(mod.ID)
	}
	if mod.Folder == "" {
		return Mod{}, faults.Wrap(faults.ErrParse, component, "read descriptor",
			file+": missing path field", nil)
	}
	mod.Dir = filepath.Join(modsRoot, mod.Folder)
	return mod, nil
}

// parseDescriptorLine handles `key = "value"` with # and // comments.
func parseDescriptorLine(raw string) (string, string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.HasPrefix(s, "#") || strings.HasPrefix(s, "//") {
		return "", "", false
	}
	idx := strings.IndexByte(s, '=')
	if idx < 0 {
		return "", "", false
	}
	key := strings.TrimSpace(s[:idx])
	value := strings.TrimSpace(s[idx+1:])
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// parseDependencies splits `{"Mod A", "Mod B"}` into display names.
func parseDependencies(value string) []string {
	trimmed := strings.Trim(strings.TrimSpace(value), "{}")
	if trimmed == "" {
		return nil
	}
	var deps []string
	for _, part := range strings.Split(trimmed, ",") {
		dep := strings.Trim(strings.TrimSpace(part), `"`)
		if dep != "" {
			deps = append(deps, dep)
		}
	}
	return deps
}

func titleFromID(id string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	var prev rune
	for _, r := range id {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			// Split camel case so "CoolMod" reads as "Cool Mod".
			if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsNumber(prev)) {
				cleaned.WriteRune(' ')
			}
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
		prev = r
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return id
	}
	return cases.Title(language.Und).String(title)
}
