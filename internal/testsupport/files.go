package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"tglauncher/internal/config"
)

// ModOption tweaks a generated descriptor.
type ModOption func(*modSpec)

type modSpec struct {
	name     string
	userDir  string
	deps     []string
	github   string
	version  string
	fragment string
}

// WithUserDir sets the descriptor's user_dir field.
func WithUserDir(dir string) ModOption {
	return func(m *modSpec) { m.userDir = dir }
}

// WithDependencies sets the descriptor's dependency display names.
func WithDependencies(names ...string) ModOption {
	return func(m *modSpec) { m.deps = names }
}

// WithGitHub sets the descriptor's upstream repository and version.
func WithGitHub(url, version string) ModOption {
	return func(m *modSpec) { m.github = url; m.version = version }
}

// WithFragment writes an event-modifier fragment into the mod folder.
func WithFragment(content string) ModOption {
	return func(m *modSpec) { m.fragment = content }
}

// WriteMod creates a descriptor and content folder for a mod under the
// config's mods directory.
func WriteMod(t testing.TB, cfg *config.Config, id string, opts ...ModOption) {
	t.Helper()

	spec := &modSpec{name: id}
	for _, opt := range opts {
		opt(spec)
	}

	body := "name = \"" + spec.name + "\"\npath = \"mod/" + id + "\"\n"
	if spec.userDir != "" {
		body += "user_dir = \"" + spec.userDir + "\"\n"
	}
	if len(spec.deps) > 0 {
		body += "dependencies = {"
		for i, dep := range spec.deps {
			if i > 0 {
				body += ", "
			}
			body += "\"" + dep + "\""
		}
		body += "}\n"
	}
	if spec.github != "" {
		body += "github = \"" + spec.github + "\"\n"
	}
	if spec.version != "" {
		body += "version = \"" + spec.version + "\"\n"
	}

	if err := os.WriteFile(filepath.Join(cfg.Paths.ModsDir, id+".mod"), []byte(body), 0o644); err != nil {
		t.Fatalf("write descriptor %s: %v", id, err)
	}
	modDir := filepath.Join(cfg.Paths.ModsDir, id)
	if err := os.MkdirAll(modDir, 0o755); err != nil {
		t.Fatalf("mkdir mod dir %s: %v", id, err)
	}
	if spec.fragment != "" {
		fragment := filepath.Join(modDir, "common", "event_modifiers.txt")
		if err := os.MkdirAll(filepath.Dir(fragment), 0o755); err != nil {
			t.Fatalf("mkdir fragment dir: %v", err)
		}
		if err := os.WriteFile(fragment, []byte(spec.fragment), 0o644); err != nil {
			t.Fatalf("write fragment %s: %v", id, err)
		}
	}
}
