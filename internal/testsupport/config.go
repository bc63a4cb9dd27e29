package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"tglauncher/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a fake game installation under a
// unique temp directory: a game root with a binary, a mods directory, a
// user data root, and launcher-owned paths for logs, state, and prefs.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.GameRoot = filepath.Join(base, "game")
	cfgVal.Paths.ModsDir = filepath.Join(base, "game", "mod")
	cfgVal.Paths.UserDirRoot = filepath.Join(base, "userdata")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.StateDB = filepath.Join(base, "state", "state.db")
	cfgVal.Paths.PrefsFile = filepath.Join(base, "state", "prefs.txt")

	for _, dir := range []string{
		cfgVal.Paths.ModsDir,
		cfgVal.Paths.UserDirRoot,
		cfgVal.Paths.LogDir,
		filepath.Join(base, "state"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	binary := filepath.Join(cfgVal.Paths.GameRoot, cfgVal.Launch.Binary)
	if err := os.WriteFile(binary, []byte("stub"), 0o755); err != nil {
		t.Fatalf("write game binary: %v", err)
	}

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithoutGameBinary removes the stub game binary so preflight fails.
func WithoutGameBinary() ConfigOption {
	return func(b *configBuilder) {
		if err := os.Remove(b.cfg.GameBinaryPath()); err != nil {
			b.t.Fatalf("remove game binary: %v", err)
		}
	}
}

// WithExtraArgs sets launch extra arguments on the test config.
func WithExtraArgs(args ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Launch.ExtraArgs = args
	}
}
