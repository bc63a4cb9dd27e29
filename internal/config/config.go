package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// GameRoot is the game installation directory (contains the game binary).
	GameRoot string `toml:"game_root"`
	// ModsDir is the mod directory scanned for descriptors. Defaults to
	// <game_root>/mod.
	ModsDir string `toml:"mods_dir"`
	// UserDirRoot holds the per-user game data directories that mods select
	// via their user_dir descriptor field.
	UserDirRoot string `toml:"user_dir_root"`
	LogDir      string `toml:"log_dir"`
	// StateDB is the SQLite database holding the load-order snapshot and
	// presets.
	StateDB string `toml:"state_db"`
	// PrefsFile is the launcher's own key=value preferences file. It uses
	// the same conservative patching as the game's settings.txt.
	PrefsFile string `toml:"prefs_file"`
}

// Launch contains configuration for the game invocation.
type Launch struct {
	// Binary is the game executable name inside GameRoot.
	Binary string `toml:"binary"`
	// ExtraArgs are appended after the generated -mod arguments.
	ExtraArgs []string `toml:"extra_args"`
}

// Updates contains configuration for the mod release checker.
type Updates struct {
	Enabled        bool `toml:"enabled"`
	RequestTimeout int  `toml:"request_timeout"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for the launcher.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Launch  Launch  `toml:"launch"`
	Updates Updates `toml:"updates"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/tgl/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("tgl.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the launcher-owned directories. The user data
// root is created on a best-effort basis; the launch builder verifies the
// specific user dir right before launch.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, filepath.Dir(c.Paths.StateDB)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if strings.TrimSpace(c.Paths.UserDirRoot) != "" {
		_ = os.MkdirAll(c.Paths.UserDirRoot, 0o755)
	}
	return nil
}

// GameBinaryPath returns the absolute path of the game executable.
func (c *Config) GameBinaryPath() string {
	return filepath.Join(c.Paths.GameRoot, c.Launch.Binary)
}

// UserDirPath resolves a mod-selected user_dir value ("" means the shared
// root) to an absolute directory.
func (c *Config) UserDirPath(userDir string) string {
	if strings.TrimSpace(userDir) == "" {
		return c.Paths.UserDirRoot
	}
	return filepath.Join(c.Paths.UserDirRoot, userDir)
}

// SettingsPath returns the game settings file inside the resolved user dir.
func (c *Config) SettingsPath(userDir string) string {
	return filepath.Join(c.UserDirPath(userDir), "settings.txt")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
