package launch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"tglauncher/internal/catalog"
	"tglauncher/internal/config"
	"tglauncher/internal/faults"
	"tglauncher/internal/loadorder"
	"tglauncher/internal/logging"
	"tglauncher/internal/modifiers"
	"tglauncher/internal/preflight"
	"tglauncher/internal/settings"
)

const component = "launch"

// Priority selects the scheduling class requested for the game process.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityRealtime
)

func (p Priority) String() string {
	if p == PriorityRealtime {
		return "realtime"
	}
	return "normal"
}

// Command is a fully assembled game invocation, ready to start.
type Command struct {
	// SessionID tags every log line of one launch attempt.
	SessionID string
	// Path is the absolute game binary.
	Path string
	// Dir is the working directory (the game root).
	Dir string
	// Args are the -mod arguments plus any configured extras.
	Args []string
	// Priority is the requested scheduling class.
	Priority Priority
	// UserDir is the resolved per-user data directory.
	UserDir string
	// Artifact summarizes the event-modifier merge, nil when merging is
	// disabled or nothing is enabled.
	Artifact *modifiers.Result
}

// Builder assembles launch commands from the current config and state.
type Builder struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewBuilder returns a builder for cfg.
func NewBuilder(cfg *config.Config, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Builder{cfg: cfg, logger: logging.WithComponent(logger, component)}
}

// Build runs the full pre-launch pipeline and returns the command. Any
// fatal problem (failed preflight, merge conflict) aborts with no command.
func (b *Builder) Build(cat *catalog.Catalog, list loadorder.List, prefs *Prefs) (*Command, error) {
	sessionID := uuid.NewString()
	logger := b.logger.With(logging.FieldSessionID, sessionID)

	if results := preflight.RunAll(b.cfg); !preflight.AllPassed(results) {
		var failed []string
		for _, r := range results {
			if !r.Passed {
				failed = append(failed, fmt.Sprintf("%s: %s", r.Name, r.Detail))
			}
		}
		return nil, faults.Wrap(faults.ErrConfig, component, "preflight",
			strings.Join(failed, "; "), nil)
	}

	enabled := list.EnabledInOrder()
	userDir := b.resolveUserDir(cat, enabled)
	userDirPath := b.cfg.UserDirPath(userDir)
	if err := os.MkdirAll(userDirPath, 0o755); err != nil {
		return nil, faults.Wrap(faults.ErrIO, component, "ensure user dir", userDirPath, err)
	}

	if err := b.patchSettings(userDir, prefs); err != nil {
		return nil, err
	}

	// Intro movie toggling is cosmetic; a failed rename never blocks the
	// launch.
	if err := b.applySkipIntro(prefs.Bool(PrefSkipIntro)); err != nil {
		logger.Warn("intro movie toggle failed", "error", err)
	}

	cmd := &Command{
		SessionID: sessionID,
		Path:      b.cfg.GameBinaryPath(),
		Dir:       b.cfg.Paths.GameRoot,
		Priority:  PriorityNormal,
		UserDir:   userDirPath,
	}
	if prefs.Bool(PrefRealtime) {
		cmd.Priority = PriorityRealtime
	}

	includeOverlay := false
	if prefs.Bool(PrefMergeModifiers) && len(enabled) > 0 {
		result, err := modifiers.Rebuild(b.cfg.Paths.ModsDir, cat, enabled, logger)
		if err != nil {
			return nil, err
		}
		cmd.Artifact = result
		includeOverlay = true
	}

	for _, id := range enabled {
		mod, ok := cat.ByID(id)
		if !ok {
			return nil, faults.Wrap(faults.ErrNotFound, component, "build",
				fmt.Sprintf("enabled mod %q is not installed", id), nil)
		}
		cmd.Args = append(cmd.Args, "-mod=mod/"+mod.DescriptorFile)
	}
	if includeOverlay {
		cmd.Args = append(cmd.Args, "-mod=mod/"+catalog.OverlayModID+".mod")
	}
	cmd.Args = append(cmd.Args, b.cfg.Launch.ExtraArgs...)

	logger.Info("launch command assembled",
		"binary", cmd.Path,
		"mods", len(enabled),
		"priority", cmd.Priority.String(),
		"user_dir", cmd.UserDir)
	return cmd, nil
}

// resolveUserDir picks the user_dir of the last enabled mod that declares
// one; with none, the shared root is used.
func (b *Builder) resolveUserDir(cat *catalog.Catalog, enabled []string) string {
	userDir := ""
	for _, id := range enabled {
		if mod, ok := cat.ByID(id); ok && mod.UserDir != "" {
			userDir = mod.UserDir
		}
	}
	return userDir
}

// patchSettings writes the configured update_time into the user dir's
// settings.txt, touching nothing else in the file. A missing settings.txt
// is created with just that pair; the game fills in the rest on first run.
func (b *Builder) patchSettings(userDir string, prefs *Prefs) error {
	path := b.cfg.SettingsPath(userDir)
	doc, err := settings.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		doc = settings.Parse(nil)
	}

	updateTime, parseErr := strconv.ParseFloat(prefs.Get(PrefUpdateTime), 64)
	if parseErr != nil {
		updateTime = 1
	}
	next, err := doc.Patch(PrefUpdateTime, fmt.Sprintf("%.6f", updateTime))
	if err != nil {
		return err
	}
	return next.Write(path)
}

// applySkipIntro renames the movies folder out of the game's sight when
// the intro should be skipped, and restores it otherwise. Both directions
// are idempotent.
func (b *Builder) applySkipIntro(skip bool) error {
	movies := filepath.Join(b.cfg.Paths.GameRoot, "movies")
	disabled := filepath.Join(b.cfg.Paths.GameRoot, "moviesdisabled")

	from, to := disabled, movies
	if skip {
		from, to = movies, disabled
	}
	if _, err := os.Stat(from); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return faults.Wrap(faults.ErrIO, component, "skip intro", from, err)
	}
	if err := os.Rename(from, to); err != nil {
		return faults.Wrap(faults.ErrIO, component, "skip intro", from, err)
	}
	return nil
}
