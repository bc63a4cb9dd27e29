package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"tglauncher/internal/catalog"
	"tglauncher/internal/config"
	"tglauncher/internal/launch"
	"tglauncher/internal/loadorder"
	"tglauncher/internal/logging"
	"tglauncher/internal/state"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			OutputPaths: []string{
				"stderr",
				filepath.Join(cfg.Paths.LogDir, "tgl.log"),
			},
		})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// withStore opens the state database for the duration of fn.
func (c *commandContext) withStore(fn func(*state.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := state.Open(cfg.Paths.StateDB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return fn(store)
}

// scanCatalog scans the configured mods directory.
func (c *commandContext) scanCatalog() (*catalog.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return catalog.Scan(cfg.Paths.ModsDir, logger)
}

// syncedList scans the catalog, reconciles it with the persisted load
// order, and persists the reconciled result. Every mods command goes
// through this so state never drifts from the directory.
func (c *commandContext) syncedList(ctx context.Context, store *state.Store) (*catalog.Catalog, loadorder.List, error) {
	cat, err := c.scanCatalog()
	if err != nil {
		return nil, loadorder.List{}, err
	}
	previous, err := store.LoadOrder(ctx)
	if err != nil {
		return nil, loadorder.List{}, err
	}
	list := loadorder.FromCatalog(cat, loadorder.New(previous))
	if err := store.SaveLoadOrder(ctx, list.Entries()); err != nil {
		return nil, loadorder.List{}, err
	}
	return cat, list, nil
}

func (c *commandContext) loadPrefs() (*launch.Prefs, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return launch.LoadPrefs(cfg.Paths.PrefsFile)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
