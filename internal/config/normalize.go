package config

import (
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	for _, field := range []*string{
		&c.Paths.GameRoot,
		&c.Paths.ModsDir,
		&c.Paths.UserDirRoot,
		&c.Paths.LogDir,
		&c.Paths.StateDB,
		&c.Paths.PrefsFile,
	} {
		trimmed := strings.TrimSpace(*field)
		if trimmed == "" {
			*field = ""
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return err
		}
		*field = expanded
	}

	if c.Paths.ModsDir == "" && c.Paths.GameRoot != "" {
		c.Paths.ModsDir = filepath.Join(c.Paths.GameRoot, "mod")
	}

	if c.Paths.PrefsFile == "" {
		expanded, err := expandPath(defaultPrefsFile)
		if err != nil {
			return err
		}
		c.Paths.PrefsFile = expanded
	}

	c.Launch.Binary = strings.TrimSpace(c.Launch.Binary)
	if c.Launch.Binary == "" {
		c.Launch.Binary = defaultGameBinary
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	if c.Updates.RequestTimeout <= 0 {
		c.Updates.RequestTimeout = defaultUpdateTimeout
	}

	return nil
}
