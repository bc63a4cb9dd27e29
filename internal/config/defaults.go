package config

const (
	defaultLogDir         = "~/.local/share/tgl/logs"
	defaultStateDB        = "~/.local/share/tgl/state.db"
	defaultPrefsFile      = "~/.local/share/tgl/prefs.txt"
	defaultUserDirRoot    = "~/Documents/Paradox Interactive/Victoria II"
	defaultGameBinary     = "v2game.exe"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultUpdateTimeout  = 25
	defaultUpdatesEnabled = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:      defaultLogDir,
			StateDB:     defaultStateDB,
			PrefsFile:   defaultPrefsFile,
			UserDirRoot: defaultUserDirRoot,
		},
		Launch: Launch{
			Binary: defaultGameBinary,
		},
		Updates: Updates{
			Enabled:        defaultUpdatesEnabled,
			RequestTimeout: defaultUpdateTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
