package launch

import (
	"errors"
	"os"

	"tglauncher/internal/settings"
)

// Launcher preference keys. They live in a flat key=value file patched
// with the same conservative rules as the game's settings.txt.
const (
	PrefUpdateTime     = "update_time"
	PrefRealtime       = "realtime"
	PrefSkipIntro      = "skipintro"
	PrefMergeModifiers = "merge_event_modifiers"
)

var prefDefaults = map[string]string{
	PrefUpdateTime:     "1",
	PrefRealtime:       "0",
	PrefSkipIntro:      "0",
	PrefMergeModifiers: "1",
}

// Prefs wraps the launcher preferences file. A missing file behaves like
// an empty one; defaults fill the gaps on read.
type Prefs struct {
	doc  *settings.Document
	path string
}

// LoadPrefs reads the preferences file at path.
func LoadPrefs(path string) (*Prefs, error) {
	doc, err := settings.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		doc = settings.Parse(nil)
	}
	return &Prefs{doc: doc, path: path}, nil
}

// Get returns the raw preference value, falling back to the default for
// known keys.
func (p *Prefs) Get(key string) string {
	if value, err := p.doc.Get(key); err == nil {
		return value.String()
	}
	return prefDefaults[key]
}

// Bool interprets the preference leniently: "1", 1, yes, and true are all
// truthy. Unknown keys are false.
func (p *Prefs) Bool(key string) bool {
	if value, err := p.doc.Get(key); err == nil {
		return value.Truthy()
	}
	return settings.ParseValue(prefDefaults[key]).Truthy()
}

// Set patches a preference and writes the file back.
func (p *Prefs) Set(key, value string) error {
	next, err := p.doc.Patch(key, value)
	if err != nil {
		return err
	}
	if err := next.Write(p.path); err != nil {
		return err
	}
	p.doc = next
	return nil
}

// Keys returns the known preference keys with their effective values.
func (p *Prefs) Keys() map[string]string {
	out := make(map[string]string, len(prefDefaults))
	for key := range prefDefaults {
		out[key] = p.Get(key)
	}
	return out
}

// Path returns the backing file location.
func (p *Prefs) Path() string {
	return p.path
}
