package settings

import (
	"os"
	"path/filepath"
	"strings"

	"tglauncher/internal/faults"
)

const component = "settings"

// line is one raw line of the settings file with its original terminator
// ("\n", "\r\n", or "" for an unterminated final line).
type line struct {
	text string
	eol  string
}

// Document is an in-memory settings file. It is immutable: Patch returns a
// new Document and never mutates the receiver.
type Document struct {
	lines []line
}

// Load reads a settings file from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, component, "load", path, err)
	}
	return Parse(data), nil
}

// Parse builds a Document from raw file content.
func Parse(data []byte) *Document {
	doc := &Document{}
	rest := string(data)
	for rest != "" {
		idx := strings.IndexByte(rest, '\n')
		if idx < 0 {
			doc.lines = append(doc.lines, line{text: rest})
			break
		}
		text, eol := rest[:idx], "\n"
		if strings.HasSuffix(text, "\r") {
			text, eol = text[:len(text)-1], "\r\n"
		}
		doc.lines = append(doc.lines, line{text: text, eol: eol})
		rest = rest[idx+1:]
	}
	return doc
}

// Get returns the value of the first line whose key matches exactly. Lines
// without "=" are opaque and never match.
func (d *Document) Get(key string) (Value, error) {
	for _, ln := range d.lines {
		if value, ok := splitLine(ln.text, key); ok {
			return ParseValue(value), nil
		}
	}
	return Value{}, faults.Wrap(faults.ErrNotFound, component, "get", key, nil)
}

// Has reports whether a recognized line for key exists.
func (d *Document) Has(key string) bool {
	_, err := d.Get(key)
	return err == nil
}

// Patch returns a copy of the document where the first line starting with
// key+"=" carries the new value. When no such line exists the pair is
// appended. The key must be a printable ASCII identifier.
func (d *Document) Patch(key, value string) (*Document, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	next := &Document{lines: make([]line, len(d.lines))}
	copy(next.lines, d.lines)

	for i, ln := range next.lines {
		if _, ok := splitLine(ln.text, key); ok {
			next.lines[i].text = key + "=" + value
			return next, nil
		}
	}

	// Append. An unterminated final line gains the document's terminator so
	// the new pair lands on its own line.
	eol := next.dominantEOL()
	if n := len(next.lines); n > 0 && next.lines[n-1].eol == "" {
		next.lines[n-1].eol = eol
	}
	next.lines = append(next.lines, line{text: key + "=" + value, eol: eol})
	return next, nil
}

// Write atomically replaces path with the document's content: the bytes are
// staged in a temp file in the same directory and moved into place with a
// rename, so a crash leaves either the old or the new file.
func (d *Document) Write(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return faults.Wrap(faults.ErrIO, component, "write", path, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.WriteString(d.String()); err != nil {
		cleanup()
		return faults.Wrap(faults.ErrIO, component, "write", path, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return faults.Wrap(faults.ErrIO, component, "write", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return faults.Wrap(faults.ErrIO, component, "write", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return faults.Wrap(faults.ErrIO, component, "write", path, err)
	}
	return nil
}

// String renders the document back to file content.
func (d *Document) String() string {
	var sb strings.Builder
	for _, ln := range d.lines {
		sb.WriteString(ln.text)
		sb.WriteString(ln.eol)
	}
	return sb.String()
}

// Len returns the number of raw lines.
func (d *Document) Len() int {
	return len(d.lines)
}

func (d *Document) dominantEOL() string {
	for _, ln := range d.lines {
		if ln.eol != "" {
			return ln.eol
		}
	}
	return "\n"
}

// splitLine returns the value portion when text is exactly key+"="+value.
// Matching is literal: no trimming, no hidden separators.
func splitLine(text, key string) (string, bool) {
	idx := strings.IndexByte(text, '=')
	if idx < 0 {
		return "", false
	}
	if text[:idx] != key {
		return "", false
	}
	return text[idx+1:], true
}

// ValidateKey rejects keys that are not printable ASCII identifiers. A key
// constant carrying an invisible character would silently match nothing and
// then append a duplicate line on every patch; failing fast here is what
// keeps the settings file intact.
func ValidateKey(key string) error {
	if key == "" {
		return faults.Wrap(faults.ErrInvalidKey, component, "validate", "empty key", nil)
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '.' || c == '-':
		default:
			return faults.Wrap(faults.ErrInvalidKey, component, "validate", key, nil)
		}
	}
	return nil
}
