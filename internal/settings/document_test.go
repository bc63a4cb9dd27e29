package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tglauncher/internal/faults"
	"tglauncher/internal/settings"
)

const sampleSettings = "gui=\n{\nlanguage=l_english\n}\nresolution_x=1920\nresolution_y=1080\n# tweak with care\nupdate_time=1.000000\nmaster_volume=100.000000\nlastplayer=\"Player\"\n"

func TestLoadWriteRoundTripIsByteIdentical(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.txt")
	if err := os.WriteFile(path, []byte(sampleSettings), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := settings.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	out := filepath.Join(dir, "out.txt")
	if err := doc.Write(out); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != sampleSettings {
		t.Fatalf("round trip not byte-identical:\ngot  %q\nwant %q", got, sampleSettings)
	}
}

func TestRoundTripPreservesCRLFAndMissingFinalNewline(t *testing.T) {
	content := "a=1\r\nb=2\r\nlast=3"
	doc := settings.Parse([]byte(content))
	if doc.String() != content {
		t.Fatalf("round trip changed bytes: %q", doc.String())
	}
}

func TestPatchReplacesOnlyMatchingLine(t *testing.T) {
	doc := settings.Parse([]byte(sampleSettings))

	patched, err := doc.Patch("resolution_x", "1600")
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}

	v, err := patched.Get("resolution_x")
	if err != nil {
		t.Fatalf("Get after patch: %v", err)
	}
	if v.String() != "1600" {
		t.Fatalf("patched value: got %q want 1600", v.String())
	}

	// Everything except the one line is untouched.
	want := "gui=\n{\nlanguage=l_english\n}\nresolution_x=1600\nresolution_y=1080\n# tweak with care\nupdate_time=1.000000\nmaster_volume=100.000000\nlastplayer=\"Player\"\n"
	if patched.String() != want {
		t.Fatalf("unexpected patched content:\n%q", patched.String())
	}

	// The receiver is untouched.
	if doc.String() != sampleSettings {
		t.Fatal("Patch mutated the original document")
	}
}

func TestPatchDoesNotMatchPrefixKeys(t *testing.T) {
	doc := settings.Parse([]byte("resolution_x=1920\n"))
	patched, err := doc.Patch("resolution", "800")
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if patched.String() != "resolution_x=1920\nresolution=800\n" {
		t.Fatalf("prefix key must append, not replace: %q", patched.String())
	}
}

func TestPatchAppendsWhenMissing(t *testing.T) {
	doc := settings.Parse([]byte("a=1\n"))
	patched, err := doc.Patch("shadowSize", "2048")
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if patched.String() != "a=1\nshadowSize=2048\n" {
		t.Fatalf("unexpected append result: %q", patched.String())
	}
}

func TestPatchAppendTerminatesDanglingLastLine(t *testing.T) {
	doc := settings.Parse([]byte("a=1"))
	patched, err := doc.Patch("b", "2")
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if patched.String() != "a=1\nb=2\n" {
		t.Fatalf("unexpected append result: %q", patched.String())
	}
}

func TestPatchRejectsNonPrintableKeys(t *testing.T) {
	doc := settings.Parse([]byte(""))
	for _, key := range []string{"", "bad key", "tab\tkey", "sneaky\x00", "café"} {
		if _, err := doc.Patch(key, "v"); !errors.Is(err, faults.ErrInvalidKey) {
			t.Fatalf("key %q: expected ErrInvalidKey, got %v", key, err)
		}
	}
}

func TestGetPatchGetLaw(t *testing.T) {
	doc := settings.Parse([]byte(sampleSettings))
	for _, value := range []string{"0", "yes", "weird value", "3.14"} {
		patched, err := doc.Patch("update_time", value)
		if err != nil {
			t.Fatalf("Patch(%q): %v", value, err)
		}
		got, err := patched.Get("update_time")
		if err != nil {
			t.Fatalf("Get(%q): %v", value, err)
		}
		if got.String() != value {
			t.Fatalf("get(patch(d,k,v),k): got %q want %q", got.String(), value)
		}
	}
}

func TestGetMissingKeyIsNotFound(t *testing.T) {
	doc := settings.Parse([]byte("a=1\n"))
	_, err := doc.Get("missing")
	if !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLinesWithoutEqualsAreOpaque(t *testing.T) {
	doc := settings.Parse([]byte("{\nnot a pair\n}\n"))
	if doc.Has("{") || doc.Has("not a pair") {
		t.Fatal("opaque lines must never match a key")
	}
}
