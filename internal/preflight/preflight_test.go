package preflight_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tglauncher/internal/preflight"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	ok := preflight.CheckDirectoryAccess("dir", dir)
	if !ok.Passed {
		t.Fatalf("expected pass for %s: %+v", dir, ok)
	}

	missing := preflight.CheckDirectoryAccess("dir", filepath.Join(dir, "nope"))
	if missing.Passed || !strings.Contains(missing.Detail, "does not exist") {
		t.Fatalf("expected missing-dir failure, got %+v", missing)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	notDir := preflight.CheckDirectoryAccess("dir", file)
	if notDir.Passed || !strings.Contains(notDir.Detail, "not a directory") {
		t.Fatalf("expected not-a-directory failure, got %+v", notDir)
	}
}

func TestCheckExecutable(t *testing.T) {
	dir := t.TempDir()
	binary := filepath.Join(dir, "v2game.exe")
	if err := os.WriteFile(binary, []byte("MZ"), 0o644); err != nil {
		t.Fatalf("write binary: %v", err)
	}

	ok := preflight.CheckExecutable("Game binary", binary)
	if !ok.Passed {
		t.Fatalf("expected pass: %+v", ok)
	}

	missing := preflight.CheckExecutable("Game binary", filepath.Join(dir, "nope.exe"))
	if missing.Passed || !strings.Contains(missing.Detail, "does not exist") {
		t.Fatalf("expected missing failure, got %+v", missing)
	}

	asDir := preflight.CheckExecutable("Game binary", dir)
	if asDir.Passed || !strings.Contains(asDir.Detail, "is a directory") {
		t.Fatalf("expected directory failure, got %+v", asDir)
	}
}

func TestAllPassed(t *testing.T) {
	all := []preflight.Result{{Passed: true}, {Passed: true}}
	if !preflight.AllPassed(all) {
		t.Fatal("expected AllPassed true")
	}
	mixed := []preflight.Result{{Passed: true}, {Passed: false}}
	if preflight.AllPassed(mixed) {
		t.Fatal("expected AllPassed false")
	}
}
