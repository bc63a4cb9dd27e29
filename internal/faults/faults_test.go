package faults_test

import (
	"errors"
	"strings"
	"testing"

	"tglauncher/internal/faults"
)

func TestWrapTagsMarkerAndContext(t *testing.T) {
	base := errors.New("permission denied")
	err := faults.Wrap(faults.ErrIO, "settings", "write", "/tmp/settings.txt", base)

	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected ErrIO classification, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	msg := err.Error()
	for _, want := range []string{"settings", "write", "/tmp/settings.txt", "permission denied"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}

func TestWrapNilMarkerDefaultsToIO(t *testing.T) {
	err := faults.Wrap(nil, "catalog", "scan", "", errors.New("boom"))
	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected ErrIO default, got %v", err)
	}
}

func TestFatalClassification(t *testing.T) {
	if !faults.Fatal(faults.Wrap(faults.ErrMergeConflict, "modifiers", "merge", "ModA", nil)) {
		t.Fatal("merge conflicts must be fatal")
	}
	if !faults.Fatal(faults.Wrap(faults.ErrConfig, "launch", "build", "", nil)) {
		t.Fatal("configuration errors must be fatal")
	}
	if faults.Fatal(faults.Wrap(faults.ErrNotFound, "preset", "apply", "survival", nil)) {
		t.Fatal("not-found errors are recoverable")
	}
}
