package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tglauncher/internal/watcher"
)

func startWatcher(t *testing.T, root string) (<-chan struct{}, *watcher.Watcher) {
	t.Helper()
	changes := make(chan struct{}, 8)
	w, err := watcher.New(root, 50*time.Millisecond, func() {
		changes <- struct{}{}
	}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(w.Stop)
	return changes, w
}

func TestWatcherReportsDescriptorChanges(t *testing.T) {
	root := t.TempDir()
	changes, _ := startWatcher(t, root)

	if err := os.WriteFile(filepath.Join(root, "New.mod"), []byte("path = \"mod/New\"\n"), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	root := t.TempDir()
	changes, _ := startWatcher(t, root)

	for i := 0; i < 5; i++ {
		name := filepath.Join(root, "Burst.mod")
		if err := os.WriteFile(name, []byte("path = \"mod/Burst\"\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
	// The burst settles into a single callback.
	select {
	case <-changes:
		t.Fatal("burst reported more than once")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherIgnoresOverlayWrites(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "z_launcher"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	changes, _ := startWatcher(t, root)

	if err := os.WriteFile(filepath.Join(root, "z_launcher.mod"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write overlay descriptor: %v", err)
	}

	select {
	case <-changes:
		t.Fatal("overlay write must not trigger a rescan")
	case <-time.After(300 * time.Millisecond):
	}
}
