package state_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"tglauncher/internal/faults"
	"tglauncher/internal/loadorder"
	"tglauncher/internal/state"
)

func openStore(t *testing.T) *state.Store {
	t.Helper()
	store, err := state.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadOrderRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	entries := []loadorder.Entry{
		{ModID: "Gamma", Enabled: true},
		{ModID: "Alpha", Enabled: false},
		{ModID: "Beta", Enabled: true},
	}
	if err := store.SaveLoadOrder(ctx, entries); err != nil {
		t.Fatalf("SaveLoadOrder: %v", err)
	}

	got, err := store.LoadOrder(ctx)
	if err != nil {
		t.Fatalf("LoadOrder: %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, entries)
	}
}

func TestSaveLoadOrderReplacesPreviousState(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	first := []loadorder.Entry{{ModID: "Alpha", Enabled: true}, {ModID: "Beta"}}
	if err := store.SaveLoadOrder(ctx, first); err != nil {
		t.Fatalf("SaveLoadOrder: %v", err)
	}
	second := []loadorder.Entry{{ModID: "Beta", Enabled: true}}
	if err := store.SaveLoadOrder(ctx, second); err != nil {
		t.Fatalf("SaveLoadOrder: %v", err)
	}

	got, err := store.LoadOrder(ctx)
	if err != nil {
		t.Fatalf("LoadOrder: %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Fatalf("expected replacement, got %+v", got)
	}
}

func TestEmptyLoadOrderIsNotAnError(t *testing.T) {
	store := openStore(t)

	got, err := store.LoadOrder(context.Background())
	if err != nil {
		t.Fatalf("LoadOrder: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty order, got %+v", got)
	}
}

func TestPresetSaveOverwritesAndLists(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.SavePreset(ctx, "war", []string{"Alpha", "Beta"}); err != nil {
		t.Fatalf("SavePreset: %v", err)
	}
	if err := store.SavePreset(ctx, "peace", []string{"Gamma"}); err != nil {
		t.Fatalf("SavePreset: %v", err)
	}
	// Same name replaces the mod list.
	if err := store.SavePreset(ctx, "war", []string{"Beta"}); err != nil {
		t.Fatalf("SavePreset overwrite: %v", err)
	}

	presets, err := store.ListPresets(ctx)
	if err != nil {
		t.Fatalf("ListPresets: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}
	if presets[0].Name != "peace" || presets[1].Name != "war" {
		t.Fatalf("presets not alphabetical: %q, %q", presets[0].Name, presets[1].Name)
	}
	if !reflect.DeepEqual(presets[1].Mods, []string{"Beta"}) {
		t.Fatalf("overwrite not applied: %v", presets[1].Mods)
	}
}

func TestGetAndDeletePreset(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.SavePreset(ctx, "war", []string{"Alpha"}); err != nil {
		t.Fatalf("SavePreset: %v", err)
	}

	preset, err := store.GetPreset(ctx, "war")
	if err != nil {
		t.Fatalf("GetPreset: %v", err)
	}
	if !reflect.DeepEqual(preset.Mods, []string{"Alpha"}) {
		t.Fatalf("unexpected preset mods: %v", preset.Mods)
	}
	if preset.CreatedAt.IsZero() || preset.UpdatedAt.IsZero() {
		t.Fatal("timestamps should be set")
	}

	if err := store.DeletePreset(ctx, "war"); err != nil {
		t.Fatalf("DeletePreset: %v", err)
	}
	if _, err := store.GetPreset(ctx, "war"); !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeletePreset(ctx, "war"); !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSavePresetRejectsEmptyName(t *testing.T) {
	store := openStore(t)

	err := store.SavePreset(context.Background(), "  ", nil)
	if !errors.Is(err, faults.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	first, err := state.Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := first.SaveLoadOrder(context.Background(), []loadorder.Entry{{ModID: "Alpha", Enabled: true}}); err != nil {
		t.Fatalf("SaveLoadOrder: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := state.Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer func() { _ = second.Close() }()

	got, err := second.LoadOrder(context.Background())
	if err != nil {
		t.Fatalf("LoadOrder: %v", err)
	}
	if len(got) != 1 || got[0].ModID != "Alpha" || !got[0].Enabled {
		t.Fatalf("state not persisted across opens: %+v", got)
	}
}
