package preset_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"tglauncher/internal/catalog"
	"tglauncher/internal/faults"
	"tglauncher/internal/loadorder"
	"tglauncher/internal/preset"
	"tglauncher/internal/state"
)

func newManager(t *testing.T) *preset.Manager {
	t.Helper()
	store, err := state.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return preset.NewManager(store, nil)
}

func catalogWith(t *testing.T, ids ...string) *catalog.Catalog {
	t.Helper()
	root := t.TempDir()
	for _, id := range ids {
		body := "name = \"" + id + "\"\npath = \"mod/" + id + "\"\n"
		if err := os.WriteFile(filepath.Join(root, id+".mod"), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s.mod: %v", id, err)
		}
	}
	cat, err := catalog.Scan(root, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return cat
}

func TestSaveAndApplyRoundTrip(t *testing.T) {
	mgr := newManager(t)
	ctx := context.Background()
	cat := catalogWith(t, "Alpha", "Beta", "Gamma")

	list := loadorder.New([]loadorder.Entry{
		{ModID: "Gamma", Enabled: true},
		{ModID: "Alpha", Enabled: true},
		{ModID: "Beta"},
	})
	if err := mgr.Save(ctx, "war", list); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Scramble the list, then apply the preset.
	scrambled := loadorder.New([]loadorder.Entry{
		{ModID: "Beta", Enabled: true},
		{ModID: "Alpha"},
		{ModID: "Gamma"},
	})
	applied, dropped, err := mgr.Apply(ctx, "war", cat, scrambled)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(dropped) != 0 {
		t.Fatalf("unexpected dropped mods: %v", dropped)
	}
	if got := applied.EnabledInOrder(); !reflect.DeepEqual(got, []string{"Gamma", "Alpha"}) {
		t.Fatalf("applied order = %v, want [Gamma Alpha]", got)
	}
	if applied.Len() != 3 {
		t.Fatalf("disabled mods must survive an apply, got %d entries", applied.Len())
	}
}

func TestApplyDropsVanishedMods(t *testing.T) {
	mgr := newManager(t)
	ctx := context.Background()

	list := loadorder.New([]loadorder.Entry{
		{ModID: "Alpha", Enabled: true},
		{ModID: "Vanished", Enabled: true},
	})
	if err := mgr.Save(ctx, "old", list); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cat := catalogWith(t, "Alpha")
	current := loadorder.New([]loadorder.Entry{{ModID: "Alpha"}})
	applied, dropped, err := mgr.Apply(ctx, "old", cat, current)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !reflect.DeepEqual(dropped, []string{"Vanished"}) {
		t.Fatalf("dropped = %v, want [Vanished]", dropped)
	}
	if got := applied.EnabledInOrder(); !reflect.DeepEqual(got, []string{"Alpha"}) {
		t.Fatalf("applied order = %v", got)
	}
}

func TestApplyUnknownPreset(t *testing.T) {
	mgr := newManager(t)
	cat := catalogWith(t, "Alpha")

	_, _, err := mgr.Apply(context.Background(), "missing", cat, loadorder.List{})
	if !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveOverwritesAndListSorts(t *testing.T) {
	mgr := newManager(t)
	ctx := context.Background()

	one := loadorder.New([]loadorder.Entry{{ModID: "Alpha", Enabled: true}})
	two := loadorder.New([]loadorder.Entry{{ModID: "Beta", Enabled: true}})
	if err := mgr.Save(ctx, "zeta", one); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mgr.Save(ctx, "acme", one); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mgr.Save(ctx, "zeta", two); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	presets, err := mgr.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(presets) != 2 || presets[0].Name != "acme" || presets[1].Name != "zeta" {
		t.Fatalf("unexpected preset list: %+v", presets)
	}
	if !reflect.DeepEqual(presets[1].Mods, []string{"Beta"}) {
		t.Fatalf("overwrite not applied: %v", presets[1].Mods)
	}
}

func TestDelete(t *testing.T) {
	mgr := newManager(t)
	ctx := context.Background()

	if err := mgr.Save(ctx, "war", loadorder.List{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mgr.Delete(ctx, "war"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mgr.Delete(ctx, "war"); !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
