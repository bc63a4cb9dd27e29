package preset

import (
	"context"
	"log/slog"

	"tglauncher/internal/catalog"
	"tglauncher/internal/loadorder"
	"tglauncher/internal/logging"
	"tglauncher/internal/state"
)

const component = "preset"

// Manager persists presets through the state store.
type Manager struct {
	store  *state.Store
	logger *slog.Logger
}

// NewManager returns a manager writing through store.
func NewManager(store *state.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{
		store:  store,
		logger: logging.WithComponent(logger, component),
	}
}

// Save snapshots the list's enabled mods, in order, under name. Saving an
// existing name overwrites it.
func (m *Manager) Save(ctx context.Context, name string, list loadorder.List) error {
	mods := list.EnabledInOrder()
	if err := m.store.SavePreset(ctx, name, mods); err != nil {
		return err
	}
	m.logger.Info("preset saved", "preset", name, "mods", len(mods))
	return nil
}

// List returns all presets in alphabetical name order.
func (m *Manager) List(ctx context.Context) ([]state.Preset, error) {
	return m.store.ListPresets(ctx)
}

// Apply rebuilds the load order from the named preset: preset mods that
// still exist come first, enabled, in preset order; all other entries
// follow disabled in their current relative order. The returned slice
// names preset mods that no longer exist.
func (m *Manager) Apply(ctx context.Context, name string, cat *catalog.Catalog, current loadorder.List) (loadorder.List, []string, error) {
	stored, err := m.store.GetPreset(ctx, name)
	if err != nil {
		return loadorder.List{}, nil, err
	}

	var (
		entries []loadorder.Entry
		dropped []string
	)
	applied := make(map[string]struct{}, len(stored.Mods))
	for _, id := range stored.Mods {
		if _, ok := cat.ByID(id); !ok {
			dropped = append(dropped, id)
			m.logger.Debug("preset mod no longer installed", "preset", name, "mod", id)
			continue
		}
		entries = append(entries, loadorder.Entry{ModID: id, Enabled: true})
		applied[id] = struct{}{}
	}
	for _, e := range current.Entries() {
		if _, ok := applied[e.ModID]; ok {
			continue
		}
		entries = append(entries, loadorder.Entry{ModID: e.ModID, Enabled: false})
	}

	list := loadorder.New(entries)
	if err := m.store.SaveLoadOrder(ctx, list.Entries()); err != nil {
		return loadorder.List{}, nil, err
	}
	m.logger.Info("preset applied", "preset", name,
		"enabled", len(list.EnabledInOrder()), "dropped", len(dropped))
	return list, dropped, nil
}

// Delete removes the named preset.
func (m *Manager) Delete(ctx context.Context, name string) error {
	if err := m.store.DeletePreset(ctx, name); err != nil {
		return err
	}
	m.logger.Info("preset deleted", "preset", name)
	return nil
}
