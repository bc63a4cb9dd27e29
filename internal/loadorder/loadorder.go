package loadorder

import (
	"sort"

	"tglauncher/internal/catalog"
	"tglauncher/internal/faults"
)

const component = "loadorder"

// Entry is one mod's slot in the load order.
type Entry struct {
	ModID   string
	Enabled bool
}

// Position is an Entry with its resolved positions filled in for display.
type Position struct {
	Entry
	// Display is the entry's index in the full list.
	Display int
	// Load is the dense rank among enabled entries, or -1 when disabled.
	Load int
}

// List is an immutable ordered sequence of entries, keyed by mod id.
type List struct {
	entries []Entry
}

// New builds a list from entries, dropping duplicate ids (first wins).
func New(entries []Entry) List {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.ModID == "" {
			continue
		}
		if _, dup := seen[e.ModID]; dup {
			continue
		}
		seen[e.ModID] = struct{}{}
		out = append(out, e)
	}
	return List{entries: out}
}

// FromCatalog merges a fresh catalog with previously persisted state. Mods
// present in previous keep their enabled flag and relative order; newly
// discovered mods are appended disabled, ordered by their dependency hints
// (alphabetical on cycles); mods gone from the catalog are dropped silently.
func FromCatalog(cat *catalog.Catalog, previous List) List {
	known := make(map[string]struct{}, cat.Len())
	for _, id := range cat.IDs() {
		known[id] = struct{}{}
	}

	var entries []Entry
	carried := make(map[string]struct{})
	for _, e := range previous.entries {
		if _, ok := known[e.ModID]; !ok {
			continue
		}
		entries = append(entries, e)
		carried[e.ModID] = struct{}{}
	}

	var newcomers []string
	for _, id := range cat.IDs() {
		if _, ok := carried[id]; !ok {
			newcomers = append(newcomers, id)
		}
	}
	for _, id := range orderByDependencies(cat, newcomers) {
		entries = append(entries, Entry{ModID: id})
	}

	return List{entries: entries}
}

// SetEnabled returns a list with the entry's enabled flag updated.
func (l List) SetEnabled(id string, enabled bool) (List, error) {
	idx := l.index(id)
	if idx < 0 {
		return List{}, faults.Wrap(faults.ErrNotFound, component, "set enabled", id, nil)
	}
	next := l.clone()
	next.entries[idx].Enabled = enabled
	return next, nil
}

// MoveTo returns a list with the entry moved to newPosition, clamped to
// [0, count-1]. Other entries keep their relative order.
func (l List) MoveTo(id string, newPosition int) (List, error) {
	idx := l.index(id)
	if idx < 0 {
		return List{}, faults.Wrap(faults.ErrNotFound, component, "move", id, nil)
	}
	if newPosition < 0 {
		newPosition = 0
	}
	if max := len(l.entries) - 1; newPosition > max {
		newPosition = max
	}

	next := l.clone()
	entry := next.entries[idx]
	next.entries = append(next.entries[:idx], next.entries[idx+1:]...)
	next.entries = append(next.entries[:newPosition],
		append([]Entry{entry}, next.entries[newPosition:]...)...)
	return next, nil
}

// EnabledInOrder returns the enabled mod ids in load order. This is the
// canonical sequence the merge engine and launch builder consume.
func (l List) EnabledInOrder() []string {
	var out []string
	for _, e := range l.entries {
		if e.Enabled {
			out = append(out, e.ModID)
		}
	}
	return out
}

// Positions returns every entry with display and load positions resolved.
func (l List) Positions() []Position {
	out := make([]Position, 0, len(l.entries))
	load := 0
	for i, e := range l.entries {
		pos := Position{Entry: e, Display: i, Load: -1}
		if e.Enabled {
			pos.Load = load
			load++
		}
		out = append(out, pos)
	}
	return out
}

// Entries returns a copy of the raw entries in order.
func (l List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Contains reports whether an id is present.
func (l List) Contains(id string) bool {
	return l.index(id) >= 0
}

// Len returns the number of entries.
func (l List) Len() int {
	return len(l.entries)
}

func (l List) index(id string) int {
	for i, e := range l.entries {
		if e.ModID == id {
			return i
		}
	}
	return -1
}

func (l List) clone() List {
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return List{entries: entries}
}

// orderByDependencies sorts newcomer ids so that depended-on mods come
// first (Kahn's algorithm, smallest id first for determinism). Dependency
// hints reference display names; hints pointing outside the newcomer set
// are ignored. A cycle falls back to plain alphabetical order.
func orderByDependencies(cat *catalog.Catalog, ids []string) []string {
	if len(ids) < 2 {
		return ids
	}

	inSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		inSet[id] = struct{}{}
	}

	inDegree := make(map[string]int, len(ids))
	dependents := make(map[string][]string, len(ids))
	for _, id := range ids {
		inDegree[id] = 0
	}
	for _, id := range ids {
		mod, _ := cat.ByID(id)
		for _, depName := range mod.Dependencies {
			dep, ok := cat.ByName(depName)
			if !ok {
				continue
			}
			if _, ok := inSet[dep.ID]; !ok {
				continue
			}
			inDegree[id]++
			dependents[dep.ID] = append(dependents[dep.ID], id)
		}
	}

	var ready []string
	for _, id := range ids {
		if inDegree[id] == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(ids))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)
		released := dependents[id]
		sort.Strings(released)
		for _, other := range released {
			inDegree[other]--
			if inDegree[other] == 0 {
				ready = append(ready, other)
			}
		}
		sort.Strings(ready)
	}

	if len(order) != len(ids) {
		sorted := make([]string, len(ids))
		copy(sorted, ids)
		sort.Strings(sorted)
		return sorted
	}
	return order
}
