package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"tglauncher/internal/faults"
	"tglauncher/internal/loadorder"
)

const component = "state"

// Store manages launcher state backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// Open initializes or connects to the state database at path, creating the
// parent directory when needed.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, faults.Wrap(faults.ErrConfig, component, "open", "state database path is empty", nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

// SaveLoadOrder replaces the persisted load order with entries. Positions
// are the slice indices, so the stored order mirrors the in-memory list.
func (s *Store) SaveLoadOrder(ctx context.Context, entries []loadorder.Entry) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin load order tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, "DELETE FROM load_order"); err != nil {
			return fmt.Errorf("clear load order: %w", err)
		}
		for i, e := range entries {
			enabled := 0
			if e.Enabled {
				enabled = 1
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO load_order (mod_id, enabled, position) VALUES (?, ?, ?)",
				e.ModID, enabled, i,
			); err != nil {
				return fmt.Errorf("insert load order row %q: %w", e.ModID, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit load order: %w", err)
		}
		return nil
	})
}

// LoadOrder returns the persisted entries in position order. An empty
// database yields an empty slice, not an error.
func (s *Store) LoadOrder(ctx context.Context) ([]loadorder.Entry, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT mod_id, enabled FROM load_order ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("query load order: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []loadorder.Entry
	for rows.Next() {
		var (
			modID   string
			enabled int
		)
		if err := rows.Scan(&modID, &enabled); err != nil {
			return nil, fmt.Errorf("scan load order row: %w", err)
		}
		entries = append(entries, loadorder.Entry{ModID: modID, Enabled: enabled != 0})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate load order rows: %w", err)
	}
	return entries, nil
}

// Preset is a named snapshot of enabled mod ids.
type Preset struct {
	Name      string
	Mods      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SavePreset stores a preset, overwriting an existing one with the same
// name. The mod list is kept verbatim, including its order.
func (s *Store) SavePreset(ctx context.Context, name string, mods []string) error {
	ctx = ensureContext(ctx)
	if strings.TrimSpace(name) == "" {
		return faults.Wrap(faults.ErrConfig, component, "save preset", "preset name is empty", nil)
	}
	payload, err := json.Marshal(mods)
	if err != nil {
		return fmt.Errorf("encode preset mods: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO presets (name, mods, created_at, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET mods = excluded.mods, updated_at = excluded.updated_at`,
			name, string(payload), now, now)
		if err != nil {
			return fmt.Errorf("save preset %q: %w", name, err)
		}
		return nil
	})
}

// GetPreset returns one preset by name.
func (s *Store) GetPreset(ctx context.Context, name string) (Preset, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		"SELECT name, mods, created_at, updated_at FROM presets WHERE name = ?", name)
	preset, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, faults.Wrap(faults.ErrNotFound, component, "get preset", name, nil)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("get preset %q: %w", name, err)
	}
	return preset, nil
}

// ListPresets returns every preset in alphabetical name order.
func (s *Store) ListPresets(ctx context.Context) ([]Preset, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, mods, created_at, updated_at FROM presets")
	if err != nil {
		return nil, fmt.Errorf("query presets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var presets []Preset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan preset row: %w", err)
		}
		presets = append(presets, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preset rows: %w", err)
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

// DeletePreset removes a preset by name.
func (s *Store) DeletePreset(ctx context.Context, name string) error {
	ctx = ensureContext(ctx)
	var affected int64
	err := retryOnBusy(ctx, func() error {
		res, err := s.db.ExecContext(ctx, "DELETE FROM presets WHERE name = ?", name)
		if err != nil {
			return fmt.Errorf("delete preset %q: %w", name, err)
		}
		affected, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete preset %q: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return faults.Wrap(faults.ErrNotFound, component, "delete preset", name, nil)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (Preset, error) {
	var (
		preset  Preset
		mods    string
		created string
		updated string
	)
	if err := row.Scan(&preset.Name, &mods, &created, &updated); err != nil {
		return Preset{}, err
	}
	if err := json.Unmarshal([]byte(mods), &preset.Mods); err != nil {
		return Preset{}, fmt.Errorf("decode preset mods: %w", err)
	}
	if ts, err := time.Parse(time.RFC3339, created); err == nil {
		preset.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339, updated); err == nil {
		preset.UpdatedAt = ts
	}
	return preset, nil
}
