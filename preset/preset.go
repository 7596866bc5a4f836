// Package preset stores named effect sets in a SQLite database.
//
// Sets are stored in their binary encoding, so a preset database written by
// one version of the effects package can be read by later ones.
package preset

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/effects"
	"github.com/gogpu/effects/internal/logging"

	_ "modernc.org/sqlite"
)

// Errors returned by Store methods.
var (
	// ErrNotFound is returned when no preset has the requested name.
	ErrNotFound = errors.New("preset: not found")

	// ErrEmptyName is returned for a blank preset name.
	ErrEmptyName = errors.New("preset: empty name")
)

const schema = `
CREATE TABLE IF NOT EXISTS presets (
    name TEXT PRIMARY KEY,
    data BLOB NOT NULL,
    updated INTEGER NOT NULL  -- UnixNano
);
`

// Store is a preset database. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the preset database at path, creating it and any missing
// parent directories if needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("preset: create directory: %w", err)
		}
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("preset: open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("preset: connect to database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("preset: create schema: %w", err)
	}

	logging.Get().Debug("preset: opened store", "path", path)
	return &Store{db: db, path: path}, nil
}

// Path returns the database file the store was opened with.
func (s *Store) Path() string { return s.path }

// Save stores set under name, replacing any preset of the same name.
func (s *Store) Save(ctx context.Context, name string, set *effects.Set) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	data, err := set.MarshalBinary()
	if err != nil {
		return fmt.Errorf("preset: encode %q: %w", name, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO presets (name, data, updated) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated = excluded.updated`,
		name, data, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("preset: save %q: %w", name, err)
	}
	logging.Get().Debug("preset: saved", "name", name, "effects", set.Mask(), "bytes", len(data))
	return nil
}

// Load returns the preset stored under name.
func (s *Store) Load(ctx context.Context, name string) (effects.Set, error) {
	name, err := cleanName(name)
	if err != nil {
		return effects.Set{}, err
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, "SELECT data FROM presets WHERE name = ?", name).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return effects.Set{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	case err != nil:
		return effects.Set{}, fmt.Errorf("preset: load %q: %w", name, err)
	}

	set, err := effects.Decode(bytes.NewReader(data))
	if err != nil {
		return effects.Set{}, fmt.Errorf("preset: decode %q: %w", name, err)
	}
	return set, nil
}

// List returns the names of all presets in ascending order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM presets ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("preset: list: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("preset: list: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("preset: list: %w", err)
	}
	return names, nil
}

// Delete removes the preset stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("preset: delete %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
