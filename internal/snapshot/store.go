// Package snapshot is the persistence adapter: a SQLite-backed
// key-value blob store holding the serialized entity snapshot and id
// counters under well-known keys, the durable stand-in for the
// original's browser local storage.
package snapshot

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/accessarch/crm/internal/repository"
)

// Well-known blob keys. DataKey holds the full entity snapshot,
// CountersKey the per-collection id counters.
const (
	DataKey     = "crm_data"
	CountersKey = "crm_next_id"
)

// Store wraps a SQLite database used as a key-value blob store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the blob store at path. ":memory:" gives an
// ephemeral store for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS blobs (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put writes a blob under key, replacing any previous value.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO blobs (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ','now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to put blob %q: %w", key, err)
	}
	return nil
}

// Get returns the blob stored under key, or repository.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blob %q: %w", key, err)
	}
	return value, nil
}

// Delete removes the blob under key. Deleting a missing key is not an
// error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete blob %q: %w", key, err)
	}
	return nil
}
