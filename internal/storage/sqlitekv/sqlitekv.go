// Package sqlitekv implements the blob backend on a SQLite database with a
// single key/value table: one durable slot per key, whole-blob replacement
// on every write.
package sqlitekv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/phani92/mate-service/internal/storage"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS blobs (
    key   TEXT PRIMARY KEY,
    value BLOB NOT NULL
);
`

// Backend stores blobs in <dataDir>/mate.db.
type Backend struct {
	db *sql.DB
}

// New opens (creating if needed) the database under dataDir and ensures the
// schema exists.
func New(dataDir string) (*Backend, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "mate.db"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Backend{db: db}, nil
}

// Get returns the blob stored under key, or storage.ErrNotFound.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRowContext(ctx, "SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying blob %s: %w", key, err)
	}
	return value, nil
}

// Put replaces the blob stored under key. The upsert runs in a single
// implicit transaction, so readers never observe a partial write.
func (b *Backend) Put(ctx context.Context, key string, blob []byte) error {
	_, err := b.db.ExecContext(ctx,
		"INSERT INTO blobs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, blob)
	if err != nil {
		return fmt.Errorf("storing blob %s: %w", key, err)
	}
	return nil
}

// Close closes the database. Idempotent.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}
