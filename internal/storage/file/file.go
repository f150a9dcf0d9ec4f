// Package file implements the blob backend as a single file per key under a
// data directory, written atomically with the temp-file, fsync, rename
// pattern so a crash mid-write never leaves a torn snapshot.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phani92/mate-service/internal/storage"
)

// Backend stores each blob as <dataDir>/<key>.json.
type Backend struct {
	dataDir string
}

// New creates the data directory if needed and returns a file backend.
func New(dataDir string) (*Backend, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Backend{dataDir: dataDir}, nil
}

// Get returns the blob stored under key, or storage.ErrNotFound when the
// file does not exist.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, nil
}

// Put atomically replaces the blob stored under key.
func (b *Backend) Put(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(b.dataDir, ".blob-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing blob: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, b.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming blob: %w", err)
	}
	return nil
}

// Close is a no-op; the backend holds no open handles between calls.
func (b *Backend) Close() error {
	return nil
}

func (b *Backend) path(key string) string {
	return filepath.Join(b.dataDir, key+".json")
}
