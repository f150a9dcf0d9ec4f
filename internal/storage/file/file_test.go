package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/phani92/mate-service/internal/storage"
)

func TestFileBackendPutGet(t *testing.T) {
	backend, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Close()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := backend.Get(ctx, storage.StateKey)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		blob := []byte(`{"users":[]}`)
		if err := backend.Put(ctx, storage.StateKey, blob); err != nil {
			t.Fatal(err)
		}
		got, err := backend.Get(ctx, storage.StateKey)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != string(blob) {
			t.Fatalf("expected %s, got %s", blob, got)
		}
	})

	t.Run("put replaces", func(t *testing.T) {
		if err := backend.Put(ctx, storage.StateKey, []byte("second")); err != nil {
			t.Fatal(err)
		}
		got, err := backend.Get(ctx, storage.StateKey)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "second" {
			t.Fatalf("expected second, got %s", got)
		}
	})
}

func TestFileBackendLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	backend, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := backend.Put(context.Background(), storage.StateKey, []byte("x")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("leftover temp file %s", e.Name())
		}
	}
}

func TestFileBackendCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := New(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected data dir to exist: %v", err)
	}
}

func TestFileBackendCancelledContext(t *testing.T) {
	backend, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := backend.Put(ctx, storage.StateKey, []byte("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := backend.Get(ctx, storage.StateKey); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
