// Shared helpers for mate-service integration tests.
package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phani92/mate-service/internal/storage"
	"github.com/phani92/mate-service/internal/storage/file"
	"github.com/phani92/mate-service/internal/storage/sqlitekv"
	"github.com/phani92/mate-service/internal/store"
	"github.com/phani92/mate-service/pkg/types"
)

// backendFactory builds a fresh backend over the same data directory, so
// tests can simulate a service restart.
type backendFactory func(t *testing.T, dataDir string) storage.Backend

var backendFactories = map[string]backendFactory{
	"file": func(t *testing.T, dataDir string) storage.Backend {
		t.Helper()
		backend, err := file.New(dataDir)
		require.NoError(t, err)
		return backend
	},
	"sqlite": func(t *testing.T, dataDir string) storage.Backend {
		t.Helper()
		backend, err := sqlitekv.New(dataDir)
		require.NoError(t, err)
		return backend
	},
}

// newLoadedStore creates a store over the given backend and loads any
// persisted state.
func newLoadedStore(t *testing.T, backend storage.Backend) *store.Store {
	t.Helper()
	return newLoadedStoreWithCaps(t, backend, types.DefaultCapacities())
}

func newLoadedStoreWithCaps(t *testing.T, backend storage.Backend, caps types.Capacities) *store.Store {
	t.Helper()
	st := store.New(backend, caps)
	require.NoError(t, st.Load(context.Background()))
	return st
}
