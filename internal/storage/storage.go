// Package storage defines the blob persistence port for the record store.
// A backend holds exactly one serialized snapshot under a fixed key; the
// store never partitions persistence by entity.
package storage

import (
	"context"
	"errors"
)

// StateKey is the single key under which the full snapshot is stored.
const StateKey = "state"

// ErrNotFound is returned by Get when no blob exists under the key.
var ErrNotFound = errors.New("blob not found")

// Backend is a durable byte-string key/value facility. Implementations must
// make Put atomic with respect to crashes: a reader sees either the previous
// blob or the new one, never a partial write.
type Backend interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put durably stores blob under key, replacing any previous value.
	Put(ctx context.Context, key string, blob []byte) error

	// Close releases backend resources. Idempotent.
	Close() error
}
