// Package store implements the mate-service record store: four bounded,
// in-memory collections with cascading deletes, on-demand stock
// aggregation, and full-snapshot write-through persistence after every
// mutation.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/phani92/mate-service/internal/storage"
	"github.com/phani92/mate-service/pkg/types"
)

// Store owns the four entity collections. All public operations are
// serialized by one mutex, so each call runs its full
// validate-mutate-cascade-persist sequence atomically with respect to
// other callers.
type Store struct {
	mu      sync.Mutex
	backend storage.Backend
	caps    types.Capacities

	users       []types.User
	items       []types.Item
	consumption []types.ConsumptionRecord
	payments    []types.PaymentRecord

	// Record timestamps count whole seconds since the store was
	// constructed. now is a field so tests can pin the clock.
	start time.Time
	now   func() time.Time
}

// New returns an empty store bound to the given backend. Call Load to pick
// up a previously persisted snapshot.
func New(backend storage.Backend, caps types.Capacities) *Store {
	return &Store{
		backend:     backend,
		caps:        caps,
		users:       []types.User{},
		items:       []types.Item{},
		consumption: []types.ConsumptionRecord{},
		payments:    []types.PaymentRecord{},
		start:       time.Now(),
		now:         time.Now,
	}
}

// Load replaces the in-memory state with the snapshot held by the backend.
// A missing or malformed snapshot yields an empty store, never an error;
// only a backend read failure is returned.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.backend.Get(ctx, storage.StateKey)
	if errors.Is(err, storage.ErrNotFound) {
		log.Printf("store: no saved state, starting fresh")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	snap := types.DecodeSnapshot(blob)
	s.users = snap.Users
	s.items = snap.Items
	s.consumption = snap.Consumption
	s.payments = snap.Payments

	log.Printf("store: loaded %d users, %d items, %d consumption records, %d payments",
		len(s.users), len(s.items), len(s.consumption), len(s.payments))
	return nil
}

// Reset discards all four collections atomically, then persists the empty
// snapshot.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []types.User{}
	s.items = []types.Item{}
	s.consumption = []types.ConsumptionRecord{}
	s.payments = []types.PaymentRecord{}

	return s.persistLocked(ctx)
}

// ExportState returns the serialized full-state snapshot. A pure read; no
// persistence write is triggered.
func (s *Store) ExportState() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked().Encode()
}

// Snapshot returns a copy of the current state. Mutating the result does
// not affect the store.
func (s *Store) Snapshot() types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Counts reports the current size of each collection.
func (s *Store) Counts() (users, items, consumption, payments int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), len(s.items), len(s.consumption), len(s.payments)
}

// snapshotLocked copies the collections into a Snapshot, preserving
// insertion order. Caller must hold s.mu.
func (s *Store) snapshotLocked() types.Snapshot {
	snap := types.Snapshot{
		Users:       make([]types.User, len(s.users)),
		Items:       make([]types.Item, len(s.items)),
		Consumption: make([]types.ConsumptionRecord, len(s.consumption)),
		Payments:    make([]types.PaymentRecord, len(s.payments)),
	}
	copy(snap.Users, s.users)
	copy(snap.Items, s.items)
	copy(snap.Consumption, s.consumption)
	copy(snap.Payments, s.payments)
	return snap
}

// persistLocked writes the full snapshot through to the backend. The
// in-memory mutation stands even when the write fails; the error is
// surfaced so callers see the durability gap instead of a silent lag.
// Caller must hold s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	blob, err := s.snapshotLocked().Encode()
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.backend.Put(ctx, storage.StateKey, blob); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}

// timestampLocked renders the current uptime in whole seconds. Caller must
// hold s.mu so timestamps are non-decreasing in collection order.
func (s *Store) timestampLocked() string {
	return strconv.FormatInt(int64(s.now().Sub(s.start)/time.Second), 10)
}
