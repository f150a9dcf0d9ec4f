package store

import (
	"context"
	"slices"
	"strings"

	"github.com/phani92/mate-service/pkg/types"
)

// AddItem appends an item with the caller-supplied id. Returns
// types.ErrCapacityExceeded when the collection is at its ceiling.
// Price is recorded as given; callers validate it.
func (s *Store) AddItem(ctx context.Context, id, name string, price float64, initialStock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) >= s.caps.MaxItems {
		return types.ErrCapacityExceeded
	}
	s.items = append(s.items, types.Item{
		ID:           id,
		Name:         name,
		Price:        price,
		InitialStock: initialStock,
	})
	return s.persistLocked(ctx)
}

// ItemExists reports whether any item has the given name, compared
// case-insensitively.
func (s *Store) ItemExists(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, i := range s.items {
		if strings.EqualFold(i.Name, name) {
			return true
		}
	}
	return false
}

// RemoveItem deletes the item and cascades over every consumption and
// payment record referencing it. Returns types.ErrNotFound when the id is
// unknown.
func (s *Store) RemoveItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.items, func(i types.Item) bool { return i.ID == id })
	if idx < 0 {
		return types.ErrNotFound
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	s.cascadeItemDeleteLocked(id)
	return s.persistLocked(ctx)
}

// UpdateItemStock replaces the item's initial stock in place, leaving the
// consumption history untouched. Returns types.ErrNotFound when the id is
// unknown.
func (s *Store) UpdateItemStock(ctx context.Context, id string, initialStock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].InitialStock = initialStock
			return s.persistLocked(ctx)
		}
	}
	return types.ErrNotFound
}

// AvailableStock returns the item's initial stock minus the sum of all
// consumption quantities recorded against it, recomputed on every call.
// An unknown item id yields 0, not an error. Pure read; nothing is
// persisted.
func (s *Store) AvailableStock(itemID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	initial := 0
	for _, i := range s.items {
		if i.ID == itemID {
			initial = i.InitialStock
			break
		}
	}

	consumed := 0
	for _, c := range s.consumption {
		if c.ItemID == itemID {
			consumed += c.Quantity
		}
	}

	return initial - consumed
}
