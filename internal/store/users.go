package store

import (
	"context"
	"slices"
	"strings"

	"github.com/phani92/mate-service/pkg/types"
)

// AddUser appends a user with the caller-supplied id. Returns
// types.ErrCapacityExceeded when the collection is at its ceiling.
// Duplicate names are not rejected here; callers pre-check with UserExists.
func (s *Store) AddUser(ctx context.Context, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) >= s.caps.MaxUsers {
		return types.ErrCapacityExceeded
	}
	s.users = append(s.users, types.User{ID: id, Name: name})
	return s.persistLocked(ctx)
}

// UserExists reports whether any user has the given name, compared
// case-insensitively. Stored casing is preserved.
func (s *Store) UserExists(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Name, name) {
			return true
		}
	}
	return false
}

// RemoveUser deletes the user and cascades over every consumption and
// payment record referencing it. Returns types.ErrNotFound when the id is
// unknown; in that case nothing is mutated or persisted.
func (s *Store) RemoveUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.users, func(u types.User) bool { return u.ID == id })
	if idx < 0 {
		return types.ErrNotFound
	}
	s.users = slices.Delete(s.users, idx, idx+1)
	s.cascadeUserDeleteLocked(id)
	return s.persistLocked(ctx)
}
