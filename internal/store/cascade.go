package store

import (
	"slices"

	"github.com/phani92/mate-service/pkg/types"
)

// Cascade deletes: when a user or item is removed, every consumption and
// payment record referencing it goes with it, synchronously, before the
// resulting state is persisted. Zero matches is success, not an error.

// cascadeUserDeleteLocked removes all records whose UserID matches.
// Caller must hold s.mu.
func (s *Store) cascadeUserDeleteLocked(userID string) {
	s.consumption = slices.DeleteFunc(s.consumption, func(c types.ConsumptionRecord) bool {
		return c.UserID == userID
	})
	s.payments = slices.DeleteFunc(s.payments, func(p types.PaymentRecord) bool {
		return p.UserID == userID
	})
}

// cascadeItemDeleteLocked removes all records whose ItemID matches.
// Caller must hold s.mu.
func (s *Store) cascadeItemDeleteLocked(itemID string) {
	s.consumption = slices.DeleteFunc(s.consumption, func(c types.ConsumptionRecord) bool {
		return c.ItemID == itemID
	})
	s.payments = slices.DeleteFunc(s.payments, func(p types.PaymentRecord) bool {
		return p.ItemID == itemID
	})
}
