package store

import (
	"context"
	"slices"

	"github.com/phani92/mate-service/pkg/types"
)

// AddConsumption appends a consumption record stamped with the current
// uptime. The available-stock pre-check is the caller's responsibility;
// only the quantity sign is validated here as a second line of defense.
func (s *Store) AddConsumption(ctx context.Context, id, userID, itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return types.ErrInvalidQuantity
	}
	if len(s.consumption) >= s.caps.MaxConsumption {
		return types.ErrCapacityExceeded
	}
	s.consumption = append(s.consumption, types.ConsumptionRecord{
		ID:        id,
		UserID:    userID,
		ItemID:    itemID,
		Quantity:  quantity,
		Timestamp: s.timestampLocked(),
	})
	return s.persistLocked(ctx)
}

// RemoveConsumption deletes one consumption record by id. Returns
// types.ErrNotFound when the id is unknown.
func (s *Store) RemoveConsumption(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.consumption, func(c types.ConsumptionRecord) bool { return c.ID == id })
	if idx < 0 {
		return types.ErrNotFound
	}
	s.consumption = slices.Delete(s.consumption, idx, idx+1)
	return s.persistLocked(ctx)
}

// AddPayment appends a payment record stamped with the current uptime.
// Only the amount sign is validated here; payments are never removed
// individually, only by cascade or reset.
func (s *Store) AddPayment(ctx context.Context, id, userID, itemID string, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return types.ErrInvalidAmount
	}
	if len(s.payments) >= s.caps.MaxPayments {
		return types.ErrCapacityExceeded
	}
	s.payments = append(s.payments, types.PaymentRecord{
		ID:        id,
		UserID:    userID,
		ItemID:    itemID,
		Amount:    amount,
		Timestamp: s.timestampLocked(),
	})
	return s.persistLocked(ctx)
}
