package types

import "errors"

// Record store operation errors. Operations return these as explicit
// results; the store never panics on bad input.
var (
	// ErrCapacityExceeded is returned by an add operation when the target
	// collection is at its configured ceiling. No mutation occurs.
	ErrCapacityExceeded = errors.New("collection capacity exceeded")

	// ErrNotFound is returned by remove/update operations when no entity
	// with the given ID exists in the target collection.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidQuantity is returned when a consumption quantity is not
	// positive. The request layer validates first; this is a second line.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidAmount is returned when a payment amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")
)
