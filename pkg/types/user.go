package types

// User is a member of the group sharing the inventory.
// IDs are supplied by the caller; the store never generates them.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
