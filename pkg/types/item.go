package types

// Item is a shared consumable.
// Price is advisory at this layer; it is recorded, not validated.
// InitialStock is the only field mutable after creation.
type Item struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	InitialStock int     `json:"initialStock"`
}
