package types

// ConsumptionRecord logs a user taking quantity units of an item.
// UserID and ItemID are soft references: they are not enforced as foreign
// keys, but deleting the referenced user or item cascades over these records.
//
// Timestamp is a service-uptime counter in whole seconds, rendered as a
// decimal string. It resets on restart and is therefore not an absolute
// ordering key across restarts.
type ConsumptionRecord struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	ItemID    string `json:"itemId"`
	Quantity  int    `json:"quantity"`
	Timestamp string `json:"timestamp"`
}

// PaymentRecord logs a user paying amount toward an item.
// Same soft-reference and timestamp semantics as ConsumptionRecord.
type PaymentRecord struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	ItemID    string  `json:"itemId"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
}
