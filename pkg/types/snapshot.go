package types

import "encoding/json"

// Snapshot is the full-state interchange document. All four top-level
// arrays are always present in the serialized form, even when empty, and
// entities appear in insertion order.
type Snapshot struct {
	Users       []User              `json:"users"`
	Items       []Item              `json:"items"`
	Consumption []ConsumptionRecord `json:"consumption"`
	Payments    []PaymentRecord     `json:"payments"`
}

// EmptySnapshot returns a Snapshot with four empty, non-nil collections.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Users:       []User{},
		Items:       []Item{},
		Consumption: []ConsumptionRecord{},
		Payments:    []PaymentRecord{},
	}
}

// Encode serializes the snapshot. Nil collections are encoded as empty
// arrays so the four top-level keys are always present.
func (s Snapshot) Encode() ([]byte, error) {
	if s.Users == nil {
		s.Users = []User{}
	}
	if s.Items == nil {
		s.Items = []Item{}
	}
	if s.Consumption == nil {
		s.Consumption = []ConsumptionRecord{}
	}
	if s.Payments == nil {
		s.Payments = []PaymentRecord{}
	}
	return json.Marshal(s)
}

// DecodeSnapshot parses a serialized snapshot forgivingly: an empty or
// malformed document yields an empty snapshot, and a top-level field of the
// wrong type is treated as absent for that collection. Decoding never
// fails; a freshly provisioned or corrupted backend simply starts empty.
func DecodeSnapshot(data []byte) Snapshot {
	snap := EmptySnapshot()
	if len(data) == 0 {
		return snap
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return snap
	}

	decodeField(doc["users"], &snap.Users)
	decodeField(doc["items"], &snap.Items)
	decodeField(doc["consumption"], &snap.Consumption)
	decodeField(doc["payments"], &snap.Payments)
	return snap
}

// decodeField unmarshals one top-level array, leaving the destination
// untouched when the field is missing or mistyped.
func decodeField[T any](raw json.RawMessage, dst *[]T) {
	if len(raw) == 0 {
		return
	}
	var parsed []T
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return
	}
	if parsed == nil {
		// JSON null stays an empty collection.
		return
	}
	*dst = parsed
}
