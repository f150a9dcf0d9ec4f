package types

import (
	"reflect"
	"strings"
	"testing"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Users: []User{{ID: "u1", Name: "Alice"}, {ID: "u2", Name: "Bob"}},
		Items: []Item{{ID: "i1", Name: "Coffee", Price: 2.5, InitialStock: 100}},
		Consumption: []ConsumptionRecord{
			{ID: "c1", UserID: "u1", ItemID: "i1", Quantity: 5, Timestamp: "12"},
		},
		Payments: []PaymentRecord{
			{ID: "p1", UserID: "u2", ItemID: "i1", Amount: 10, Timestamp: "30"},
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	want := sampleSnapshot()

	data, err := want.Encode()
	if err != nil {
		t.Fatal(err)
	}
	got := DecodeSnapshot(data)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSnapshotEncodeAlwaysHasFourArrays(t *testing.T) {
	t.Run("empty snapshot", func(t *testing.T) {
		data, err := EmptySnapshot().Encode()
		if err != nil {
			t.Fatal(err)
		}
		doc := string(data)
		for _, key := range []string{`"users":[]`, `"items":[]`, `"consumption":[]`, `"payments":[]`} {
			if !strings.Contains(doc, key) {
				t.Fatalf("expected %s in %s", key, doc)
			}
		}
	})

	t.Run("nil collections encode as empty arrays", func(t *testing.T) {
		data, err := Snapshot{}.Encode()
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(data), "null") {
			t.Fatalf("expected no null arrays, got %s", data)
		}
	})
}

func TestDecodeSnapshotForgiving(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got := DecodeSnapshot(nil)
		if !reflect.DeepEqual(got, EmptySnapshot()) {
			t.Fatalf("expected empty snapshot, got %+v", got)
		}
	})

	t.Run("malformed document", func(t *testing.T) {
		got := DecodeSnapshot([]byte(`{"users": [`))
		if !reflect.DeepEqual(got, EmptySnapshot()) {
			t.Fatalf("expected empty snapshot, got %+v", got)
		}
	})

	t.Run("not an object", func(t *testing.T) {
		got := DecodeSnapshot([]byte(`[1, 2, 3]`))
		if !reflect.DeepEqual(got, EmptySnapshot()) {
			t.Fatalf("expected empty snapshot, got %+v", got)
		}
	})

	t.Run("mistyped field is treated as absent", func(t *testing.T) {
		doc := `{"users": "oops", "items": [{"id":"i1","name":"Tea","price":1.5,"initialStock":10}]}`
		got := DecodeSnapshot([]byte(doc))
		if len(got.Users) != 0 {
			t.Fatalf("expected empty users, got %+v", got.Users)
		}
		if len(got.Items) != 1 || got.Items[0].Name != "Tea" {
			t.Fatalf("expected items preserved, got %+v", got.Items)
		}
	})

	t.Run("null field stays empty", func(t *testing.T) {
		got := DecodeSnapshot([]byte(`{"users": null}`))
		if got.Users == nil || len(got.Users) != 0 {
			t.Fatalf("expected empty non-nil users, got %#v", got.Users)
		}
	})

	t.Run("missing fields default to empty", func(t *testing.T) {
		got := DecodeSnapshot([]byte(`{}`))
		if !reflect.DeepEqual(got, EmptySnapshot()) {
			t.Fatalf("expected empty snapshot, got %+v", got)
		}
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		doc := `{"version": 3, "users": [{"id":"u1","name":"Alice"}]}`
		got := DecodeSnapshot([]byte(doc))
		if len(got.Users) != 1 || got.Users[0].Name != "Alice" {
			t.Fatalf("expected one user, got %+v", got.Users)
		}
	})
}
