package cart

import (
	"strings"
	"testing"
)

func TestDecodeSnapshotDefaultsItems(t *testing.T) {
	snap, err := decodeSnapshot([]byte(`{"quantity":2,"totalAmount":10}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Items == nil || len(snap.Items) != 0 {
		t.Fatalf("items must default to an empty list, got %#v", snap.Items)
	}
	if snap.Quantity != 2 || snap.TotalAmount != 10 {
		t.Fatalf("present fields must still restore: %+v", snap)
	}
}

func TestEncodeSnapshotShape(t *testing.T) {
	s := withItem(State{}, Item{ID: "field-1", Price: 90.5, Extra: map[string]any{"fieldName": "Arena 1"}}, "2026-09-01", "18:00")

	payload, err := encodeSnapshot(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	raw := string(payload)
	for _, want := range []string{`"items"`, `"quantity":1`, `"totalAmount":90.5`, `"fieldName":"Arena 1"`, `"date":"2026-09-01"`} {
		if !strings.Contains(raw, want) {
			t.Fatalf("payload missing %s: %s", want, raw)
		}
	}
}

func TestItemUnmarshalSplitsKnownFields(t *testing.T) {
	var it Item
	err := it.UnmarshalJSON([]byte(`{"id":"f1","price":"call us","date":"2026-09-01","fieldName":"Arena 1","indoor":true}`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.ID != "f1" || it.Price != "call us" || it.Date != "2026-09-01" {
		t.Fatalf("known fields not split: %+v", it)
	}
	if it.Extra["fieldName"] != "Arena 1" || it.Extra["indoor"] != true {
		t.Fatalf("open fields not kept: %+v", it.Extra)
	}
	if _, leaked := it.Extra["id"]; leaked {
		t.Fatal("known fields must not leak into Extra")
	}
}
