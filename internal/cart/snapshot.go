package cart

import "encoding/json"

// Snapshot is the persisted wire form of a cart. The hydration flag is a
// runtime property and is never written.
type Snapshot struct {
	Items       []Item  `json:"items"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"totalAmount"`
}

func encodeSnapshot(s State) ([]byte, error) {
	snap := Snapshot{
		Items:       s.Items,
		Quantity:    s.Quantity,
		TotalAmount: s.TotalAmount,
	}
	if snap.Items == nil {
		snap.Items = []Item{}
	}
	return json.Marshal(snap)
}

// decodeSnapshot parses a persisted payload. Missing fields keep their zero
// values independently, so a partial snapshot still restores what it has.
func decodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	if snap.Items == nil {
		snap.Items = []Item{}
	}
	return snap, nil
}
