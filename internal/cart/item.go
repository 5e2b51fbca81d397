package cart

import "encoding/json"

// Item is a single cart line: a product or a time-scheduled field booking.
// The known fields are typed; everything else a client sends rides along in
// Extra and survives JSON round-trips untouched.
type Item struct {
	ID    string
	Price any
	Date  string
	Time  string
	Extra map[string]any
}

// MarshalJSON flattens Extra back into the top-level object.
func (i Item) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(i.Extra)+4)
	for k, v := range i.Extra {
		out[k] = v
	}
	out["id"] = i.ID
	if i.Price != nil {
		out["price"] = i.Price
	}
	if i.Date != "" {
		out["date"] = i.Date
	}
	if i.Time != "" {
		out["time"] = i.Time
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits the known fields off and keeps the rest in Extra.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["id"].(string); ok {
		i.ID = v
		delete(raw, "id")
	}
	if v, ok := raw["price"]; ok {
		i.Price = v
		delete(raw, "price")
	}
	if v, ok := raw["date"].(string); ok {
		i.Date = v
		delete(raw, "date")
	}
	if v, ok := raw["time"].(string); ok {
		i.Time = v
		delete(raw, "time")
	}
	if len(raw) > 0 {
		i.Extra = raw
	} else {
		i.Extra = nil
	}
	return nil
}

// clone returns a copy whose Extra map does not alias the receiver's.
func (i Item) clone() Item {
	out := i
	if i.Extra != nil {
		out.Extra = make(map[string]any, len(i.Extra))
		for k, v := range i.Extra {
			out.Extra[k] = v
		}
	}
	return out
}
