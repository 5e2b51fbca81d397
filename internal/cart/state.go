package cart

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// State is the full cart: the items plus the two derived fields and the
// one-way hydration flag. Quantity and TotalAmount are always recomputed
// from Items by the transitions below; they are stored rather than derived
// on read so that a restored snapshot reports exactly what was persisted.
type State struct {
	Items       []Item
	Quantity    int
	TotalAmount float64
	Hydrated    bool
}

// coercePrice converts an item's price to a float the same way loose clients
// do: numbers pass through, booleans become 1/0, numeric strings parse, and
// everything else (missing, objects, junk strings) becomes NaN. A NaN total
// marks a cart holding an unpriceable item; checkout refuses it rather than
// charging zero.
func coercePrice(v any) float64 {
	switch p := v.(type) {
	case nil:
		return math.NaN()
	case float64:
		return p
	case float32:
		return float64(p)
	case int:
		return float64(p)
	case int64:
		return float64(p)
	case json.Number:
		f, err := p.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case bool:
		if p {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(p)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// recompute rebuilds the derived fields from the item list.
func recompute(s State) State {
	s.Quantity = len(s.Items)
	total := 0.0
	for _, it := range s.Items {
		total += coercePrice(it.Price)
	}
	s.TotalAmount = total
	return s
}

// withItem appends a copy of item, stamped with the booking date and time
// slot when given, and recomputes the derived fields.
func withItem(s State, item Item, date, timeSlot string) State {
	added := item.clone()
	if date != "" {
		added.Date = date
	}
	if timeSlot != "" {
		added.Time = timeSlot
	}
	items := make([]Item, 0, len(s.Items)+1)
	items = append(items, s.Items...)
	items = append(items, added)
	s.Items = items
	return recompute(s)
}

// withoutItem removes the first item matching id; duplicates keep their
// later entries. A miss still yields a fresh recomputed state so callers
// cannot tell the two apart.
func withoutItem(s State, id string) State {
	items := make([]Item, 0, len(s.Items))
	removed := false
	for _, it := range s.Items {
		if !removed && it.ID == id {
			removed = true
			continue
		}
		items = append(items, it)
	}
	s.Items = items
	return recompute(s)
}

// emptied resets the cart to zero while keeping the hydration flag, which
// never goes back down once set.
func emptied(s State) State {
	s.Items = []Item{}
	s.Quantity = 0
	s.TotalAmount = 0
	return s
}
