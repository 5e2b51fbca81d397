package cart

import (
	"math"

	"github.com/oyugibear/bofa-backend/internal/cart"
)

// cartView is the wire shape of a cart state. A NaN total cannot be encoded
// as a JSON number, so it goes out as null.
type cartView struct {
	Items       []cart.Item `json:"items"`
	Quantity    int         `json:"quantity"`
	TotalAmount *float64    `json:"totalAmount"`
	IsHydrated  bool        `json:"isHydrated"`
}

func newCartView(state cart.State) cartView {
	view := cartView{
		Items:      state.Items,
		Quantity:   state.Quantity,
		IsHydrated: state.Hydrated,
	}
	if view.Items == nil {
		view.Items = []cart.Item{}
	}
	if !math.IsNaN(state.TotalAmount) {
		total := state.TotalAmount
		view.TotalAmount = &total
	}
	return view
}
