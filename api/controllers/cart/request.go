package cart

import (
	"math"

	"github.com/oyugibear/bofa-backend/internal/cart"
)

type addItemRequest struct {
	Item cart.Item `json:"item"`
	Date string    `json:"date,omitempty"`
	Time string    `json:"time,omitempty"`
}

// replaceRequest carries a full cart state. totalAmount arrives as null when
// the client computed it from an unpriceable item, so it decodes through a
// pointer and maps back onto NaN.
type replaceRequest struct {
	Items       []cart.Item `json:"items"`
	Quantity    int         `json:"quantity"`
	TotalAmount *float64    `json:"totalAmount"`
	IsHydrated  bool        `json:"isHydrated"`
}

func toState(payload replaceRequest) cart.State {
	total := math.NaN()
	if payload.TotalAmount != nil {
		total = *payload.TotalAmount
	}
	return cart.State{
		Items:       payload.Items,
		Quantity:    payload.Quantity,
		TotalAmount: total,
		Hydrated:    payload.IsHydrated,
	}
}
