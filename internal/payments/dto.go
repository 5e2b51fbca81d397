package payments

import (
	"time"

	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
)

// PaymentDTO is the outward-facing payment shape. AmountDisplay carries the
// major-unit rendering of AmountCents so clients never do money math.
type PaymentDTO struct {
	ID            uuid.UUID           `json:"id"`
	BookingID     uuid.UUID           `json:"booking_id"`
	UserID        uuid.UUID           `json:"user_id"`
	AmountCents   int                 `json:"amount_cents"`
	AmountDisplay string              `json:"amount_display"`
	Method        enums.PaymentMethod `json:"method"`
	Status        enums.PaymentStatus `json:"status"`
	Reference     *string             `json:"reference,omitempty"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// FromModel maps a persisted payment to its DTO.
func FromModel(payment *models.Payment) *PaymentDTO {
	if payment == nil {
		return nil
	}
	return &PaymentDTO{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		UserID:        payment.UserID,
		AmountCents:   payment.AmountCents,
		AmountDisplay: DisplayAmount(payment.AmountCents),
		Method:        payment.Method,
		Status:        payment.Status,
		Reference:     payment.Reference,
		PaidAt:        payment.PaidAt,
		CreatedAt:     payment.CreatedAt,
	}
}

// FromModels maps a payment slice, keeping order.
func FromModels(list []models.Payment) []*PaymentDTO {
	out := make([]*PaymentDTO, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
