package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/pkg/enums"
)

// Payment is a bookkeeping record of money collected against a booking.
// Gateway processing happens outside this system; only the outcome lands here.
type Payment struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BookingID   uuid.UUID           `gorm:"column:booking_id;type:uuid;not null;index"`
	UserID      uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	AmountCents int                 `gorm:"column:amount_cents;not null"`
	Method      enums.PaymentMethod `gorm:"column:method;type:payment_method;not null"`
	Status      enums.PaymentStatus `gorm:"column:status;type:payment_status;not null;default:'pending'"`
	Reference   *string             `gorm:"column:reference;type:text;uniqueIndex"`
	PaidAt      *time.Time          `gorm:"column:paid_at"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
