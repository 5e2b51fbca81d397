package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/pkg/enums"
)

// Booking reserves a field slot for a user.
type Booking struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	FieldID     uuid.UUID           `gorm:"column:field_id;type:uuid;not null;index"`
	UserID      uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	StartsAt    time.Time           `gorm:"column:starts_at;not null"`
	EndsAt      time.Time           `gorm:"column:ends_at;not null"`
	Status      enums.BookingStatus `gorm:"column:status;type:booking_status;not null;default:'pending'"`
	AmountCents int                 `gorm:"column:amount_cents;not null;default:0"`
	Notes       *string             `gorm:"column:notes;type:text"`
	RemindedAt  *time.Time          `gorm:"column:reminded_at"`
	Field       *Field              `gorm:"foreignKey:FieldID"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
