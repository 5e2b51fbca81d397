package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/oyugibear/bofa-backend/pkg/enums"
)

// Field is a bookable pitch or court at the facility.
type Field struct {
	ID              uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string             `gorm:"column:name;type:text;not null;uniqueIndex"`
	Description     *string            `gorm:"column:description;type:text"`
	Surface         enums.FieldSurface `gorm:"column:surface;type:field_surface;not null;default:'grass'"`
	Capacity        int                `gorm:"column:capacity;not null;default:0"`
	HourlyRateCents int                `gorm:"column:hourly_rate_cents;not null"`
	Amenities       pq.StringArray     `gorm:"column:amenities;type:text[]"`
	IsActive        bool               `gorm:"column:is_active;not null;default:true"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
