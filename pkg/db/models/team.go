package models

import (
	"time"

	"github.com/google/uuid"
)

// Team belongs to a league and is managed by a captain user.
type Team struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	LeagueID   uuid.UUID `gorm:"column:league_id;type:uuid;not null;index"`
	CaptainID  uuid.UUID `gorm:"column:captain_id;type:uuid;not null"`
	Name       string    `gorm:"column:name;type:text;not null"`
	RosterSize int       `gorm:"column:roster_size;not null;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
