package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/pkg/enums"
)

// League is a season-scoped competition hosted at the facility.
type League struct {
	ID                   uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name                 string             `gorm:"column:name;type:text;not null;uniqueIndex"`
	Season               string             `gorm:"column:season;type:text;not null"`
	Status               enums.LeagueStatus `gorm:"column:status;type:league_status;not null;default:'registration'"`
	MaxTeams             int                `gorm:"column:max_teams;not null;default:12"`
	RegistrationFeeCents int                `gorm:"column:registration_fee_cents;not null;default:0"`
	StartsOn             *time.Time         `gorm:"column:starts_on"`
	EndsOn               *time.Time         `gorm:"column:ends_on"`
	Teams                []Team             `gorm:"foreignKey:LeagueID"`
	CreatedAt            time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
