package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/pkg/enums"
)

// Match is a recorded league fixture. Fixtures are entered by staff; the
// platform does not generate them.
type Match struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	LeagueID    uuid.UUID         `gorm:"column:league_id;type:uuid;not null;index"`
	HomeTeamID  uuid.UUID         `gorm:"column:home_team_id;type:uuid;not null"`
	AwayTeamID  uuid.UUID         `gorm:"column:away_team_id;type:uuid;not null"`
	FieldID     *uuid.UUID        `gorm:"column:field_id;type:uuid"`
	ScheduledAt time.Time         `gorm:"column:scheduled_at;not null"`
	Status      enums.MatchStatus `gorm:"column:status;type:match_status;not null;default:'scheduled'"`
	HomeScore   *int              `gorm:"column:home_score"`
	AwayScore   *int              `gorm:"column:away_score"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
