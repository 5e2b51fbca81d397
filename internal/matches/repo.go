package matches

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
)

// Repository handles match persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, match *models.Match) error
	Update(ctx context.Context, match *models.Match) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Match, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Match, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a match repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, match *models.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *repository) Update(ctx context.Context, match *models.Match) error {
	return r.db.WithContext(ctx).Save(match).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var match models.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&match).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *repository) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	if err := r.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		Order("scheduled_at ASC").
		Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *repository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	if err := r.db.WithContext(ctx).
		Where("home_team_id = ? OR away_team_id = ?", teamID, teamID).
		Order("scheduled_at ASC").
		Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}
