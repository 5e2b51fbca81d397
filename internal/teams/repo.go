package teams

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
)

// Repository handles team persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error)
	ListByCaptain(ctx context.Context, captainID uuid.UUID) ([]models.Team, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a team repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *repository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *repository) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		Order("name ASC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *repository) ListByCaptain(ctx context.Context, captainID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.WithContext(ctx).
		Where("captain_id = ?", captainID).
		Order("created_at DESC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}
