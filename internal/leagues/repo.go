package leagues

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
)

// Repository handles league persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, league *models.League) error
	Update(ctx context.Context, league *models.League) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.League, error)
	List(ctx context.Context, status *enums.LeagueStatus) ([]models.League, error)
	CountTeams(ctx context.Context, leagueID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a league repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, league *models.League) error {
	return r.db.WithContext(ctx).Create(league).Error
}

func (r *repository) Update(ctx context.Context, league *models.League) error {
	return r.db.WithContext(ctx).Save(league).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.League, error) {
	var league models.League
	if err := r.db.WithContext(ctx).
		Preload("Teams").
		Where("id = ?", id).
		First(&league).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &league, nil
}

func (r *repository) List(ctx context.Context, status *enums.LeagueStatus) ([]models.League, error) {
	query := r.db.WithContext(ctx).Model(&models.League{}).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var leagues []models.League
	if err := query.Find(&leagues).Error; err != nil {
		return nil, err
	}
	return leagues, nil
}

func (r *repository) CountTeams(ctx context.Context, leagueID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Where("league_id = ?", leagueID).
		Count(&count).Error
	return count, err
}
