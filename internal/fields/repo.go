package fields

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
)

// Repository handles field persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, field *models.Field) error
	Update(ctx context.Context, field *models.Field) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Field, error)
	List(ctx context.Context, params ListQuery) ([]models.Field, error)
}

// ListQuery configures field list queries.
type ListQuery struct {
	Surface     *enums.FieldSurface
	ActiveOnly  bool
	MinCapacity int
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a field repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, field *models.Field) error {
	return r.db.WithContext(ctx).Create(field).Error
}

func (r *repository) Update(ctx context.Context, field *models.Field) error {
	return r.db.WithContext(ctx).Save(field).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Field, error) {
	var field models.Field
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&field).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &field, nil
}

func (r *repository) List(ctx context.Context, params ListQuery) ([]models.Field, error) {
	query := r.db.WithContext(ctx).Model(&models.Field{}).Order("name ASC")
	if params.Surface != nil {
		query = query.Where("surface = ?", *params.Surface)
	}
	if params.ActiveOnly {
		query = query.Where("is_active")
	}
	if params.MinCapacity > 0 {
		query = query.Where("capacity >= ?", params.MinCapacity)
	}
	var fields []models.Field
	if err := query.Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}
