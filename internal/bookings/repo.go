package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
)

// Repository handles booking persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	ListByField(ctx context.Context, fieldID uuid.UUID, from, to time.Time) ([]models.Booking, error)
	CountOverlapping(ctx context.Context, fieldID uuid.UUID, startsAt, endsAt time.Time) (int64, error)
	ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.Booking, error)
	ListConfirmedStartingBetween(ctx context.Context, from, to time.Time, limit int) ([]models.Booking, error)
	MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a booking repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) Update(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Where("id = ?", id).
		First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Where("user_id = ?", userID).
		Order("starts_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ListByField(ctx context.Context, fieldID uuid.UUID, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("field_id = ?", fieldID).
		Where("starts_at < ? AND ends_at > ?", to, from).
		Order("starts_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountOverlapping counts slot-holding bookings that intersect the window.
// Cancelled and expired bookings release their slot.
func (r *repository) CountOverlapping(ctx context.Context, fieldID uuid.UUID, startsAt, endsAt time.Time) (int64, error) {
	holding := []enums.BookingStatus{enums.BookingStatusPending, enums.BookingStatusConfirmed}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("field_id = ?", fieldID).
		Where("status IN (?)", holding).
		Where("starts_at < ? AND ends_at > ?", endsAt, startsAt).
		Count(&count).Error
	return count, err
}

func (r *repository) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 250
	}
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("status = ?", enums.BookingStatusPending).
		Where("created_at < ?", cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ListConfirmedStartingBetween(ctx context.Context, from, to time.Time, limit int) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 250
	}
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Where("status = ?", enums.BookingStatusConfirmed).
		Where("reminded_at IS NULL").
		Where("starts_at >= ? AND starts_at < ?", from, to).
		Order("starts_at ASC").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("reminded_at", at).Error
}
