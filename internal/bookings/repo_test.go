package bookings

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
)

func setupBookingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	fields := `
CREATE TABLE IF NOT EXISTS fields (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  surface TEXT NOT NULL,
  capacity INTEGER NOT NULL DEFAULT 0,
  hourly_rate_cents INTEGER NOT NULL,
  amenities TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	bookings := `
CREATE TABLE IF NOT EXISTS bookings (
  id TEXT PRIMARY KEY,
  field_id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  starts_at DATETIME NOT NULL,
  ends_at DATETIME NOT NULL,
  status TEXT NOT NULL,
  amount_cents INTEGER NOT NULL DEFAULT 0,
  notes TEXT,
  reminded_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(fields).Error)
	require.NoError(t, db.Exec(bookings).Error)
	return db
}

func newField(t *testing.T, db *gorm.DB, name string) *models.Field {
	t.Helper()

	field := &models.Field{
		ID:              uuid.New(),
		Name:            name,
		Surface:         enums.FieldSurfaceGrass,
		Capacity:        10,
		HourlyRateCents: 150000,
		IsActive:        true,
	}
	require.NoError(t, db.Create(field).Error)
	return field
}

func createBooking(t *testing.T, db *gorm.DB, field *models.Field, status enums.BookingStatus, startsAt, endsAt, createdAt time.Time) *models.Booking {
	t.Helper()

	booking := &models.Booking{
		ID:          uuid.New(),
		FieldID:     field.ID,
		UserID:      uuid.New(),
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		Status:      status,
		AmountCents: 150000,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func TestCountOverlappingIgnoresReleasedSlots(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)
	field := newField(t, db, "Pitch 1")

	base := time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC)
	createBooking(t, db, field, enums.BookingStatusPending, base, base.Add(time.Hour), base.Add(-time.Hour))
	createBooking(t, db, field, enums.BookingStatusConfirmed, base.Add(30*time.Minute), base.Add(90*time.Minute), base.Add(-time.Hour))
	createBooking(t, db, field, enums.BookingStatusCancelled, base, base.Add(time.Hour), base.Add(-time.Hour))
	createBooking(t, db, field, enums.BookingStatusExpired, base, base.Add(time.Hour), base.Add(-time.Hour))

	count, err := repo.CountOverlapping(context.Background(), field.ID, base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// A slot that only touches the boundary does not overlap.
	count, err = repo.CountOverlapping(context.Background(), field.ID, base.Add(-time.Hour), base)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestFindByIDMissingReturnsNil(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)

	booking, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, booking)
}

func TestListByFieldWindow(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)
	field := newField(t, db, "Pitch 2")

	base := time.Date(2026, 9, 4, 8, 0, 0, 0, time.UTC)
	inWindow := createBooking(t, db, field, enums.BookingStatusConfirmed, base.Add(2*time.Hour), base.Add(3*time.Hour), base)
	createBooking(t, db, field, enums.BookingStatusConfirmed, base.Add(48*time.Hour), base.Add(49*time.Hour), base)

	listed, err := repo.ListByField(context.Background(), field.ID, base, base.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, inWindow.ID, listed[0].ID)
}

func TestListPendingCreatedBefore(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)
	field := newField(t, db, "Pitch 3")

	base := time.Date(2026, 9, 4, 8, 0, 0, 0, time.UTC)
	stale := createBooking(t, db, field, enums.BookingStatusPending, base.Add(4*time.Hour), base.Add(5*time.Hour), base.Add(-time.Hour))
	createBooking(t, db, field, enums.BookingStatusPending, base.Add(4*time.Hour), base.Add(5*time.Hour), base.Add(10*time.Minute))
	createBooking(t, db, field, enums.BookingStatusConfirmed, base.Add(4*time.Hour), base.Add(5*time.Hour), base.Add(-time.Hour))

	listed, err := repo.ListPendingCreatedBefore(context.Background(), base, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, stale.ID, listed[0].ID)
}

func TestListConfirmedStartingBetweenSkipsReminded(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)
	field := newField(t, db, "Pitch 4")

	base := time.Date(2026, 9, 4, 8, 0, 0, 0, time.UTC)
	due := createBooking(t, db, field, enums.BookingStatusConfirmed, base.Add(10*time.Minute), base.Add(70*time.Minute), base)
	alreadyReminded := createBooking(t, db, field, enums.BookingStatusConfirmed, base.Add(10*time.Minute), base.Add(70*time.Minute), base)
	require.NoError(t, repo.MarkReminded(context.Background(), alreadyReminded.ID, base))

	listed, err := repo.ListConfirmedStartingBetween(context.Background(), base, base.Add(15*time.Minute), 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, due.ID, listed[0].ID)

	require.NoError(t, repo.MarkReminded(context.Background(), due.ID, base))
	listed, err = repo.ListConfirmedStartingBetween(context.Background(), base, base.Add(15*time.Minute), 0)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
