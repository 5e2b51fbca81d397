package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oyugibear/bofa-backend/pkg/config"
	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
)

type stubRepo struct {
	byID        map[uuid.UUID]*models.Booking
	overlapping int64
	created     []*models.Booking
	updated     []*models.Booking
	pending     []models.Booking
	reminded    []uuid.UUID
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }
func (s *stubRepo) Create(ctx context.Context, b *models.Booking) error {
	s.created = append(s.created, b)
	return nil
}
func (s *stubRepo) Update(ctx context.Context, b *models.Booking) error {
	s.updated = append(s.updated, b)
	return nil
}
func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.byID[id], nil
}
func (s *stubRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubRepo) ListByField(ctx context.Context, fieldID uuid.UUID, from, to time.Time) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubRepo) CountOverlapping(ctx context.Context, fieldID uuid.UUID, startsAt, endsAt time.Time) (int64, error) {
	return s.overlapping, nil
}
func (s *stubRepo) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.Booking, error) {
	return s.pending, nil
}
func (s *stubRepo) ListConfirmedStartingBetween(ctx context.Context, from, to time.Time, limit int) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubRepo) MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.reminded = append(s.reminded, id)
	return nil
}

type stubFields struct {
	field *models.Field
}

func (s *stubFields) Get(ctx context.Context, id uuid.UUID) (*models.Field, error) {
	if s.field == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "field not found")
	}
	return s.field, nil
}

func activeField() *models.Field {
	return &models.Field{ID: uuid.New(), Name: "Arena 1", HourlyRateCents: 9000, IsActive: true}
}

func newTestService(t *testing.T, repo *stubRepo, f *models.Field) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:   repo,
		Fields: &stubFields{field: f},
		Config: config.BookingConfig{HoldWindow: 30 * time.Minute, ReminderWindow: 15 * time.Minute},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func futureSlot(d time.Duration) (time.Time, time.Time) {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)
	return start, start.Add(d)
}

func TestQuoteCents(t *testing.T) {
	cases := []struct {
		name     string
		rate     int
		duration time.Duration
		want     int
	}{
		{"one hour", 9000, time.Hour, 9000},
		{"ninety minutes", 9000, 90 * time.Minute, 13500},
		{"half hour", 9050, 30 * time.Minute, 4525},
		{"rounds to cents", 9999, 50 * time.Minute, 8333},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := time.Now()
			if got := QuoteCents(tc.rate, start, start.Add(tc.duration)); got != tc.want {
				t.Fatalf("QuoteCents = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCreatePricesTheSlot(t *testing.T) {
	repo := &stubRepo{}
	field := activeField()
	svc := newTestService(t, repo, field)

	start, end := futureSlot(90 * time.Minute)
	booking, err := svc.Create(context.Background(), CreateInput{
		FieldID: field.ID, UserID: uuid.New(), StartsAt: start, EndsAt: end,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if booking.Status != enums.BookingStatusPending {
		t.Fatalf("new bookings must start pending, got %s", booking.Status)
	}
	if booking.AmountCents != 13500 {
		t.Fatalf("amount = %d, want 13500", booking.AmountCents)
	}
}

func TestCreateRejectsBadWindows(t *testing.T) {
	svc := newTestService(t, &stubRepo{}, activeField())
	now := time.Now().UTC()

	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"past slot", now.Add(-2 * time.Hour), now.Add(-time.Hour)},
		{"inverted", now.Add(2 * time.Hour), now.Add(time.Hour)},
		{"too short", now.Add(time.Hour), now.Add(time.Hour + 10*time.Minute)},
		{"too long", now.Add(time.Hour), now.Add(6 * time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), CreateInput{
				FieldID: uuid.New(), UserID: uuid.New(), StartsAt: tc.start, EndsAt: tc.end,
			})
			if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateRejectsTakenSlot(t *testing.T) {
	repo := &stubRepo{overlapping: 1}
	field := activeField()
	svc := newTestService(t, repo, field)

	start, end := futureSlot(time.Hour)
	_, err := svc.Create(context.Background(), CreateInput{
		FieldID: field.ID, UserID: uuid.New(), StartsAt: start, EndsAt: end,
	})
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("conflicting slot must not insert")
	}
}

func TestCreateRejectsInactiveField(t *testing.T) {
	field := activeField()
	field.IsActive = false
	svc := newTestService(t, &stubRepo{}, field)

	start, end := futureSlot(time.Hour)
	_, err := svc.Create(context.Background(), CreateInput{
		FieldID: field.ID, UserID: uuid.New(), StartsAt: start, EndsAt: end,
	})
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestConfirmOnlyFromPending(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.Booking{
		id: {ID: id, Status: enums.BookingStatusCancelled},
	}}
	svc := newTestService(t, repo, activeField())

	_, err := svc.Confirm(context.Background(), id)
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestCancelOwnership(t *testing.T) {
	owner := uuid.New()
	start, _ := futureSlot(time.Hour)
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.Booking{
		id: {ID: id, UserID: owner, Status: enums.BookingStatusConfirmed, StartsAt: start},
	}}
	svc := newTestService(t, repo, activeField())

	_, err := svc.Cancel(context.Background(), id, uuid.New(), enums.MemberRoleCustomer)
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden for a stranger, got %v", err)
	}

	got, err := svc.Cancel(context.Background(), id, uuid.New(), enums.MemberRoleStaff)
	if err != nil {
		t.Fatalf("staff cancel: %v", err)
	}
	if got.Status != enums.BookingStatusCancelled {
		t.Fatalf("status = %s, want cancelled", got.Status)
	}
}

func TestExpireStaleHolds(t *testing.T) {
	repo := &stubRepo{pending: []models.Booking{
		{ID: uuid.New(), Status: enums.BookingStatusPending},
		{ID: uuid.New(), Status: enums.BookingStatusPending},
	}}
	svc := newTestService(t, repo, activeField())

	n, err := svc.ExpireStaleHolds(context.Background(), time.Now().UTC())
	if err != nil {
		t.Fatalf("expire: %v", err)
	}
	if n != 2 || len(repo.updated) != 2 {
		t.Fatalf("expected 2 expiries, got n=%d updates=%d", n, len(repo.updated))
	}
	for _, b := range repo.updated {
		if b.Status != enums.BookingStatusExpired {
			t.Fatalf("status = %s, want expired", b.Status)
		}
	}
}
