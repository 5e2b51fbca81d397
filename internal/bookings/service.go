package bookings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oyugibear/bofa-backend/pkg/config"
	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
)

const (
	minSlot = 30 * time.Minute
	maxSlot = 4 * time.Hour
)

type fieldGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Field, error)
}

// ServiceParams groups dependencies for the booking service.
type ServiceParams struct {
	Repo   Repository
	Fields fieldGetter
	Config config.BookingConfig
}

// Service owns the booking lifecycle: hold, confirm, cancel, expire.
type Service struct {
	repo   Repository
	fields fieldGetter
	cfg    config.BookingConfig
}

// NewService builds a booking service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	if params.Fields == nil {
		return nil, errors.New("field service is required")
	}
	return &Service{repo: params.Repo, fields: params.Fields, cfg: params.Config}, nil
}

// CreateInput describes the requested slot.
type CreateInput struct {
	FieldID  uuid.UUID
	UserID   uuid.UUID
	StartsAt time.Time
	EndsAt   time.Time
	Notes    *string
}

// Create places a pending hold on the slot. The hold survives for the
// configured window; the cron worker expires unpaid holds after that.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Booking, error) {
	if err := validateWindow(input.StartsAt, input.EndsAt); err != nil {
		return nil, err
	}

	field, err := s.fields.Get(ctx, input.FieldID)
	if err != nil {
		return nil, err
	}
	if !field.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "field is not bookable")
	}

	overlapping, err := s.repo.CountOverlapping(ctx, input.FieldID, input.StartsAt, input.EndsAt)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking slot availability")
	}
	if overlapping > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "slot already booked")
	}

	booking := &models.Booking{
		FieldID:     input.FieldID,
		UserID:      input.UserID,
		StartsAt:    input.StartsAt.UTC(),
		EndsAt:      input.EndsAt.UTC(),
		Status:      enums.BookingStatusPending,
		AmountCents: QuoteCents(field.HourlyRateCents, input.StartsAt, input.EndsAt),
		Notes:       input.Notes,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating booking")
	}
	return booking, nil
}

// QuoteCents prices a slot: hourly rate prorated to the exact duration,
// rounded half-up to whole cents.
func QuoteCents(hourlyRateCents int, startsAt, endsAt time.Time) int {
	minutes := int64(endsAt.Sub(startsAt) / time.Minute)
	amount := decimal.NewFromInt(int64(hourlyRateCents)).
		Mul(decimal.NewFromInt(minutes)).
		Div(decimal.NewFromInt(60)).
		Round(0)
	return int(amount.IntPart())
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up booking")
	}
	if booking == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
	}
	return booking, nil
}

func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing bookings")
	}
	return out, nil
}

// ListForField returns the bookings intersecting the window, for the
// availability calendar.
func (s *Service) ListForField(ctx context.Context, fieldID uuid.UUID, from, to time.Time) ([]models.Booking, error) {
	if !to.After(from) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "window end must follow start")
	}
	out, err := s.repo.ListByField(ctx, fieldID, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing field bookings")
	}
	return out, nil
}

// Confirm moves a pending booking to confirmed, normally on payment.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != enums.BookingStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only pending bookings can be confirmed")
	}
	booking.Status = enums.BookingStatusConfirmed
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "confirming booking")
	}
	return booking, nil
}

// Cancel releases the slot. Terminal bookings and slots already under way
// stay as they are.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole enums.MemberRole) (*models.Booking, error) {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole == enums.MemberRoleCustomer && booking.UserID != actorID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "not your booking")
	}
	if booking.Status.IsTerminal() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "booking already settled")
	}
	if time.Now().UTC().After(booking.StartsAt) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "booking already under way")
	}
	booking.Status = enums.BookingStatusCancelled
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cancelling booking")
	}
	return booking, nil
}

// ExpireStaleHolds flips pending bookings older than the hold window to
// expired. Returns how many were released.
func (s *Service) ExpireStaleHolds(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-s.cfg.HoldWindow)
	stale, err := s.repo.ListPendingCreatedBefore(ctx, cutoff, 0)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing stale holds")
	}
	expired := 0
	for i := range stale {
		stale[i].Status = enums.BookingStatusExpired
		if err := s.repo.Update(ctx, &stale[i]); err != nil {
			return expired, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "expiring booking")
		}
		expired++
	}
	return expired, nil
}

// DueReminders returns confirmed bookings starting within the reminder
// window that have not been reminded yet.
func (s *Service) DueReminders(ctx context.Context, now time.Time) ([]models.Booking, error) {
	out, err := s.repo.ListConfirmedStartingBetween(ctx, now, now.Add(s.cfg.ReminderWindow), 0)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing due reminders")
	}
	return out, nil
}

// MarkReminded stamps the booking after its reminder went out.
func (s *Service) MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error {
	if err := s.repo.MarkReminded(ctx, id, at); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marking reminded")
	}
	return nil
}

func validateWindow(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() || endsAt.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "start and end are required")
	}
	if !endsAt.After(startsAt) {
		return pkgerrors.New(pkgerrors.CodeValidation, "end must follow start")
	}
	if startsAt.Before(time.Now().UTC()) {
		return pkgerrors.New(pkgerrors.CodeValidation, "slot is in the past")
	}
	duration := endsAt.Sub(startsAt)
	if duration < minSlot {
		return pkgerrors.New(pkgerrors.CodeValidation, "slot shorter than 30 minutes")
	}
	if duration > maxSlot {
		return pkgerrors.New(pkgerrors.CodeValidation, "slot longer than 4 hours")
	}
	return nil
}
