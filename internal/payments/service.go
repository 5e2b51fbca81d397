package payments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oyugibear/bofa-backend/pkg/db"
	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
)

type bookingService interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	Confirm(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}

// ServiceParams groups dependencies for the payment service.
type ServiceParams struct {
	Repo     Repository
	Bookings bookingService
}

// Service records money collected against bookings. Settling a payment in
// full confirms the booking it covers.
type Service struct {
	repo     Repository
	bookings bookingService
}

// NewService builds a payment service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	if params.Bookings == nil {
		return nil, errors.New("booking service is required")
	}
	return &Service{repo: params.Repo, bookings: params.Bookings}, nil
}

// RecordInput captures an off-platform payment outcome.
type RecordInput struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	Method    enums.PaymentMethod
	Reference *string
}

// Record books a paid payment for the booking's full amount and confirms
// the booking. The reference deduplicates gateway callbacks.
func (s *Service) Record(ctx context.Context, input RecordInput) (*models.Payment, error) {
	if !input.Method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}
	if input.Reference != nil && strings.TrimSpace(*input.Reference) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reference cannot be blank")
	}

	booking, err := s.bookings.Get(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != enums.BookingStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "booking is not awaiting payment")
	}

	now := time.Now().UTC()
	payment := &models.Payment{
		BookingID:   booking.ID,
		UserID:      input.UserID,
		AmountCents: booking.AmountCents,
		Method:      input.Method,
		Status:      enums.PaymentStatusPaid,
		Reference:   input.Reference,
		PaidAt:      &now,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "payment reference already recorded")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recording payment")
	}

	if _, err := s.bookings.Confirm(ctx, booking.ID); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up payment")
	}
	if payment == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment not found")
	}
	return payment, nil
}

func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Payment, error) {
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing payments")
	}
	return out, nil
}

// Refund reverses a paid payment. The booking is not reopened; the slot
// went back to the pool when the booking was cancelled.
func (s *Service) Refund(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status != enums.PaymentStatusPaid {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only paid payments can be refunded")
	}
	payment.Status = enums.PaymentStatusRefunded
	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "refunding payment")
	}
	return payment, nil
}

// DisplayAmount renders cents as a major-unit string, e.g. 9050 -> "90.50".
func DisplayAmount(cents int) string {
	return decimal.NewFromInt(int64(cents)).Div(decimal.NewFromInt(100)).StringFixed(2)
}
