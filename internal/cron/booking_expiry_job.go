package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/oyugibear/bofa-backend/pkg/logger"
)

type holdExpirer interface {
	ExpireStaleHolds(ctx context.Context, now time.Time) (int, error)
}

// BookingExpiryJobParams configure the stale-hold sweeper.
type BookingExpiryJobParams struct {
	Logger   *logger.Logger
	Bookings holdExpirer
}

// NewBookingExpiryJob builds the cron job that releases unpaid booking
// holds back to the pool.
func NewBookingExpiryJob(params BookingExpiryJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Bookings == nil {
		return nil, fmt.Errorf("booking service required")
	}
	return &bookingExpiryJob{
		logg:     params.Logger,
		bookings: params.Bookings,
		now:      time.Now,
	}, nil
}

type bookingExpiryJob struct {
	logg     *logger.Logger
	bookings holdExpirer
	now      func() time.Time
}

func (j *bookingExpiryJob) Name() string { return "booking_expiry" }

func (j *bookingExpiryJob) Run(ctx context.Context) error {
	expired, err := j.bookings.ExpireStaleHolds(ctx, j.now().UTC())
	if err != nil {
		return fmt.Errorf("expire stale holds: %w", err)
	}
	if expired > 0 {
		j.logg.Info(j.logg.WithField(ctx, "expired", expired), "released stale booking holds")
	}
	return nil
}
