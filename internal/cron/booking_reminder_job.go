package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/logger"
)

type reminderSource interface {
	DueReminders(ctx context.Context, now time.Time) ([]models.Booking, error)
	MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Notifier delivers a kickoff reminder for one booking. The default
// implementation just logs; a mail or SMS sender can slot in here.
type Notifier interface {
	SendBookingReminder(ctx context.Context, booking models.Booking) error
}

// BookingReminderJobParams configure the kickoff reminder job.
type BookingReminderJobParams struct {
	Logger   *logger.Logger
	Bookings reminderSource
	Notifier Notifier
}

// NewBookingReminderJob builds the cron job that reminds customers shortly
// before their confirmed slot starts.
func NewBookingReminderJob(params BookingReminderJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Bookings == nil {
		return nil, fmt.Errorf("booking service required")
	}
	notifier := params.Notifier
	if notifier == nil {
		notifier = &logNotifier{logg: params.Logger}
	}
	return &bookingReminderJob{
		logg:     params.Logger,
		bookings: params.Bookings,
		notifier: notifier,
		now:      time.Now,
	}, nil
}

type bookingReminderJob struct {
	logg     *logger.Logger
	bookings reminderSource
	notifier Notifier
	now      func() time.Time
}

func (j *bookingReminderJob) Name() string { return "booking_reminder" }

// Run sends each due reminder independently; one failed delivery does not
// hold the rest of the batch back.
func (j *bookingReminderJob) Run(ctx context.Context) error {
	now := j.now().UTC()
	due, err := j.bookings.DueReminders(ctx, now)
	if err != nil {
		return fmt.Errorf("list due reminders: %w", err)
	}

	var errs error
	for _, booking := range due {
		if err := j.notifier.SendBookingReminder(ctx, booking); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("remind booking %s: %w", booking.ID, err))
			continue
		}
		if err := j.bookings.MarkReminded(ctx, booking.ID, now); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("mark booking %s reminded: %w", booking.ID, err))
		}
	}
	return errs
}

type logNotifier struct {
	logg *logger.Logger
}

func (n *logNotifier) SendBookingReminder(ctx context.Context, booking models.Booking) error {
	fields := map[string]any{
		"booking_id": booking.ID.String(),
		"user_id":    booking.UserID.String(),
		"starts_at":  booking.StartsAt.Format(time.RFC3339),
	}
	n.logg.Info(n.logg.WithFields(ctx, fields), "booking reminder due")
	return nil
}
