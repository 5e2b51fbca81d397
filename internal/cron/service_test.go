package cron

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/logger"
	"go.uber.org/multierr"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "cron-test", Output: io.Discard})
}

type stubJob struct {
	name string
	runs int
	err  error
}

func (j *stubJob) Name() string { return j.name }
func (j *stubJob) Run(ctx context.Context) error {
	j.runs++
	return j.err
}

type stubLock struct {
	held     bool
	acquires int
	releases int
}

func (l *stubLock) Acquire(ctx context.Context) (bool, error) {
	l.acquires++
	return !l.held, nil
}

func (l *stubLock) Release(ctx context.Context) error {
	l.releases++
	return nil
}

func TestRegistryKeepsOrderAndSkipsNil(t *testing.T) {
	a := &stubJob{name: "a"}
	b := &stubJob{name: "b"}
	registry := NewRegistry(a, nil, b)
	registry.Register(nil)

	jobs := registry.Jobs()
	if len(jobs) != 2 || jobs[0].Name() != "a" || jobs[1].Name() != "b" {
		t.Fatalf("unexpected jobs: %v", jobs)
	}
}

func TestRunCycleRunsAllJobs(t *testing.T) {
	a := &stubJob{name: "a"}
	b := &stubJob{name: "b", err: errors.New("boom")}
	lock := &stubLock{}
	svc, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(a, b),
		Lock:     lock,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if err := svc.runCycle(context.Background()); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if a.runs != 1 || b.runs != 1 {
		t.Fatalf("expected both jobs to run, got a=%d b=%d", a.runs, b.runs)
	}
	if lock.releases != 1 {
		t.Fatal("lock must be released after the cycle")
	}
}

func TestRunCycleSkipsWhenLocked(t *testing.T) {
	a := &stubJob{name: "a"}
	svc, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(a),
		Lock:     &stubLock{held: true},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if err := svc.runCycle(context.Background()); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if a.runs != 0 {
		t.Fatal("jobs must not run without the lock")
	}
}

type stubExpirer struct {
	expired int
	err     error
}

func (s *stubExpirer) ExpireStaleHolds(ctx context.Context, now time.Time) (int, error) {
	return s.expired, s.err
}

func TestBookingExpiryJob(t *testing.T) {
	job, err := NewBookingExpiryJob(BookingExpiryJobParams{
		Logger:   testLogger(),
		Bookings: &stubExpirer{expired: 3},
	})
	if err != nil {
		t.Fatalf("new job: %v", err)
	}
	if job.Name() != "booking_expiry" {
		t.Fatalf("name = %q", job.Name())
	}
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	job, _ = NewBookingExpiryJob(BookingExpiryJobParams{
		Logger:   testLogger(),
		Bookings: &stubExpirer{err: errors.New("db down")},
	})
	if err := job.Run(context.Background()); err == nil {
		t.Fatal("expected run failure when the sweep fails")
	}
}

type stubReminders struct {
	due      []models.Booking
	marked   []uuid.UUID
	markErrs map[uuid.UUID]error
}

func (s *stubReminders) DueReminders(ctx context.Context, now time.Time) ([]models.Booking, error) {
	return s.due, nil
}

func (s *stubReminders) MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error {
	if err := s.markErrs[id]; err != nil {
		return err
	}
	s.marked = append(s.marked, id)
	return nil
}

type stubNotifier struct {
	sent    []uuid.UUID
	failFor map[uuid.UUID]error
}

func (s *stubNotifier) SendBookingReminder(ctx context.Context, booking models.Booking) error {
	if err := s.failFor[booking.ID]; err != nil {
		return err
	}
	s.sent = append(s.sent, booking.ID)
	return nil
}

func TestBookingReminderJobContinuesPastFailures(t *testing.T) {
	ok1 := models.Booking{ID: uuid.New()}
	broken := models.Booking{ID: uuid.New()}
	ok2 := models.Booking{ID: uuid.New()}

	source := &stubReminders{due: []models.Booking{ok1, broken, ok2}}
	notifier := &stubNotifier{failFor: map[uuid.UUID]error{broken.ID: errors.New("smtp down")}}

	job, err := NewBookingReminderJob(BookingReminderJobParams{
		Logger:   testLogger(),
		Bookings: source,
		Notifier: notifier,
	})
	if err != nil {
		t.Fatalf("new job: %v", err)
	}

	runErr := job.Run(context.Background())
	if runErr == nil {
		t.Fatal("expected an aggregated error")
	}
	if len(multierr.Errors(runErr)) != 1 {
		t.Fatalf("expected one failure, got %v", runErr)
	}
	if len(notifier.sent) != 2 {
		t.Fatalf("healthy reminders must still go out, sent=%d", len(notifier.sent))
	}
	if len(source.marked) != 2 {
		t.Fatalf("delivered reminders must be stamped, marked=%d", len(source.marked))
	}
}

func TestBookingReminderJobDefaultNotifierLogs(t *testing.T) {
	source := &stubReminders{due: []models.Booking{{ID: uuid.New(), UserID: uuid.New(), StartsAt: time.Now()}}}
	job, err := NewBookingReminderJob(BookingReminderJobParams{
		Logger:   testLogger(),
		Bookings: source,
	})
	if err != nil {
		t.Fatalf("new job: %v", err)
	}
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(source.marked) != 1 {
		t.Fatal("log-only delivery still counts as reminded")
	}
}
