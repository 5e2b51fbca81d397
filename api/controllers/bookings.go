package controllers

import (
	"net/http"
	"time"

	"github.com/oyugibear/bofa-backend/api/responses"
	"github.com/oyugibear/bofa-backend/api/validators"
	bookingsvc "github.com/oyugibear/bofa-backend/internal/bookings"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
	"github.com/oyugibear/bofa-backend/pkg/logger"
)

type createBookingRequest struct {
	FieldID  string  `json:"field_id" validate:"required"`
	StartsAt string  `json:"starts_at" validate:"required"`
	EndsAt   string  `json:"ends_at" validate:"required"`
	Notes    *string `json:"notes,omitempty"`
}

// BookingCreate places a pending hold on a field slot for the caller.
func BookingCreate(svc *bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, _, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload createBookingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		fieldID, err := parseUUIDField(payload.FieldID, "field_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		startsAt, err := parseTimeField(payload.StartsAt, "starts_at")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		endsAt, err := parseTimeField(payload.EndsAt, "ends_at")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Create(r.Context(), bookingsvc.CreateInput{
			FieldID:  fieldID,
			UserID:   actorID,
			StartsAt: startsAt,
			EndsAt:   endsAt,
			Notes:    payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, booking)
	}
}

// BookingGet returns one booking. Customers only see their own.
func BookingGet(svc *bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, role, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "bookingID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if role == enums.MemberRoleCustomer && booking.UserID != actorID {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "booking belongs to another user"))
			return
		}
		responses.WriteSuccess(w, booking)
	}
}

// BookingsListMine returns the caller's bookings, newest first.
func BookingsListMine(svc *bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, _, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bookings, err := svc.ListForUser(r.Context(), actorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bookings)
	}
}

// FieldSchedule lists a field's bookings inside a window, for availability
// views. Defaults to the next seven days.
func FieldSchedule(svc *bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldID, err := pathUUID(r, "fieldID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		now := time.Now().UTC()
		from, err := validators.ParseQueryTime(r, "from", now)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		to, err := validators.ParseQueryTime(r, "to", from.Add(7*24*time.Hour))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bookings, err := svc.ListForField(r.Context(), fieldID, from, to)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bookings)
	}
}

// StaffConfirmBooking moves a pending hold to confirmed.
func StaffConfirmBooking(svc *bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "bookingID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Confirm(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, booking)
	}
}

// BookingCancel cancels a booking. Ownership and cutoff rules live in the
// service.
func BookingCancel(svc *bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, role, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "bookingID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Cancel(r.Context(), id, actorID, role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, booking)
	}
}
