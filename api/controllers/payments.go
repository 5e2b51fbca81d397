package controllers

import (
	"net/http"
	"strings"

	"github.com/oyugibear/bofa-backend/api/responses"
	"github.com/oyugibear/bofa-backend/api/validators"
	paymentsvc "github.com/oyugibear/bofa-backend/internal/payments"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
	"github.com/oyugibear/bofa-backend/pkg/logger"
)

type recordPaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Method    string  `json:"method" validate:"required"`
	Reference *string `json:"reference,omitempty"`
}

// PaymentRecord settles a pending booking in full and confirms it.
func PaymentRecord(svc *paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, _, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload recordPaymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bookingID, err := parseUUIDField(payload.BookingID, "booking_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParsePaymentMethod(strings.TrimSpace(payload.Method))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid method"))
			return
		}

		payment, err := svc.Record(r.Context(), paymentsvc.RecordInput{
			BookingID: bookingID,
			UserID:    actorID,
			Method:    method,
			Reference: payload.Reference,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, paymentsvc.FromModel(payment))
	}
}

// PaymentGet returns one payment. Customers only see their own.
func PaymentGet(svc *paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, role, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "paymentID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payment, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if role == enums.MemberRoleCustomer && payment.UserID != actorID {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "payment belongs to another user"))
			return
		}
		responses.WriteSuccess(w, paymentsvc.FromModel(payment))
	}
}

// PaymentsListMine returns the caller's payment history.
func PaymentsListMine(svc *paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, _, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payments, err := svc.ListForUser(r.Context(), actorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, paymentsvc.FromModels(payments))
	}
}

// AdminRefundPayment reverses a paid payment.
func AdminRefundPayment(svc *paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "paymentID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payment, err := svc.Refund(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, paymentsvc.FromModel(payment))
	}
}
