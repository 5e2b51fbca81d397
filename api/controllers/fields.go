package controllers

import (
	"net/http"
	"strings"

	"github.com/oyugibear/bofa-backend/api/responses"
	"github.com/oyugibear/bofa-backend/api/validators"
	fieldsvc "github.com/oyugibear/bofa-backend/internal/fields"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
	"github.com/oyugibear/bofa-backend/pkg/logger"
)

// FieldsList is the public field catalogue. Filters are optional: surface,
// active=true, min_capacity.
func FieldsList(svc *fieldsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := fieldsvc.ListQuery{
			ActiveOnly: r.URL.Query().Get("active") == "true",
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("surface")); raw != "" {
			surface, err := enums.ParseFieldSurface(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid surface"))
				return
			}
			query.Surface = &surface
		}

		minCapacity, err := validators.ParseQueryInt(r, "min_capacity", 0, 0, 10000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		query.MinCapacity = minCapacity

		fields, err := svc.List(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, fields)
	}
}

func FieldGet(svc *fieldsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "fieldID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		field, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, field)
	}
}

type createFieldRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     *string  `json:"description,omitempty"`
	Surface         string   `json:"surface" validate:"required"`
	Capacity        int      `json:"capacity" validate:"required,min=1"`
	HourlyRateCents int      `json:"hourly_rate_cents" validate:"required,min=1"`
	Amenities       []string `json:"amenities,omitempty"`
}

// StaffCreateField registers a new bookable field.
func StaffCreateField(svc *fieldsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createFieldRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		surface, err := enums.ParseFieldSurface(strings.TrimSpace(payload.Surface))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid surface"))
			return
		}

		field, err := svc.Create(r.Context(), fieldsvc.CreateInput{
			Name:            strings.TrimSpace(payload.Name),
			Description:     payload.Description,
			Surface:         surface,
			Capacity:        payload.Capacity,
			HourlyRateCents: payload.HourlyRateCents,
			Amenities:       payload.Amenities,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, field)
	}
}

type updateFieldRequest struct {
	Description     *string  `json:"description,omitempty"`
	Capacity        *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	HourlyRateCents *int     `json:"hourly_rate_cents,omitempty" validate:"omitempty,min=1"`
	Amenities       []string `json:"amenities,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

// StaffUpdateField patches field attributes; absent fields stay untouched.
func StaffUpdateField(svc *fieldsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "fieldID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateFieldRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		field, err := svc.Update(r.Context(), id, fieldsvc.UpdateInput{
			Description:     payload.Description,
			Capacity:        payload.Capacity,
			HourlyRateCents: payload.HourlyRateCents,
			Amenities:       payload.Amenities,
			IsActive:        payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, field)
	}
}
