package controllers

import (
	"net/http"
	"strings"

	"github.com/oyugibear/bofa-backend/api/responses"
	"github.com/oyugibear/bofa-backend/api/validators"
	leaguesvc "github.com/oyugibear/bofa-backend/internal/leagues"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
	"github.com/oyugibear/bofa-backend/pkg/logger"
)

// LeaguesList returns leagues, optionally filtered by lifecycle status.
func LeaguesList(svc *leaguesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var status *enums.LeagueStatus
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			parsed, err := enums.ParseLeagueStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
				return
			}
			status = &parsed
		}

		leagues, err := svc.List(r.Context(), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, leagues)
	}
}

func LeagueGet(svc *leaguesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "leagueID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		league, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, league)
	}
}

type createLeagueRequest struct {
	Name                 string  `json:"name" validate:"required"`
	Season               string  `json:"season" validate:"required"`
	MaxTeams             int     `json:"max_teams" validate:"required,min=2"`
	RegistrationFeeCents int     `json:"registration_fee_cents" validate:"omitempty,min=0"`
	StartsOn             *string `json:"starts_on,omitempty"`
	EndsOn               *string `json:"ends_on,omitempty"`
}

// StaffCreateLeague opens a new league for registration.
func StaffCreateLeague(svc *leaguesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createLeagueRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := leaguesvc.CreateInput{
			Name:                 strings.TrimSpace(payload.Name),
			Season:               strings.TrimSpace(payload.Season),
			MaxTeams:             payload.MaxTeams,
			RegistrationFeeCents: payload.RegistrationFeeCents,
		}
		if payload.StartsOn != nil {
			at, err := parseTimeField(*payload.StartsOn, "starts_on")
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.StartsOn = &at
		}
		if payload.EndsOn != nil {
			at, err := parseTimeField(*payload.EndsOn, "ends_on")
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.EndsOn = &at
		}

		league, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, league)
	}
}

// StaffAdvanceLeague moves the league to its next lifecycle stage.
func StaffAdvanceLeague(svc *leaguesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "leagueID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		league, err := svc.Advance(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, league)
	}
}
