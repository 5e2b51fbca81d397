package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/api/responses"
	"github.com/oyugibear/bofa-backend/api/validators"
	matchsvc "github.com/oyugibear/bofa-backend/internal/matches"
	"github.com/oyugibear/bofa-backend/pkg/logger"
)

type scheduleMatchRequest struct {
	LeagueID    string  `json:"league_id" validate:"required"`
	HomeTeamID  string  `json:"home_team_id" validate:"required"`
	AwayTeamID  string  `json:"away_team_id" validate:"required"`
	FieldID     *string `json:"field_id,omitempty"`
	ScheduledAt string  `json:"scheduled_at" validate:"required"`
}

// StaffScheduleMatch fixtures two league teams.
func StaffScheduleMatch(svc *matchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload scheduleMatchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		leagueID, err := parseUUIDField(payload.LeagueID, "league_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		homeID, err := parseUUIDField(payload.HomeTeamID, "home_team_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		awayID, err := parseUUIDField(payload.AwayTeamID, "away_team_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var fieldID *uuid.UUID
		if payload.FieldID != nil {
			parsed, err := parseUUIDField(*payload.FieldID, "field_id")
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			fieldID = &parsed
		}

		scheduledAt, err := parseTimeField(payload.ScheduledAt, "scheduled_at")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		match, err := svc.Schedule(r.Context(), matchsvc.ScheduleInput{
			LeagueID:    leagueID,
			HomeTeamID:  homeID,
			AwayTeamID:  awayID,
			FieldID:     fieldID,
			ScheduledAt: scheduledAt,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, match)
	}
}

func MatchGet(svc *matchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "matchID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		match, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, match)
	}
}

// LeagueMatches lists a league's fixtures.
func LeagueMatches(svc *matchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := pathUUID(r, "leagueID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		matches, err := svc.ListByLeague(r.Context(), leagueID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, matches)
	}
}

type recordResultRequest struct {
	HomeScore int `json:"home_score" validate:"min=0"`
	AwayScore int `json:"away_score" validate:"min=0"`
}

// StaffRecordResult closes out a fixture with the final score.
func StaffRecordResult(svc *matchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "matchID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload recordResultRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		match, err := svc.RecordResult(r.Context(), id, payload.HomeScore, payload.AwayScore)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, match)
	}
}

type rescheduleMatchRequest struct {
	ScheduledAt string `json:"scheduled_at" validate:"required"`
}

// StaffRescheduleMatch moves a fixture to a new kickoff time.
func StaffRescheduleMatch(svc *matchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "matchID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload rescheduleMatchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		scheduledAt, err := parseTimeField(payload.ScheduledAt, "scheduled_at")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		match, err := svc.Reschedule(r.Context(), id, scheduledAt)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, match)
	}
}
