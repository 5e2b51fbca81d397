package controllers

import (
	"net/http"
	"strings"

	"github.com/oyugibear/bofa-backend/api/responses"
	"github.com/oyugibear/bofa-backend/api/validators"
	teamsvc "github.com/oyugibear/bofa-backend/internal/teams"
	"github.com/oyugibear/bofa-backend/pkg/logger"
)

type registerTeamRequest struct {
	LeagueID   string `json:"league_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	RosterSize int    `json:"roster_size" validate:"required,min=1"`
}

// TeamRegister enters the caller's team into a league while registration is
// open. The caller becomes the captain.
func TeamRegister(svc *teamsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, _, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload registerTeamRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		leagueID, err := parseUUIDField(payload.LeagueID, "league_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		team, err := svc.Register(r.Context(), teamsvc.RegisterInput{
			LeagueID:   leagueID,
			CaptainID:  actorID,
			Name:       strings.TrimSpace(payload.Name),
			RosterSize: payload.RosterSize,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, team)
	}
}

func TeamGet(svc *teamsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "teamID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		team, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, team)
	}
}

// LeagueTeams lists every team registered in a league.
func LeagueTeams(svc *teamsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := pathUUID(r, "leagueID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		teams, err := svc.ListByLeague(r.Context(), leagueID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, teams)
	}
}

type updateRosterRequest struct {
	RosterSize int `json:"roster_size" validate:"required,min=1"`
}

// TeamUpdateRoster resizes the roster. Captains update their own team,
// staff update any.
func TeamUpdateRoster(svc *teamsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, role, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "teamID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateRosterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		team, err := svc.UpdateRoster(r.Context(), id, payload.RosterSize, actorID, role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, team)
	}
}
