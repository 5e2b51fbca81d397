package controllers

import (
	"net/http"

	"github.com/oyugibear/bofa-backend/api/responses"
	"github.com/oyugibear/bofa-backend/api/validators"
	usersvc "github.com/oyugibear/bofa-backend/internal/users"
	"github.com/oyugibear/bofa-backend/pkg/logger"
	"github.com/oyugibear/bofa-backend/pkg/pagination"
)

// MeGet returns the caller's own profile.
func MeGet(svc *usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, _, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Get(r.Context(), actorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, usersvc.FromModel(user))
	}
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// MeUpdate patches the caller's own profile.
func MeUpdate(svc *usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, _, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProfileRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.UpdateProfile(r.Context(), actorID, usersvc.UpdateProfileInput{
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
			Phone:     payload.Phone,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, usersvc.FromModel(user))
	}
}

type userListResponse struct {
	Users      []*usersvc.UserDTO `json:"users"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

// AdminListUsers pages through member accounts, newest first.
func AdminListUsers(svc *usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		users, nextCursor, err := svc.List(r.Context(),
			r.URL.Query().Get("role"),
			r.URL.Query().Get("active") == "true",
			pagination.Params{Limit: limit, Cursor: r.URL.Query().Get("cursor")},
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := userListResponse{Users: make([]*usersvc.UserDTO, 0, len(users)), NextCursor: nextCursor}
		for i := range users {
			out.Users = append(out.Users, usersvc.FromModel(&users[i]))
		}
		responses.WriteSuccess(w, out)
	}
}

// AdminDeactivateUser switches an account off without deleting it.
func AdminDeactivateUser(svc *usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "userID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Deactivate(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deactivated"})
	}
}
