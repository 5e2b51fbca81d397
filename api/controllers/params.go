package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/api/middleware"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
)

// pathUUID parses a chi URL parameter as a UUID.
func pathUUID(r *http.Request, key string) (uuid.UUID, error) {
	raw := chi.URLParam(r, key)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+key)
	}
	return id, nil
}

// parseUUIDField parses a request body field as a UUID.
func parseUUIDField(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+name)
	}
	return id, nil
}

// parseTimeField parses a request body field as RFC 3339.
func parseTimeField(raw, name string) (time.Time, error) {
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+name)
	}
	return at, nil
}

// actorFromContext resolves the authenticated caller's id and role.
func actorFromContext(r *http.Request) (uuid.UUID, enums.MemberRole, error) {
	rawID := middleware.UserIDFromContext(r.Context())
	if rawID == "" {
		return uuid.Nil, "", pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	actorID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id")
	}

	role, err := enums.ParseMemberRole(middleware.RoleFromContext(r.Context()))
	if err != nil {
		return uuid.Nil, "", pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "role context missing")
	}
	return actorID, role, nil
}
