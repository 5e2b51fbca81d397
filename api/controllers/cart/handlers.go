package cart

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/oyugibear/bofa-backend/api/middleware"
	"github.com/oyugibear/bofa-backend/api/responses"
	"github.com/oyugibear/bofa-backend/api/validators"
	cartsvc "github.com/oyugibear/bofa-backend/internal/cart"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
	"github.com/oyugibear/bofa-backend/pkg/logger"
)

// Fetch exposes the caller's current cart state.
func Fetch(mgr *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := mgr.For(r.Context(), ownerID)
		responses.WriteSuccess(w, newCartView(store.State()))
	}
}

// AddItem appends one item to the caller's cart, stamped with the booking
// date and time slot when the payload carries them.
func AddItem(mgr *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if strings.TrimSpace(payload.Item.ID) == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}

		store := mgr.For(r.Context(), ownerID)
		store.AddItem(r.Context(), payload.Item, payload.Date, payload.Time)
		responses.WriteSuccess(w, newCartView(store.State()))
	}
}

// RemoveItem drops the first line matching the item id. A miss is not an error:
// the cart simply comes back unchanged.
func RemoveItem(mgr *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID := chi.URLParam(r, "itemID")
		if itemID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}

		store := mgr.For(r.Context(), ownerID)
		store.RemoveItem(r.Context(), itemID)
		responses.WriteSuccess(w, newCartView(store.State()))
	}
}

// Clear empties the cart and drops its persisted snapshot.
func Clear(mgr *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := mgr.For(r.Context(), ownerID)
		store.Clear(r.Context())
		responses.WriteSuccess(w, newCartView(store.State()))
	}
}

// Replace swaps the whole in-memory cart without writing to storage.
func Replace(mgr *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload replaceRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := mgr.For(r.Context(), ownerID)
		store.Replace(toState(payload))
		responses.WriteSuccess(w, newCartView(store.State()))
	}
}

func ownerFromContext(r *http.Request) (string, error) {
	ownerID := middleware.UserIDFromContext(r.Context())
	if ownerID == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	return ownerID, nil
}
