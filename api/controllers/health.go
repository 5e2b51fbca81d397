package controllers

import (
	"net/http"

	"github.com/oyugibear/bofa-backend/api/responses"
	"github.com/oyugibear/bofa-backend/pkg/config"
	"github.com/oyugibear/bofa-backend/pkg/db"
	"github.com/oyugibear/bofa-backend/pkg/errors"
	"github.com/oyugibear/bofa-backend/pkg/logger"
	"github.com/oyugibear/bofa-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Bofa-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the backing stores before reporting ready.
func HealthReady(cfg *config.Config, database *db.Client, cache redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Bofa-Env", cfg.App.Env)
		if database != nil {
			if err := database.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, errors.Wrap(errors.CodeDependency, err, "database unavailable"))
				return
			}
		}
		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, errors.Wrap(errors.CodeDependency, err, "cache unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
