package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/oyugibear/bofa-backend/api/routes"
	"github.com/oyugibear/bofa-backend/internal/auth"
	"github.com/oyugibear/bofa-backend/internal/bookings"
	"github.com/oyugibear/bofa-backend/internal/cart"
	"github.com/oyugibear/bofa-backend/internal/fields"
	"github.com/oyugibear/bofa-backend/internal/leagues"
	"github.com/oyugibear/bofa-backend/internal/matches"
	"github.com/oyugibear/bofa-backend/internal/payments"
	"github.com/oyugibear/bofa-backend/internal/teams"
	"github.com/oyugibear/bofa-backend/internal/users"
	"github.com/oyugibear/bofa-backend/pkg/auth/session"
	"github.com/oyugibear/bofa-backend/pkg/config"
	"github.com/oyugibear/bofa-backend/pkg/db"
	"github.com/oyugibear/bofa-backend/pkg/logger"
	"github.com/oyugibear/bofa-backend/pkg/migrate"
	"github.com/oyugibear/bofa-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	services, err := buildServices(cfg, logg, dbClient, redisClient, sessionManager)
	if err != nil {
		logg.Error(context.Background(), "failed to wire services", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, sessionManager, services),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func buildServices(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	sessionManager *session.Manager,
) (routes.Services, error) {
	userRepo := users.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return routes.Services{}, err
	}

	usersService, err := users.NewService(users.ServiceParams{Repo: userRepo})
	if err != nil {
		return routes.Services{}, err
	}

	fieldsService, err := fields.NewService(fields.ServiceParams{
		Repo: fields.NewRepository(dbClient.DB()),
	})
	if err != nil {
		return routes.Services{}, err
	}

	bookingsService, err := bookings.NewService(bookings.ServiceParams{
		Repo:   bookings.NewRepository(dbClient.DB()),
		Fields: fieldsService,
		Config: cfg.Booking,
	})
	if err != nil {
		return routes.Services{}, err
	}

	leaguesService, err := leagues.NewService(leagues.ServiceParams{
		Repo: leagues.NewRepository(dbClient.DB()),
	})
	if err != nil {
		return routes.Services{}, err
	}

	teamsService, err := teams.NewService(teams.ServiceParams{
		Repo:    teams.NewRepository(dbClient.DB()),
		Leagues: leaguesService,
	})
	if err != nil {
		return routes.Services{}, err
	}

	matchesService, err := matches.NewService(matches.ServiceParams{
		Repo:  matches.NewRepository(dbClient.DB()),
		Teams: teamsService,
	})
	if err != nil {
		return routes.Services{}, err
	}

	paymentsService, err := payments.NewService(payments.ServiceParams{
		Repo:     payments.NewRepository(dbClient.DB()),
		Bookings: bookingsService,
	})
	if err != nil {
		return routes.Services{}, err
	}

	cartManager := cart.NewManager(cart.RedisProviderFactory(redisClient), logg)

	return routes.Services{
		Auth:     authService,
		Users:    usersService,
		Fields:   fieldsService,
		Bookings: bookingsService,
		Leagues:  leaguesService,
		Teams:    teamsService,
		Matches:  matchesService,
		Payments: paymentsService,
		Cart:     cartManager,
	}, nil
}
