package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oyugibear/bofa-backend/api/controllers"
	cartcontrollers "github.com/oyugibear/bofa-backend/api/controllers/cart"
	"github.com/oyugibear/bofa-backend/api/middleware"
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
	"github.com/oyugibear/bofa-backend/pkg/enums"
	"github.com/oyugibear/bofa-backend/pkg/logger"
	"github.com/oyugibear/bofa-backend/pkg/redis"
)

// Services bundles everything the router mounts.
type Services struct {
	Auth     *auth.Service
	Users    *users.Service
	Fields   *fields.Service
	Bookings *bookings.Service
	Leagues  *leagues.Service
	Teams    *teams.Service
	Matches  *matches.Service
	Payments *payments.Service
	Cart     *cart.Manager
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	database *db.Client,
	redisClient *redis.Client,
	sessions session.AccessSessionChecker,
	svc Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	staffRoles := []string{enums.MemberRoleStaff.String(), enums.MemberRoleAdmin.String()}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, database, redisClient, logg))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())

		r.Route("/v1/fields", func(r chi.Router) {
			r.Get("/", controllers.FieldsList(svc.Fields, logg))
			r.Get("/{fieldID}", controllers.FieldGet(svc.Fields, logg))
			r.Get("/{fieldID}/schedule", controllers.FieldSchedule(svc.Bookings, logg))
		})
		r.Route("/v1/leagues", func(r chi.Router) {
			r.Get("/", controllers.LeaguesList(svc.Leagues, logg))
			r.Get("/{leagueID}", controllers.LeagueGet(svc.Leagues, logg))
			r.Get("/{leagueID}/teams", controllers.LeagueTeams(svc.Teams, logg))
			r.Get("/{leagueID}/matches", controllers.LeagueMatches(svc.Matches, logg))
		})
		r.Get("/v1/matches/{matchID}", controllers.MatchGet(svc.Matches, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(svc.Auth, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(svc.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(svc.Auth, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		r.Get("/ping", controllers.PrivatePing())
		r.Post("/v1/auth/logout", controllers.AuthLogout(svc.Auth, logg))

		r.Route("/v1/me", func(r chi.Router) {
			r.Get("/", controllers.MeGet(svc.Users, logg))
			r.Put("/", controllers.MeUpdate(svc.Users, logg))
		})

		r.Route("/v1/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.Fetch(svc.Cart, logg))
			r.Put("/", cartcontrollers.Replace(svc.Cart, logg))
			r.Delete("/", cartcontrollers.Clear(svc.Cart, logg))
			r.Post("/items", cartcontrollers.AddItem(svc.Cart, logg))
			r.Delete("/items/{itemID}", cartcontrollers.RemoveItem(svc.Cart, logg))
		})

		r.Route("/v1/bookings", func(r chi.Router) {
			r.Post("/", controllers.BookingCreate(svc.Bookings, logg))
			r.Get("/", controllers.BookingsListMine(svc.Bookings, logg))
			r.Get("/{bookingID}", controllers.BookingGet(svc.Bookings, logg))
			r.Post("/{bookingID}/cancel", controllers.BookingCancel(svc.Bookings, logg))
		})

		r.Route("/v1/payments", func(r chi.Router) {
			r.Post("/", controllers.PaymentRecord(svc.Payments, logg))
			r.Get("/", controllers.PaymentsListMine(svc.Payments, logg))
			r.Get("/{paymentID}", controllers.PaymentGet(svc.Payments, logg))
		})

		r.Route("/v1/teams", func(r chi.Router) {
			r.Post("/", controllers.TeamRegister(svc.Teams, logg))
			r.Get("/{teamID}", controllers.TeamGet(svc.Teams, logg))
			r.Patch("/{teamID}/roster", controllers.TeamUpdateRoster(svc.Teams, logg))
		})
	})

	r.Route("/api/staff", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))
		r.Use(middleware.RequireAnyRole(logg, staffRoles...))

		r.Route("/v1/fields", func(r chi.Router) {
			r.Post("/", controllers.StaffCreateField(svc.Fields, logg))
			r.Patch("/{fieldID}", controllers.StaffUpdateField(svc.Fields, logg))
		})
		r.Post("/v1/bookings/{bookingID}/confirm", controllers.StaffConfirmBooking(svc.Bookings, logg))
		r.Route("/v1/leagues", func(r chi.Router) {
			r.Post("/", controllers.StaffCreateLeague(svc.Leagues, logg))
			r.Post("/{leagueID}/advance", controllers.StaffAdvanceLeague(svc.Leagues, logg))
		})
		r.Route("/v1/matches", func(r chi.Router) {
			r.Post("/", controllers.StaffScheduleMatch(svc.Matches, logg))
			r.Post("/{matchID}/result", controllers.StaffRecordResult(svc.Matches, logg))
			r.Post("/{matchID}/reschedule", controllers.StaffRescheduleMatch(svc.Matches, logg))
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))
		r.Use(middleware.RequireRole(enums.MemberRoleAdmin.String(), logg))

		r.Get("/ping", controllers.AdminPing())
		r.Post("/v1/auth/staff", controllers.AdminCreateStaff(svc.Auth, logg))
		r.Route("/v1/users", func(r chi.Router) {
			r.Get("/", controllers.AdminListUsers(svc.Users, logg))
			r.Post("/{userID}/deactivate", controllers.AdminDeactivateUser(svc.Users, logg))
		})
		r.Post("/v1/payments/{paymentID}/refund", controllers.AdminRefundPayment(svc.Payments, logg))
	})

	return r
}
