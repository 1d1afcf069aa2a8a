package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/handler"
	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/middleware"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/metrics"
	"github.com/JoaoSCoelho/my-finances-backend/internal/usecase"
)

// RouterConfig holds dependencies for the router. Metrics, RateLimiter and
// IdempotencyStore are optional.
type RouterConfig struct {
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	BankAccountHandler *handler.BankAccountHandler
	ExpenseHandler     *handler.ExpenseHandler
	IncomeHandler      *handler.IncomeHandler
	TransferHandler    *handler.TransferHandler
	HealthHandler      *handler.HealthHandler

	AuthMiddleware *middleware.AuthMiddleware

	Logger           zerolog.Logger
	Metrics          *metrics.Metrics
	RateLimiter      *middleware.RateLimiter
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
}

// NewRouter creates the HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewRecoveryMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Wrap)
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).Wrap)
		}

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", cfg.AuthHandler.SignUp)
			r.Get("/confirm", cfg.AuthHandler.ConfirmEmail)
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/refresh", cfg.AuthHandler.Refresh)

			r.Group(func(r chi.Router) {
				r.Use(cfg.AuthMiddleware.Wrap)
				r.Post("/logout", cfg.AuthHandler.Logout)
				r.Post("/resend-confirmation", cfg.AuthHandler.ResendConfirmation)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthMiddleware.Wrap)

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", cfg.UserHandler.Me)
				r.Patch("/", cfg.UserHandler.Update)
			})

			r.Route("/bankaccounts", func(r chi.Router) {
				r.Post("/", cfg.BankAccountHandler.Create)
				r.Get("/", cfg.BankAccountHandler.List)
				r.Get("/{id}", cfg.BankAccountHandler.Get)
				r.Patch("/{id}", cfg.BankAccountHandler.Update)
				r.Delete("/{id}", cfg.BankAccountHandler.Delete)
				r.Get("/{id}/balance", cfg.BankAccountHandler.Balance)
				r.Get("/{id}/expenses", cfg.ExpenseHandler.ListByAccount)
				r.Get("/{id}/incomes", cfg.IncomeHandler.ListByAccount)
				r.Get("/{id}/transfers", cfg.TransferHandler.ListByAccount)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", cfg.ExpenseHandler.Create)
				r.Get("/{id}", cfg.ExpenseHandler.Get)
				r.Patch("/{id}", cfg.ExpenseHandler.Update)
				r.Delete("/{id}", cfg.ExpenseHandler.Delete)
			})

			r.Route("/incomes", func(r chi.Router) {
				r.Post("/", cfg.IncomeHandler.Create)
				r.Get("/{id}", cfg.IncomeHandler.Get)
				r.Patch("/{id}", cfg.IncomeHandler.Update)
				r.Delete("/{id}", cfg.IncomeHandler.Delete)
			})

			r.Route("/transfers", func(r chi.Router) {
				r.Post("/", cfg.TransferHandler.Create)
				r.Get("/{id}", cfg.TransferHandler.Get)
				r.Patch("/{id}", cfg.TransferHandler.Update)
				r.Delete("/{id}", cfg.TransferHandler.Delete)
			})
		})
	})

	return r
}
