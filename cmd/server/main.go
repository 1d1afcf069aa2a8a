package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpAdapter "github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http"
	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/handler"
	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/middleware"
	postgresRepo "github.com/JoaoSCoelho/my-finances-backend/internal/adapter/repository/postgres"
	redisRepo "github.com/JoaoSCoelho/my-finances-backend/internal/adapter/repository/redis"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/auth"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/config"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/logger"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/mailer"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/metrics"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/postgres"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/redis"
	"github.com/JoaoSCoelho/my-finances-backend/internal/usecase"
)

const migrationsPath = "migrations"

func main() {
	// A missing .env is fine: deployments set real environment variables.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, migrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	retrier := postgresRepo.NewRetrier(log)
	userRepo := postgresRepo.NewUserRepository(pool, retrier)
	accountRepo := postgresRepo.NewBankAccountRepository(pool, retrier)
	expenseRepo := postgresRepo.NewExpenseRepository(pool, retrier)
	incomeRepo := postgresRepo.NewIncomeRepository(pool, retrier)
	transferRepo := postgresRepo.NewTransferRepository(pool, retrier)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	confirmStore := redisRepo.NewConfirmationTokenStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	mail := mailer.NewLogMailer(cfg.BaseURL, log)

	balanceUC := usecase.NewBalanceUseCase(accountRepo, expenseRepo, incomeRepo, transferRepo, m)
	userUC := usecase.NewUserUseCase(userRepo, idGen, tokens, mail, confirmStore, cfg.ConfirmationTTL, log, m)
	accountUC := usecase.NewBankAccountUseCase(accountRepo, balanceUC, idGen, m)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, accountRepo, idGen, m)
	incomeUC := usecase.NewIncomeUseCase(incomeRepo, accountRepo, idGen, m)
	transferUC := usecase.NewTransferUseCase(transferRepo, accountRepo, idGen, m)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:        handler.NewAuthHandler(userUC),
		UserHandler:        handler.NewUserHandler(userUC),
		BankAccountHandler: handler.NewBankAccountHandler(accountUC),
		ExpenseHandler:     handler.NewExpenseHandler(expenseUC),
		IncomeHandler:      handler.NewIncomeHandler(incomeUC),
		TransferHandler:    handler.NewTransferHandler(transferUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		AuthMiddleware:     middleware.NewAuthMiddleware(tokens, m),
		Logger:             log,
		Metrics:            m,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst, m),
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
	})

	server := newServer(cfg, router)

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func newServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}
