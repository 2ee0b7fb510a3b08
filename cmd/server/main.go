// @title        Roulette API
// @version      1.0
// @description  Player accounts, balances and spin history for the roulette table.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/spinhouse/roulette-backend/internal/api"
	"github.com/spinhouse/roulette-backend/internal/api/handler"
	"github.com/spinhouse/roulette-backend/internal/core/ports"
	"github.com/spinhouse/roulette-backend/internal/core/service"
	"github.com/spinhouse/roulette-backend/internal/infrastructure/config"
	"github.com/spinhouse/roulette-backend/internal/infrastructure/db/postgres"
	redisstore "github.com/spinhouse/roulette-backend/internal/infrastructure/db/redis"
	"github.com/spinhouse/roulette-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "roulette-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	dbURL := cfg.Database.URL()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(dbURL, log); err != nil {
			return err
		}
	}

	db, err := postgres.Connect(ctx, postgres.Config{URL: dbURL, MaxConns: cfg.Database.MaxConns})
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("connected to postgres")

	checks := map[string]handler.DependencyCheck{
		"postgres": db.Ping,
	}

	var limiter ports.LoginLimiter
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		limiter = redisstore.NewLoginLimiter(rdb, cfg.Auth.MaxAttempts, cfg.Auth.Lockout)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login throttling enabled")
	}

	if cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, login will not issue tokens")
	}

	accounts := service.NewAccountService(
		postgres.NewAccountRepository(db),
		service.AccountOptions{
			JWTSecret:            cfg.Auth.JWTSecret,
			TokenTTL:             cfg.Auth.TokenTTL,
			AllowNegativeBalance: cfg.Balance.AllowNegative,
			Limiter:              limiter,
		},
		log,
	)
	spins := service.NewSpinService(postgres.NewSpinRepository(db), log)

	e := api.NewRouter(api.RouterConfig{
		Accounts:     accounts,
		Spins:        spins,
		Checks:       checks,
		Log:          log,
		RequireToken: cfg.Auth.RequireToken,
		JWTSecret:    cfg.Auth.JWTSecret,
		StaticDir:    cfg.StaticDir,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("server listening")
		if err := e.Start(":" + cfg.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
