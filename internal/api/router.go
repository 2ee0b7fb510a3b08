package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/spinhouse/roulette-backend/docs"
	"github.com/spinhouse/roulette-backend/internal/api/handler"
	"github.com/spinhouse/roulette-backend/internal/api/middleware"
	"github.com/spinhouse/roulette-backend/internal/core/ports"
)

// RouterConfig carries everything NewRouter wires into the Echo instance.
type RouterConfig struct {
	Accounts ports.AccountService
	Spins    ports.SpinService
	// Checks are pinged by the readiness probe, keyed by dependency name.
	Checks map[string]handler.DependencyCheck
	Log    zerolog.Logger

	// RequireToken guards the balance routes with middleware.Auth(JWTSecret).
	RequireToken bool
	JWTSecret    string
	// StaticDir is served at "/" when non-empty.
	StaticDir string
	// Registry receives the HTTP metrics and backs /metrics. Nil uses the
	// Prometheus default registry, where the domain counters live.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(cfg.Log))

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if cfg.Registry != nil {
		registerer, gatherer = cfg.Registry, cfg.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "roulette",
		Registerer: registerer,
	}))

	// --- Dependencies ---
	accountHandler := handler.NewAccountHandler(cfg.Accounts, cfg.Log)
	spinHandler := handler.NewSpinHandler(cfg.Spins, cfg.Log)

	var balanceGuard []echo.MiddlewareFunc
	if cfg.RequireToken {
		balanceGuard = append(balanceGuard, middleware.Auth(cfg.JWTSecret))
	}

	// --- Account routes ---
	e.POST("/signup", accountHandler.Signup)
	e.POST("/login", accountHandler.Login)
	e.POST("/update-balance", accountHandler.UpdateBalance, balanceGuard...)
	e.POST("/get-balance", accountHandler.GetBalance, balanceGuard...)

	// --- Spin routes ---
	e.POST("/save-spin", spinHandler.SaveSpin)
	e.GET("/spin-history", spinHandler.History)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(cfg.Checks).Readiness)

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
