package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/calc-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/calc-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/calc-service/internal/platform/config"
	"github.com/jsamuelsen/calc-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// CalculationHandler handles the calculation endpoints.
	CalculationHandler *handlers.CalculationHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied per-route or globally)
//
// Route groups:
//   - /-/ (internal): Health endpoints
//   - /api/v1/ (public API): Business endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Register health endpoints (no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// Setup API v1 routes with timeout
	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	// Register API routes
	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers business API routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.CalculationHandler != nil {
		cfg.CalculationHandler.RegisterCalculationRoutes(rg)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	calcHandler *handlers.CalculationHandler,
) RouterConfig {
	return RouterConfig{
		Logger:             logger,
		AppConfig:          appCfg,
		HealthHandler:      healthHandler,
		CalculationHandler: calcHandler,
		Timeout:            DefaultRequestTimeout,
	}
}
