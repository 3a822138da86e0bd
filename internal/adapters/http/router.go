package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/fridgy/internal/adapters/http/handlers"
	"github.com/jsamuelsen/fridgy/internal/adapters/http/middleware"
	"github.com/jsamuelsen/fridgy/internal/platform/config"
	"github.com/jsamuelsen/fridgy/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 5 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	Logger *slog.Logger

	AppConfig *config.AppConfig

	// HealthHandler serves /-/ probes and metrics. Optional.
	HealthHandler *handlers.HealthHandler

	// IngredientHandler serves /api/v1/ingredients. Optional.
	IngredientHandler *handlers.IngredientHandler

	// Timeout is the deadline for /api/v1 requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Context logger and request ID
//  3. OpenTelemetry - tracing, then HTTP metrics and X-Trace-ID
//  4. Logging - request logging (skips /-/ paths)
//  5. Timeout - /api/v1 only, so probes are never cut short
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.IngredientHandler != nil {
		cfg.IngredientHandler.RegisterRoutes(apiV1)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with the default timeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	ingredientHandler *handlers.IngredientHandler,
) RouterConfig {
	return RouterConfig{
		Logger:            logger,
		AppConfig:         appCfg,
		HealthHandler:     healthHandler,
		IngredientHandler: ingredientHandler,
		Timeout:           DefaultRequestTimeout,
	}
}
