// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/cafelagoa/stock-service/config"
	"github.com/cafelagoa/stock-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	db *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(
		services.Catalog,
		services.Reservations,
		services.Calculator,
		services.Engine,
		services.Pricing,
		services.Events,
	)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return db.DB.HealthCheck(ctx)
	}))

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		EnableIdempotency: true,
		IdempotencyTTL:    cfg.Catalog.IdempotencyTTL,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    services.Logging,
		AuthService:       services.Auth,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
