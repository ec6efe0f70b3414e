// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cafelagoa/stock-service/config"
	"github.com/cafelagoa/stock-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// The returned cleanup function flushes buffered logs and closes the
// database connection.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	// Logger first, everything else logs through it.
	InitializeLogger()

	dbComponents, err := InitializeDatabase(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	serviceComponents := InitializeServices(cfg, dbComponents)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	router := http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	cleanup := func() {
		serviceComponents.Logging.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = dbComponents.DB.Close(ctx)
	}

	return router, cleanup, nil
}
