// Package app provides service initialization.
package app

import (
	"github.com/cafelagoa/stock-service/config"
	"github.com/cafelagoa/stock-service/internal/service"
)

// ServiceComponents holds the business logic services.
type ServiceComponents struct {
	Engine       service.StockEngine
	Calculator   service.ConsumptionCalculator
	Catalog      service.CatalogService
	Reservations service.ReservationService
	Pricing      service.PricingService
	Events       service.EventRequestService
	Logging      service.LoggingService
	Auth         service.AuthService
}

// InitializeServices wires the business logic services on top of the
// repositories.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	engine := service.NewStockEngine()
	calculator := service.NewConsumptionCalculator()

	catalog := service.NewCatalogService(
		db.Products,
		db.Reservations,
		engine,
		service.WithCatalogTTL(cfg.Catalog.CacheTTL),
	)

	components := &ServiceComponents{
		Engine:       engine,
		Calculator:   calculator,
		Catalog:      catalog,
		Reservations: service.NewReservationService(db.Products, db.Reservations, engine),
		Pricing:      service.NewPricingService(db.PriceLists, db.Products),
		Events:       service.NewEventRequestService(db.EventRequests, calculator, engine),
		Logging:      service.NewLoggingService(db.Logs),
	}

	if cfg.Auth.Enabled {
		components.Auth = service.NewAuthService(db.Users, db.Tokens, cfg.Auth)
	}

	return components
}
