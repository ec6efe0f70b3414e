package http

import (
	"github.com/gin-gonic/gin"
)

// StockRoutes handles catalog, calculator, reservation and pricing route
// registration.
type StockRoutes struct {
	handler *Handler
}

// NewStockRoutes creates a new StockRoutes instance.
func NewStockRoutes(handler *Handler) *StockRoutes {
	return &StockRoutes{handler: handler}
}

// RegisterPublicRoutes registers the storefront-facing routes. These never
// require authentication: clients browse the catalog, run the calculators
// and reserve coffee without an account.
func (r *StockRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", r.handler.GetCatalog)
	rg.GET("/products/:id/availability", r.handler.GetAvailability)

	calculators := rg.Group("/calculators")
	{
		calculators.POST("/event", r.handler.CalculateEvent)
		calculators.POST("/internal-use", r.handler.CalculateInternalUse)
	}

	rg.POST("/selections/reconcile", r.handler.ReconcileSelection)
	rg.POST("/reservations", r.handler.CreateReservation)
	rg.POST("/quotes", r.handler.CreateQuote)
	rg.POST("/event-requests", r.handler.SubmitEventRequest)
}

// RegisterProtectedRoutes registers the back-office routes on a group that
// already carries JWT authentication.
func (r *StockRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	products := protected.Group("/products")
	{
		products.POST("", r.handler.CreateProduct)
		products.PUT("/:id", r.handler.UpdateProduct)
		products.PATCH("/:id/stock", r.handler.AdjustStock)
	}

	protected.GET("/reservations", r.handler.ListReservations)
	protected.PATCH("/reservations/:id/status", r.handler.UpdateReservationStatus)

	protected.GET("/reports/stock", r.handler.GetStockReport)

	clients := protected.Group("/clients")
	{
		clients.PUT("/:id/prices", r.handler.UpsertPriceList)
		clients.GET("/:id/prices", r.handler.GetPriceList)
	}

	protected.GET("/event-requests", r.handler.ListEventRequests)
}

// GetHandler returns the underlying handler.
func (r *StockRoutes) GetHandler() *Handler {
	return r.handler
}
