// Package http provides the Gin handlers and router for the stock service.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/i18n"
	"github.com/cafelagoa/stock-service/internal/middleware"
	"github.com/cafelagoa/stock-service/internal/service"
)

// Handler provides HTTP handlers for the stock service routes.
type Handler struct {
	catalog      service.CatalogService
	reservations service.ReservationService
	calculator   service.ConsumptionCalculator
	engine       service.StockEngine
	pricing      service.PricingService
	events       service.EventRequestService
}

// NewHandler creates a new Handler instance.
func NewHandler(
	catalog service.CatalogService,
	reservations service.ReservationService,
	calculator service.ConsumptionCalculator,
	engine service.StockEngine,
	pricing service.PricingService,
	events service.EventRequestService,
) *Handler {
	return &Handler{
		catalog:      catalog,
		reservations: reservations,
		calculator:   calculator,
		engine:       engine,
		pricing:      pricing,
		events:       events,
	}
}

// respondServiceError maps domain errors onto HTTP status codes and the
// standard error envelope. Overstock carries structured details so the
// storefront can show the client what is still available.
func (h *Handler) respondServiceError(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)

	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		return
	}

	var overstock *service.OverstockError
	if errors.As(err, &overstock) {
		locale := i18n.GetLocale(c)
		message := i18n.GetTranslator().Translate(i18n.ErrKeyOverstock, locale)
		resp := dto.NewError(dto.ErrCodeOverstock, message).
			WithRequestID(middleware.GetRequestID(c)).
			WithDetails(map[string]string{
				"product_id":     overstock.ProductID.Hex(),
				"packaging_size": string(overstock.PackagingSize),
				"requested":      strconv.Itoa(overstock.Requested),
				"available":      strconv.Itoa(overstock.Available),
			})
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, resp)
		return
	}

	switch {
	case errors.Is(err, model.ErrUnknownPackagingSize):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownPackagingSize, err)
	case errors.Is(err, service.ErrPackagingNotSold):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrProductNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
	case errors.Is(err, service.ErrReservationNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, service.ErrPriceListNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyPriceListNotFound, err)
	case errors.Is(err, service.ErrNoPriceForProduct):
		builder.ErrorWithMessage(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrReservationFinal):
		builder.Error(http.StatusConflict, i18n.ErrKeyReservationFinal, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
