package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
)

// CreateQuote handles POST /api/quotes requests.
//
// @Summary      Quote a selection
// @Description  Prices a selection against the client's price list. Per-kg prices derive from the negotiated 250g package price, with the private label base price as fallback. Amounts are rounded to centavos only at quote boundaries.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Client and selection"
// @Success      200 {object} dto.SuccessResponse "Priced quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "No price list for client"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quotes [post]
func (h *Handler) CreateQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.QuoteRequest](c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	quote, err := h.pricing.Quote(c.Request.Context(), *req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessOK(quote)
}

// UpsertPriceList handles PUT /api/clients/:id/prices requests.
//
// @Summary      Replace a client's price list
// @Description  Sets the client's negotiated 250g prices per product and the private label fallback price.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        id path string true "Client ID"
// @Param        request body dto.UpsertPriceListRequest true "Price list"
// @Success      200 {object} dto.SuccessResponse "Stored price list"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/clients/{id}/prices [put]
func (h *Handler) UpsertPriceList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpsertPriceListRequest](c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	priceList, err := h.pricing.UpsertPriceList(c.Request.Context(), c.Param("id"), *req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessOK(priceList)
}

// GetPriceList handles GET /api/clients/:id/prices requests.
//
// @Summary      Get a client's price list
// @Tags         Pricing
// @Produce      json
// @Param        id path string true "Client ID"
// @Success      200 {object} dto.SuccessResponse "Price list"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "No price list for client"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/clients/{id}/prices [get]
func (h *Handler) GetPriceList(c *gin.Context) {
	priceList, err := h.pricing.PriceList(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(priceList)
}
