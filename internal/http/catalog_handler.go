package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/i18n"
)

// parseObjectID parses a hex path parameter into an ObjectID. Responds with
// 400 and returns false when the parameter is malformed.
func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// GetCatalog handles GET /api/catalog requests.
//
// @Summary      List the coffee catalog
// @Description  Returns active products with availability per packaging size, derived from stock minus active reservations.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Catalog with availability"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	entries, err := h.catalog.Catalog(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessOK(entries)
}

// GetAvailability handles GET /api/products/:id/availability requests.
//
// @Summary      Get product availability
// @Description  Returns one product with fresh per-size availability, bypassing the catalog cache. An optional packaging query narrows the response to a single size.
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        packaging query string false "Packaging size filter (e.g. 250g)"
// @Success      200 {object} dto.SuccessResponse "Product with availability"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed product ID or unknown packaging size"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/{id}/availability [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var filter model.PackagingSize
	if raw := c.Query("packaging"); raw != "" {
		filter = model.PackagingSize(raw)
		if _, err := filter.WeightKg(); err != nil {
			h.respondServiceError(c, err)
			return
		}
	}

	entry, err := h.catalog.Availability(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	if filter != "" {
		narrowed := make([]dto.SizeAvailability, 0, 1)
		for _, sa := range entry.Availability {
			if sa.PackagingSize == filter {
				narrowed = append(narrowed, sa)
			}
		}
		entry.Availability = narrowed
	}

	NewResponseBuilder(c).SuccessOK(entry)
}

// CreateProduct handles POST /api/products requests.
//
// @Summary      Create a product
// @Description  Adds a product to the catalog. Stock is denominated in 250g base packages.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProductRequest true "Product attributes"
// @Success      201 {object} dto.SuccessResponse "Created product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateProductRequest](c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), *req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessCreated(product)
}

// UpdateProduct handles PUT /api/products/:id requests.
//
// @Summary      Update a product
// @Description  Replaces a product's attributes, including its stock count and sale sizes.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body dto.CreateProductRequest true "Product attributes"
// @Success      200 {object} dto.SuccessResponse "Updated product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.CreateProductRequest](c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), id, *req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(product)
}

// AdjustStock handles PATCH /api/products/:id/stock requests.
//
// @Summary      Adjust product stock
// @Description  Sets a product's stock count in 250g base packages, as counted on the roastery shelf.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body dto.AdjustStockRequest true "New stock count"
// @Success      200 {object} dto.SuccessResponse "Updated product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products/{id}/stock [patch]
func (h *Handler) AdjustStock(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	req, err := BuildRequest[dto.AdjustStockRequest](c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	product, err := h.catalog.AdjustStock(c.Request.Context(), id, req.TotalPackages)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(product)
}

// GetStockReport handles GET /api/reports/stock requests.
//
// @Summary      Stock report
// @Description  Returns total, reserved and available weight per product, including inactive products.
// @Tags         Reports
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Stock report rows"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/reports/stock [get]
func (h *Handler) GetStockReport(c *gin.Context) {
	builder := NewResponseBuilder(c)

	rows, err := h.catalog.StockReport(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessOK(rows)
}
