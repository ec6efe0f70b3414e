package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/i18n"
)

// CreateReservation handles POST /api/reservations requests.
//
// @Summary      Reserve coffee
// @Description  Validates the selection against current availability and creates one active reservation per line. The whole selection is accepted or rejected; an overstocked line rejects everything. Supports idempotency via the Idempotency-Key header.
// @Tags         Reservations
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CreateReservationRequest true "Client and selection"
// @Success      201 {object} dto.SuccessResponse "Created reservations"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - selection exceeds available stock"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/reservations [post]
func (h *Handler) CreateReservation(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CreateReservationRequest](c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	reservations, err := h.reservations.Create(c.Request.Context(), *req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessCreated(reservations)
}

// ListReservations handles GET /api/reservations requests.
//
// @Summary      List reservations
// @Description  Returns reservations, newest first. Optional status filter (active, delivered, cancelled) and limit.
// @Tags         Reservations
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        limit query int false "Maximum number of reservations"
// @Success      200 {object} dto.SuccessResponse "Reservations"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown status"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/reservations [get]
func (h *Handler) ListReservations(c *gin.Context) {
	builder := NewResponseBuilder(c)

	status := model.ReservationStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		limit = parsed
	}

	reservations, err := h.reservations.List(c.Request.Context(), status, limit)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessOK(reservations)
}

// UpdateReservationStatus handles PATCH /api/reservations/:id/status requests.
//
// @Summary      Update reservation status
// @Description  Transitions a reservation to delivered or cancelled. Either transition frees the reserved weight. Terminal states cannot be left.
// @Tags         Reservations
// @Accept       json
// @Produce      json
// @Param        id path string true "Reservation ID"
// @Param        request body dto.UpdateReservationStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse "Updated reservation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid status"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Reservation not found"
// @Failure      409 {object} dto.ErrorResponse "Conflict - reservation already delivered or cancelled"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/reservations/{id}/status [patch]
func (h *Handler) UpdateReservationStatus(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateReservationStatusRequest](c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	reservation, err := h.reservations.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(reservation)
}
