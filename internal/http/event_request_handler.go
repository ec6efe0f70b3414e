package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/i18n"
)

// SubmitEventRequest handles POST /api/event-requests requests.
//
// @Summary      Submit a calculator request
// @Description  Persists a calculator submission together with the selection the client settled on. The result is recomputed server-side from the submitted inputs; the stored delta records any advisory over- or under-selection.
// @Tags         EventRequests
// @Accept       json
// @Produce      json
// @Param        request body dto.SubmitEventRequestRequest true "Calculator inputs and selection"
// @Success      201 {object} dto.SuccessResponse "Stored submission"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/event-requests [post]
func (h *Handler) SubmitEventRequest(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SubmitEventRequestRequest](c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	record, err := h.events.Submit(c.Request.Context(), *req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessCreated(record)
}

// ListEventRequests handles GET /api/event-requests requests.
//
// @Summary      List calculator submissions
// @Description  Returns calculator submissions, newest first, for logistics follow-up.
// @Tags         EventRequests
// @Produce      json
// @Param        limit query int false "Maximum number of submissions"
// @Success      200 {object} dto.SuccessResponse "Submissions"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/event-requests [get]
func (h *Handler) ListEventRequests(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		limit = parsed
	}

	records, err := h.events.List(c.Request.Context(), limit)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessOK(records)
}
