package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
)

// CalculateEvent handles POST /api/calculators/event requests.
//
// @Summary      Event consumption calculator
// @Description  Estimates coffee consumption for a sponsored event using the 10ml-per-gram brewing rule, and expresses the result in 250g packages.
// @Tags         Calculators
// @Accept       json
// @Produce      json
// @Param        request body dto.EventCalculationRequest true "Event parameters"
// @Success      200 {object} dto.SuccessResponse "Consumption estimate"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/calculators/event [post]
func (h *Handler) CalculateEvent(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.EventCalculationRequest](c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	result, err := h.calculator.Event(*req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessOK(result)
}

// CalculateInternalUse handles POST /api/calculators/internal-use requests.
//
// @Summary      Internal-use consumption calculator
// @Description  Estimates office coffee consumption for a client company over a supply period.
// @Tags         Calculators
// @Accept       json
// @Produce      json
// @Param        request body dto.InternalUseCalculationRequest true "Office consumption parameters"
// @Success      200 {object} dto.SuccessResponse "Consumption estimate"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/calculators/internal-use [post]
func (h *Handler) CalculateInternalUse(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.InternalUseCalculationRequest](c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	result, err := h.calculator.InternalUse(*req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessOK(result)
}

// ReconcileSelection handles POST /api/selections/reconcile requests.
//
// @Summary      Reconcile a selection against a calculation
// @Description  Compares a package selection against a calculator target in 250g-equivalent packages. The delta is advisory; an over- or under-selection does not block anything.
// @Tags         Calculators
// @Accept       json
// @Produce      json
// @Param        request body dto.ReconcileRequest true "Calculation target and selection"
// @Success      200 {object} dto.SuccessResponse "Reconciliation delta"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/selections/reconcile [post]
func (h *Handler) ReconcileSelection(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ReconcileRequest](c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	reconciliation, err := h.engine.Reconcile(req.Result, req.Lines)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	builder.SuccessOK(reconciliation)
}
