package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ledgerly/internal/service"
)

// PaymentModeHandler handles payment mode endpoints.
type PaymentModeHandler struct {
	paymentModeService service.PaymentModeService
}

// NewPaymentModeHandler creates a new PaymentModeHandler.
func NewPaymentModeHandler(paymentModeService service.PaymentModeService) *PaymentModeHandler {
	return &PaymentModeHandler{paymentModeService: paymentModeService}
}

// Create handles POST /api/v1/payment-modes
// @Summary Create a payment mode
// @Tags payment-modes
// @Accept json
// @Produce json
// @Param request body service.CreatePaymentModeInput true "Payment mode details"
// @Success 201 {object} Response{data=domain.PaymentMode} "Payment mode created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /payment-modes [post]
func (h *PaymentModeHandler) Create(c *gin.Context) {
	var input service.CreatePaymentModeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	mode, err := h.paymentModeService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, mode)
}

// List handles GET /api/v1/payment-modes
// @Summary List payment modes
// @Tags payment-modes
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.PaymentMode,meta=PagMeta} "List of payment modes"
// @Security BearerAuth
// @Router /payment-modes [get]
func (h *PaymentModeHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	modes, total, err := h.paymentModeService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, modes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/payment-modes/:id
// @Summary Get payment mode by ID
// @Tags payment-modes
// @Produce json
// @Param id path string true "Payment mode ID (UUID)"
// @Success 200 {object} Response{data=domain.PaymentMode} "Payment mode details"
// @Failure 404 {object} ErrorResponseBody "Payment mode not found"
// @Security BearerAuth
// @Router /payment-modes/{id} [get]
func (h *PaymentModeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment mode ID")
		return
	}

	mode, err := h.paymentModeService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, mode)
}

// Update handles PATCH /api/v1/payment-modes/:id
// @Summary Update a payment mode
// @Tags payment-modes
// @Accept json
// @Produce json
// @Param id path string true "Payment mode ID (UUID)"
// @Param request body service.UpdatePaymentModeInput true "Fields to update"
// @Success 200 {object} Response{data=domain.PaymentMode} "Payment mode updated"
// @Failure 404 {object} ErrorResponseBody "Payment mode not found"
// @Security BearerAuth
// @Router /payment-modes/{id} [patch]
func (h *PaymentModeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment mode ID")
		return
	}

	var input service.UpdatePaymentModeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	mode, err := h.paymentModeService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, mode)
}

// Delete handles DELETE /api/v1/payment-modes/:id
// @Summary Delete a payment mode
// @Tags payment-modes
// @Produce json
// @Param id path string true "Payment mode ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Payment mode deleted"
// @Failure 404 {object} ErrorResponseBody "Payment mode not found"
// @Security BearerAuth
// @Router /payment-modes/{id} [delete]
func (h *PaymentModeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment mode ID")
		return
	}

	if err := h.paymentModeService.Remove(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "payment mode deleted"})
}
