package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ledgerly/internal/service"
)

// TaxHandler handles tax rate endpoints.
type TaxHandler struct {
	taxService service.TaxService
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(taxService service.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

// Create handles POST /api/v1/taxes
// @Summary Create a tax rate
// @Tags taxes
// @Accept json
// @Produce json
// @Param request body service.CreateTaxInput true "Tax details"
// @Success 201 {object} Response{data=domain.Tax} "Tax created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /taxes [post]
func (h *TaxHandler) Create(c *gin.Context) {
	var input service.CreateTaxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tax, err := h.taxService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, tax)
}

// List handles GET /api/v1/taxes
// @Summary List tax rates
// @Tags taxes
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Tax,meta=PagMeta} "List of taxes"
// @Security BearerAuth
// @Router /taxes [get]
func (h *TaxHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	taxes, total, err := h.taxService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, taxes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/taxes/:id
// @Summary Get tax rate by ID
// @Tags taxes
// @Produce json
// @Param id path string true "Tax ID (UUID)"
// @Success 200 {object} Response{data=domain.Tax} "Tax details"
// @Failure 404 {object} ErrorResponseBody "Tax not found"
// @Security BearerAuth
// @Router /taxes/{id} [get]
func (h *TaxHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid tax ID")
		return
	}

	tax, err := h.taxService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tax)
}

// Update handles PATCH /api/v1/taxes/:id
// @Summary Update a tax rate
// @Tags taxes
// @Accept json
// @Produce json
// @Param id path string true "Tax ID (UUID)"
// @Param request body service.UpdateTaxInput true "Fields to update"
// @Success 200 {object} Response{data=domain.Tax} "Tax updated"
// @Failure 404 {object} ErrorResponseBody "Tax not found"
// @Security BearerAuth
// @Router /taxes/{id} [patch]
func (h *TaxHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid tax ID")
		return
	}

	var input service.UpdateTaxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tax, err := h.taxService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tax)
}

// Delete handles DELETE /api/v1/taxes/:id
// @Summary Delete a tax rate
// @Tags taxes
// @Produce json
// @Param id path string true "Tax ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Tax deleted"
// @Failure 404 {object} ErrorResponseBody "Tax not found"
// @Security BearerAuth
// @Router /taxes/{id} [delete]
func (h *TaxHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid tax ID")
		return
	}

	if err := h.taxService.Remove(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "tax deleted"})
}
