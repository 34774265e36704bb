package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ledgerly/internal/service"
)

// QuoteHandler handles quote endpoints.
type QuoteHandler struct {
	quoteService service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// Create handles POST /api/v1/quotes
// @Summary Create a quote
// @Description Create a quote; totals are computed server-side
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body service.CreateQuoteInput true "Quote details"
// @Success 201 {object} Response{data=domain.Quote} "Quote created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Client not found"
// @Security BearerAuth
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input service.CreateQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	q, err := h.quoteService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, q)
}

// List handles GET /api/v1/quotes
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Quote,meta=PagMeta} "List of quotes"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	quotes, total, err := h.quoteService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, quotes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/quotes/:id
// @Summary Get quote by ID
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 200 {object} Response{data=domain.Quote} "Quote details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Quote not found"
// @Security BearerAuth
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quote ID")
		return
	}

	q, err := h.quoteService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, q)
}

// Update handles PATCH /api/v1/quotes/:id
// @Summary Update a quote
// @Description Update quote fields; totals are recomputed. Converted quotes are immutable.
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Param request body service.UpdateQuoteInput true "Fields to update"
// @Success 200 {object} Response{data=domain.Quote} "Quote updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Quote not found"
// @Failure 409 {object} ErrorResponseBody "Quote already converted"
// @Security BearerAuth
// @Router /quotes/{id} [patch]
func (h *QuoteHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quote ID")
		return
	}

	var input service.UpdateQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	q, err := h.quoteService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, q)
}

// Convert handles POST /api/v1/quotes/:id/convert
// @Summary Convert a quote to an invoice
// @Description Create a pending invoice from the quote; a quote converts at most once
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 201 {object} Response{data=domain.Invoice} "Invoice created from quote"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Quote not found"
// @Failure 409 {object} ErrorResponseBody "Quote already converted"
// @Security BearerAuth
// @Router /quotes/{id}/convert [post]
func (h *QuoteHandler) Convert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quote ID")
		return
	}

	inv, err := h.quoteService.ConvertToInvoice(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, inv)
}

// Delete handles DELETE /api/v1/quotes/:id
// @Summary Delete a quote
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Quote deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Quote not found"
// @Security BearerAuth
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quote ID")
		return
	}

	if err := h.quoteService.Remove(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "quote deleted"})
}
