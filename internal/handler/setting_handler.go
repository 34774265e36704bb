package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/service"
)

// SettingHandler handles application settings endpoints.
type SettingHandler struct {
	settingService service.SettingService
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(settingService service.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// List handles GET /api/v1/settings
// @Summary List settings
// @Tags settings
// @Produce json
// @Success 200 {object} Response{data=[]domain.Setting} "All settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.settingService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, settings)
}

// Get handles GET /api/v1/settings/:key
// @Summary Get a setting
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} Response{data=domain.Setting} "Setting"
// @Failure 404 {object} ErrorResponseBody "Setting not found"
// @Security BearerAuth
// @Router /settings/{key} [get]
func (h *SettingHandler) Get(c *gin.Context) {
	setting, err := h.settingService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, setting)
}

// Upsert handles PUT /api/v1/settings
// @Summary Set a setting
// @Description Create or update a key/value setting
// @Tags settings
// @Accept json
// @Produce json
// @Param request body service.UpsertSettingInput true "Setting"
// @Success 200 {object} Response{data=domain.Setting} "Setting saved"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /settings [put]
func (h *SettingHandler) Upsert(c *gin.Context) {
	var input service.UpsertSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	setting, err := h.settingService.Upsert(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, setting)
}
