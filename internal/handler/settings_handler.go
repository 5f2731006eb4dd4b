package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personatable/timetable-api/internal/models"
	"github.com/personatable/timetable-api/internal/service"
	appErrors "github.com/personatable/timetable-api/pkg/errors"
	"github.com/personatable/timetable-api/pkg/response"
)

type settingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, req service.UpdateSettingsRequest) (models.Settings, error)
}

// SettingsHandler wires grid settings to HTTP routes.
type SettingsHandler struct {
	settings settingsService
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(settings settingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get godoc
// @Summary Get grid settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings, nil)
}

// Update godoc
// @Summary Update grid settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body service.UpdateSettingsRequest true "Settings payload"
// @Success 200 {object} response.Envelope
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid settings payload"))
		return
	}
	settings, err := h.settings.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings, nil)
}
