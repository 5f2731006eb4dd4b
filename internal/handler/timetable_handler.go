package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personatable/timetable-api/internal/dto"
	"github.com/personatable/timetable-api/internal/models"
	"github.com/personatable/timetable-api/pkg/response"
)

type timetableService interface {
	Generate(ctx context.Context) (*dto.GenerateScheduleResponse, error)
	Get(ctx context.Context) (models.Schedule, error)
	Clear(ctx context.Context) error
}

// TimetableHandler wires the placement engine to HTTP routes.
type TimetableHandler struct {
	timetable timetableService
}

// NewTimetableHandler constructs a TimetableHandler.
func NewTimetableHandler(timetable timetableService) *TimetableHandler {
	return &TimetableHandler{timetable: timetable}
}

// Generate godoc
// @Summary Run the placement engine and replace the stored schedule
// @Tags Timetable
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetable/generate [post]
func (h *TimetableHandler) Generate(c *gin.Context) {
	result, err := h.timetable.Generate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Get godoc
// @Summary Get the stored schedule
// @Tags Timetable
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetable [get]
func (h *TimetableHandler) Get(c *gin.Context) {
	schedule, err := h.timetable.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule, nil)
}

// Clear godoc
// @Summary Remove every placement and unscheduled entry
// @Tags Timetable
// @Success 204
// @Router /timetable [delete]
func (h *TimetableHandler) Clear(c *gin.Context) {
	if err := h.timetable.Clear(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
