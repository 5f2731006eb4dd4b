package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personatable/timetable-api/pkg/response"
)

type exportService interface {
	RenderCSV(ctx context.Context) ([]byte, error)
	RenderPDF(ctx context.Context) ([]byte, error)
}

// ExportHandler serves rendered timetable downloads.
type ExportHandler struct {
	exports exportService
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(exports exportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// CSV godoc
// @Summary Download the timetable as CSV
// @Tags Export
// @Produce text/csv
// @Success 200
// @Router /export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	payload, err := h.exports.RenderCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="timetable.csv"`)
	c.Data(http.StatusOK, "text/csv", payload)
}

// PDF godoc
// @Summary Download the timetable as PDF
// @Tags Export
// @Produce application/pdf
// @Success 200
// @Router /export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	payload, err := h.exports.RenderPDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="timetable.pdf"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}
