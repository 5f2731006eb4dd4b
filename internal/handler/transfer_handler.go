package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personatable/timetable-api/internal/models"
	appErrors "github.com/personatable/timetable-api/pkg/errors"
	"github.com/personatable/timetable-api/pkg/response"
)

type transferService interface {
	Export(ctx context.Context) (*models.Document, error)
	Import(ctx context.Context, doc models.Document) error
}

// TransferHandler exposes whole-workspace import and export.
type TransferHandler struct {
	transfer transferService
}

// NewTransferHandler constructs a TransferHandler.
func NewTransferHandler(transfer transferService) *TransferHandler {
	return &TransferHandler{transfer: transfer}
}

// Export godoc
// @Summary Export the workspace as an exchange document
// @Tags Transfer
// @Produce json
// @Success 200 {object} models.Document
// @Router /transfer/export [get]
func (h *TransferHandler) Export(c *gin.Context) {
	doc, err := h.transfer.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="timetable.json"`)
	c.JSON(http.StatusOK, doc)
}

// Import godoc
// @Summary Replace the workspace from an exchange document
// @Tags Transfer
// @Accept json
// @Success 204
// @Router /transfer/import [post]
func (h *TransferHandler) Import(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid document payload"))
		return
	}
	if err := h.transfer.Import(c.Request.Context(), doc); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
