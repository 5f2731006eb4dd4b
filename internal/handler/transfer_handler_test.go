package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personatable/timetable-api/internal/models"
)

type transferServiceMock struct {
	exportResp *models.Document
	importErr  error
	imported   []models.Document
}

func (m *transferServiceMock) Export(ctx context.Context) (*models.Document, error) {
	return m.exportResp, nil
}

func (m *transferServiceMock) Import(ctx context.Context, doc models.Document) error {
	m.imported = append(m.imported, doc)
	return m.importErr
}

func TestTransferHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTransferHandler(&transferServiceMock{exportResp: &models.Document{
		Version:  models.DocumentVersion,
		Settings: models.DefaultSettings(),
		Schedule: models.EmptySchedule(),
	}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/transfer/export", nil)

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "timetable.json")
	assert.Contains(t, w.Body.String(), `"version":1`)
}

func TestTransferHandlerImport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &transferServiceMock{}
	handler := NewTransferHandler(mock)

	doc := models.Document{Version: models.DocumentVersion, Settings: models.DefaultSettings()}
	body, _ := json.Marshal(doc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/transfer/import", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Import(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, mock.imported, 1)
	assert.Equal(t, models.DocumentVersion, mock.imported[0].Version)
}

func TestTransferHandlerImportInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTransferHandler(&transferServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/transfer/import", bytes.NewReader([]byte(`{`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Import(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
