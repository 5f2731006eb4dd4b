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

	"github.com/personatable/timetable-api/internal/dto"
	"github.com/personatable/timetable-api/internal/models"
	"github.com/personatable/timetable-api/internal/service"
)

type courseServiceMock struct {
	listResp    []models.Course
	createResp  *models.Course
	createErr   error
	previewResp []dto.SortPreviewItem
	deleted     []string
}

func (m *courseServiceMock) List(ctx context.Context) ([]models.Course, error) {
	return m.listResp, nil
}

func (m *courseServiceMock) Get(ctx context.Context, id string) (*models.Course, error) {
	return &models.Course{ID: id}, nil
}

func (m *courseServiceMock) Create(ctx context.Context, req service.CourseRequest) (*models.Course, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.createResp, nil
}

func (m *courseServiceMock) Update(ctx context.Context, id string, req service.CourseRequest) (*models.Course, error) {
	return &models.Course{ID: id, Code: req.Code}, nil
}

func (m *courseServiceMock) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *courseServiceMock) SortPreview(ctx context.Context) ([]dto.SortPreviewItem, error) {
	return m.previewResp, nil
}

func TestCourseHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &courseServiceMock{createResp: &models.Course{ID: "c1", Code: "MATH101"}}
	handler := NewCourseHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(service.CourseRequest{Code: "MATH101", Title: "Calculus", SessionsPerWeek: 2, Duration: 1})
	c.Request, _ = http.NewRequest(http.MethodPost, "/courses", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "MATH101")
}

func TestCourseHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCourseHandler(&courseServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/courses", bytes.NewReader([]byte(`not-json`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandlerSortPreview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCourseHandler(&courseServiceMock{previewResp: []dto.SortPreviewItem{
		{ID: "c2", Code: "TIGHT", Tightness: 10},
		{ID: "c1", Code: "LOOSE", Tightness: 50},
	}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/courses/sort-preview", nil)

	handler.SortPreview(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []dto.SortPreviewItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "TIGHT", envelope.Data[0].Code)
}

func TestCourseHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &courseServiceMock{}
	handler := NewCourseHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/courses/c1", nil)
	c.Params = gin.Params{{Key: "id", Value: "c1"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"c1"}, mock.deleted)
}
