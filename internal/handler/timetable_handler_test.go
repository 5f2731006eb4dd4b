package handler

import (
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
	appErrors "github.com/personatable/timetable-api/pkg/errors"
)

type timetableServiceMock struct {
	generateResp *dto.GenerateScheduleResponse
	generateErr  error
	getResp      models.Schedule
	clearErr     error
	cleared      int
}

func (m *timetableServiceMock) Generate(ctx context.Context) (*dto.GenerateScheduleResponse, error) {
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return m.generateResp, nil
}

func (m *timetableServiceMock) Get(ctx context.Context) (models.Schedule, error) {
	return m.getResp, nil
}

func (m *timetableServiceMock) Clear(ctx context.Context) error {
	m.cleared++
	return m.clearErr
}

func TestTimetableHandlerGenerate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &timetableServiceMock{generateResp: &dto.GenerateScheduleResponse{
		Placements: []models.Placement{
			{ID: "p1", CourseID: "c1", Day: "Mon", StartHour: 8, Duration: 1},
		},
		Unscheduled: []models.UnscheduledEntry{},
		Stats:       dto.ScheduleStats{PlacedSessions: 1, PlacedHours: 1, CourseCount: 1},
	}}
	handler := NewTimetableHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/timetable/generate", nil)

	handler.Generate(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data dto.GenerateScheduleResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.Placements, 1)
	assert.Equal(t, 1, envelope.Data.Stats.PlacedSessions)
}

func TestTimetableHandlerGenerateError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTimetableHandler(&timetableServiceMock{generateErr: appErrors.ErrInternal})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/timetable/generate", nil)

	handler.Generate(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTimetableHandlerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTimetableHandler(&timetableServiceMock{getResp: models.EmptySchedule()})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/timetable", nil)

	handler.Get(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"placements":[]`)
}

func TestTimetableHandlerClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &timetableServiceMock{}
	handler := NewTimetableHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/timetable", nil)

	handler.Clear(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, mock.cleared)
}
