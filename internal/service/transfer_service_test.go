package service

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/personatable/timetable-api/internal/models"
)

type mockInstructorReplacer struct {
	items    []models.Instructor
	replaced [][]models.Instructor
}

func (m *mockInstructorReplacer) List(ctx context.Context) ([]models.Instructor, error) {
	return m.items, nil
}

func (m *mockInstructorReplacer) ReplaceAll(ctx context.Context, tx *sqlx.Tx, instructors []models.Instructor) error {
	m.items = instructors
	m.replaced = append(m.replaced, instructors)
	return nil
}

type mockCourseReplacer struct {
	items    []models.Course
	replaced [][]models.Course
}

func (m *mockCourseReplacer) List(ctx context.Context) ([]models.Course, error) {
	return m.items, nil
}

func (m *mockCourseReplacer) ReplaceAll(ctx context.Context, tx *sqlx.Tx, courses []models.Course) error {
	m.items = courses
	m.replaced = append(m.replaced, courses)
	return nil
}

func TestTransferServiceExport(t *testing.T) {
	settings := &mockSettingsRepo{settings: models.DefaultSettings()}
	instructors := &mockInstructorReplacer{items: []models.Instructor{{ID: "i1", Name: "Dr. Reed"}}}
	courses := &mockCourseReplacer{items: []models.Course{{ID: "c1", Code: "MATH101"}}}
	schedule := &mockScheduleRepo{stored: models.EmptySchedule()}

	service := NewTransferService(settings, instructors, courses, schedule, nil, nil, zap.NewNop())

	doc, err := service.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DocumentVersion, doc.Version)
	assert.Len(t, doc.Instructors, 1)
	assert.Len(t, doc.Courses, 1)
	assert.NotNil(t, doc.Schedule.Placements)
}

func TestTransferServiceImportRejectsUnknownVersion(t *testing.T) {
	service := NewTransferService(&mockSettingsRepo{}, &mockInstructorReplacer{}, &mockCourseReplacer{}, &mockScheduleRepo{}, nil, nil, zap.NewNop())

	err := service.Import(context.Background(), models.Document{Version: 99})
	require.Error(t, err)
}

func TestTransferServiceImportSanitizes(t *testing.T) {
	tx, mock := newTxProviderMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	settings := &mockSettingsRepo{settings: models.DefaultSettings()}
	instructors := &mockInstructorReplacer{}
	courses := &mockCourseReplacer{}
	schedule := &mockScheduleRepo{}

	service := NewTransferService(settings, instructors, courses, schedule, tx, nil, zap.NewNop())

	doc := models.Document{
		Version:  models.DocumentVersion,
		Settings: models.Settings{StartHour: 2, EndHour: 30},
		Instructors: []models.Instructor{
			{ID: "i1", Name: "Dr. Reed", Availability: [][]bool{{false}}},
		},
		Courses: []models.Course{
			{ID: "c1", Code: "MATH101", Title: "Calculus", InstructorID: "ghost", SessionsPerWeek: 99, Duration: 9},
			{ID: "c2", Code: "PHY201", Title: "Physics", InstructorID: "i1", SessionsPerWeek: 2, Duration: 1},
		},
		Schedule: models.Schedule{
			Placements: []models.Placement{
				{ID: "p1", CourseID: "c1", Day: "Mon", StartHour: 8, Duration: 2},
				{ID: "p2", CourseID: "c1", Day: "Sun", StartHour: 8, Duration: 1},
				{ID: "p3", CourseID: "c2", Day: "Tue", StartHour: 21, Duration: 2},
			},
		},
	}

	require.NoError(t, service.Import(context.Background(), doc))

	require.Len(t, settings.updated, 1)
	imported := settings.updated[0]
	assert.Equal(t, models.MinStartHour, imported.StartHour)
	assert.Equal(t, models.MaxEndHour, imported.EndHour)
	assert.Equal(t, models.DefaultDays, imported.Days)

	require.Len(t, instructors.replaced, 1)
	grid := instructors.replaced[0][0].Availability
	require.Len(t, grid, len(imported.Days))
	assert.Len(t, grid[0], imported.HoursCount())
	assert.False(t, grid[0][0])

	require.Len(t, courses.replaced, 1)
	got := courses.replaced[0]
	assert.Equal(t, "", got[0].InstructorID)
	assert.Equal(t, models.MaxSessionsPerWeek, got[0].SessionsPerWeek)
	assert.Equal(t, models.MaxDuration, got[0].Duration)
	assert.Equal(t, "i1", got[1].InstructorID)

	require.Len(t, schedule.replaced, 1)
	require.Len(t, schedule.replaced[0].Placements, 1)
	assert.Equal(t, "p1", schedule.replaced[0].Placements[0].ID)
	assert.NotNil(t, schedule.replaced[0].Unscheduled)
	require.NoError(t, mock.ExpectationsWereMet())
}
