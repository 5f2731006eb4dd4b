package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/personatable/timetable-api/internal/models"
)

type mockScheduleRepo struct {
	stored   models.Schedule
	replaced []models.Schedule
	getErr   error
}

func (m *mockScheduleRepo) Get(ctx context.Context) (models.Schedule, error) {
	if m.getErr != nil {
		return models.Schedule{}, m.getErr
	}
	return m.stored, nil
}

func (m *mockScheduleRepo) Replace(ctx context.Context, tx *sqlx.Tx, schedule models.Schedule) error {
	m.stored = schedule
	m.replaced = append(m.replaced, schedule)
	return nil
}

type mockInstructorLister struct {
	items []models.Instructor
}

func (m *mockInstructorLister) List(ctx context.Context) ([]models.Instructor, error) {
	return m.items, nil
}

type mockCourseLister struct {
	items []models.Course
}

func (m *mockCourseLister) List(ctx context.Context) ([]models.Course, error) {
	return m.items, nil
}

type txProviderMock struct {
	db *sqlx.DB
}

func (t *txProviderMock) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return t.db.BeginTxx(ctx, opts)
}

func newTxProviderMock(t *testing.T) (*txProviderMock, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &txProviderMock{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestTimetableServiceGeneratePersistsSchedule(t *testing.T) {
	tx, mock := newTxProviderMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	schedule := &mockScheduleRepo{}
	service := NewTimetableService(
		&mockSettingsRepo{settings: models.DefaultSettings()},
		&mockInstructorLister{},
		&mockCourseLister{items: []models.Course{
			{ID: "c1", Code: "MATH101", Title: "Calculus", SessionsPerWeek: 2, Duration: 1, EarliestHour: 8, LatestHour: 18},
		}},
		schedule,
		tx,
		nil,
		nil,
		zap.NewNop(),
	)

	resp, err := service.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, schedule.replaced, 1)
	assert.Len(t, resp.Placements, 2)
	assert.Empty(t, resp.Unscheduled)
	assert.Equal(t, 2, resp.Stats.PlacedSessions)
	assert.Equal(t, 2, resp.Stats.PlacedHours)
	assert.Equal(t, 0, resp.Stats.UnscheduledSessions)
	assert.Equal(t, 1, resp.Stats.CourseCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableServiceGenerateReportsUnscheduled(t *testing.T) {
	tx, mock := newTxProviderMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	schedule := &mockScheduleRepo{}
	service := NewTimetableService(
		&mockSettingsRepo{settings: models.DefaultSettings()},
		&mockInstructorLister{},
		&mockCourseLister{items: []models.Course{
			{ID: "c1", Code: "ORPHAN", Title: "Orphan", InstructorID: "ghost", SessionsPerWeek: 3, Duration: 1, EarliestHour: 8, LatestHour: 18},
		}},
		schedule,
		tx,
		nil,
		nil,
		zap.NewNop(),
	)

	resp, err := service.Generate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Placements)
	require.Len(t, resp.Unscheduled, 1)
	assert.Equal(t, models.ReasonInstructorMissing, resp.Unscheduled[0].Reason)
	assert.Equal(t, 3, resp.Stats.UnscheduledSessions)
}

func TestTimetableServiceGetReadsRepository(t *testing.T) {
	stored := models.Schedule{
		Placements: []models.Placement{
			{ID: "p1", CourseID: "c1", Day: "Mon", StartHour: 8, Duration: 1},
		},
		Unscheduled: []models.UnscheduledEntry{},
	}
	service := NewTimetableService(
		&mockSettingsRepo{settings: models.DefaultSettings()},
		&mockInstructorLister{},
		&mockCourseLister{},
		&mockScheduleRepo{stored: stored},
		nil,
		nil,
		nil,
		zap.NewNop(),
	)

	schedule, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, schedule)
}

func TestTimetableServiceClear(t *testing.T) {
	tx, mock := newTxProviderMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	schedule := &mockScheduleRepo{stored: models.Schedule{
		Placements: []models.Placement{{ID: "p1"}},
	}}
	service := NewTimetableService(
		&mockSettingsRepo{settings: models.DefaultSettings()},
		&mockInstructorLister{},
		&mockCourseLister{},
		schedule,
		tx,
		nil,
		nil,
		zap.NewNop(),
	)

	require.NoError(t, service.Clear(context.Background()))
	assert.Empty(t, schedule.stored.Placements)
	assert.NotNil(t, schedule.stored.Placements)
	require.NoError(t, mock.ExpectationsWereMet())
}
