package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/personatable/timetable-api/internal/models"
)

type mockSettingsRepo struct {
	settings models.Settings
	getErr   error
	updated  []models.Settings
}

func (m *mockSettingsRepo) Get(ctx context.Context) (models.Settings, error) {
	if m.getErr != nil {
		return models.Settings{}, m.getErr
	}
	return m.settings, nil
}

func (m *mockSettingsRepo) Update(ctx context.Context, settings models.Settings) error {
	m.settings = settings
	m.updated = append(m.updated, settings)
	return nil
}

type mockInstructorResizer struct {
	items   []models.Instructor
	updated []models.Instructor
}

func (m *mockInstructorResizer) List(ctx context.Context) ([]models.Instructor, error) {
	return m.items, nil
}

func (m *mockInstructorResizer) Update(ctx context.Context, inst *models.Instructor) error {
	m.updated = append(m.updated, *inst)
	return nil
}

func TestSettingsServiceUpdateClampsBounds(t *testing.T) {
	repo := &mockSettingsRepo{settings: models.DefaultSettings()}
	instructors := &mockInstructorResizer{}
	service := NewSettingsService(repo, instructors, nil, validator.New(), zap.NewNop())

	updated, err := service.Update(context.Background(), UpdateSettingsRequest{StartHour: 3, EndHour: 23})
	require.NoError(t, err)
	assert.Equal(t, models.MinStartHour, updated.StartHour)
	assert.Equal(t, models.MaxEndHour, updated.EndHour)
	assert.Equal(t, models.DefaultDays, updated.Days)
	require.Len(t, repo.updated, 1)
}

func TestSettingsServiceUpdateResizesAvailability(t *testing.T) {
	repo := &mockSettingsRepo{settings: models.DefaultSettings()}
	instructors := &mockInstructorResizer{
		items: []models.Instructor{
			{ID: "i1", Name: "Dr. Reed", Availability: [][]bool{{true, false}}},
		},
	}
	service := NewSettingsService(repo, instructors, nil, validator.New(), zap.NewNop())

	updated, err := service.Update(context.Background(), UpdateSettingsRequest{StartHour: 9, EndHour: 15})
	require.NoError(t, err)

	require.Len(t, instructors.updated, 1)
	grid := instructors.updated[0].Availability
	require.Len(t, grid, len(updated.Days))
	for _, row := range grid {
		assert.Len(t, row, updated.HoursCount())
	}
	// existing marks survive the resize
	assert.True(t, grid[0][0])
	assert.False(t, grid[0][1])
	// padded slots default to available
	assert.True(t, grid[1][0])
}
