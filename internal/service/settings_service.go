package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/personatable/timetable-api/internal/models"
	"github.com/personatable/timetable-api/internal/timetable"
	appErrors "github.com/personatable/timetable-api/pkg/errors"
)

type settingsRepository interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, settings models.Settings) error
}

type instructorResizer interface {
	List(ctx context.Context) ([]models.Instructor, error)
	Update(ctx context.Context, inst *models.Instructor) error
}

// UpdateSettingsRequest carries the new grid dimensions.
type UpdateSettingsRequest struct {
	StartHour int `json:"startHour" validate:"required,min=0,max=23"`
	EndHour   int `json:"endHour" validate:"required,min=1,max=24"`
}

// SettingsService manages the timetable grid dimensions. Changing them
// resizes every instructor availability grid so the engine never sees
// mismatched dimensions.
type SettingsService struct {
	repo        settingsRepository
	instructors instructorResizer
	cache       *CacheService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(repo settingsRepository, instructors instructorResizer, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, instructors: instructors, cache: cache, validator: validate, logger: logger}
}

// Get returns the current grid settings.
func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return models.Settings{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}
	return settings, nil
}

// Update clamps and persists new grid dimensions, then renormalizes every
// instructor availability grid to the new shape.
func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (models.Settings, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Settings{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid settings payload")
	}

	settings := models.Settings{
		Days:      append([]string(nil), models.DefaultDays...),
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
	}
	settings.Clamp()

	if err := s.repo.Update(ctx, settings); err != nil {
		return models.Settings{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update settings")
	}

	if err := s.renormalizeInstructors(ctx, settings); err != nil {
		return models.Settings{}, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, "timetable:*"); err != nil {
			s.logger.Warn("failed to invalidate timetable cache after settings change", zap.Error(err))
		}
	}

	return settings, nil
}

func (s *SettingsService) renormalizeInstructors(ctx context.Context, settings models.Settings) error {
	instructors, err := s.instructors.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructors")
	}
	for i := range instructors {
		inst := &instructors[i]
		timetable.Normalize(inst, settings)
		if err := s.instructors.Update(ctx, inst); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resize instructor availability")
		}
	}
	return nil
}
