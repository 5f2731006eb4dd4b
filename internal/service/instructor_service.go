package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/personatable/timetable-api/internal/models"
	"github.com/personatable/timetable-api/internal/timetable"
	appErrors "github.com/personatable/timetable-api/pkg/errors"
)

type instructorRepository interface {
	List(ctx context.Context) ([]models.Instructor, error)
	FindByID(ctx context.Context, id string) (*models.Instructor, error)
	Create(ctx context.Context, inst *models.Instructor) error
	Update(ctx context.Context, inst *models.Instructor) error
	Delete(ctx context.Context, id string) error
}

type courseRefCleaner interface {
	ClearInstructorRefs(ctx context.Context, instructorID string) error
}

// CreateInstructorRequest represents payload for creating instructors.
type CreateInstructorRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Availability [][]bool `json:"availability"`
}

// UpdateInstructorRequest represents payload for updating instructors.
type UpdateInstructorRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// UpdateAvailabilityRequest carries a full availability grid replacement.
type UpdateAvailabilityRequest struct {
	Availability [][]bool `json:"availability" validate:"required"`
}

// InstructorService orchestrates instructor operations. Every write path
// normalizes the availability grid against current settings before it is
// persisted.
type InstructorService struct {
	repo      instructorRepository
	courses   courseRefCleaner
	settings  settingsRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInstructorService constructs an InstructorService.
func NewInstructorService(repo instructorRepository, courses courseRefCleaner, settings settingsRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *InstructorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{repo: repo, courses: courses, settings: settings, cache: cache, validator: validate, logger: logger}
}

// List returns all instructors ordered by name.
func (s *InstructorService) List(ctx context.Context) ([]models.Instructor, error) {
	instructors, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructors")
	}
	return instructors, nil
}

// Get returns an instructor by id.
func (s *InstructorService) Get(ctx context.Context, id string) (*models.Instructor, error) {
	inst, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load instructor")
	}
	return inst, nil
}

// Create registers a new instructor. A missing availability grid defaults to
// fully available for the current grid dimensions.
func (s *InstructorService) Create(ctx context.Context, req CreateInstructorRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid instructor payload")
	}
	settings, err := s.currentSettings(ctx)
	if err != nil {
		return nil, err
	}

	inst := &models.Instructor{
		Name:         strings.TrimSpace(req.Name),
		Availability: req.Availability,
	}
	timetable.Normalize(inst, settings)

	if err := s.repo.Create(ctx, inst); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create instructor")
	}
	return inst, nil
}

// Update renames an existing instructor.
func (s *InstructorService) Update(ctx context.Context, id string, req UpdateInstructorRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid instructor payload")
	}

	inst, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	inst.Name = strings.TrimSpace(req.Name)
	if err := s.repo.Update(ctx, inst); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update instructor")
	}
	return inst, nil
}

// UpdateAvailability replaces the availability grid for an instructor.
func (s *InstructorService) UpdateAvailability(ctx context.Context, id string, req UpdateAvailabilityRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid availability payload")
	}

	inst, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	settings, err := s.currentSettings(ctx)
	if err != nil {
		return nil, err
	}

	inst.Availability = req.Availability
	timetable.Normalize(inst, settings)

	if err := s.repo.Update(ctx, inst); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update availability")
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, "timetable:*"); err != nil {
			s.logger.Warn("failed to invalidate timetable cache after availability change", zap.Error(err))
		}
	}
	return inst, nil
}

// Delete removes an instructor and blanks references from courses. Courses
// that pointed at the instructor keep scheduling with open availability.
func (s *InstructorService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete instructor")
	}
	if err := s.courses.ClearInstructorRefs(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear instructor references")
	}
	return nil
}

func (s *InstructorService) currentSettings(ctx context.Context) (models.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return models.Settings{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}
	return settings, nil
}
