package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/personatable/timetable-api/internal/dto"
	"github.com/personatable/timetable-api/internal/models"
	"github.com/personatable/timetable-api/internal/timetable"
	appErrors "github.com/personatable/timetable-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

type instructorChecker interface {
	FindByID(ctx context.Context, id string) (*models.Instructor, error)
}

// CourseRequest represents payload for creating or updating a course.
type CourseRequest struct {
	Code            string   `json:"code" validate:"required,max=50"`
	Title           string   `json:"title" validate:"required,max=200"`
	InstructorID    string   `json:"instructorId"`
	SessionsPerWeek int      `json:"sessionsPerWeek" validate:"required,min=1,max=10"`
	Duration        int      `json:"duration" validate:"required,min=1,max=4"`
	EarliestHour    int      `json:"earliestHour" validate:"min=0,max=23"`
	LatestHour      int      `json:"latestHour" validate:"omitempty,min=1,max=24"`
	PreferredDays   []string `json:"preferredDays"`
	Notes           string   `json:"notes" validate:"max=1000"`
}

// CourseService orchestrates course operations.
type CourseService struct {
	repo        courseRepository
	instructors instructorChecker
	settings    settingsRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(repo courseRepository, instructors instructorChecker, settings settingsRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, instructors: instructors, settings: settings, validator: validate, logger: logger}
}

// List returns all courses ordered by code.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Get returns a course by id.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	return course, nil
}

// Create registers a new course.
func (s *CourseService) Create(ctx context.Context, req CourseRequest) (*models.Course, error) {
	course, err := s.buildCourse(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	return course, nil
}

// Update modifies an existing course.
func (s *CourseService) Update(ctx context.Context, id string, req CourseRequest) (*models.Course, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	course, err := s.buildCourse(ctx, req)
	if err != nil {
		return nil, err
	}
	course.ID = existing.ID
	course.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	return course, nil
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	return nil
}

// SortPreview returns courses in the order the scheduler would attempt them,
// with the tightness each one was ranked by.
func (s *CourseService) SortPreview(ctx context.Context) ([]dto.SortPreviewItem, error) {
	settings, err := s.currentSettings(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	sorted := timetable.SortByTightness(courses, settings)
	items := make([]dto.SortPreviewItem, 0, len(sorted))
	for _, course := range sorted {
		items = append(items, dto.SortPreviewItem{
			ID:         course.ID,
			Code:       course.Code,
			Title:      course.Title,
			Tightness:  timetable.Tightness(course, settings),
			WeeklyLoad: course.WeeklyLoad(),
		})
	}
	return items, nil
}

func (s *CourseService) buildCourse(ctx context.Context, req CourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	settings, err := s.currentSettings(ctx)
	if err != nil {
		return nil, err
	}

	instructorID := strings.TrimSpace(req.InstructorID)
	if instructorID != "" {
		if _, err := s.instructors.FindByID(ctx, instructorID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrValidation, "instructor does not exist")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify instructor")
		}
	}

	course := &models.Course{
		Code:            strings.TrimSpace(req.Code),
		Title:           strings.TrimSpace(req.Title),
		InstructorID:    instructorID,
		SessionsPerWeek: req.SessionsPerWeek,
		Duration:        req.Duration,
		EarliestHour:    req.EarliestHour,
		LatestHour:      req.LatestHour,
		PreferredDays:   req.PreferredDays,
		Notes:           strings.TrimSpace(req.Notes),
	}
	course.Sanitize(settings)
	return course, nil
}

func (s *CourseService) currentSettings(ctx context.Context) (models.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return models.Settings{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}
	return settings, nil
}
