package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/personatable/timetable-api/internal/models"
	"github.com/personatable/timetable-api/internal/timetable"
	appErrors "github.com/personatable/timetable-api/pkg/errors"
)

type instructorReplacer interface {
	List(ctx context.Context) ([]models.Instructor, error)
	ReplaceAll(ctx context.Context, tx *sqlx.Tx, instructors []models.Instructor) error
}

type courseReplacer interface {
	List(ctx context.Context) ([]models.Course, error)
	ReplaceAll(ctx context.Context, tx *sqlx.Tx, courses []models.Course) error
}

// TransferService moves the whole workspace in and out as one document.
// Import replaces everything atomically; a failed import leaves the stored
// state untouched.
type TransferService struct {
	settings    settingsRepository
	instructors instructorReplacer
	courses     courseReplacer
	schedule    scheduleRepository
	tx          txProvider
	cache       *CacheService
	logger      *zap.Logger
}

// NewTransferService constructs a TransferService.
func NewTransferService(
	settings settingsRepository,
	instructors instructorReplacer,
	courses courseReplacer,
	schedule scheduleRepository,
	tx txProvider,
	cache *CacheService,
	logger *zap.Logger,
) *TransferService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferService{
		settings:    settings,
		instructors: instructors,
		courses:     courses,
		schedule:    schedule,
		tx:          tx,
		cache:       cache,
		logger:      logger,
	}
}

// Export assembles the current workspace into an exchange document.
func (s *TransferService) Export(ctx context.Context) (*models.Document, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}
	instructors, err := s.instructors.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructors")
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	schedule, err := s.schedule.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
	}

	return &models.Document{
		Version:     models.DocumentVersion,
		Settings:    settings,
		Instructors: instructors,
		Courses:     courses,
		Schedule:    schedule,
	}, nil
}

// Import validates, sanitizes and atomically installs an exchange document.
// Settings are clamped, availability grids resized, course fields clamped
// and dangling instructor references blanked before anything is written.
func (s *TransferService) Import(ctx context.Context, doc models.Document) error {
	if doc.Version != models.DocumentVersion {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported document version %d", doc.Version))
	}

	settings := doc.Settings
	if len(settings.Days) == 0 {
		settings.Days = append([]string(nil), models.DefaultDays...)
	}
	settings.Clamp()

	instructors := make([]models.Instructor, len(doc.Instructors))
	copy(instructors, doc.Instructors)
	knownInstructors := make(map[string]bool, len(instructors))
	for i := range instructors {
		timetable.Normalize(&instructors[i], settings)
		knownInstructors[instructors[i].ID] = true
	}

	courses := make([]models.Course, len(doc.Courses))
	copy(courses, doc.Courses)
	for i := range courses {
		courses[i].Sanitize(settings)
		if courses[i].InstructorID != "" && !knownInstructors[courses[i].InstructorID] {
			courses[i].InstructorID = ""
		}
	}

	schedule := doc.Schedule
	dayIndex := make(map[string]bool, len(settings.Days))
	for _, day := range settings.Days {
		dayIndex[day] = true
	}
	placements := make([]models.Placement, 0, len(schedule.Placements))
	for _, p := range schedule.Placements {
		if !dayIndex[p.Day] {
			continue
		}
		if p.Duration < 1 || p.StartHour < settings.StartHour || p.StartHour+p.Duration > settings.EndHour {
			continue
		}
		placements = append(placements, p)
	}
	schedule.Placements = placements
	if schedule.Unscheduled == nil {
		schedule.Unscheduled = []models.UnscheduledEntry{}
	}

	if err := s.settings.Update(ctx, settings); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update settings")
	}

	if s.tx == nil {
		return appErrors.Clone(appErrors.ErrInternal, "transaction provider missing")
	}
	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}
	if err := s.instructors.ReplaceAll(ctx, tx, instructors); err != nil {
		_ = tx.Rollback()
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import instructors")
	}
	if err := s.courses.ReplaceAll(ctx, tx, courses); err != nil {
		_ = tx.Rollback()
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import courses")
	}
	if err := s.schedule.Replace(ctx, tx, schedule); err != nil {
		_ = tx.Rollback()
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import schedule")
	}
	if err := tx.Commit(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit import transaction")
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, "timetable:*"); err != nil {
			s.logger.Warn("failed to invalidate timetable cache after import", zap.Error(err))
		}
	}
	s.logger.Info("workspace imported",
		zap.Int("instructors", len(instructors)),
		zap.Int("courses", len(courses)),
		zap.Int("placements", len(schedule.Placements)))
	return nil
}
