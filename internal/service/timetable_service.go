package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/personatable/timetable-api/internal/dto"
	"github.com/personatable/timetable-api/internal/models"
	"github.com/personatable/timetable-api/internal/timetable"
	appErrors "github.com/personatable/timetable-api/pkg/errors"
)

const timetableCacheKey = "timetable:schedule"

type scheduleRepository interface {
	Get(ctx context.Context) (models.Schedule, error)
	Replace(ctx context.Context, tx *sqlx.Tx, schedule models.Schedule) error
}

type instructorLister interface {
	List(ctx context.Context) ([]models.Instructor, error)
}

type courseLister interface {
	List(ctx context.Context) ([]models.Course, error)
}

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// TimetableService runs the placement engine and persists its output. The
// stored schedule is replaced wholesale on every run.
type TimetableService struct {
	settings    settingsRepository
	instructors instructorLister
	courses     courseLister
	schedule    scheduleRepository
	tx          txProvider
	cache       *CacheService
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewTimetableService wires scheduler dependencies.
func NewTimetableService(
	settings settingsRepository,
	instructors instructorLister,
	courses courseLister,
	schedule scheduleRepository,
	tx txProvider,
	cache *CacheService,
	metrics *MetricsService,
	logger *zap.Logger,
) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		settings:    settings,
		instructors: instructors,
		courses:     courses,
		schedule:    schedule,
		tx:          tx,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
	}
}

// Generate loads the full workspace, runs the placement engine, and replaces
// the stored schedule inside one transaction.
func (s *TimetableService) Generate(ctx context.Context) (*dto.GenerateScheduleResponse, error) {
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

	started := time.Now()
	schedule := timetable.Generate(settings, instructors, courses)
	elapsed := time.Since(started)

	if err := s.persist(ctx, schedule); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, "timetable:*"); err != nil {
			s.logger.Warn("failed to invalidate timetable cache after generation", zap.Error(err))
		}
	}

	stats := buildScheduleStats(schedule, len(courses))
	if s.metrics != nil {
		s.metrics.ObserveSchedulerRun(stats.PlacedSessions, stats.UnscheduledSessions, elapsed)
	}
	s.logger.Info("timetable generated",
		zap.Int("placed_sessions", stats.PlacedSessions),
		zap.Int("placed_hours", stats.PlacedHours),
		zap.Int("unscheduled_sessions", stats.UnscheduledSessions),
		zap.Duration("elapsed", elapsed))

	return &dto.GenerateScheduleResponse{
		Placements:  schedule.Placements,
		Unscheduled: schedule.Unscheduled,
		Stats:       stats,
	}, nil
}

// Get returns the stored schedule, reading through the cache when enabled.
func (s *TimetableService) Get(ctx context.Context) (models.Schedule, error) {
	if s.cache != nil {
		var cached models.Schedule
		hit, err := s.cache.Get(ctx, timetableCacheKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	start := time.Now()
	schedule, err := s.schedule.Get(ctx)
	if err != nil {
		return models.Schedule{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("schedule_get", time.Since(start))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, timetableCacheKey, schedule, 0); err != nil {
			s.logger.Warn("failed to cache schedule", zap.Error(err))
		}
	}
	return schedule, nil
}

// Clear removes every placement and unscheduled entry.
func (s *TimetableService) Clear(ctx context.Context) error {
	if err := s.persist(ctx, models.EmptySchedule()); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, "timetable:*"); err != nil {
			s.logger.Warn("failed to invalidate timetable cache after clear", zap.Error(err))
		}
	}
	return nil
}

func (s *TimetableService) persist(ctx context.Context, schedule models.Schedule) error {
	if s.tx == nil {
		return appErrors.Clone(appErrors.ErrInternal, "transaction provider missing")
	}
	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}
	if err := s.schedule.Replace(ctx, tx, schedule); err != nil {
		_ = tx.Rollback()
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist schedule")
	}
	if err := tx.Commit(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit schedule transaction")
	}
	return nil
}

func buildScheduleStats(schedule models.Schedule, courseCount int) dto.ScheduleStats {
	unscheduled := 0
	for _, entry := range schedule.Unscheduled {
		unscheduled += entry.Remaining
	}
	return dto.ScheduleStats{
		PlacedSessions:      len(schedule.Placements),
		PlacedHours:         schedule.PlacedHours(),
		UnscheduledSessions: unscheduled,
		CourseCount:         courseCount,
	}
}
