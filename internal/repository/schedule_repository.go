package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/personatable/timetable-api/internal/models"
)

// ScheduleRepository persists the generated schedule aggregate. The schedule
// is only ever replaced wholesale: a run either commits completely or leaves
// the previous schedule untouched.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Get loads the stored schedule.
func (r *ScheduleRepository) Get(ctx context.Context) (models.Schedule, error) {
	schedule := models.EmptySchedule()

	const placementsQuery = `SELECT id, course_id, instructor_id, day, start_hour, duration
		FROM placements ORDER BY position ASC`
	if err := r.db.SelectContext(ctx, &schedule.Placements, placementsQuery); err != nil {
		return models.Schedule{}, fmt.Errorf("list placements: %w", err)
	}

	const unscheduledQuery = `SELECT course_id, remaining, reason FROM unscheduled_entries ORDER BY position ASC`
	if err := r.db.SelectContext(ctx, &schedule.Unscheduled, unscheduledQuery); err != nil {
		return models.Schedule{}, fmt.Errorf("list unscheduled entries: %w", err)
	}

	if schedule.Placements == nil {
		schedule.Placements = []models.Placement{}
	}
	if schedule.Unscheduled == nil {
		schedule.Unscheduled = []models.UnscheduledEntry{}
	}
	return schedule, nil
}

// Replace swaps the stored schedule for the run's result inside the given
// transaction.
func (r *ScheduleRepository) Replace(ctx context.Context, tx *sqlx.Tx, schedule models.Schedule) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM placements`); err != nil {
		return fmt.Errorf("clear placements: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM unscheduled_entries`); err != nil {
		return fmt.Errorf("clear unscheduled entries: %w", err)
	}

	const placementQuery = `INSERT INTO placements (id, position, course_id, instructor_id, day, start_hour, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, p := range schedule.Placements {
		if _, err := tx.ExecContext(ctx, placementQuery, p.ID, i, p.CourseID, p.InstructorID, p.Day, p.StartHour, p.Duration); err != nil {
			return fmt.Errorf("insert placement %s: %w", p.ID, err)
		}
	}

	const unscheduledQuery = `INSERT INTO unscheduled_entries (position, course_id, remaining, reason)
		VALUES ($1, $2, $3, $4)`
	for i, u := range schedule.Unscheduled {
		if _, err := tx.ExecContext(ctx, unscheduledQuery, i, u.CourseID, u.Remaining, u.Reason); err != nil {
			return fmt.Errorf("insert unscheduled entry for %s: %w", u.CourseID, err)
		}
	}

	return nil
}
