package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/personatable/timetable-api/internal/models"
)

const courseColumns = `id, code, title, instructor_id, sessions_per_week, duration, earliest_hour, latest_hour, preferred_days, notes, created_at, updated_at`

// CourseRepository manages persistence for courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns all courses ordered by code.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses ORDER BY code ASC, id ASC`, courseColumns)
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID fetches a course by ID.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE id = $1`, courseColumns)
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course record.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if course.CreatedAt.IsZero() {
		course.CreatedAt = now
	}
	course.UpdatedAt = now

	const query = `INSERT INTO courses (id, code, title, instructor_id, sessions_per_week, duration, earliest_hour, latest_hour, preferred_days, notes, created_at, updated_at)
		VALUES (:id, :code, :title, :instructor_id, :sessions_per_week, :duration, :earliest_hour, :latest_hour, :preferred_days, :notes, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update modifies an existing course record.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	course.UpdatedAt = time.Now().UTC()
	const query = `UPDATE courses SET code = :code, title = :title, instructor_id = :instructor_id,
		sessions_per_week = :sessions_per_week, duration = :duration, earliest_hour = :earliest_hour,
		latest_hour = :latest_hour, preferred_days = :preferred_days, notes = :notes, updated_at = :updated_at
		WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// Delete removes a course record.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM courses WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

// ClearInstructorRefs blanks instructor references pointing at a removed
// instructor so courses degrade to unassigned instead of dangling.
func (r *CourseRepository) ClearInstructorRefs(ctx context.Context, instructorID string) error {
	const query = `UPDATE courses SET instructor_id = '', updated_at = $2 WHERE instructor_id = $1`
	if _, err := r.db.ExecContext(ctx, query, instructorID, time.Now().UTC()); err != nil {
		return fmt.Errorf("clear instructor refs: %w", err)
	}
	return nil
}

// ReplaceAll swaps the full course set inside one transaction, used by
// document import.
func (r *CourseRepository) ReplaceAll(ctx context.Context, tx *sqlx.Tx, courses []models.Course) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("clear courses: %w", err)
	}
	const query = `INSERT INTO courses (id, code, title, instructor_id, sessions_per_week, duration, earliest_hour, latest_hour, preferred_days, notes, created_at, updated_at)
		VALUES (:id, :code, :title, :instructor_id, :sessions_per_week, :duration, :earliest_hour, :latest_hour, :preferred_days, :notes, :created_at, :updated_at)`
	for i := range courses {
		if _, err := tx.NamedExecContext(ctx, query, &courses[i]); err != nil {
			return fmt.Errorf("insert course %s: %w", courses[i].ID, err)
		}
	}
	return nil
}
