package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/personatable/timetable-api/internal/models"
)

// InstructorRepository manages persistence for instructors.
type InstructorRepository struct {
	db *sqlx.DB
}

// NewInstructorRepository constructs an InstructorRepository.
func NewInstructorRepository(db *sqlx.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// List returns all instructors ordered by name.
func (r *InstructorRepository) List(ctx context.Context) ([]models.Instructor, error) {
	const query = `SELECT id, name, availability, created_at, updated_at FROM instructors ORDER BY name ASC, id ASC`
	var instructors []models.Instructor
	if err := r.db.SelectContext(ctx, &instructors, query); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}

// FindByID fetches an instructor by ID.
func (r *InstructorRepository) FindByID(ctx context.Context, id string) (*models.Instructor, error) {
	const query = `SELECT id, name, availability, created_at, updated_at FROM instructors WHERE id = $1`
	var inst models.Instructor
	if err := r.db.GetContext(ctx, &inst, query, id); err != nil {
		return nil, err
	}
	return &inst, nil
}

// Create inserts a new instructor record.
func (r *InstructorRepository) Create(ctx context.Context, inst *models.Instructor) error {
	if inst.ID == "" {
		inst.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if inst.CreatedAt.IsZero() {
		inst.CreatedAt = now
	}
	inst.UpdatedAt = now

	const query = `INSERT INTO instructors (id, name, availability, created_at, updated_at)
		VALUES (:id, :name, :availability, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, inst); err != nil {
		return fmt.Errorf("create instructor: %w", err)
	}
	return nil
}

// Update modifies an existing instructor record.
func (r *InstructorRepository) Update(ctx context.Context, inst *models.Instructor) error {
	inst.UpdatedAt = time.Now().UTC()
	const query = `UPDATE instructors SET name = :name, availability = :availability, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, inst); err != nil {
		return fmt.Errorf("update instructor: %w", err)
	}
	return nil
}

// Delete removes an instructor record.
func (r *InstructorRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM instructors WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete instructor: %w", err)
	}
	return nil
}

// ReplaceAll swaps the full instructor set inside one transaction, used by
// document import.
func (r *InstructorRepository) ReplaceAll(ctx context.Context, tx *sqlx.Tx, instructors []models.Instructor) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM instructors`); err != nil {
		return fmt.Errorf("clear instructors: %w", err)
	}
	const query = `INSERT INTO instructors (id, name, availability, created_at, updated_at)
		VALUES (:id, :name, :availability, :created_at, :updated_at)`
	for i := range instructors {
		if _, err := tx.NamedExecContext(ctx, query, &instructors[i]); err != nil {
			return fmt.Errorf("insert instructor %s: %w", instructors[i].ID, err)
		}
	}
	return nil
}
