package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personatable/timetable-api/internal/models"
)

func TestScheduleRepositoryGetEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM placements ORDER BY position ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "instructor_id", "day", "start_hour", "duration"}))
	mock.ExpectQuery("SELECT (.+) FROM unscheduled_entries ORDER BY position ASC").
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "remaining", "reason"}))

	schedule, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, schedule.Placements)
	assert.NotNil(t, schedule.Unscheduled)
	assert.Empty(t, schedule.Placements)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryReplace(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM placements")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM unscheduled_entries")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO placements").
		WithArgs("p1", 0, "c1", "i1", "Mon", 9, 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO unscheduled_entries").
		WithArgs(0, "c2", 2, models.ReasonNoFeasibleSlot).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTxx(context.Background(), nil)
	require.NoError(t, err)

	schedule := models.Schedule{
		Placements:  []models.Placement{{ID: "p1", CourseID: "c1", InstructorID: "i1", Day: "Mon", StartHour: 9, Duration: 1}},
		Unscheduled: []models.UnscheduledEntry{{CourseID: "c2", Remaining: 2, Reason: models.ReasonNoFeasibleSlot}},
	}
	require.NoError(t, repo.Replace(context.Background(), tx, schedule))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
