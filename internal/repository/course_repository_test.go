package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personatable/timetable-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCourseRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	rows := sqlmock.NewRows([]string{"id", "code", "title", "instructor_id", "sessions_per_week", "duration", "earliest_hour", "latest_hour", "preferred_days", "notes", "created_at", "updated_at"}).
		AddRow("c1", "CSC201", "Data Structures", "i1", 3, 1, 9, 16, "{Mon,Wed,Fri}", "", time.Now(), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM courses ORDER BY code ASC, id ASC").WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "CSC201", list[0].Code)
	assert.Equal(t, pq.StringArray{"Mon", "Wed", "Fri"}, list[0].PreferredDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("INSERT INTO courses").WillReturnResult(sqlmock.NewResult(1, 1))

	course := &models.Course{Code: "CSC201", Title: "Data Structures", SessionsPerWeek: 3, Duration: 1, EarliestHour: 9, LatestHour: 16}
	require.NoError(t, repo.Create(context.Background(), course))
	assert.NotEmpty(t, course.ID)
	assert.False(t, course.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryClearInstructorRefs(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE courses SET instructor_id = '', updated_at = $2 WHERE instructor_id = $1")).
		WithArgs("i1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.ClearInstructorRefs(context.Background(), "i1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
