package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/personatable/timetable-api/internal/models"
)

func TestDayScorePenalizesUnpreferredDays(t *testing.T) {
	course := models.Course{PreferredDays: []string{"Mon", "Wed"}}

	assert.Equal(t, 0.0, dayScore(course, "Mon"))
	assert.Equal(t, 2.0, dayScore(course, "Tue"))
	assert.Equal(t, 0.0, dayScore(models.Course{}, "Tue"), "no preference means every day scores zero")
}

func TestCandidateScorePrecedence(t *testing.T) {
	course := models.Course{EarliestHour: 8, PreferredDays: []string{"Mon"}}

	preferredLate := candidateScore(course, "Mon", 17, 9)
	unpreferredEarly := candidateScore(course, "Tue", 8, 0)
	assert.Less(t, preferredLate, unpreferredEarly, "day preference dominates time of day")

	early := candidateScore(course, "Mon", 9, 1)
	later := candidateScore(course, "Mon", 10, 2)
	assert.Less(t, early, later)
}

func TestTightnessCountsWindowSlots(t *testing.T) {
	settings := models.DefaultSettings()

	wide := models.Course{EarliestHour: 8, LatestHour: 18, Duration: 1}
	assert.Equal(t, 50, Tightness(wide, settings))

	narrow := models.Course{EarliestHour: 9, LatestHour: 12, Duration: 2}
	assert.Equal(t, 10, Tightness(narrow, settings))

	impossible := models.Course{EarliestHour: 9, LatestHour: 10, Duration: 3}
	assert.Equal(t, 0, Tightness(impossible, settings))
}

func TestSortByTightnessOrdering(t *testing.T) {
	settings := models.DefaultSettings()
	courses := []models.Course{
		{ID: "a", Code: "CSC301", EarliestHour: 8, LatestHour: 18, Duration: 1, SessionsPerWeek: 2},
		{ID: "b", Code: "MTH110", EarliestHour: 9, LatestHour: 12, Duration: 1, SessionsPerWeek: 1},
		{ID: "c", Code: "ART105", EarliestHour: 8, LatestHour: 18, Duration: 1, SessionsPerWeek: 4},
	}

	sorted := SortByTightness(courses, settings)

	assert.Equal(t, []string{"b", "c", "a"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID},
		"tightest first, then heavier weekly load, then code")
	assert.Equal(t, "a", courses[0].ID, "input order is untouched")
}

func TestSortByTightnessCodeTieBreak(t *testing.T) {
	settings := models.DefaultSettings()
	courses := []models.Course{
		{ID: "b", Code: "PHY101", EarliestHour: 8, LatestHour: 18, Duration: 1, SessionsPerWeek: 1},
		{ID: "a", Code: "CSC201", EarliestHour: 8, LatestHour: 18, Duration: 1, SessionsPerWeek: 1},
	}

	sorted := SortByTightness(courses, settings)
	assert.Equal(t, "CSC201", sorted[0].Code)
}
