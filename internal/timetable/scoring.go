package timetable

import (
	"sort"

	"github.com/personatable/timetable-api/internal/models"
)

// dayScore penalizes days outside the course's preferred set. The margin (2,
// weighted x10 in candidateScore) always dominates time-of-day scoring.
func dayScore(course models.Course, day string) float64 {
	if len(course.PreferredDays) == 0 || course.PrefersDay(day) {
		return 0
	}
	return 2
}

// timeScore applies a small penalty for later starts within the window,
// biasing toward the earliest feasible time.
func timeScore(course models.Course, startHour int) float64 {
	return float64(startHour-course.EarliestHour) * 0.05
}

// candidateScore orders candidates lexicographically: day preference, then
// time-of-day, then absolute hour offset as a deterministic tie-break. No two
// distinct candidates score identically, so the minimum is always unique.
func candidateScore(course models.Course, day string, startHour, hourOffset int) float64 {
	return dayScore(course, day)*10 + timeScore(course, startHour) + float64(hourOffset)*0.01
}

// Tightness counts the (day, startHour) pairs satisfying the course's own
// window, ignoring every other course and instructor. It is a static measure
// of how constrained the course is, used only for ordering.
func Tightness(course models.Course, settings models.Settings) int {
	perDay := course.LatestHour - course.Duration - course.EarliestHour + 1
	if perDay < 0 {
		perDay = 0
	}
	return perDay * len(settings.Days)
}

// SortByTightness orders courses the way the scheduler processes them:
// ascending tightness, then descending weekly load, then ascending code. The
// input slice is not modified.
func SortByTightness(courses []models.Course, settings models.Settings) []models.Course {
	sorted := make([]models.Course, len(courses))
	copy(sorted, courses)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := Tightness(sorted[i], settings), Tightness(sorted[j], settings)
		if ti != tj {
			return ti < tj
		}
		li, lj := sorted[i].WeeklyLoad(), sorted[j].WeeklyLoad()
		if li != lj {
			return li > lj
		}
		return sorted[i].Code < sorted[j].Code
	})
	return sorted
}
