package timetable

import "github.com/personatable/timetable-api/internal/models"

// windowAllows reports whether a session starting at startHour stays inside
// the course's [earliestHour, latestHour] window.
func windowAllows(course models.Course, startHour int) bool {
	return startHour >= course.EarliestHour && startHour+course.Duration <= course.LatestHour
}

// candidateFeasible decides whether course may start at (day, hourOffset):
// within grid bounds, inside the course window, grid cells free and the
// instructor available. All checks are pure; order is cheapest-first.
func candidateFeasible(course models.Course, inst *models.Instructor, grid *Grid, settings models.Settings, day, hourOffset int) bool {
	if hourOffset < 0 || hourOffset+course.Duration > settings.HoursCount() {
		return false
	}
	if !windowAllows(course, settings.StartHour+hourOffset) {
		return false
	}
	if !grid.IsFree(day, hourOffset, course.Duration) {
		return false
	}
	return Available(inst, day, hourOffset, course.Duration)
}
