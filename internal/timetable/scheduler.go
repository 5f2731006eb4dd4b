package timetable

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/personatable/timetable-api/internal/models"
)

// placementNamespace seeds deterministic (UUIDv5) placement ids so identical
// inputs yield byte-identical schedules across runs.
var placementNamespace = uuid.MustParse("7a5f2c3e-9d14-4b6a-8e14-2f60c1b7a9d0")

type candidate struct {
	dayIndex   int
	day        string
	startHour  int
	hourOffset int
	score      float64
}

// Generate runs one full scheduling pass: it sorts the courses by tightness
// and load, then greedily commits each required session to the lowest-scoring
// feasible slot. Infeasibility is a normal outcome reported through the
// unscheduled list, never an error. The inputs are not mutated.
func Generate(settings models.Settings, instructors []models.Instructor, courses []models.Course) models.Schedule {
	grid := NewGrid(settings)
	schedule := models.EmptySchedule()

	byID := make(map[string]*models.Instructor, len(instructors))
	for i := range instructors {
		byID[instructors[i].ID] = &instructors[i]
	}

	for _, course := range SortByTightness(courses, settings) {
		inst, found := byID[course.InstructorID]
		if course.InstructorID != "" && !found {
			schedule.Unscheduled = append(schedule.Unscheduled, models.UnscheduledEntry{
				CourseID:  course.ID,
				Remaining: course.SessionsPerWeek,
				Reason:    models.ReasonInstructorMissing,
			})
			continue
		}

		remaining := course.SessionsPerWeek
		for remaining > 0 {
			best, ok := bestCandidate(course, inst, grid, settings)
			if !ok {
				schedule.Unscheduled = append(schedule.Unscheduled, models.UnscheduledEntry{
					CourseID:  course.ID,
					Remaining: remaining,
					Reason:    models.ReasonNoFeasibleSlot,
				})
				break
			}

			session := course.SessionsPerWeek - remaining
			placement := models.Placement{
				ID:           placementID(course.ID, session, best.day, best.startHour),
				CourseID:     course.ID,
				InstructorID: course.InstructorID,
				Day:          best.day,
				StartHour:    best.startHour,
				Duration:     course.Duration,
			}
			grid.Place(best.dayIndex, best.hourOffset, course.Duration, placement.ID)
			schedule.Placements = append(schedule.Placements, placement)
			remaining--
		}
	}

	return schedule
}

// bestCandidate enumerates every (day, startHour) pair in the course window
// and returns the feasible one with the minimum score.
func bestCandidate(course models.Course, inst *models.Instructor, grid *Grid, settings models.Settings) (candidate, bool) {
	var best candidate
	found := false

	for d, day := range settings.Days {
		for start := course.EarliestHour; start <= course.LatestHour-course.Duration; start++ {
			offset := start - settings.StartHour
			if !candidateFeasible(course, inst, grid, settings, d, offset) {
				continue
			}
			score := candidateScore(course, day, start, offset)
			if !found || score < best.score {
				best = candidate{dayIndex: d, day: day, startHour: start, hourOffset: offset, score: score}
				found = true
			}
		}
	}

	return best, found
}

func placementID(courseID string, session int, day string, startHour int) string {
	return uuid.NewSHA1(placementNamespace, []byte(fmt.Sprintf("%s/%d/%s/%d", courseID, session, day, startHour))).String()
}
