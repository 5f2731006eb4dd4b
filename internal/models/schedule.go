package models

// Unscheduled reason codes. These are user-facing strings and part of the
// exchange document, so they must not change casually.
const (
	ReasonInstructorMissing = "Instructor missing"
	ReasonNoFeasibleSlot    = "No feasible slots with current constraints"
)

// Placement is one committed session in the timetable. Placements are created
// only by the scheduler and never mutated; the full set is discarded and
// rebuilt on every run.
type Placement struct {
	ID           string `db:"id" json:"id"`
	CourseID     string `db:"course_id" json:"courseId"`
	InstructorID string `db:"instructor_id" json:"instructorId"`
	Day          string `db:"day" json:"day"`
	StartHour    int    `db:"start_hour" json:"startHour"`
	Duration     int    `db:"duration" json:"duration"`
}

// UnscheduledEntry records sessions the scheduler could not place.
type UnscheduledEntry struct {
	CourseID  string `db:"course_id" json:"courseId"`
	Remaining int    `db:"remaining" json:"remaining"`
	Reason    string `db:"reason" json:"reason"`
}

// Schedule is the scheduler's output aggregate, replaced wholesale each run.
type Schedule struct {
	Placements  []Placement        `json:"placements"`
	Unscheduled []UnscheduledEntry `json:"unscheduled"`
}

// EmptySchedule returns a schedule with non-nil, empty lists so JSON output
// renders [] rather than null.
func EmptySchedule() Schedule {
	return Schedule{Placements: []Placement{}, Unscheduled: []UnscheduledEntry{}}
}

// PlacedHours sums the duration of all placements.
func (s Schedule) PlacedHours() int {
	total := 0
	for _, p := range s.Placements {
		total += p.Duration
	}
	return total
}
