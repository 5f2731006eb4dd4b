package models

// DefaultDays is the fixed weekly view: five weekdays, Monday first.
var DefaultDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

const (
	MinStartHour = 6
	MaxStartHour = 12
	MinEndHour   = 13
	MaxEndHour   = 22
)

// Settings defines the timetable grid dimensions shared by every aggregate.
type Settings struct {
	Days      []string `json:"days"`
	StartHour int      `db:"start_hour" json:"startHour"`
	EndHour   int      `db:"end_hour" json:"endHour"`
}

// DefaultSettings returns the Mon-Fri 08:00-18:00 grid.
func DefaultSettings() Settings {
	return Settings{
		Days:      append([]string(nil), DefaultDays...),
		StartHour: 8,
		EndHour:   18,
	}
}

// HoursCount returns the number of hour slots per day.
func (s Settings) HoursCount() int {
	return s.EndHour - s.StartHour
}

// DayIndex resolves a day label to its column index, or -1 when unknown.
func (s Settings) DayIndex(day string) int {
	for i, d := range s.Days {
		if d == day {
			return i
		}
	}
	return -1
}

// Clamp forces hours into the supported bounds and keeps the day set fixed.
func (s *Settings) Clamp() {
	s.Days = append([]string(nil), DefaultDays...)
	s.StartHour = clampInt(s.StartHour, MinStartHour, MaxStartHour)
	s.EndHour = clampInt(s.EndHour, MinEndHour, MaxEndHour)
	if s.EndHour <= s.StartHour+1 {
		s.EndHour = s.StartHour + 9
	}
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
