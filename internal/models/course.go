package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	MinSessionsPerWeek = 1
	MaxSessionsPerWeek = 10
	MinDuration        = 1
	MaxDuration        = 4
)

// Course describes a weekly class and the constraints its sessions must obey.
type Course struct {
	ID              string         `db:"id" json:"id"`
	Code            string         `db:"code" json:"code"`
	Title           string         `db:"title" json:"title"`
	InstructorID    string         `db:"instructor_id" json:"instructorId"`
	SessionsPerWeek int            `db:"sessions_per_week" json:"sessionsPerWeek"`
	Duration        int            `db:"duration" json:"duration"`
	EarliestHour    int            `db:"earliest_hour" json:"earliestHour"`
	LatestHour      int            `db:"latest_hour" json:"latestHour"`
	PreferredDays   pq.StringArray `db:"preferred_days" json:"preferredDays"`
	Notes           string         `db:"notes" json:"notes"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// WeeklyLoad is the total hours the course occupies per week.
func (c Course) WeeklyLoad() int {
	return c.SessionsPerWeek * c.Duration
}

// PrefersDay reports whether day is in the preferred set. An empty set means
// no preference.
func (c Course) PrefersDay(day string) bool {
	for _, d := range c.PreferredDays {
		if d == day {
			return true
		}
	}
	return false
}

// Sanitize clamps course fields into the ranges the engine assumes. Import
// and autofix paths run this before anything reaches the scheduler;
// fractional durations from legacy documents are truncated to whole hours.
func (c *Course) Sanitize(settings Settings) {
	if c.Code == "" {
		c.Code = "COURSE"
	}
	if c.Title == "" {
		c.Title = "Untitled"
	}
	c.SessionsPerWeek = clampInt(c.SessionsPerWeek, MinSessionsPerWeek, MaxSessionsPerWeek)
	c.Duration = clampInt(c.Duration, MinDuration, MaxDuration)
	c.EarliestHour = clampInt(c.EarliestHour, settings.StartHour, settings.EndHour-1)
	c.LatestHour = clampInt(c.LatestHour, settings.StartHour+1, settings.EndHour)
	if c.LatestHour <= c.EarliestHour {
		c.LatestHour = minInt(settings.EndHour, c.EarliestHour+1)
	}
	filtered := make(pq.StringArray, 0, len(c.PreferredDays))
	for _, d := range c.PreferredDays {
		if settings.DayIndex(d) >= 0 {
			filtered = append(filtered, d)
		}
	}
	c.PreferredDays = filtered
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
