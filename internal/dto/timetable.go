package dto

import "github.com/personatable/timetable-api/internal/models"

// ScheduleStats summarises one scheduling run.
type ScheduleStats struct {
	PlacedSessions      int `json:"placed_sessions"`
	PlacedHours         int `json:"placed_hours"`
	UnscheduledSessions int `json:"unscheduled_sessions"`
	CourseCount         int `json:"course_count"`
}

// GenerateScheduleResponse is the payload returned after a scheduling run.
type GenerateScheduleResponse struct {
	Placements  []models.Placement        `json:"placements"`
	Unscheduled []models.UnscheduledEntry `json:"unscheduled"`
	Stats       ScheduleStats             `json:"stats"`
}

// SortPreviewItem shows where one course lands in scheduling order and why.
type SortPreviewItem struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Title      string `json:"title"`
	Tightness  int    `json:"tightness"`
	WeeklyLoad int    `json:"weekly_load"`
}
