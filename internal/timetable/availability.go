package timetable

import "github.com/personatable/timetable-api/internal/models"

// NewAvailability returns a fully-available grid for the settings dimensions.
func NewAvailability(settings models.Settings) models.AvailabilityGrid {
	grid := make(models.AvailabilityGrid, len(settings.Days))
	for d := range grid {
		row := make([]bool, settings.HoursCount())
		for h := range row {
			row[h] = true
		}
		grid[d] = row
	}
	return grid
}

// Normalize resizes an instructor's availability to match the settings
// dimensions, padding new slots with true and truncating excess. It is
// idempotent: a grid that already matches comes back unchanged.
func Normalize(inst *models.Instructor, settings models.Settings) {
	if inst == nil {
		return
	}
	days := len(settings.Days)
	hours := settings.HoursCount()

	if inst.Availability == nil {
		inst.Availability = NewAvailability(settings)
		return
	}

	grid := inst.Availability
	for len(grid) < days {
		row := make([]bool, hours)
		for h := range row {
			row[h] = true
		}
		grid = append(grid, row)
	}
	grid = grid[:days]

	for d := 0; d < days; d++ {
		row := grid[d]
		for len(row) < hours {
			row = append(row, true)
		}
		grid[d] = row[:hours]
	}
	inst.Availability = grid
}

// Available reports whether the instructor can cover duration consecutive
// slots starting at hourOffset on the given day. A nil instructor (unassigned
// course) and a missing day row are both fail-open: available.
func Available(inst *models.Instructor, day, hourOffset, duration int) bool {
	if inst == nil {
		return true
	}
	if day < 0 || day >= len(inst.Availability) {
		return true
	}
	row := inst.Availability[day]
	for k := 0; k < duration; k++ {
		idx := hourOffset + k
		if idx >= 0 && idx < len(row) && !row[idx] {
			return false
		}
	}
	return true
}
