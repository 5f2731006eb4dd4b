package timetable

import "github.com/personatable/timetable-api/internal/models"

// Grid tracks per-slot occupancy for one scheduling run. Each cell holds the
// id of the placement covering it, or "" when free. A grid is rebuilt empty
// at the start of every run and never persisted.
type Grid struct {
	days  int
	hours int
	cells [][]string
}

// NewGrid builds an empty grid sized to the settings dimensions.
func NewGrid(settings models.Settings) *Grid {
	days := len(settings.Days)
	hours := settings.HoursCount()
	cells := make([][]string, days)
	for d := range cells {
		cells[d] = make([]string, hours)
	}
	return &Grid{days: days, hours: hours, cells: cells}
}

// IsFree reports whether duration consecutive cells starting at hourOffset on
// the given day are all unoccupied.
func (g *Grid) IsFree(day, hourOffset, duration int) bool {
	if day < 0 || day >= g.days || hourOffset < 0 || hourOffset+duration > g.hours {
		return false
	}
	for k := 0; k < duration; k++ {
		if g.cells[day][hourOffset+k] != "" {
			return false
		}
	}
	return true
}

// Place writes placementID into duration consecutive cells. The caller must
// have verified IsFree first; overwriting an occupied cell is a logic error.
func (g *Grid) Place(day, hourOffset, duration int, placementID string) {
	for k := 0; k < duration; k++ {
		g.cells[day][hourOffset+k] = placementID
	}
}

// At returns the placement id occupying a cell, or "" when free.
func (g *Grid) At(day, hourOffset int) string {
	if day < 0 || day >= g.days || hourOffset < 0 || hourOffset >= g.hours {
		return ""
	}
	return g.cells[day][hourOffset]
}
