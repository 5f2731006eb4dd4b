package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/personatable/timetable-api/internal/models"
)

func TestGridPlaceAndIsFree(t *testing.T) {
	grid := NewGrid(models.DefaultSettings())

	assert.True(t, grid.IsFree(0, 0, 2))
	grid.Place(0, 0, 2, "p1")

	assert.False(t, grid.IsFree(0, 0, 1))
	assert.False(t, grid.IsFree(0, 1, 1))
	assert.True(t, grid.IsFree(0, 2, 1))
	assert.True(t, grid.IsFree(1, 0, 2))
	assert.Equal(t, "p1", grid.At(0, 1))
	assert.Equal(t, "", grid.At(0, 2))
}

func TestGridIsFreeRejectsOutOfBounds(t *testing.T) {
	settings := models.DefaultSettings() // 5 days x 10 hours
	grid := NewGrid(settings)

	assert.False(t, grid.IsFree(-1, 0, 1))
	assert.False(t, grid.IsFree(5, 0, 1))
	assert.False(t, grid.IsFree(0, -1, 1))
	assert.False(t, grid.IsFree(0, 9, 2), "interval spilling past the last hour is not free")
	assert.True(t, grid.IsFree(0, 9, 1))
}
