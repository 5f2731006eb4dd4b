package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AvailabilityGrid is a day-major matrix of hour-slot availability flags.
// It serializes to JSONB so instructors round-trip through PostgreSQL.
type AvailabilityGrid [][]bool

// Value implements driver.Valuer.
func (g AvailabilityGrid) Value() (driver.Value, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	payload, err := json.Marshal([][]bool(g))
	if err != nil {
		return nil, fmt.Errorf("marshal availability grid: %w", err)
	}
	return payload, nil
}

// Scan implements sql.Scanner.
func (g *AvailabilityGrid) Scan(src interface{}) error {
	if src == nil {
		*g = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported availability grid source type %T", src)
	}
	var grid [][]bool
	if err := json.Unmarshal(raw, &grid); err != nil {
		return fmt.Errorf("unmarshal availability grid: %w", err)
	}
	*g = grid
	return nil
}

// Instructor represents a teaching resource with per-slot availability.
// Availability dimensions always match the current Settings; normalization
// runs whenever settings change or an instructor is created or imported.
type Instructor struct {
	ID           string           `db:"id" json:"id"`
	Name         string           `db:"name" json:"name"`
	Availability AvailabilityGrid `db:"availability" json:"availability"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at" json:"updated_at"`
}
