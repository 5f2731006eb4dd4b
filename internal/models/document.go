package models

// DocumentVersion is the current exchange document revision.
const DocumentVersion = 1

// Document is the persisted/exchanged representation of the whole workspace:
// settings, rosters and the generated schedule. Every core field must
// round-trip through it losslessly.
type Document struct {
	Version     int          `json:"version"`
	Settings    Settings     `json:"settings"`
	Instructors []Instructor `json:"instructors"`
	Courses     []Course     `json:"courses"`
	Schedule    Schedule     `json:"schedule"`
}
