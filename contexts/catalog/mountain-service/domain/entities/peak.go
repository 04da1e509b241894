package entities

import "time"

// Peak is a summit belonging to exactly one ridge.
type Peak struct {
	ID          int64
	Slug        string
	RidgeID     int64
	Name        string
	Description string
	Height      *int
	PointID     *int64
	Photo       string
	EditorID    *int64
	Active      bool
	Changed     time.Time
}

// PeakPhoto is an appended photo attachment owned by one peak.
type PeakPhoto struct {
	ID          int64
	PeakID      int64
	Photo       string
	Description string
}
