package entities

import "time"

// Ridge is the top-level geographic grouping. Peaks hang off a ridge,
// info links point at external material about it.
type Ridge struct {
	ID          int64
	Slug        string
	Name        string
	Description string
	EditorID    *int64
	Active      bool
	Changed     time.Time
}

// RidgeInfoLink is an external reference attached to a ridge.
// Links carry no editor of their own; ownership checks go through the ridge.
type RidgeInfoLink struct {
	ID          int64
	RidgeID     int64
	Link        string
	Description string
}
