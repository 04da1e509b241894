package entities

import "time"

// Route is a climbing/hiking route up one peak, with difficulty metadata.
type Route struct {
	ID                   int64
	PeakID               int64
	Name                 string
	Slug                 string
	Description          string
	ShortDescription     string
	RecommendedEquipment string
	Photo                string
	MapImage             string
	Difficulty           string
	MaxDifficulty        string
	Author               string
	Length               *int
	Year                 *int
	HeightDifference     *int
	StartHeight          *int
	Descent              string
	EditorID             *int64
	Ready                bool
	Changed              time.Time
}

// RouteSection is an ordered sub-segment of a route.
type RouteSection struct {
	ID          int64
	RouteID     int64
	Num         int
	Description string
	Length      *int
	Difficulty  string
	Angle       string
}

// RoutePoint is a geographic waypoint of a route, referencing a GeoPoint.
type RoutePoint struct {
	ID          int64
	RouteID     int64
	PointID     *int64
	Description string
}

// RoutePhoto is an appended photo attachment owned by one route.
type RoutePhoto struct {
	ID          int64
	RouteID     int64
	Photo       string
	Description string
}
