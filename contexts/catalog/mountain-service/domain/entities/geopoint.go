package entities

// GeoPoint is a latitude/longitude pair shared by peaks and route points.
// Rows are immutable once created: edits that supply new coordinates insert
// a fresh row and re-point the owner at it. Stale rows are not collected here.
type GeoPoint struct {
	ID        int64
	Latitude  float64
	Longitude float64
}
