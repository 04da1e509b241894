package ports

import (
	"context"
	"time"

	"vershyna/contexts/catalog/mountain-service/domain/entities"
)

// Slug kinds probed through SlugIndex. The store's unique index on each
// slug column stays the final arbiter; the probe is a best-effort pre-check.
const (
	SlugKindRidge = "ridge"
	SlugKindPeak  = "peak"
	SlugKindRoute = "route"
)

type SlugIndex interface {
	SlugInUse(ctx context.Context, kind string, slug string) (bool, error)
}

type Clock interface {
	Now() time.Time
}

// FileStore persists an uploaded blob and returns the relative path stored
// on the owning entity.
type FileStore interface {
	Save(ctx context.Context, dir string, filename string, data []byte) (string, error)
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Upload is an incoming photo or map-image blob.
type Upload struct {
	Filename    string
	Data        []byte
	Description string
}

type NewRidge struct {
	Name        string
	Description string
}

// RidgePatch applies only non-nil fields. Slug is never touched by renames.
type RidgePatch struct {
	Name        *string
	Description *string
	Active      *bool
}

type NewInfoLink struct {
	Link        string
	Description string
}

type NewPeak struct {
	Name        string
	Description string
	RidgeID     int64
	Height      *int
	Point       *Coordinates
}

// PeakPatch applies only non-nil fields, except Point: a peak update always
// re-resolves the point reference, inserting a fresh GeoPoint row when
// coordinates are supplied and clearing the reference when they are not.
type PeakPatch struct {
	Name        *string
	Description *string
	RidgeID     *int64
	Height      *int
	Point       *Coordinates
}

type NewRoute struct {
	Name                 string
	PeakID               int64
	Description          string
	ShortDescription     string
	RecommendedEquipment string
	Difficulty           string
	MaxDifficulty        string
	Author               string
	Length               *int
	Year                 *int
	HeightDifference     *int
	StartHeight          *int
	Descent              string
}

type RoutePatch struct {
	Name                 *string
	PeakID               *int64
	Description          *string
	ShortDescription     *string
	RecommendedEquipment *string
	Difficulty           *string
	MaxDifficulty        *string
	Author               *string
	Length               *int
	Year                 *int
	HeightDifference     *int
	StartHeight          *int
	Descent              *string
	Ready                *bool
}

type NewSection struct {
	Num         int
	Description string
	Length      *int
	Difficulty  string
	Angle       string
}

type SectionPatch struct {
	Num         *int
	Description *string
	Length      *int
	Difficulty  *string
	Angle       *string
}

type NewRoutePoint struct {
	Description string
	Point       *Coordinates
}

// PeakFilter matches slug or name by case-insensitive substring.
type PeakFilter struct {
	Key string
}

// RouteFilter combines all supplied filters with AND; empty values are skipped.
// Query matches slug or name by substring, Author matches the author column
// by substring, Category matches the difficulty column by prefix.
type RouteFilter struct {
	Query    string
	Author   string
	Category string
}

// RidgeDetail is a ridge with its owned collections resolved.
type RidgeDetail struct {
	Ridge     entities.Ridge
	Peaks     []entities.Peak
	InfoLinks []entities.RidgeInfoLink
}

// PeakDetail is a peak with its ridge, point and owned collections resolved.
type PeakDetail struct {
	Peak   entities.Peak
	Ridge  *entities.Ridge
	Point  *entities.GeoPoint
	Photos []entities.PeakPhoto
	Routes []entities.Route
}

// RoutePointDetail flattens the referenced GeoPoint coordinates.
type RoutePointDetail struct {
	Point     entities.RoutePoint
	Latitude  float64
	Longitude float64
}

// RouteDetail is a route with its peak and owned collections resolved.
type RouteDetail struct {
	Route    entities.Route
	Peak     *entities.Peak
	Photos   []entities.RoutePhoto
	Sections []entities.RouteSection
	Points   []RoutePointDetail
}

type RidgeRepository interface {
	ListRidges(ctx context.Context) ([]entities.Ridge, error)
	GetRidgeByID(ctx context.Context, id int64) (entities.Ridge, error)
	GetRidgeBySlug(ctx context.Context, slug string) (entities.Ridge, error)
	CreateRidge(ctx context.Context, ridge *entities.Ridge) error
	UpdateRidge(ctx context.Context, ridge entities.Ridge) error
	// DeleteRidge fails with ErrConflict while peaks still reference the ridge.
	DeleteRidge(ctx context.Context, id int64) error

	CreateInfoLink(ctx context.Context, link *entities.RidgeInfoLink) error
	GetInfoLink(ctx context.Context, id int64) (entities.RidgeInfoLink, error)
	ListInfoLinks(ctx context.Context, ridgeID int64) ([]entities.RidgeInfoLink, error)
	DeleteInfoLink(ctx context.Context, id int64) error
	DeleteInfoLinksByRidge(ctx context.Context, ridgeID int64) error
}

type PeakRepository interface {
	ListPeaks(ctx context.Context) ([]entities.Peak, error)
	ListPeaksByRidge(ctx context.Context, ridgeID int64) ([]entities.Peak, error)
	SearchPeaks(ctx context.Context, filter PeakFilter) ([]entities.Peak, error)
	GetPeakByID(ctx context.Context, id int64) (entities.Peak, error)
	GetPeakBySlug(ctx context.Context, slug string) (entities.Peak, error)
	CreatePeak(ctx context.Context, peak *entities.Peak) error
	UpdatePeak(ctx context.Context, peak entities.Peak) error
	// DeletePeak fails with ErrConflict while routes still reference the peak.
	DeletePeak(ctx context.Context, id int64) error

	CreatePeakPhoto(ctx context.Context, photo *entities.PeakPhoto) error
	GetPeakPhoto(ctx context.Context, id int64) (entities.PeakPhoto, error)
	ListPeakPhotos(ctx context.Context, peakID int64) ([]entities.PeakPhoto, error)
	DeletePeakPhoto(ctx context.Context, id int64) error
	DeletePeakPhotosByPeak(ctx context.Context, peakID int64) error
}

type RouteRepository interface {
	ListRoutes(ctx context.Context) ([]entities.Route, error)
	ListRoutesByPeak(ctx context.Context, peakID int64) ([]entities.Route, error)
	SearchRoutes(ctx context.Context, filter RouteFilter) ([]entities.Route, error)
	GetRouteByID(ctx context.Context, id int64) (entities.Route, error)
	GetRouteBySlug(ctx context.Context, slug string) (entities.Route, error)
	CreateRoute(ctx context.Context, route *entities.Route) error
	UpdateRoute(ctx context.Context, route entities.Route) error
	DeleteRoute(ctx context.Context, id int64) error

	CreateSection(ctx context.Context, section *entities.RouteSection) error
	GetSection(ctx context.Context, id int64) (entities.RouteSection, error)
	ListSections(ctx context.Context, routeID int64) ([]entities.RouteSection, error)
	UpdateSection(ctx context.Context, section entities.RouteSection) error
	DeleteSection(ctx context.Context, id int64) error
	DeleteSectionsByRoute(ctx context.Context, routeID int64) error

	CreateRoutePoint(ctx context.Context, point *entities.RoutePoint) error
	GetRoutePoint(ctx context.Context, id int64) (entities.RoutePoint, error)
	ListRoutePoints(ctx context.Context, routeID int64) ([]entities.RoutePoint, error)
	DeleteRoutePoint(ctx context.Context, id int64) error
	DeleteRoutePointsByRoute(ctx context.Context, routeID int64) error

	CreateRoutePhoto(ctx context.Context, photo *entities.RoutePhoto) error
	ListRoutePhotos(ctx context.Context, routeID int64) ([]entities.RoutePhoto, error)
	DeleteRoutePhotosByRoute(ctx context.Context, routeID int64) error
}

type GeoPointRepository interface {
	// CreateGeoPoint always inserts a fresh row; coordinates are immutable.
	CreateGeoPoint(ctx context.Context, point *entities.GeoPoint) error
	GetGeoPoint(ctx context.Context, id int64) (entities.GeoPoint, error)
}
