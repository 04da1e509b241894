package application

import (
	"context"
	"log/slog"
	"time"

	"vershyna/contexts/catalog/mountain-service/domain/entities"
	"vershyna/contexts/catalog/mountain-service/ports"
)

// Service implements the catalog use cases: CRUD over ridges, peaks and
// routes plus their owned children, slug assignment and the ownership policy.
// Each call runs as an independent short sequence of reads and writes; there
// is no cross-request state beyond the injected ports.
type Service struct {
	Ridges ports.RidgeRepository
	Peaks  ports.PeakRepository
	Routes ports.RouteRepository
	Points ports.GeoPointRepository
	Slugs  ports.SlugIndex
	Files  ports.FileStore
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

// newGeoPoint inserts a fresh coordinate row and returns its id. Existing
// rows are never reused or mutated in place.
func (s Service) newGeoPoint(ctx context.Context, coords ports.Coordinates) (*int64, error) {
	point := entities.GeoPoint{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}
	if err := s.Points.CreateGeoPoint(ctx, &point); err != nil {
		return nil, err
	}
	id := point.ID
	return &id, nil
}
