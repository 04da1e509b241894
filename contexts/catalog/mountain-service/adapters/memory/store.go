package memory

import (
	"context"
	"errors"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"vershyna/contexts/catalog/mountain-service/domain/entities"
	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
	"vershyna/contexts/catalog/mountain-service/ports"
)

// Store is the in-memory catalog adapter used for development and tests.
// It implements every repository port plus SlugIndex, Clock and FileStore.
type Store struct {
	mu sync.RWMutex

	ridges    map[int64]entities.Ridge
	infoLinks map[int64]entities.RidgeInfoLink
	peaks     map[int64]entities.Peak
	peakPhoto map[int64]entities.PeakPhoto
	routes    map[int64]entities.Route
	sections  map[int64]entities.RouteSection
	points    map[int64]entities.RoutePoint
	rtePhoto  map[int64]entities.RoutePhoto
	geoPoints map[int64]entities.GeoPoint

	files map[string][]byte

	// FailUploads makes FileStore.Save fail, exercising the soft-fail path.
	FailUploads bool

	nextID int64
}

func NewStore() *Store {
	return &Store{
		ridges:    make(map[int64]entities.Ridge),
		infoLinks: make(map[int64]entities.RidgeInfoLink),
		peaks:     make(map[int64]entities.Peak),
		peakPhoto: make(map[int64]entities.PeakPhoto),
		routes:    make(map[int64]entities.Route),
		sections:  make(map[int64]entities.RouteSection),
		points:    make(map[int64]entities.RoutePoint),
		rtePhoto:  make(map[int64]entities.RoutePhoto),
		geoPoints: make(map[int64]entities.GeoPoint),
		files:     make(map[string][]byte),
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) newID() int64 {
	s.nextID++
	return s.nextID
}

// --- SlugIndex

func (s *Store) SlugInUse(_ context.Context, kind string, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch kind {
	case ports.SlugKindRidge:
		for _, item := range s.ridges {
			if item.Slug == slug {
				return true, nil
			}
		}
	case ports.SlugKindPeak:
		for _, item := range s.peaks {
			if item.Slug == slug {
				return true, nil
			}
		}
	case ports.SlugKindRoute:
		for _, item := range s.routes {
			if item.Slug == slug {
				return true, nil
			}
		}
	}
	return false, nil
}

// --- FileStore

func (s *Store) Save(_ context.Context, dir string, filename string, data []byte) (string, error) {
	if s.FailUploads {
		return "", errors.New("file store unavailable")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := path.Join("/media", dir, filename)
	s.files[stored] = append([]byte(nil), data...)
	return stored, nil
}

// --- RidgeRepository

func (s *Store) ListRidges(_ context.Context) ([]entities.Ridge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Ridge, 0, len(s.ridges))
	for _, item := range s.ridges {
		items = append(items, item)
	}
	sortByID(items, func(item entities.Ridge) int64 { return item.ID })
	return items, nil
}

func (s *Store) GetRidgeByID(_ context.Context, id int64) (entities.Ridge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.ridges[id]
	if !ok {
		return entities.Ridge{}, domainerrors.ErrRidgeNotFound
	}
	return item, nil
}

func (s *Store) GetRidgeBySlug(_ context.Context, slug string) (entities.Ridge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.ridges {
		if item.Slug == slug {
			return item, nil
		}
	}
	return entities.Ridge{}, domainerrors.ErrRidgeNotFound
}

func (s *Store) CreateRidge(_ context.Context, ridge *entities.Ridge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.ridges {
		if item.Slug == ridge.Slug {
			return domainerrors.ErrConflict
		}
	}
	ridge.ID = s.newID()
	s.ridges[ridge.ID] = *ridge
	return nil
}

func (s *Store) UpdateRidge(_ context.Context, ridge entities.Ridge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ridges[ridge.ID]; !ok {
		return domainerrors.ErrRidgeNotFound
	}
	s.ridges[ridge.ID] = ridge
	return nil
}

func (s *Store) DeleteRidge(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ridges[id]; !ok {
		return domainerrors.ErrRidgeNotFound
	}
	for _, peak := range s.peaks {
		if peak.RidgeID == id {
			return domainerrors.ErrConflict
		}
	}
	delete(s.ridges, id)
	return nil
}

func (s *Store) CreateInfoLink(_ context.Context, link *entities.RidgeInfoLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.infoLinks {
		if item.Link == link.Link {
			return domainerrors.ErrConflict
		}
	}
	link.ID = s.newID()
	s.infoLinks[link.ID] = *link
	return nil
}

func (s *Store) GetInfoLink(_ context.Context, id int64) (entities.RidgeInfoLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.infoLinks[id]
	if !ok {
		return entities.RidgeInfoLink{}, domainerrors.ErrInfoLinkNotFound
	}
	return item, nil
}

func (s *Store) ListInfoLinks(_ context.Context, ridgeID int64) ([]entities.RidgeInfoLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.RidgeInfoLink
	for _, item := range s.infoLinks {
		if item.RidgeID == ridgeID {
			items = append(items, item)
		}
	}
	sortByID(items, func(item entities.RidgeInfoLink) int64 { return item.ID })
	return items, nil
}

func (s *Store) DeleteInfoLink(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.infoLinks[id]; !ok {
		return domainerrors.ErrInfoLinkNotFound
	}
	delete(s.infoLinks, id)
	return nil
}

func (s *Store) DeleteInfoLinksByRidge(_ context.Context, ridgeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.infoLinks {
		if item.RidgeID == ridgeID {
			delete(s.infoLinks, id)
		}
	}
	return nil
}

// --- PeakRepository

func (s *Store) ListPeaks(_ context.Context) ([]entities.Peak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Peak, 0, len(s.peaks))
	for _, item := range s.peaks {
		items = append(items, item)
	}
	sortByID(items, func(item entities.Peak) int64 { return item.ID })
	return items, nil
}

func (s *Store) ListPeaksByRidge(_ context.Context, ridgeID int64) ([]entities.Peak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.Peak
	for _, item := range s.peaks {
		if item.RidgeID == ridgeID {
			items = append(items, item)
		}
	}
	sortByID(items, func(item entities.Peak) int64 { return item.ID })
	return items, nil
}

func (s *Store) SearchPeaks(_ context.Context, filter ports.PeakFilter) ([]entities.Peak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := strings.ToLower(filter.Key)
	var items []entities.Peak
	for _, item := range s.peaks {
		if key != "" &&
			!strings.Contains(strings.ToLower(item.Slug), key) &&
			!strings.Contains(strings.ToLower(item.Name), key) {
			continue
		}
		items = append(items, item)
	}
	sortByID(items, func(item entities.Peak) int64 { return item.ID })
	return items, nil
}

func (s *Store) GetPeakByID(_ context.Context, id int64) (entities.Peak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.peaks[id]
	if !ok {
		return entities.Peak{}, domainerrors.ErrPeakNotFound
	}
	return item, nil
}

func (s *Store) GetPeakBySlug(_ context.Context, slug string) (entities.Peak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.peaks {
		if item.Slug == slug {
			return item, nil
		}
	}
	return entities.Peak{}, domainerrors.ErrPeakNotFound
}

func (s *Store) CreatePeak(_ context.Context, peak *entities.Peak) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.peaks {
		if item.Slug == peak.Slug {
			return domainerrors.ErrConflict
		}
	}
	if _, ok := s.ridges[peak.RidgeID]; !ok {
		return domainerrors.ErrRidgeNotFound
	}
	peak.ID = s.newID()
	s.peaks[peak.ID] = *peak
	return nil
}

func (s *Store) UpdatePeak(_ context.Context, peak entities.Peak) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.peaks[peak.ID]; !ok {
		return domainerrors.ErrPeakNotFound
	}
	s.peaks[peak.ID] = peak
	return nil
}

func (s *Store) DeletePeak(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.peaks[id]; !ok {
		return domainerrors.ErrPeakNotFound
	}
	for _, route := range s.routes {
		if route.PeakID == id {
			return domainerrors.ErrConflict
		}
	}
	delete(s.peaks, id)
	return nil
}

func (s *Store) CreatePeakPhoto(_ context.Context, photo *entities.PeakPhoto) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	photo.ID = s.newID()
	s.peakPhoto[photo.ID] = *photo
	return nil
}

func (s *Store) GetPeakPhoto(_ context.Context, id int64) (entities.PeakPhoto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.peakPhoto[id]
	if !ok {
		return entities.PeakPhoto{}, domainerrors.ErrPeakPhotoNotFound
	}
	return item, nil
}

func (s *Store) ListPeakPhotos(_ context.Context, peakID int64) ([]entities.PeakPhoto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.PeakPhoto
	for _, item := range s.peakPhoto {
		if item.PeakID == peakID {
			items = append(items, item)
		}
	}
	sortByID(items, func(item entities.PeakPhoto) int64 { return item.ID })
	return items, nil
}

func (s *Store) DeletePeakPhoto(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.peakPhoto[id]; !ok {
		return domainerrors.ErrPeakPhotoNotFound
	}
	delete(s.peakPhoto, id)
	return nil
}

func (s *Store) DeletePeakPhotosByPeak(_ context.Context, peakID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.peakPhoto {
		if item.PeakID == peakID {
			delete(s.peakPhoto, id)
		}
	}
	return nil
}

// --- RouteRepository

func (s *Store) ListRoutes(_ context.Context) ([]entities.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Route, 0, len(s.routes))
	for _, item := range s.routes {
		items = append(items, item)
	}
	sortByID(items, func(item entities.Route) int64 { return item.ID })
	return items, nil
}

func (s *Store) ListRoutesByPeak(_ context.Context, peakID int64) ([]entities.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.Route
	for _, item := range s.routes {
		if item.PeakID == peakID {
			items = append(items, item)
		}
	}
	sortByID(items, func(item entities.Route) int64 { return item.ID })
	return items, nil
}

func (s *Store) SearchRoutes(_ context.Context, filter ports.RouteFilter) ([]entities.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(filter.Query)
	author := strings.ToLower(filter.Author)
	category := strings.ToLower(filter.Category)

	var items []entities.Route
	for _, item := range s.routes {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Slug), query) &&
			!strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(item.Author), author) {
			continue
		}
		if category != "" && !strings.HasPrefix(strings.ToLower(item.Difficulty), category) {
			continue
		}
		items = append(items, item)
	}
	sortByID(items, func(item entities.Route) int64 { return item.ID })
	return items, nil
}

func (s *Store) GetRouteByID(_ context.Context, id int64) (entities.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.routes[id]
	if !ok {
		return entities.Route{}, domainerrors.ErrRouteNotFound
	}
	return item, nil
}

func (s *Store) GetRouteBySlug(_ context.Context, slug string) (entities.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.routes {
		if item.Slug == slug {
			return item, nil
		}
	}
	return entities.Route{}, domainerrors.ErrRouteNotFound
}

func (s *Store) CreateRoute(_ context.Context, route *entities.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.routes {
		if item.Slug == route.Slug {
			return domainerrors.ErrConflict
		}
	}
	if _, ok := s.peaks[route.PeakID]; !ok {
		return domainerrors.ErrPeakNotFound
	}
	route.ID = s.newID()
	s.routes[route.ID] = *route
	return nil
}

func (s *Store) UpdateRoute(_ context.Context, route entities.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.routes[route.ID]; !ok {
		return domainerrors.ErrRouteNotFound
	}
	s.routes[route.ID] = route
	return nil
}

func (s *Store) DeleteRoute(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.routes[id]; !ok {
		return domainerrors.ErrRouteNotFound
	}
	delete(s.routes, id)
	return nil
}

func (s *Store) CreateSection(_ context.Context, section *entities.RouteSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	section.ID = s.newID()
	s.sections[section.ID] = *section
	return nil
}

func (s *Store) GetSection(_ context.Context, id int64) (entities.RouteSection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.sections[id]
	if !ok {
		return entities.RouteSection{}, domainerrors.ErrSectionNotFound
	}
	return item, nil
}

func (s *Store) ListSections(_ context.Context, routeID int64) ([]entities.RouteSection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.RouteSection
	for _, item := range s.sections {
		if item.RouteID == routeID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Num != items[j].Num {
			return items[i].Num < items[j].Num
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *Store) UpdateSection(_ context.Context, section entities.RouteSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sections[section.ID]; !ok {
		return domainerrors.ErrSectionNotFound
	}
	s.sections[section.ID] = section
	return nil
}

func (s *Store) DeleteSection(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sections[id]; !ok {
		return domainerrors.ErrSectionNotFound
	}
	delete(s.sections, id)
	return nil
}

func (s *Store) DeleteSectionsByRoute(_ context.Context, routeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.sections {
		if item.RouteID == routeID {
			delete(s.sections, id)
		}
	}
	return nil
}

func (s *Store) CreateRoutePoint(_ context.Context, point *entities.RoutePoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	point.ID = s.newID()
	s.points[point.ID] = *point
	return nil
}

func (s *Store) GetRoutePoint(_ context.Context, id int64) (entities.RoutePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.points[id]
	if !ok {
		return entities.RoutePoint{}, domainerrors.ErrPointNotFound
	}
	return item, nil
}

func (s *Store) ListRoutePoints(_ context.Context, routeID int64) ([]entities.RoutePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.RoutePoint
	for _, item := range s.points {
		if item.RouteID == routeID {
			items = append(items, item)
		}
	}
	sortByID(items, func(item entities.RoutePoint) int64 { return item.ID })
	return items, nil
}

func (s *Store) DeleteRoutePoint(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.points[id]; !ok {
		return domainerrors.ErrPointNotFound
	}
	delete(s.points, id)
	return nil
}

func (s *Store) DeleteRoutePointsByRoute(_ context.Context, routeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.points {
		if item.RouteID == routeID {
			delete(s.points, id)
		}
	}
	return nil
}

func (s *Store) CreateRoutePhoto(_ context.Context, photo *entities.RoutePhoto) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	photo.ID = s.newID()
	s.rtePhoto[photo.ID] = *photo
	return nil
}

func (s *Store) ListRoutePhotos(_ context.Context, routeID int64) ([]entities.RoutePhoto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.RoutePhoto
	for _, item := range s.rtePhoto {
		if item.RouteID == routeID {
			items = append(items, item)
		}
	}
	sortByID(items, func(item entities.RoutePhoto) int64 { return item.ID })
	return items, nil
}

func (s *Store) DeleteRoutePhotosByRoute(_ context.Context, routeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.rtePhoto {
		if item.RouteID == routeID {
			delete(s.rtePhoto, id)
		}
	}
	return nil
}

// --- GeoPointRepository

func (s *Store) CreateGeoPoint(_ context.Context, point *entities.GeoPoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	point.ID = s.newID()
	s.geoPoints[point.ID] = *point
	return nil
}

func (s *Store) GetGeoPoint(_ context.Context, id int64) (entities.GeoPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.geoPoints[id]
	if !ok {
		return entities.GeoPoint{}, domainerrors.ErrPointNotFound
	}
	return item, nil
}

// GeoPointCount reports stored coordinate rows; tests use it to observe the
// fresh-row-per-edit behavior.
func (s *Store) GeoPointCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.geoPoints)
}

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
