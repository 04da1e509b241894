package application

import (
	"context"
	"errors"
	"testing"

	"vershyna/contexts/catalog/mountain-service/adapters/memory"
	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
	"vershyna/contexts/catalog/mountain-service/domain/services"
	"vershyna/contexts/catalog/mountain-service/ports"
)

var (
	admin  = services.Actor{ID: 1, IsAdmin: true}
	editor = services.Actor{ID: 2, IsEditor: true}
	rival  = services.Actor{ID: 3, IsEditor: true}
	viewer = services.Actor{ID: 4}
)

func newTestService() (Service, *memory.Store) {
	store := memory.NewStore()
	return Service{
		Ridges: store,
		Peaks:  store,
		Routes: store,
		Points: store,
		Slugs:  store,
		Files:  store,
		Clock:  store,
	}, store
}

func TestAddRidgeRecordsEditorAndSlug(t *testing.T) {
	s, _ := newTestService()

	ridge, err := s.AddRidge(context.Background(), editor, ports.NewRidge{Name: "  Black Ridge  "})
	if err != nil {
		t.Fatalf("add ridge: %v", err)
	}
	if ridge.Slug != "black-ridge" {
		t.Fatalf("expected slug black-ridge, got %q", ridge.Slug)
	}
	if ridge.Name != "Black Ridge" {
		t.Fatalf("expected trimmed name, got %q", ridge.Name)
	}
	if ridge.EditorID == nil || *ridge.EditorID != editor.ID {
		t.Fatalf("expected editor %d recorded, got %v", editor.ID, ridge.EditorID)
	}
	if !ridge.Active {
		t.Fatalf("new ridge should be active")
	}
}

func TestAddRidgeForbiddenForViewer(t *testing.T) {
	s, _ := newTestService()

	if _, err := s.AddRidge(context.Background(), viewer, ports.NewRidge{Name: "Ridge"}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestDuplicateNamesGetSuffixedSlugs(t *testing.T) {
	s, _ := newTestService()

	first, err := s.AddRidge(context.Background(), editor, ports.NewRidge{Name: "Twin"})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := s.AddRidge(context.Background(), editor, ports.NewRidge{Name: "Twin"})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if first.Slug != "twin" || second.Slug != "twin-1" {
		t.Fatalf("expected twin and twin-1, got %q and %q", first.Slug, second.Slug)
	}
}

func TestUpdateRidgeKeepsSlugOnRename(t *testing.T) {
	s, _ := newTestService()

	ridge, err := s.AddRidge(context.Background(), editor, ports.NewRidge{Name: "Old Name"})
	if err != nil {
		t.Fatalf("add ridge: %v", err)
	}

	name := "New Name"
	updated, err := s.UpdateRidge(context.Background(), editor, ridge.Slug, ports.RidgePatch{Name: &name})
	if err != nil {
		t.Fatalf("update ridge: %v", err)
	}
	if updated.Name != "New Name" {
		t.Fatalf("expected renamed ridge, got %q", updated.Name)
	}
	if updated.Slug != ridge.Slug {
		t.Fatalf("slug must not change on rename: %q -> %q", ridge.Slug, updated.Slug)
	}
}

func TestUpdateRidgeOwnershipEnforced(t *testing.T) {
	s, _ := newTestService()

	ridge, err := s.AddRidge(context.Background(), editor, ports.NewRidge{Name: "Owned"})
	if err != nil {
		t.Fatalf("add ridge: %v", err)
	}

	desc := "changed"
	if _, err := s.UpdateRidge(context.Background(), rival, ridge.Slug, ports.RidgePatch{Description: &desc}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("rival editor: expected forbidden, got %v", err)
	}
	if _, err := s.UpdateRidge(context.Background(), admin, ridge.Slug, ports.RidgePatch{Description: &desc}); err != nil {
		t.Fatalf("admin should edit: %v", err)
	}
}

func TestDeleteRidgeWithPeaksConflicts(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	ridge, err := s.AddRidge(ctx, editor, ports.NewRidge{Name: "Parent"})
	if err != nil {
		t.Fatalf("add ridge: %v", err)
	}
	if _, err := s.AddPeak(ctx, editor, ports.NewPeak{Name: "Child", RidgeID: ridge.ID}); err != nil {
		t.Fatalf("add peak: %v", err)
	}

	if err := s.DeleteRidge(ctx, editor, ridge.Slug); !errors.Is(err, domainerrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteRidgeRemovesInfoLinks(t *testing.T) {
	s, store := newTestService()
	ctx := context.Background()

	ridge, err := s.AddRidge(ctx, editor, ports.NewRidge{Name: "Linked"})
	if err != nil {
		t.Fatalf("add ridge: %v", err)
	}
	link, err := s.AddInfoLink(ctx, editor, ridge.ID, ports.NewInfoLink{Link: "https://example.com/guide"})
	if err != nil {
		t.Fatalf("add link: %v", err)
	}

	if err := s.DeleteRidge(ctx, editor, ridge.Slug); err != nil {
		t.Fatalf("delete ridge: %v", err)
	}
	if _, err := store.GetInfoLink(ctx, link.ID); !errors.Is(err, domainerrors.ErrInfoLinkNotFound) {
		t.Fatalf("expected link gone, got %v", err)
	}
}

func TestPeakPointLifecycle(t *testing.T) {
	s, store := newTestService()
	ctx := context.Background()

	ridge, err := s.AddRidge(ctx, editor, ports.NewRidge{Name: "Range"})
	if err != nil {
		t.Fatalf("add ridge: %v", err)
	}

	peak, err := s.AddPeak(ctx, editor, ports.NewPeak{
		Name:    "Summit",
		RidgeID: ridge.ID,
		Point:   &ports.Coordinates{Latitude: 48.16, Longitude: 24.5},
	})
	if err != nil {
		t.Fatalf("add peak: %v", err)
	}
	if peak.PointID == nil {
		t.Fatalf("expected point reference on create")
	}
	if store.GeoPointCount() != 1 {
		t.Fatalf("expected 1 geopoint, got %d", store.GeoPointCount())
	}

	// Update with coordinates inserts a fresh row; the old one stays behind.
	updated, err := s.UpdatePeak(ctx, editor, peak.Slug, ports.PeakPatch{
		Point: &ports.Coordinates{Latitude: 48.17, Longitude: 24.51},
	})
	if err != nil {
		t.Fatalf("update peak: %v", err)
	}
	if updated.PointID == nil || *updated.PointID == *peak.PointID {
		t.Fatalf("expected a fresh point row, got %v", updated.PointID)
	}
	if store.GeoPointCount() != 2 {
		t.Fatalf("expected 2 geopoints, got %d", store.GeoPointCount())
	}

	// Update without coordinates clears the reference.
	cleared, err := s.UpdatePeak(ctx, editor, peak.Slug, ports.PeakPatch{})
	if err != nil {
		t.Fatalf("clear point: %v", err)
	}
	if cleared.PointID != nil {
		t.Fatalf("expected cleared point reference, got %v", cleared.PointID)
	}
}

func TestAddPeakPhotoSoftFailWrapsUploadError(t *testing.T) {
	s, store := newTestService()
	ctx := context.Background()

	ridge, err := s.AddRidge(ctx, editor, ports.NewRidge{Name: "Range"})
	if err != nil {
		t.Fatalf("add ridge: %v", err)
	}
	peak, err := s.AddPeak(ctx, editor, ports.NewPeak{Name: "Summit", RidgeID: ridge.ID})
	if err != nil {
		t.Fatalf("add peak: %v", err)
	}

	store.FailUploads = true
	_, err = s.AddPeakPhoto(ctx, editor, peak.ID, ports.Upload{Filename: "view.jpg", Data: []byte{1}})
	if !errors.Is(err, domainerrors.ErrUploadFailed) {
		t.Fatalf("expected upload failure, got %v", err)
	}

	photos, err := store.ListPeakPhotos(ctx, peak.ID)
	if err != nil {
		t.Fatalf("list photos: %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("no photo row should exist after failed upload, got %d", len(photos))
	}
}

func TestSectionPermissionsFollowRouteEditor(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	ridge, err := s.AddRidge(ctx, editor, ports.NewRidge{Name: "Range"})
	if err != nil {
		t.Fatalf("add ridge: %v", err)
	}
	peak, err := s.AddPeak(ctx, editor, ports.NewPeak{Name: "Summit", RidgeID: ridge.ID})
	if err != nil {
		t.Fatalf("add peak: %v", err)
	}
	route, err := s.AddRoute(ctx, editor, ports.NewRoute{Name: "North Face", PeakID: peak.ID})
	if err != nil {
		t.Fatalf("add route: %v", err)
	}

	if _, err := s.AddSection(ctx, rival, route.ID, ports.NewSection{Num: 1}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("rival on section: expected forbidden, got %v", err)
	}
	section, err := s.AddSection(ctx, editor, route.ID, ports.NewSection{Num: 1, Difficulty: "IV"})
	if err != nil {
		t.Fatalf("owner on section: %v", err)
	}
	if err := s.DeleteSection(ctx, rival, section.ID); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("rival delete section: expected forbidden, got %v", err)
	}
}

func TestDeleteRouteCascades(t *testing.T) {
	s, store := newTestService()
	ctx := context.Background()

	ridge, err := s.AddRidge(ctx, editor, ports.NewRidge{Name: "Range"})
	if err != nil {
		t.Fatalf("add ridge: %v", err)
	}
	peak, err := s.AddPeak(ctx, editor, ports.NewPeak{Name: "Summit", RidgeID: ridge.ID})
	if err != nil {
		t.Fatalf("add peak: %v", err)
	}
	route, err := s.AddRoute(ctx, editor, ports.NewRoute{Name: "Traverse", PeakID: peak.ID})
	if err != nil {
		t.Fatalf("add route: %v", err)
	}
	if _, err := s.AddSection(ctx, editor, route.ID, ports.NewSection{Num: 1}); err != nil {
		t.Fatalf("add section: %v", err)
	}
	if _, err := s.AddRoutePoint(ctx, editor, route.ID, ports.NewRoutePoint{
		Description: "start",
		Point:       &ports.Coordinates{Latitude: 48.1, Longitude: 24.4},
	}); err != nil {
		t.Fatalf("add point: %v", err)
	}

	if err := s.DeleteRoute(ctx, editor, route.Slug); err != nil {
		t.Fatalf("delete route: %v", err)
	}
	sections, _ := store.ListSections(ctx, route.ID)
	points, _ := store.ListRoutePoints(ctx, route.ID)
	if len(sections) != 0 || len(points) != 0 {
		t.Fatalf("expected cascaded delete, got %d sections %d points", len(sections), len(points))
	}
}

func TestSearchRoutesCombinesFilters(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	ridge, _ := s.AddRidge(ctx, editor, ports.NewRidge{Name: "Range"})
	peak, _ := s.AddPeak(ctx, editor, ports.NewPeak{Name: "Summit", RidgeID: ridge.ID})
	if _, err := s.AddRoute(ctx, editor, ports.NewRoute{Name: "North Couloir", PeakID: peak.ID, Author: "Franko", Difficulty: "2A"}); err != nil {
		t.Fatalf("add route: %v", err)
	}
	if _, err := s.AddRoute(ctx, editor, ports.NewRoute{Name: "South Rib", PeakID: peak.ID, Author: "Franko", Difficulty: "3B"}); err != nil {
		t.Fatalf("add route: %v", err)
	}

	found, err := s.SearchRoutes(ctx, ports.RouteFilter{Query: "north", Author: "frank", Category: "2"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].Name != "North Couloir" {
		t.Fatalf("expected only North Couloir, got %d results", len(found))
	}

	none, err := s.SearchRoutes(ctx, ports.RouteFilter{Query: "north", Category: "3"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no match for AND-combined filters, got %d", len(none))
	}
}
