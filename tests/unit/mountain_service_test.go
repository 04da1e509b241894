package unit

import (
	"context"
	"errors"
	"testing"

	mountainservice "vershyna/contexts/catalog/mountain-service"
	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
	"vershyna/contexts/catalog/mountain-service/domain/services"
	"vershyna/contexts/catalog/mountain-service/ports"
	httptransport "vershyna/contexts/catalog/mountain-service/transport/http"
)

var (
	catalogAdmin  = services.Actor{ID: 1, IsAdmin: true}
	catalogEditor = services.Actor{ID: 2, IsEditor: true}
	catalogRival  = services.Actor{ID: 3, IsEditor: true}
	catalogViewer = services.Actor{ID: 4}
)

func TestMountainRidgeCreateAndFetch(t *testing.T) {
	module := mountainservice.NewInMemoryModule(nil)

	ridge, err := module.Handler.AddRidgeHandler(
		context.Background(),
		catalogEditor,
		httptransport.CreateRidgeRequest{
			Name:        "Chornohora",
			Description: "the highest range of the Ukrainian Carpathians",
		},
	)
	if err != nil {
		t.Fatalf("add ridge failed: %v", err)
	}
	if ridge.Slug != "chornohora" {
		t.Fatalf("expected slug chornohora, got %s", ridge.Slug)
	}

	detail, err := module.Handler.GetRidgeHandler(context.Background(), "chornohora")
	if err != nil {
		t.Fatalf("get ridge failed: %v", err)
	}
	if detail.Ridge.ID != ridge.ID {
		t.Fatalf("expected ridge %d, got %d", ridge.ID, detail.Ridge.ID)
	}
}

func TestMountainViewerCannotCreate(t *testing.T) {
	module := mountainservice.NewInMemoryModule(nil)

	_, err := module.Handler.AddRidgeHandler(
		context.Background(),
		catalogViewer,
		httptransport.CreateRidgeRequest{Name: "Ridge"},
	)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestMountainDuplicateNamesGetDistinctSlugs(t *testing.T) {
	module := mountainservice.NewInMemoryModule(nil)

	first, err := module.Handler.AddRidgeHandler(
		context.Background(),
		catalogEditor,
		httptransport.CreateRidgeRequest{Name: "Gorgany"},
	)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	second, err := module.Handler.AddRidgeHandler(
		context.Background(),
		catalogEditor,
		httptransport.CreateRidgeRequest{Name: "Gorgany"},
	)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if first.Slug != "gorgany" || second.Slug != "gorgany-1" {
		t.Fatalf("expected gorgany and gorgany-1, got %s and %s", first.Slug, second.Slug)
	}
}

func TestMountainOwnershipEnforcedAcrossEditors(t *testing.T) {
	module := mountainservice.NewInMemoryModule(nil)

	ridge, err := module.Handler.AddRidgeHandler(
		context.Background(),
		catalogEditor,
		httptransport.CreateRidgeRequest{Name: "Owned"},
	)
	if err != nil {
		t.Fatalf("add ridge failed: %v", err)
	}

	name := "Renamed"
	_, err = module.Handler.UpdateRidgeHandler(
		context.Background(),
		catalogRival,
		ridge.Slug,
		httptransport.UpdateRidgeRequest{Name: &name},
	)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign editor, got %v", err)
	}

	updated, err := module.Handler.UpdateRidgeHandler(
		context.Background(),
		catalogAdmin,
		ridge.Slug,
		httptransport.UpdateRidgeRequest{Name: &name},
	)
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.Slug != ridge.Slug {
		t.Fatalf("rename must not change the slug, got %s", updated.Slug)
	}
}

func TestMountainPeakRouteHierarchy(t *testing.T) {
	module := mountainservice.NewInMemoryModule(nil)
	ctx := context.Background()

	ridge, err := module.Handler.AddRidgeHandler(ctx, catalogEditor, httptransport.CreateRidgeRequest{Name: "Range"})
	if err != nil {
		t.Fatalf("add ridge failed: %v", err)
	}
	peak, err := module.Handler.AddPeakHandler(ctx, catalogEditor, httptransport.CreatePeakRequest{
		Name:    "Hoverla",
		RidgeID: ridge.ID,
		Point:   &httptransport.CoordinatesDTO{Latitude: 48.16, Longitude: 24.5},
	})
	if err != nil {
		t.Fatalf("add peak failed: %v", err)
	}
	route, err := module.Handler.AddRouteHandler(ctx, catalogEditor, httptransport.CreateRouteRequest{
		Name:       "North Face",
		PeakID:     peak.ID,
		Difficulty: "2A",
		Author:     "Franko",
	})
	if err != nil {
		t.Fatalf("add route failed: %v", err)
	}

	if err := module.Handler.DeleteRidgeHandler(ctx, catalogEditor, ridge.Slug); !errors.Is(err, domainerrors.ErrConflict) {
		t.Fatalf("ridge with peaks: expected conflict, got %v", err)
	}
	if err := module.Handler.DeletePeakHandler(ctx, catalogEditor, peak.Slug); !errors.Is(err, domainerrors.ErrConflict) {
		t.Fatalf("peak with routes: expected conflict, got %v", err)
	}

	if err := module.Handler.DeleteRouteHandler(ctx, catalogEditor, route.Slug); err != nil {
		t.Fatalf("delete route failed: %v", err)
	}
	if err := module.Handler.DeletePeakHandler(ctx, catalogEditor, peak.Slug); err != nil {
		t.Fatalf("delete peak failed: %v", err)
	}
	if err := module.Handler.DeleteRidgeHandler(ctx, catalogEditor, ridge.Slug); err != nil {
		t.Fatalf("delete ridge failed: %v", err)
	}
}

func TestMountainRouteSearchFilters(t *testing.T) {
	module := mountainservice.NewInMemoryModule(nil)
	ctx := context.Background()

	ridge, err := module.Handler.AddRidgeHandler(ctx, catalogEditor, httptransport.CreateRidgeRequest{Name: "Range"})
	if err != nil {
		t.Fatalf("add ridge failed: %v", err)
	}
	peak, err := module.Handler.AddPeakHandler(ctx, catalogEditor, httptransport.CreatePeakRequest{Name: "Summit", RidgeID: ridge.ID})
	if err != nil {
		t.Fatalf("add peak failed: %v", err)
	}
	if _, err := module.Handler.AddRouteHandler(ctx, catalogEditor, httptransport.CreateRouteRequest{
		Name: "North Couloir", PeakID: peak.ID, Author: "Franko", Difficulty: "2A",
	}); err != nil {
		t.Fatalf("add route failed: %v", err)
	}
	if _, err := module.Handler.AddRouteHandler(ctx, catalogEditor, httptransport.CreateRouteRequest{
		Name: "South Rib", PeakID: peak.ID, Author: "Kovalenko", Difficulty: "3B",
	}); err != nil {
		t.Fatalf("add route failed: %v", err)
	}

	resp, err := module.Handler.ListRoutesHandler(ctx, "", "franko", "2")
	if err != nil {
		t.Fatalf("list routes failed: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "North Couloir" {
		t.Fatalf("expected only North Couloir, got %d items", len(resp.Items))
	}
}

func TestMountainPhotoUploadSoftFail(t *testing.T) {
	module := mountainservice.NewInMemoryModule(nil)
	ctx := context.Background()

	ridge, err := module.Handler.AddRidgeHandler(ctx, catalogEditor, httptransport.CreateRidgeRequest{Name: "Range"})
	if err != nil {
		t.Fatalf("add ridge failed: %v", err)
	}
	peak, err := module.Handler.AddPeakHandler(ctx, catalogEditor, httptransport.CreatePeakRequest{Name: "Summit", RidgeID: ridge.ID})
	if err != nil {
		t.Fatalf("add peak failed: %v", err)
	}

	module.Store.FailUploads = true
	_, err = module.Handler.AddPeakPhotoHandler(ctx, catalogEditor, peak.ID, ports.Upload{
		Filename: "view.jpg",
		Data:     []byte{1, 2, 3},
	})
	if !errors.Is(err, domainerrors.ErrUploadFailed) {
		t.Fatalf("expected upload failure, got %v", err)
	}

	module.Store.FailUploads = false
	photo, err := module.Handler.AddPeakPhotoHandler(ctx, catalogEditor, peak.ID, ports.Upload{
		Filename: "view.jpg",
		Data:     []byte{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("add photo failed: %v", err)
	}
	if photo.Photo == "" {
		t.Fatalf("expected stored photo path")
	}
}
