package application

import (
	"context"
	"fmt"
	"strings"

	"vershyna/contexts/catalog/mountain-service/domain/entities"
	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
	"vershyna/contexts/catalog/mountain-service/domain/services"
	"vershyna/contexts/catalog/mountain-service/ports"
)

const routeImageDir = "routes"

func (s Service) ListRoutes(ctx context.Context) ([]entities.Route, error) {
	return s.Routes.ListRoutes(ctx)
}

func (s Service) SearchRoutes(ctx context.Context, filter ports.RouteFilter) ([]entities.Route, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Author = strings.TrimSpace(filter.Author)
	filter.Category = strings.TrimSpace(filter.Category)
	return s.Routes.SearchRoutes(ctx, filter)
}

// GetRoute resolves a route by slug with its peak, photos, sections and
// points, flattening each point's coordinates.
func (s Service) GetRoute(ctx context.Context, slug string) (ports.RouteDetail, error) {
	route, err := s.Routes.GetRouteBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return ports.RouteDetail{}, err
	}

	detail := ports.RouteDetail{Route: route}
	if peak, err := s.Peaks.GetPeakByID(ctx, route.PeakID); err == nil {
		detail.Peak = &peak
	}
	if detail.Photos, err = s.Routes.ListRoutePhotos(ctx, route.ID); err != nil {
		return ports.RouteDetail{}, err
	}
	if detail.Sections, err = s.Routes.ListSections(ctx, route.ID); err != nil {
		return ports.RouteDetail{}, err
	}
	points, err := s.Routes.ListRoutePoints(ctx, route.ID)
	if err != nil {
		return ports.RouteDetail{}, err
	}
	for _, point := range points {
		item := ports.RoutePointDetail{Point: point}
		if point.PointID != nil {
			geo, err := s.Points.GetGeoPoint(ctx, *point.PointID)
			if err != nil {
				return ports.RouteDetail{}, err
			}
			item.Latitude = geo.Latitude
			item.Longitude = geo.Longitude
		}
		detail.Points = append(detail.Points, item)
	}
	return detail, nil
}

func (s Service) AddRoute(ctx context.Context, actor services.Actor, input ports.NewRoute) (entities.Route, error) {
	if err := services.CanAdd(actor); err != nil {
		return entities.Route{}, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.Route{}, domainerrors.ErrInvalidRequest
	}
	if _, err := s.Peaks.GetPeakByID(ctx, input.PeakID); err != nil {
		return entities.Route{}, err
	}

	routeSlug, err := s.uniqueSlug(ctx, ports.SlugKindRoute, name)
	if err != nil {
		return entities.Route{}, err
	}

	editorID := actor.ID
	route := entities.Route{
		PeakID:               input.PeakID,
		Name:                 name,
		Slug:                 routeSlug,
		Description:          input.Description,
		ShortDescription:     input.ShortDescription,
		RecommendedEquipment: input.RecommendedEquipment,
		Difficulty:           input.Difficulty,
		MaxDifficulty:        input.MaxDifficulty,
		Author:               input.Author,
		Length:               input.Length,
		Year:                 input.Year,
		HeightDifference:     input.HeightDifference,
		StartHeight:          input.StartHeight,
		Descent:              input.Descent,
		EditorID:             &editorID,
		Changed:              s.now(),
	}
	if err := s.Routes.CreateRoute(ctx, &route); err != nil {
		return entities.Route{}, err
	}

	resolveLogger(s.Logger).Info("route created",
		"event", "route_created",
		"module", "catalog/mountain-service",
		"layer", "application",
		"route_slug", route.Slug,
		"peak_id", route.PeakID,
	)
	return route, nil
}

func (s Service) UpdateRoute(ctx context.Context, actor services.Actor, routeID int64, patch ports.RoutePatch) (entities.Route, error) {
	route, err := s.Routes.GetRouteByID(ctx, routeID)
	if err != nil {
		return entities.Route{}, err
	}
	if err := services.CanEdit(actor, route.EditorID); err != nil {
		return entities.Route{}, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return entities.Route{}, domainerrors.ErrInvalidRequest
		}
		route.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.PeakID != nil {
		if _, err := s.Peaks.GetPeakByID(ctx, *patch.PeakID); err != nil {
			return entities.Route{}, err
		}
		route.PeakID = *patch.PeakID
	}
	if patch.Description != nil {
		route.Description = *patch.Description
	}
	if patch.ShortDescription != nil {
		route.ShortDescription = *patch.ShortDescription
	}
	if patch.RecommendedEquipment != nil {
		route.RecommendedEquipment = *patch.RecommendedEquipment
	}
	if patch.Difficulty != nil {
		route.Difficulty = *patch.Difficulty
	}
	if patch.MaxDifficulty != nil {
		route.MaxDifficulty = *patch.MaxDifficulty
	}
	if patch.Author != nil {
		route.Author = *patch.Author
	}
	if patch.Length != nil {
		route.Length = patch.Length
	}
	if patch.Year != nil {
		route.Year = patch.Year
	}
	if patch.HeightDifference != nil {
		route.HeightDifference = patch.HeightDifference
	}
	if patch.StartHeight != nil {
		route.StartHeight = patch.StartHeight
	}
	if patch.Descent != nil {
		route.Descent = *patch.Descent
	}
	if patch.Ready != nil {
		route.Ready = *patch.Ready
	}
	route.Changed = s.now()

	if err := s.Routes.UpdateRoute(ctx, route); err != nil {
		return entities.Route{}, err
	}
	return route, nil
}

// DeleteRoute removes the route after deleting its sections, points and
// photo rows. Orphaned GeoPoint rows from route points stay behind.
func (s Service) DeleteRoute(ctx context.Context, actor services.Actor, slug string) error {
	route, err := s.Routes.GetRouteBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return err
	}
	if err := services.CanEdit(actor, route.EditorID); err != nil {
		return err
	}
	if err := s.Routes.DeleteSectionsByRoute(ctx, route.ID); err != nil {
		return err
	}
	if err := s.Routes.DeleteRoutePointsByRoute(ctx, route.ID); err != nil {
		return err
	}
	if err := s.Routes.DeleteRoutePhotosByRoute(ctx, route.ID); err != nil {
		return err
	}
	if err := s.Routes.DeleteRoute(ctx, route.ID); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("route deleted",
		"event", "route_deleted",
		"module", "catalog/mountain-service",
		"layer", "application",
		"route_slug", route.Slug,
	)
	return nil
}

func (s Service) AddSection(ctx context.Context, actor services.Actor, routeID int64, input ports.NewSection) (entities.RouteSection, error) {
	route, err := s.Routes.GetRouteByID(ctx, routeID)
	if err != nil {
		return entities.RouteSection{}, err
	}
	if err := services.CanEdit(actor, route.EditorID); err != nil {
		return entities.RouteSection{}, err
	}

	section := entities.RouteSection{
		RouteID:     route.ID,
		Num:         input.Num,
		Description: input.Description,
		Length:      input.Length,
		Difficulty:  input.Difficulty,
		Angle:       input.Angle,
	}
	if err := s.Routes.CreateSection(ctx, &section); err != nil {
		return entities.RouteSection{}, err
	}
	return section, nil
}

func (s Service) UpdateSection(ctx context.Context, actor services.Actor, sectionID int64, patch ports.SectionPatch) (entities.RouteSection, error) {
	section, err := s.Routes.GetSection(ctx, sectionID)
	if err != nil {
		return entities.RouteSection{}, err
	}
	route, err := s.Routes.GetRouteByID(ctx, section.RouteID)
	if err != nil {
		return entities.RouteSection{}, err
	}
	if err := services.CanEdit(actor, route.EditorID); err != nil {
		return entities.RouteSection{}, err
	}

	if patch.Num != nil {
		section.Num = *patch.Num
	}
	if patch.Description != nil {
		section.Description = *patch.Description
	}
	if patch.Length != nil {
		section.Length = patch.Length
	}
	if patch.Difficulty != nil {
		section.Difficulty = *patch.Difficulty
	}
	if patch.Angle != nil {
		section.Angle = *patch.Angle
	}

	if err := s.Routes.UpdateSection(ctx, section); err != nil {
		return entities.RouteSection{}, err
	}
	return section, nil
}

func (s Service) DeleteSection(ctx context.Context, actor services.Actor, sectionID int64) error {
	section, err := s.Routes.GetSection(ctx, sectionID)
	if err != nil {
		return err
	}
	route, err := s.Routes.GetRouteByID(ctx, section.RouteID)
	if err != nil {
		return err
	}
	if err := services.CanEdit(actor, route.EditorID); err != nil {
		return err
	}
	return s.Routes.DeleteSection(ctx, section.ID)
}

func (s Service) AddRoutePoint(ctx context.Context, actor services.Actor, routeID int64, input ports.NewRoutePoint) (ports.RoutePointDetail, error) {
	route, err := s.Routes.GetRouteByID(ctx, routeID)
	if err != nil {
		return ports.RoutePointDetail{}, err
	}
	if err := services.CanEdit(actor, route.EditorID); err != nil {
		return ports.RoutePointDetail{}, err
	}

	detail := ports.RoutePointDetail{}
	var pointID *int64
	if input.Point != nil {
		id, err := s.newGeoPoint(ctx, *input.Point)
		if err != nil {
			return ports.RoutePointDetail{}, err
		}
		pointID = id
		detail.Latitude = input.Point.Latitude
		detail.Longitude = input.Point.Longitude
	}

	point := entities.RoutePoint{
		RouteID:     route.ID,
		PointID:     pointID,
		Description: input.Description,
	}
	if err := s.Routes.CreateRoutePoint(ctx, &point); err != nil {
		return ports.RoutePointDetail{}, err
	}
	detail.Point = point
	return detail, nil
}

func (s Service) DeleteRoutePoint(ctx context.Context, actor services.Actor, pointID int64) error {
	point, err := s.Routes.GetRoutePoint(ctx, pointID)
	if err != nil {
		return err
	}
	route, err := s.Routes.GetRouteByID(ctx, point.RouteID)
	if err != nil {
		return err
	}
	if err := services.CanEdit(actor, route.EditorID); err != nil {
		return err
	}
	return s.Routes.DeleteRoutePoint(ctx, point.ID)
}

// AddRoutePhoto stores the blob and appends a photo row to the route.
func (s Service) AddRoutePhoto(ctx context.Context, actor services.Actor, routeID int64, upload ports.Upload) (entities.RoutePhoto, error) {
	route, err := s.Routes.GetRouteByID(ctx, routeID)
	if err != nil {
		return entities.RoutePhoto{}, err
	}
	if err := services.CanEdit(actor, route.EditorID); err != nil {
		return entities.RoutePhoto{}, err
	}

	path, err := s.Files.Save(ctx, routeImageDir, upload.Filename, upload.Data)
	if err != nil {
		return entities.RoutePhoto{}, fmt.Errorf("%w: %v", domainerrors.ErrUploadFailed, err)
	}

	photo := entities.RoutePhoto{
		RouteID:     route.ID,
		Photo:       path,
		Description: upload.Description,
	}
	if err := s.Routes.CreateRoutePhoto(ctx, &photo); err != nil {
		return entities.RoutePhoto{}, err
	}
	return photo, nil
}

// UpdateRoutePhoto overwrites the route's title photo path.
func (s Service) UpdateRoutePhoto(ctx context.Context, actor services.Actor, routeID int64, upload ports.Upload) (entities.Route, error) {
	return s.updateRouteImage(ctx, actor, routeID, upload, false)
}

// UpdateRouteMap overwrites the route's map image path.
func (s Service) UpdateRouteMap(ctx context.Context, actor services.Actor, routeID int64, upload ports.Upload) (entities.Route, error) {
	return s.updateRouteImage(ctx, actor, routeID, upload, true)
}

func (s Service) updateRouteImage(ctx context.Context, actor services.Actor, routeID int64, upload ports.Upload, mapImage bool) (entities.Route, error) {
	route, err := s.Routes.GetRouteByID(ctx, routeID)
	if err != nil {
		return entities.Route{}, err
	}
	if err := services.CanEdit(actor, route.EditorID); err != nil {
		return entities.Route{}, err
	}

	path, err := s.Files.Save(ctx, routeImageDir, upload.Filename, upload.Data)
	if err != nil {
		return entities.Route{}, fmt.Errorf("%w: %v", domainerrors.ErrUploadFailed, err)
	}

	if mapImage {
		route.MapImage = path
	} else {
		route.Photo = path
	}
	route.Changed = s.now()
	if err := s.Routes.UpdateRoute(ctx, route); err != nil {
		return entities.Route{}, err
	}
	return route, nil
}
