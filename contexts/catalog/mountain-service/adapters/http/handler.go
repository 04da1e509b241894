package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"vershyna/contexts/catalog/mountain-service/application"
	"vershyna/contexts/catalog/mountain-service/domain/entities"
	"vershyna/contexts/catalog/mountain-service/domain/services"
	"vershyna/contexts/catalog/mountain-service/ports"
	httptransport "vershyna/contexts/catalog/mountain-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListRidgesHandler(ctx context.Context) (httptransport.ListRidgesResponse, error) {
	items, err := h.Service.ListRidges(ctx)
	if err != nil {
		return httptransport.ListRidgesResponse{}, err
	}
	result := make([]httptransport.RidgeDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapRidge(item))
	}
	return httptransport.ListRidgesResponse{Items: result}, nil
}

func (h Handler) GetRidgeHandler(ctx context.Context, slug string) (httptransport.RidgeDetailResponse, error) {
	detail, err := h.Service.GetRidge(ctx, slug)
	if err != nil {
		return httptransport.RidgeDetailResponse{}, err
	}
	return httptransport.RidgeDetailResponse{
		Ridge:     mapRidge(detail.Ridge),
		Peaks:     mapPeaks(detail.Peaks),
		InfoLinks: mapInfoLinks(detail.InfoLinks),
	}, nil
}

func (h Handler) RidgePeaksHandler(ctx context.Context, slug string) (httptransport.ListPeaksResponse, error) {
	items, err := h.Service.RidgePeaks(ctx, slug)
	if err != nil {
		return httptransport.ListPeaksResponse{}, err
	}
	return httptransport.ListPeaksResponse{Items: mapPeaks(items)}, nil
}

func (h Handler) AddRidgeHandler(ctx context.Context, actor services.Actor, req httptransport.CreateRidgeRequest) (httptransport.RidgeDTO, error) {
	ridge, err := h.Service.AddRidge(ctx, actor, ports.NewRidge{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return httptransport.RidgeDTO{}, err
	}
	return mapRidge(ridge), nil
}

func (h Handler) UpdateRidgeHandler(ctx context.Context, actor services.Actor, slug string, req httptransport.UpdateRidgeRequest) (httptransport.RidgeDTO, error) {
	ridge, err := h.Service.UpdateRidge(ctx, actor, slug, ports.RidgePatch{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		return httptransport.RidgeDTO{}, err
	}
	return mapRidge(ridge), nil
}

func (h Handler) DeleteRidgeHandler(ctx context.Context, actor services.Actor, slug string) error {
	return h.Service.DeleteRidge(ctx, actor, slug)
}

func (h Handler) AddInfoLinkHandler(ctx context.Context, actor services.Actor, ridgeID int64, req httptransport.CreateInfoLinkRequest) (httptransport.InfoLinkDTO, error) {
	link, err := h.Service.AddInfoLink(ctx, actor, ridgeID, ports.NewInfoLink{
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return httptransport.InfoLinkDTO{}, err
	}
	return mapInfoLink(link), nil
}

func (h Handler) DeleteInfoLinkHandler(ctx context.Context, actor services.Actor, linkID int64) error {
	return h.Service.DeleteInfoLink(ctx, actor, linkID)
}

func (h Handler) ListPeaksHandler(ctx context.Context, key string) (httptransport.ListPeaksResponse, error) {
	var items []entities.Peak
	var err error
	if key != "" {
		items, err = h.Service.SearchPeaks(ctx, ports.PeakFilter{Key: key})
	} else {
		items, err = h.Service.ListPeaks(ctx)
	}
	if err != nil {
		return httptransport.ListPeaksResponse{}, err
	}
	return httptransport.ListPeaksResponse{Items: mapPeaks(items)}, nil
}

func (h Handler) GetPeakHandler(ctx context.Context, slug string) (httptransport.PeakDetailResponse, error) {
	detail, err := h.Service.GetPeak(ctx, slug)
	if err != nil {
		return httptransport.PeakDetailResponse{}, err
	}

	result := httptransport.PeakDetailResponse{
		Peak:   mapPeak(detail.Peak),
		Photos: mapPeakPhotos(detail.Photos),
		Routes: mapRoutes(detail.Routes),
	}
	if detail.Ridge != nil {
		ridge := mapRidge(*detail.Ridge)
		result.Ridge = &ridge
	}
	if detail.Point != nil {
		result.Point = &httptransport.CoordinatesDTO{
			Latitude:  detail.Point.Latitude,
			Longitude: detail.Point.Longitude,
		}
	}
	return result, nil
}

func (h Handler) PeakRoutesHandler(ctx context.Context, slug string) (httptransport.ListRoutesResponse, error) {
	items, err := h.Service.PeakRoutes(ctx, slug)
	if err != nil {
		return httptransport.ListRoutesResponse{}, err
	}
	return httptransport.ListRoutesResponse{Items: mapRoutes(items)}, nil
}

func (h Handler) AddPeakHandler(ctx context.Context, actor services.Actor, req httptransport.CreatePeakRequest) (httptransport.PeakDTO, error) {
	peak, err := h.Service.AddPeak(ctx, actor, ports.NewPeak{
		Name:        req.Name,
		Description: req.Description,
		RidgeID:     req.RidgeID,
		Height:      req.Height,
		Point:       mapCoordinates(req.Point),
	})
	if err != nil {
		return httptransport.PeakDTO{}, err
	}
	return mapPeak(peak), nil
}

func (h Handler) UpdatePeakHandler(ctx context.Context, actor services.Actor, slug string, req httptransport.UpdatePeakRequest) (httptransport.PeakDTO, error) {
	peak, err := h.Service.UpdatePeak(ctx, actor, slug, ports.PeakPatch{
		Name:        req.Name,
		Description: req.Description,
		RidgeID:     req.RidgeID,
		Height:      req.Height,
		Point:       mapCoordinates(req.Point),
	})
	if err != nil {
		return httptransport.PeakDTO{}, err
	}
	return mapPeak(peak), nil
}

func (h Handler) DeletePeakHandler(ctx context.Context, actor services.Actor, slug string) error {
	return h.Service.DeletePeak(ctx, actor, slug)
}

func (h Handler) AddPeakPhotoHandler(ctx context.Context, actor services.Actor, peakID int64, upload ports.Upload) (httptransport.PeakPhotoDTO, error) {
	photo, err := h.Service.AddPeakPhoto(ctx, actor, peakID, upload)
	if err != nil {
		return httptransport.PeakPhotoDTO{}, err
	}
	return mapPeakPhoto(photo), nil
}

func (h Handler) UpdatePeakPhotoHandler(ctx context.Context, actor services.Actor, peakID int64, upload ports.Upload) (httptransport.PeakDTO, error) {
	peak, err := h.Service.UpdatePeakPhoto(ctx, actor, peakID, upload)
	if err != nil {
		return httptransport.PeakDTO{}, err
	}
	return mapPeak(peak), nil
}

func (h Handler) DeletePeakPhotoHandler(ctx context.Context, actor services.Actor, photoID int64) error {
	return h.Service.DeletePeakPhoto(ctx, actor, photoID)
}

func (h Handler) ListRoutesHandler(ctx context.Context, query string, author string, category string) (httptransport.ListRoutesResponse, error) {
	var items []entities.Route
	var err error
	if query != "" || author != "" || category != "" {
		items, err = h.Service.SearchRoutes(ctx, ports.RouteFilter{
			Query:    query,
			Author:   author,
			Category: category,
		})
	} else {
		items, err = h.Service.ListRoutes(ctx)
	}
	if err != nil {
		return httptransport.ListRoutesResponse{}, err
	}
	return httptransport.ListRoutesResponse{Items: mapRoutes(items)}, nil
}

func (h Handler) GetRouteHandler(ctx context.Context, slug string) (httptransport.RouteDetailResponse, error) {
	detail, err := h.Service.GetRoute(ctx, slug)
	if err != nil {
		return httptransport.RouteDetailResponse{}, err
	}

	result := httptransport.RouteDetailResponse{
		Route:    mapRoute(detail.Route),
		Photos:   mapRoutePhotos(detail.Photos),
		Sections: mapSections(detail.Sections),
		Points:   make([]httptransport.RoutePointDTO, 0, len(detail.Points)),
	}
	if detail.Peak != nil {
		peak := mapPeak(*detail.Peak)
		result.Peak = &peak
	}
	for _, item := range detail.Points {
		result.Points = append(result.Points, mapRoutePoint(item))
	}
	return result, nil
}

func (h Handler) AddRouteHandler(ctx context.Context, actor services.Actor, req httptransport.CreateRouteRequest) (httptransport.RouteDTO, error) {
	route, err := h.Service.AddRoute(ctx, actor, ports.NewRoute{
		Name:                 req.Name,
		PeakID:               req.PeakID,
		Description:          req.Description,
		ShortDescription:     req.ShortDescription,
		RecommendedEquipment: req.RecommendedEquipment,
		Difficulty:           req.Difficulty,
		MaxDifficulty:        req.MaxDifficulty,
		Author:               req.Author,
		Length:               req.Length,
		Year:                 req.Year,
		HeightDifference:     req.HeightDifference,
		StartHeight:          req.StartHeight,
		Descent:              req.Descent,
	})
	if err != nil {
		return httptransport.RouteDTO{}, err
	}
	return mapRoute(route), nil
}

func (h Handler) UpdateRouteHandler(ctx context.Context, actor services.Actor, routeID int64, req httptransport.UpdateRouteRequest) (httptransport.RouteDTO, error) {
	route, err := h.Service.UpdateRoute(ctx, actor, routeID, ports.RoutePatch{
		Name:                 req.Name,
		PeakID:               req.PeakID,
		Description:          req.Description,
		ShortDescription:     req.ShortDescription,
		RecommendedEquipment: req.RecommendedEquipment,
		Difficulty:           req.Difficulty,
		MaxDifficulty:        req.MaxDifficulty,
		Author:               req.Author,
		Length:               req.Length,
		Year:                 req.Year,
		HeightDifference:     req.HeightDifference,
		StartHeight:          req.StartHeight,
		Descent:              req.Descent,
		Ready:                req.Ready,
	})
	if err != nil {
		return httptransport.RouteDTO{}, err
	}
	return mapRoute(route), nil
}

func (h Handler) DeleteRouteHandler(ctx context.Context, actor services.Actor, slug string) error {
	return h.Service.DeleteRoute(ctx, actor, slug)
}

func (h Handler) AddSectionHandler(ctx context.Context, actor services.Actor, routeID int64, req httptransport.CreateSectionRequest) (httptransport.RouteSectionDTO, error) {
	section, err := h.Service.AddSection(ctx, actor, routeID, ports.NewSection{
		Num:         req.Num,
		Description: req.Description,
		Length:      req.Length,
		Difficulty:  req.Difficulty,
		Angle:       req.Angle,
	})
	if err != nil {
		return httptransport.RouteSectionDTO{}, err
	}
	return mapSection(section), nil
}

func (h Handler) UpdateSectionHandler(ctx context.Context, actor services.Actor, sectionID int64, req httptransport.UpdateSectionRequest) (httptransport.RouteSectionDTO, error) {
	section, err := h.Service.UpdateSection(ctx, actor, sectionID, ports.SectionPatch{
		Num:         req.Num,
		Description: req.Description,
		Length:      req.Length,
		Difficulty:  req.Difficulty,
		Angle:       req.Angle,
	})
	if err != nil {
		return httptransport.RouteSectionDTO{}, err
	}
	return mapSection(section), nil
}

func (h Handler) DeleteSectionHandler(ctx context.Context, actor services.Actor, sectionID int64) error {
	return h.Service.DeleteSection(ctx, actor, sectionID)
}

func (h Handler) AddRoutePointHandler(ctx context.Context, actor services.Actor, routeID int64, req httptransport.CreateRoutePointRequest) (httptransport.RoutePointDTO, error) {
	detail, err := h.Service.AddRoutePoint(ctx, actor, routeID, ports.NewRoutePoint{
		Description: req.Description,
		Point:       mapCoordinates(req.Point),
	})
	if err != nil {
		return httptransport.RoutePointDTO{}, err
	}
	return mapRoutePoint(detail), nil
}

func (h Handler) DeleteRoutePointHandler(ctx context.Context, actor services.Actor, pointID int64) error {
	return h.Service.DeleteRoutePoint(ctx, actor, pointID)
}

func (h Handler) AddRoutePhotoHandler(ctx context.Context, actor services.Actor, routeID int64, upload ports.Upload) (httptransport.RoutePhotoDTO, error) {
	photo, err := h.Service.AddRoutePhoto(ctx, actor, routeID, upload)
	if err != nil {
		return httptransport.RoutePhotoDTO{}, err
	}
	return mapRoutePhoto(photo), nil
}

func (h Handler) UpdateRoutePhotoHandler(ctx context.Context, actor services.Actor, routeID int64, upload ports.Upload) (httptransport.RouteDTO, error) {
	route, err := h.Service.UpdateRoutePhoto(ctx, actor, routeID, upload)
	if err != nil {
		return httptransport.RouteDTO{}, err
	}
	return mapRoute(route), nil
}

func (h Handler) UpdateRouteMapHandler(ctx context.Context, actor services.Actor, routeID int64, upload ports.Upload) (httptransport.RouteDTO, error) {
	route, err := h.Service.UpdateRouteMap(ctx, actor, routeID, upload)
	if err != nil {
		return httptransport.RouteDTO{}, err
	}
	return mapRoute(route), nil
}

func mapCoordinates(dto *httptransport.CoordinatesDTO) *ports.Coordinates {
	if dto == nil {
		return nil
	}
	return &ports.Coordinates{
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}
}

func mapRidge(item entities.Ridge) httptransport.RidgeDTO {
	return httptransport.RidgeDTO{
		ID:          item.ID,
		Slug:        item.Slug,
		Name:        item.Name,
		Description: item.Description,
		EditorID:    item.EditorID,
		Active:      item.Active,
		Changed:     item.Changed.UTC().Format(time.RFC3339),
	}
}

func mapInfoLink(item entities.RidgeInfoLink) httptransport.InfoLinkDTO {
	return httptransport.InfoLinkDTO{
		ID:          item.ID,
		RidgeID:     item.RidgeID,
		Link:        item.Link,
		Description: item.Description,
	}
}

func mapInfoLinks(items []entities.RidgeInfoLink) []httptransport.InfoLinkDTO {
	result := make([]httptransport.InfoLinkDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapInfoLink(item))
	}
	return result
}

func mapPeak(item entities.Peak) httptransport.PeakDTO {
	return httptransport.PeakDTO{
		ID:          item.ID,
		Slug:        item.Slug,
		RidgeID:     item.RidgeID,
		Name:        item.Name,
		Description: item.Description,
		Height:      item.Height,
		PointID:     item.PointID,
		Photo:       item.Photo,
		EditorID:    item.EditorID,
		Active:      item.Active,
		Changed:     item.Changed.UTC().Format(time.RFC3339),
	}
}

func mapPeaks(items []entities.Peak) []httptransport.PeakDTO {
	result := make([]httptransport.PeakDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapPeak(item))
	}
	return result
}

func mapPeakPhoto(item entities.PeakPhoto) httptransport.PeakPhotoDTO {
	return httptransport.PeakPhotoDTO{
		ID:          item.ID,
		PeakID:      item.PeakID,
		Photo:       item.Photo,
		Description: item.Description,
	}
}

func mapPeakPhotos(items []entities.PeakPhoto) []httptransport.PeakPhotoDTO {
	result := make([]httptransport.PeakPhotoDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapPeakPhoto(item))
	}
	return result
}

func mapRoute(item entities.Route) httptransport.RouteDTO {
	return httptransport.RouteDTO{
		ID:                   item.ID,
		PeakID:               item.PeakID,
		Name:                 item.Name,
		Slug:                 item.Slug,
		Description:          item.Description,
		ShortDescription:     item.ShortDescription,
		RecommendedEquipment: item.RecommendedEquipment,
		Photo:                item.Photo,
		MapImage:             item.MapImage,
		Difficulty:           item.Difficulty,
		MaxDifficulty:        item.MaxDifficulty,
		Author:               item.Author,
		Length:               item.Length,
		Year:                 item.Year,
		HeightDifference:     item.HeightDifference,
		StartHeight:          item.StartHeight,
		Descent:              item.Descent,
		EditorID:             item.EditorID,
		Ready:                item.Ready,
		Changed:              item.Changed.UTC().Format(time.RFC3339),
	}
}

func mapRoutes(items []entities.Route) []httptransport.RouteDTO {
	result := make([]httptransport.RouteDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapRoute(item))
	}
	return result
}

func mapSection(item entities.RouteSection) httptransport.RouteSectionDTO {
	return httptransport.RouteSectionDTO{
		ID:          item.ID,
		RouteID:     item.RouteID,
		Num:         item.Num,
		Description: item.Description,
		Length:      item.Length,
		Difficulty:  item.Difficulty,
		Angle:       item.Angle,
	}
}

func mapSections(items []entities.RouteSection) []httptransport.RouteSectionDTO {
	result := make([]httptransport.RouteSectionDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapSection(item))
	}
	return result
}

func mapRoutePoint(item ports.RoutePointDetail) httptransport.RoutePointDTO {
	return httptransport.RoutePointDTO{
		ID:          item.Point.ID,
		RouteID:     item.Point.RouteID,
		Description: item.Point.Description,
		Latitude:    item.Latitude,
		Longitude:   item.Longitude,
	}
}

func mapRoutePhoto(item entities.RoutePhoto) httptransport.RoutePhotoDTO {
	return httptransport.RoutePhotoDTO{
		ID:          item.ID,
		RouteID:     item.RouteID,
		Photo:       item.Photo,
		Description: item.Description,
	}
}

func mapRoutePhotos(items []entities.RoutePhoto) []httptransport.RoutePhotoDTO {
	result := make([]httptransport.RoutePhotoDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapRoutePhoto(item))
	}
	return result
}
