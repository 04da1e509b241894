package postgresadapter

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vershyna/contexts/catalog/mountain-service/domain/entities"
	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
	"vershyna/contexts/catalog/mountain-service/ports"
)

func (r *Repository) ListRoutes(ctx context.Context) ([]entities.Route, error) {
	var rows []routeModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return routesToEntities(rows), nil
}

func (r *Repository) ListRoutesByPeak(ctx context.Context, peakID int64) ([]entities.Route, error) {
	var rows []routeModel
	if err := r.db.WithContext(ctx).
		Where("peak_id = ?", peakID).
		Order("id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return routesToEntities(rows), nil
}

func (r *Repository) SearchRoutes(ctx context.Context, filter ports.RouteFilter) ([]entities.Route, error) {
	tx := r.db.WithContext(ctx).Model(&routeModel{})
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		tx = tx.Where("slug ILIKE ? OR name ILIKE ?", pattern, pattern)
	}
	if filter.Author != "" {
		tx = tx.Where("author ILIKE ?", "%"+filter.Author+"%")
	}
	if filter.Category != "" {
		tx = tx.Where("difficulty ILIKE ?", filter.Category+"%")
	}

	var rows []routeModel
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return routesToEntities(rows), nil
}

func (r *Repository) GetRouteByID(ctx context.Context, id int64) (entities.Route, error) {
	var row routeModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Route{}, domainerrors.ErrRouteNotFound
		}
		return entities.Route{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetRouteBySlug(ctx context.Context, slug string) (entities.Route, error) {
	var row routeModel
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Route{}, domainerrors.ErrRouteNotFound
		}
		return entities.Route{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateRoute(ctx context.Context, route *entities.Route) error {
	row := routeModelFromEntity(*route)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConflict
		}
		return err
	}
	route.ID = row.ID
	return nil
}

func (r *Repository) UpdateRoute(ctx context.Context, route entities.Route) error {
	row := routeModelFromEntity(route)
	result := r.db.WithContext(ctx).
		Model(&routeModel{}).
		Where("id = ?", route.ID).
		Updates(map[string]any{
			"peak_id":               row.PeakID,
			"name":                  row.Name,
			"description":           row.Description,
			"short_description":     row.ShortDescription,
			"recommended_equipment": row.RecommendedEquipment,
			"photo":                 row.Photo,
			"map_image":             row.MapImage,
			"difficulty":            row.Difficulty,
			"max_difficulty":        row.MaxDifficulty,
			"author":                row.Author,
			"length":                row.Length,
			"year":                  row.Year,
			"height_difference":     row.HeightDifference,
			"start_height":          row.StartHeight,
			"descent":               row.Descent,
			"ready":                 row.Ready,
			"changed":               row.Changed,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRouteNotFound
	}
	return nil
}

func (r *Repository) DeleteRoute(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&routeModel{})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return domainerrors.ErrConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRouteNotFound
	}
	return nil
}

func (r *Repository) CreateSection(ctx context.Context, section *entities.RouteSection) error {
	row := routeSectionModel{
		RouteID:     section.RouteID,
		Num:         section.Num,
		Description: section.Description,
		Length:      section.Length,
		Difficulty:  section.Difficulty,
		Angle:       section.Angle,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	section.ID = row.ID
	return nil
}

func (r *Repository) GetSection(ctx context.Context, id int64) (entities.RouteSection, error) {
	var row routeSectionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.RouteSection{}, domainerrors.ErrSectionNotFound
		}
		return entities.RouteSection{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListSections(ctx context.Context, routeID int64) ([]entities.RouteSection, error) {
	var rows []routeSectionModel
	if err := r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("num ASC, id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.RouteSection, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateSection(ctx context.Context, section entities.RouteSection) error {
	result := r.db.WithContext(ctx).
		Model(&routeSectionModel{}).
		Where("id = ?", section.ID).
		Updates(map[string]any{
			"num":         section.Num,
			"description": section.Description,
			"length":      section.Length,
			"difficulty":  section.Difficulty,
			"angle":       section.Angle,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSectionNotFound
	}
	return nil
}

func (r *Repository) DeleteSection(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&routeSectionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSectionNotFound
	}
	return nil
}

func (r *Repository) DeleteSectionsByRoute(ctx context.Context, routeID int64) error {
	return r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Delete(&routeSectionModel{}).
		Error
}

func (r *Repository) CreateRoutePoint(ctx context.Context, point *entities.RoutePoint) error {
	row := routePointModel{
		RouteID:     point.RouteID,
		PointID:     point.PointID,
		Description: point.Description,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	point.ID = row.ID
	return nil
}

func (r *Repository) GetRoutePoint(ctx context.Context, id int64) (entities.RoutePoint, error) {
	var row routePointModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.RoutePoint{}, domainerrors.ErrPointNotFound
		}
		return entities.RoutePoint{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListRoutePoints(ctx context.Context, routeID int64) ([]entities.RoutePoint, error) {
	var rows []routePointModel
	if err := r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.RoutePoint, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteRoutePoint(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&routePointModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPointNotFound
	}
	return nil
}

func (r *Repository) DeleteRoutePointsByRoute(ctx context.Context, routeID int64) error {
	return r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Delete(&routePointModel{}).
		Error
}

func (r *Repository) CreateRoutePhoto(ctx context.Context, photo *entities.RoutePhoto) error {
	row := routePhotoModel{
		RouteID:     photo.RouteID,
		Photo:       photo.Photo,
		Description: photo.Description,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConflict
		}
		return err
	}
	photo.ID = row.ID
	return nil
}

func (r *Repository) ListRoutePhotos(ctx context.Context, routeID int64) ([]entities.RoutePhoto, error) {
	var rows []routePhotoModel
	if err := r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.RoutePhoto, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteRoutePhotosByRoute(ctx context.Context, routeID int64) error {
	return r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Delete(&routePhotoModel{}).
		Error
}

func routesToEntities(rows []routeModel) []entities.Route {
	items := make([]entities.Route, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}
