package postgresadapter

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vershyna/contexts/catalog/mountain-service/domain/entities"
	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
	"vershyna/contexts/catalog/mountain-service/ports"
)

func (r *Repository) ListPeaks(ctx context.Context) ([]entities.Peak, error) {
	var rows []peakModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return peaksToEntities(rows), nil
}

func (r *Repository) ListPeaksByRidge(ctx context.Context, ridgeID int64) ([]entities.Peak, error) {
	var rows []peakModel
	if err := r.db.WithContext(ctx).
		Where("ridge_id = ?", ridgeID).
		Order("id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return peaksToEntities(rows), nil
}

func (r *Repository) SearchPeaks(ctx context.Context, filter ports.PeakFilter) ([]entities.Peak, error) {
	tx := r.db.WithContext(ctx).Model(&peakModel{})
	if filter.Key != "" {
		pattern := "%" + filter.Key + "%"
		tx = tx.Where("slug ILIKE ? OR name ILIKE ?", pattern, pattern)
	}

	var rows []peakModel
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return peaksToEntities(rows), nil
}

func (r *Repository) GetPeakByID(ctx context.Context, id int64) (entities.Peak, error) {
	var row peakModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Peak{}, domainerrors.ErrPeakNotFound
		}
		return entities.Peak{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetPeakBySlug(ctx context.Context, slug string) (entities.Peak, error) {
	var row peakModel
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Peak{}, domainerrors.ErrPeakNotFound
		}
		return entities.Peak{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreatePeak(ctx context.Context, peak *entities.Peak) error {
	row := peakModelFromEntity(*peak)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConflict
		}
		return err
	}
	peak.ID = row.ID
	return nil
}

func (r *Repository) UpdatePeak(ctx context.Context, peak entities.Peak) error {
	row := peakModelFromEntity(peak)
	result := r.db.WithContext(ctx).
		Model(&peakModel{}).
		Where("id = ?", peak.ID).
		Updates(map[string]any{
			"ridge_id":    row.RidgeID,
			"name":        row.Name,
			"description": row.Description,
			"height":      row.Height,
			"point_id":    row.PointID,
			"photo":       row.Photo,
			"active":      row.Active,
			"changed":     row.Changed,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPeakNotFound
	}
	return nil
}

func (r *Repository) DeletePeak(ctx context.Context, id int64) error {
	var routes int64
	if err := r.db.WithContext(ctx).
		Model(&routeModel{}).
		Where("peak_id = ?", id).
		Count(&routes).
		Error; err != nil {
		return err
	}
	if routes > 0 {
		return domainerrors.ErrConflict
	}

	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&peakModel{})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return domainerrors.ErrConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPeakNotFound
	}
	return nil
}

func (r *Repository) CreatePeakPhoto(ctx context.Context, photo *entities.PeakPhoto) error {
	row := peakPhotoModel{
		PeakID:      photo.PeakID,
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

func (r *Repository) GetPeakPhoto(ctx context.Context, id int64) (entities.PeakPhoto, error) {
	var row peakPhotoModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.PeakPhoto{}, domainerrors.ErrPeakPhotoNotFound
		}
		return entities.PeakPhoto{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListPeakPhotos(ctx context.Context, peakID int64) ([]entities.PeakPhoto, error) {
	var rows []peakPhotoModel
	if err := r.db.WithContext(ctx).
		Where("peak_id = ?", peakID).
		Order("id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.PeakPhoto, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeletePeakPhoto(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&peakPhotoModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPeakPhotoNotFound
	}
	return nil
}

func (r *Repository) DeletePeakPhotosByPeak(ctx context.Context, peakID int64) error {
	return r.db.WithContext(ctx).
		Where("peak_id = ?", peakID).
		Delete(&peakPhotoModel{}).
		Error
}

func peaksToEntities(rows []peakModel) []entities.Peak {
	items := make([]entities.Peak, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}
