package postgresadapter

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vershyna/contexts/catalog/mountain-service/domain/entities"
	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
)

func (r *Repository) ListRidges(ctx context.Context) ([]entities.Ridge, error) {
	var rows []ridgeModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Ridge, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetRidgeByID(ctx context.Context, id int64) (entities.Ridge, error) {
	var row ridgeModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Ridge{}, domainerrors.ErrRidgeNotFound
		}
		return entities.Ridge{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetRidgeBySlug(ctx context.Context, slug string) (entities.Ridge, error) {
	var row ridgeModel
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Ridge{}, domainerrors.ErrRidgeNotFound
		}
		return entities.Ridge{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateRidge(ctx context.Context, ridge *entities.Ridge) error {
	row := ridgeModelFromEntity(*ridge)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConflict
		}
		return err
	}
	ridge.ID = row.ID
	return nil
}

func (r *Repository) UpdateRidge(ctx context.Context, ridge entities.Ridge) error {
	row := ridgeModelFromEntity(ridge)
	result := r.db.WithContext(ctx).
		Model(&ridgeModel{}).
		Where("id = ?", ridge.ID).
		Updates(map[string]any{
			"name":        row.Name,
			"description": row.Description,
			"active":      row.Active,
			"changed":     row.Changed,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRidgeNotFound
	}
	return nil
}

func (r *Repository) DeleteRidge(ctx context.Context, id int64) error {
	var peaks int64
	if err := r.db.WithContext(ctx).
		Model(&peakModel{}).
		Where("ridge_id = ?", id).
		Count(&peaks).
		Error; err != nil {
		return err
	}
	if peaks > 0 {
		return domainerrors.ErrConflict
	}

	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&ridgeModel{})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return domainerrors.ErrConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRidgeNotFound
	}
	return nil
}

func (r *Repository) CreateInfoLink(ctx context.Context, link *entities.RidgeInfoLink) error {
	row := ridgeInfoLinkModel{
		RidgeID:     link.RidgeID,
		Link:        link.Link,
		Description: link.Description,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConflict
		}
		return err
	}
	link.ID = row.ID
	return nil
}

func (r *Repository) GetInfoLink(ctx context.Context, id int64) (entities.RidgeInfoLink, error) {
	var row ridgeInfoLinkModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.RidgeInfoLink{}, domainerrors.ErrInfoLinkNotFound
		}
		return entities.RidgeInfoLink{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListInfoLinks(ctx context.Context, ridgeID int64) ([]entities.RidgeInfoLink, error) {
	var rows []ridgeInfoLinkModel
	if err := r.db.WithContext(ctx).
		Where("ridge_id = ?", ridgeID).
		Order("id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.RidgeInfoLink, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteInfoLink(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&ridgeInfoLinkModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInfoLinkNotFound
	}
	return nil
}

func (r *Repository) DeleteInfoLinksByRidge(ctx context.Context, ridgeID int64) error {
	return r.db.WithContext(ctx).
		Where("ridge_id = ?", ridgeID).
		Delete(&ridgeInfoLinkModel{}).
		Error
}
