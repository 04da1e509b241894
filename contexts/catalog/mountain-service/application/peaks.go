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

const peakImageDir = "peaks"

func (s Service) ListPeaks(ctx context.Context) ([]entities.Peak, error) {
	return s.Peaks.ListPeaks(ctx)
}

func (s Service) SearchPeaks(ctx context.Context, filter ports.PeakFilter) ([]entities.Peak, error) {
	filter.Key = strings.TrimSpace(filter.Key)
	return s.Peaks.SearchPeaks(ctx, filter)
}

// GetPeak resolves a peak by slug with its ridge, point, photos and routes.
func (s Service) GetPeak(ctx context.Context, slug string) (ports.PeakDetail, error) {
	peak, err := s.Peaks.GetPeakBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return ports.PeakDetail{}, err
	}

	detail := ports.PeakDetail{Peak: peak}
	if ridge, err := s.Ridges.GetRidgeByID(ctx, peak.RidgeID); err == nil {
		detail.Ridge = &ridge
	}
	if peak.PointID != nil {
		point, err := s.Points.GetGeoPoint(ctx, *peak.PointID)
		if err != nil {
			return ports.PeakDetail{}, err
		}
		detail.Point = &point
	}
	if detail.Photos, err = s.Peaks.ListPeakPhotos(ctx, peak.ID); err != nil {
		return ports.PeakDetail{}, err
	}
	if detail.Routes, err = s.Routes.ListRoutesByPeak(ctx, peak.ID); err != nil {
		return ports.PeakDetail{}, err
	}
	return detail, nil
}

func (s Service) PeakRoutes(ctx context.Context, slug string) ([]entities.Route, error) {
	peak, err := s.Peaks.GetPeakBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	return s.Routes.ListRoutesByPeak(ctx, peak.ID)
}

func (s Service) AddPeak(ctx context.Context, actor services.Actor, input ports.NewPeak) (entities.Peak, error) {
	if err := services.CanAdd(actor); err != nil {
		return entities.Peak{}, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.Peak{}, domainerrors.ErrInvalidRequest
	}
	if _, err := s.Ridges.GetRidgeByID(ctx, input.RidgeID); err != nil {
		return entities.Peak{}, err
	}

	var pointID *int64
	if input.Point != nil {
		id, err := s.newGeoPoint(ctx, *input.Point)
		if err != nil {
			return entities.Peak{}, err
		}
		pointID = id
	}

	peakSlug, err := s.uniqueSlug(ctx, ports.SlugKindPeak, name)
	if err != nil {
		return entities.Peak{}, err
	}

	editorID := actor.ID
	peak := entities.Peak{
		Slug:        peakSlug,
		RidgeID:     input.RidgeID,
		Name:        name,
		Description: input.Description,
		Height:      input.Height,
		PointID:     pointID,
		EditorID:    &editorID,
		Active:      true,
		Changed:     s.now(),
	}
	if err := s.Peaks.CreatePeak(ctx, &peak); err != nil {
		return entities.Peak{}, err
	}

	resolveLogger(s.Logger).Info("peak created",
		"event", "peak_created",
		"module", "catalog/mountain-service",
		"layer", "application",
		"peak_slug", peak.Slug,
		"ridge_id", peak.RidgeID,
	)
	return peak, nil
}

// UpdatePeak applies the supplied fields and re-resolves the point reference:
// coordinates in the patch insert a fresh GeoPoint row, absent coordinates
// clear the reference. The old row stays behind untouched.
func (s Service) UpdatePeak(ctx context.Context, actor services.Actor, slug string, patch ports.PeakPatch) (entities.Peak, error) {
	peak, err := s.Peaks.GetPeakBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return entities.Peak{}, err
	}
	if err := services.CanEdit(actor, peak.EditorID); err != nil {
		return entities.Peak{}, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return entities.Peak{}, domainerrors.ErrInvalidRequest
		}
		peak.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		peak.Description = *patch.Description
	}
	if patch.RidgeID != nil {
		if _, err := s.Ridges.GetRidgeByID(ctx, *patch.RidgeID); err != nil {
			return entities.Peak{}, err
		}
		peak.RidgeID = *patch.RidgeID
	}
	if patch.Height != nil {
		peak.Height = patch.Height
	}

	peak.PointID = nil
	if patch.Point != nil {
		id, err := s.newGeoPoint(ctx, *patch.Point)
		if err != nil {
			return entities.Peak{}, err
		}
		peak.PointID = id
	}
	peak.Changed = s.now()

	if err := s.Peaks.UpdatePeak(ctx, peak); err != nil {
		return entities.Peak{}, err
	}
	return peak, nil
}

// DeletePeak removes the peak after deleting its photo rows. A peak that
// still owns routes is not deletable; the repository reports ErrConflict.
func (s Service) DeletePeak(ctx context.Context, actor services.Actor, slug string) error {
	peak, err := s.Peaks.GetPeakBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return err
	}
	if err := services.CanEdit(actor, peak.EditorID); err != nil {
		return err
	}
	if err := s.Peaks.DeletePeakPhotosByPeak(ctx, peak.ID); err != nil {
		return err
	}
	if err := s.Peaks.DeletePeak(ctx, peak.ID); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("peak deleted",
		"event", "peak_deleted",
		"module", "catalog/mountain-service",
		"layer", "application",
		"peak_slug", peak.Slug,
	)
	return nil
}

// AddPeakPhoto stores the blob and appends a photo row to the peak. File
// store failures come back wrapped in ErrUploadFailed so the transport can
// soft-fail instead of propagating a 5xx.
func (s Service) AddPeakPhoto(ctx context.Context, actor services.Actor, peakID int64, upload ports.Upload) (entities.PeakPhoto, error) {
	peak, err := s.Peaks.GetPeakByID(ctx, peakID)
	if err != nil {
		return entities.PeakPhoto{}, err
	}
	if err := services.CanEdit(actor, peak.EditorID); err != nil {
		return entities.PeakPhoto{}, err
	}

	path, err := s.Files.Save(ctx, peakImageDir, upload.Filename, upload.Data)
	if err != nil {
		return entities.PeakPhoto{}, fmt.Errorf("%w: %v", domainerrors.ErrUploadFailed, err)
	}

	photo := entities.PeakPhoto{
		PeakID:      peak.ID,
		Photo:       path,
		Description: upload.Description,
	}
	if err := s.Peaks.CreatePeakPhoto(ctx, &photo); err != nil {
		return entities.PeakPhoto{}, err
	}
	return photo, nil
}

// UpdatePeakPhoto overwrites the peak's title photo path.
func (s Service) UpdatePeakPhoto(ctx context.Context, actor services.Actor, peakID int64, upload ports.Upload) (entities.Peak, error) {
	peak, err := s.Peaks.GetPeakByID(ctx, peakID)
	if err != nil {
		return entities.Peak{}, err
	}
	if err := services.CanEdit(actor, peak.EditorID); err != nil {
		return entities.Peak{}, err
	}

	path, err := s.Files.Save(ctx, peakImageDir, upload.Filename, upload.Data)
	if err != nil {
		return entities.Peak{}, fmt.Errorf("%w: %v", domainerrors.ErrUploadFailed, err)
	}

	peak.Photo = path
	peak.Changed = s.now()
	if err := s.Peaks.UpdatePeak(ctx, peak); err != nil {
		return entities.Peak{}, err
	}
	return peak, nil
}

func (s Service) DeletePeakPhoto(ctx context.Context, actor services.Actor, photoID int64) error {
	photo, err := s.Peaks.GetPeakPhoto(ctx, photoID)
	if err != nil {
		return err
	}
	peak, err := s.Peaks.GetPeakByID(ctx, photo.PeakID)
	if err != nil {
		return err
	}
	if err := services.CanEdit(actor, peak.EditorID); err != nil {
		return err
	}
	return s.Peaks.DeletePeakPhoto(ctx, photo.ID)
}
