package application

import (
	"context"
	"strings"

	"vershyna/contexts/catalog/mountain-service/domain/entities"
	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
	"vershyna/contexts/catalog/mountain-service/domain/services"
	"vershyna/contexts/catalog/mountain-service/ports"
)

func (s Service) ListRidges(ctx context.Context) ([]entities.Ridge, error) {
	return s.Ridges.ListRidges(ctx)
}

// GetRidge resolves a ridge by slug together with its peaks and info links.
func (s Service) GetRidge(ctx context.Context, slug string) (ports.RidgeDetail, error) {
	ridge, err := s.Ridges.GetRidgeBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return ports.RidgeDetail{}, err
	}
	peaks, err := s.Peaks.ListPeaksByRidge(ctx, ridge.ID)
	if err != nil {
		return ports.RidgeDetail{}, err
	}
	links, err := s.Ridges.ListInfoLinks(ctx, ridge.ID)
	if err != nil {
		return ports.RidgeDetail{}, err
	}
	return ports.RidgeDetail{Ridge: ridge, Peaks: peaks, InfoLinks: links}, nil
}

func (s Service) RidgePeaks(ctx context.Context, slug string) ([]entities.Peak, error) {
	ridge, err := s.Ridges.GetRidgeBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	return s.Peaks.ListPeaksByRidge(ctx, ridge.ID)
}

func (s Service) AddRidge(ctx context.Context, actor services.Actor, input ports.NewRidge) (entities.Ridge, error) {
	if err := services.CanAdd(actor); err != nil {
		return entities.Ridge{}, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.Ridge{}, domainerrors.ErrInvalidRequest
	}

	ridgeSlug, err := s.uniqueSlug(ctx, ports.SlugKindRidge, name)
	if err != nil {
		return entities.Ridge{}, err
	}

	editorID := actor.ID
	ridge := entities.Ridge{
		Slug:        ridgeSlug,
		Name:        name,
		Description: input.Description,
		EditorID:    &editorID,
		Active:      true,
		Changed:     s.now(),
	}
	if err := s.Ridges.CreateRidge(ctx, &ridge); err != nil {
		return entities.Ridge{}, err
	}

	resolveLogger(s.Logger).Info("ridge created",
		"event", "ridge_created",
		"module", "catalog/mountain-service",
		"layer", "application",
		"ridge_slug", ridge.Slug,
		"editor_id", editorID,
	)
	return ridge, nil
}

// UpdateRidge applies only the fields present in the patch. The slug is left
// alone even when the name changes.
func (s Service) UpdateRidge(ctx context.Context, actor services.Actor, slug string, patch ports.RidgePatch) (entities.Ridge, error) {
	ridge, err := s.Ridges.GetRidgeBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return entities.Ridge{}, err
	}
	if err := services.CanEdit(actor, ridge.EditorID); err != nil {
		return entities.Ridge{}, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return entities.Ridge{}, domainerrors.ErrInvalidRequest
		}
		ridge.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		ridge.Description = *patch.Description
	}
	if patch.Active != nil {
		ridge.Active = *patch.Active
	}
	ridge.Changed = s.now()

	if err := s.Ridges.UpdateRidge(ctx, ridge); err != nil {
		return entities.Ridge{}, err
	}
	return ridge, nil
}

// DeleteRidge removes the ridge after deleting its info links. A ridge that
// still owns peaks is not deletable; the repository reports ErrConflict.
func (s Service) DeleteRidge(ctx context.Context, actor services.Actor, slug string) error {
	ridge, err := s.Ridges.GetRidgeBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return err
	}
	if err := services.CanEdit(actor, ridge.EditorID); err != nil {
		return err
	}
	if err := s.Ridges.DeleteInfoLinksByRidge(ctx, ridge.ID); err != nil {
		return err
	}
	if err := s.Ridges.DeleteRidge(ctx, ridge.ID); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("ridge deleted",
		"event", "ridge_deleted",
		"module", "catalog/mountain-service",
		"layer", "application",
		"ridge_slug", ridge.Slug,
	)
	return nil
}

// AddInfoLink attaches an external link to a ridge. Links have no editor of
// their own; the ridge's editor decides permission.
func (s Service) AddInfoLink(ctx context.Context, actor services.Actor, ridgeID int64, input ports.NewInfoLink) (entities.RidgeInfoLink, error) {
	ridge, err := s.Ridges.GetRidgeByID(ctx, ridgeID)
	if err != nil {
		return entities.RidgeInfoLink{}, err
	}
	if err := services.CanEdit(actor, ridge.EditorID); err != nil {
		return entities.RidgeInfoLink{}, err
	}
	if strings.TrimSpace(input.Link) == "" {
		return entities.RidgeInfoLink{}, domainerrors.ErrInvalidRequest
	}

	link := entities.RidgeInfoLink{
		RidgeID:     ridge.ID,
		Link:        strings.TrimSpace(input.Link),
		Description: input.Description,
	}
	if err := s.Ridges.CreateInfoLink(ctx, &link); err != nil {
		return entities.RidgeInfoLink{}, err
	}
	return link, nil
}

func (s Service) DeleteInfoLink(ctx context.Context, actor services.Actor, linkID int64) error {
	link, err := s.Ridges.GetInfoLink(ctx, linkID)
	if err != nil {
		return err
	}
	ridge, err := s.Ridges.GetRidgeByID(ctx, link.RidgeID)
	if err != nil {
		return err
	}
	if err := services.CanEdit(actor, ridge.EditorID); err != nil {
		return err
	}
	return s.Ridges.DeleteInfoLink(ctx, link.ID)
}
