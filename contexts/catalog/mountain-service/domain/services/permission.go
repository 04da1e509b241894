package services

import (
	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
)

// Actor is the acting user as the catalog sees it: identity plus role flags.
// Token validation happens upstream; by the time an Actor exists the session
// is already resolved.
type Actor struct {
	ID       int64
	IsAdmin  bool
	IsEditor bool
}

// CanAdd reports whether the actor may create catalog entities.
func CanAdd(actor Actor) error {
	if actor.IsAdmin || actor.IsEditor {
		return nil
	}
	return domainerrors.ErrForbidden
}

// CanEdit reports whether the actor may update or delete an entity owned by
// editorID. Ownership is an explicit id comparison, never reference identity.
// A nil editor means legacy/unowned: only admins may touch it.
// Child rows (links, sections, points, photos) carry no editor of their own;
// callers pass the parent entity's editor here.
func CanEdit(actor Actor, editorID *int64) error {
	if actor.IsAdmin {
		return nil
	}
	if actor.IsEditor && editorID != nil && *editorID == actor.ID {
		return nil
	}
	return domainerrors.ErrForbidden
}
