package services

import (
	"errors"
	"testing"

	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
)

func TestCanAdd(t *testing.T) {
	if err := CanAdd(Actor{ID: 1, IsAdmin: true}); err != nil {
		t.Fatalf("admin should add: %v", err)
	}
	if err := CanAdd(Actor{ID: 2, IsEditor: true}); err != nil {
		t.Fatalf("editor should add: %v", err)
	}
	if err := CanAdd(Actor{ID: 3}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("viewer add: expected forbidden, got %v", err)
	}
}

func TestCanEditOwnership(t *testing.T) {
	owner := int64(7)
	other := int64(8)

	if err := CanEdit(Actor{ID: 7, IsEditor: true}, &owner); err != nil {
		t.Fatalf("owning editor should edit: %v", err)
	}
	if err := CanEdit(Actor{ID: 8, IsEditor: true}, &owner); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("foreign editor: expected forbidden, got %v", err)
	}
	if err := CanEdit(Actor{ID: 9, IsAdmin: true}, &other); err != nil {
		t.Fatalf("admin should edit anything: %v", err)
	}
}

func TestCanEditNilEditorIsAdminOnly(t *testing.T) {
	if err := CanEdit(Actor{ID: 7, IsEditor: true}, nil); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("editor on unowned entity: expected forbidden, got %v", err)
	}
	if err := CanEdit(Actor{ID: 1, IsAdmin: true}, nil); err != nil {
		t.Fatalf("admin on unowned entity: %v", err)
	}
}
