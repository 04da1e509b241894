package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	bcryptadapter "vershyna/contexts/identity/account-service/adapters/bcrypt"
	jwtadapter "vershyna/contexts/identity/account-service/adapters/jwt"
	"vershyna/contexts/identity/account-service/adapters/memory"
	"vershyna/contexts/identity/account-service/domain/entities"
	domainerrors "vershyna/contexts/identity/account-service/domain/errors"
	"vershyna/contexts/identity/account-service/ports"
)

func newTestService() (Service, *memory.Store) {
	store := memory.NewStore()
	return Service{
		Users:  store,
		Hasher: bcryptadapter.Hasher{Cost: bcrypt.MinCost},
		Tokens: jwtadapter.Codec{Secret: []byte("test-secret"), TTL: time.Minute},
		Clock:  store,
	}, store
}

func register(t *testing.T, s Service, username string) entities.User {
	t.Helper()
	user, err := s.Register(context.Background(), ports.NewUser{
		Username: username,
		Email:    username + "@example.com",
		Password: "pass-" + username,
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func TestRegisterHashesPasswordAndDefaultsToViewer(t *testing.T) {
	s, _ := newTestService()

	user, err := s.Register(context.Background(), ports.NewUser{
		Username: "oles",
		Email:    "oles@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "secret" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if !user.IsActive || user.IsAdmin || user.IsEditor {
		t.Fatalf("fresh account should be an active viewer, got %+v", user)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	s, _ := newTestService()
	register(t, s, "oles")

	_, err := s.Register(context.Background(), ports.NewUser{
		Username: "oles",
		Email:    "fresh@example.com",
		Password: "x",
	})
	if !errors.Is(err, domainerrors.ErrUsernameTaken) {
		t.Fatalf("duplicate username: expected taken, got %v", err)
	}

	_, err = s.Register(context.Background(), ports.NewUser{
		Username: "fresh",
		Email:    "oles@example.com",
		Password: "x",
	})
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("duplicate email: expected taken, got %v", err)
	}
}

func TestRegisterValidatesEmail(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Register(context.Background(), ports.NewUser{
		Username: "oles",
		Email:    "not-an-address",
		Password: "x",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestLoginResolveRoundTrip(t *testing.T) {
	s, _ := newTestService()
	register(t, s, "oles")

	token, err := s.Login(context.Background(), "oles", "pass-oles")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	user, err := s.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.Username != "oles" {
		t.Fatalf("resolved wrong account: %q", user.Username)
	}
}

func TestLoginFailuresLookAlike(t *testing.T) {
	s, _ := newTestService()
	register(t, s, "oles")

	if _, err := s.Login(context.Background(), "oles", "wrong"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected invalid credentials, got %v", err)
	}
	if _, err := s.Login(context.Background(), "nobody", "wrong"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected invalid credentials, got %v", err)
	}
}

func TestResolveRejectsGarbageToken(t *testing.T) {
	s, _ := newTestService()

	if _, err := s.Resolve(context.Background(), "not-a-token"); !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestResolveInactiveAccount(t *testing.T) {
	s, store := newTestService()
	user := register(t, s, "oles")

	token, err := s.Login(context.Background(), "oles", "pass-oles")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	user.IsActive = false
	if err := store.UpdateUser(context.Background(), user); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := s.Resolve(context.Background(), token); !errors.Is(err, domainerrors.ErrInactiveUser) {
		t.Fatalf("expected inactive user, got %v", err)
	}
}

func TestSetPermissionsAdminOnly(t *testing.T) {
	s, _ := newTestService()
	actor := register(t, s, "plain")
	target := register(t, s, "target")

	if _, err := s.SetPermissions(context.Background(), actor, target.Username, ports.Permissions{IsEditor: true}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("non-admin: expected forbidden, got %v", err)
	}

	actor.IsAdmin = true
	updated, err := s.SetPermissions(context.Background(), actor, target.Username, ports.Permissions{IsActive: true, IsEditor: true})
	if err != nil {
		t.Fatalf("admin set permissions: %v", err)
	}
	if !updated.IsEditor || updated.IsAdmin {
		t.Fatalf("unexpected flags: %+v", updated)
	}
}

func TestUpdateProfilePartialPatch(t *testing.T) {
	s, _ := newTestService()
	actor := register(t, s, "oles")

	middle := "Ivanovych"
	updated, err := s.UpdateProfile(context.Background(), actor, actor.Username, ports.ProfilePatch{MiddleName: &middle})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.MiddleName != "Ivanovych" {
		t.Fatalf("middle name not applied: %+v", updated)
	}
	if updated.FirstName != actor.FirstName || updated.LastName != actor.LastName {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateProfileForeignUsernameReadsAsMissing(t *testing.T) {
	s, _ := newTestService()
	actor := register(t, s, "oles")
	register(t, s, "other")

	first := "X"
	if _, err := s.UpdateProfile(context.Background(), actor, "other", ports.ProfilePatch{FirstName: &first}); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestUpdateEmailRequiresPassword(t *testing.T) {
	s, _ := newTestService()
	actor := register(t, s, "oles")

	if _, err := s.UpdateEmail(context.Background(), actor, actor.Username, "wrong", "new@example.com"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected invalid credentials, got %v", err)
	}

	updated, err := s.UpdateEmail(context.Background(), actor, actor.Username, "pass-oles", "new@example.com")
	if err != nil {
		t.Fatalf("update email: %v", err)
	}
	if updated.Email != "new@example.com" {
		t.Fatalf("email not applied: %q", updated.Email)
	}
}

func TestUpdatePasswordVerifiesCurrent(t *testing.T) {
	s, _ := newTestService()
	actor := register(t, s, "oles")

	if err := s.UpdatePassword(context.Background(), actor, actor.Username, "wrong", "next"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("wrong current: expected invalid credentials, got %v", err)
	}
	if err := s.UpdatePassword(context.Background(), actor, actor.Username, "pass-oles", "next"); err != nil {
		t.Fatalf("update password: %v", err)
	}
	if _, err := s.Login(context.Background(), "oles", "next"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := s.Login(context.Background(), "oles", "pass-oles"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}
}
