package application

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"vershyna/contexts/identity/account-service/domain/entities"
	domainerrors "vershyna/contexts/identity/account-service/domain/errors"
	"vershyna/contexts/identity/account-service/ports"
)

// dummy bcrypt hash verified against when the username is unknown, so a
// failed login takes the same shape either way.
const unknownUserHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Service struct {
	Users  ports.UserRepository
	Hasher ports.PasswordHasher
	Tokens ports.TokenCodec
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

// Register creates an active account with no editing rights.
func (s Service) Register(ctx context.Context, input ports.NewUser) (entities.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}

	if _, err := s.Users.GetUserByUsername(ctx, username); err == nil {
		return entities.User{}, domainerrors.ErrUsernameTaken
	} else if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return entities.User{}, err
	}
	if _, err := s.Users.GetUserByEmail(ctx, email); err == nil {
		return entities.User{}, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return entities.User{}, err
	}

	hash, err := s.Hasher.Hash(input.Password)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		MiddleName:   input.MiddleName,
		IsActive:     true,
		DateJoined:   s.now(),
	}
	if err := s.Users.CreateUser(ctx, &user); err != nil {
		return entities.User{}, err
	}

	resolveLogger(s.Logger).Info("user registered",
		"event", "user_registered",
		"module", "identity/account-service",
		"layer", "application",
		"username", user.Username,
	)
	return user, nil
}

// Authenticate checks the credentials and returns the account. Unknown
// usernames and wrong passwords fail identically.
func (s Service) Authenticate(ctx context.Context, username string, password string) (entities.User, error) {
	user, err := s.Users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			s.Hasher.Verify(unknownUserHash, password)
			return entities.User{}, domainerrors.ErrInvalidCredentials
		}
		return entities.User{}, err
	}
	if !s.Hasher.Verify(user.PasswordHash, password) {
		return entities.User{}, domainerrors.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and issues a bearer token for the account.
func (s Service) Login(ctx context.Context, username string, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	token, err := s.Tokens.Issue(user.Username, s.now())
	if err != nil {
		return "", err
	}

	resolveLogger(s.Logger).Info("user logged in",
		"event", "user_logged_in",
		"module", "identity/account-service",
		"layer", "application",
		"username", user.Username,
	)
	return token, nil
}

// Resolve maps a bearer token to an account. Invalid or expired tokens and
// unknown subjects come back as ErrUnauthenticated; a valid token for a
// deactivated account is reported separately.
func (s Service) Resolve(ctx context.Context, token string) (entities.User, error) {
	username, err := s.Tokens.Parse(token)
	if err != nil {
		return entities.User{}, domainerrors.ErrUnauthenticated
	}
	user, err := s.Users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return entities.User{}, domainerrors.ErrUnauthenticated
		}
		return entities.User{}, err
	}
	if !user.IsActive {
		return entities.User{}, domainerrors.ErrInactiveUser
	}
	return user, nil
}

// UpdateProfile patches name fields of the addressed account. The addressed
// username must be the actor's own; anything else reads as a missing row.
func (s Service) UpdateProfile(ctx context.Context, actor entities.User, username string, patch ports.ProfilePatch) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username != actor.Username && !actor.IsAdmin {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	user, err := s.Users.GetUserByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.MiddleName != nil {
		user.MiddleName = *patch.MiddleName
	}

	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// SetPermissions replaces the role flags of the addressed account. Admin only.
func (s Service) SetPermissions(ctx context.Context, actor entities.User, username string, perms ports.Permissions) (entities.User, error) {
	if !actor.IsAdmin {
		return entities.User{}, domainerrors.ErrForbidden
	}
	user, err := s.Users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return entities.User{}, err
	}

	user.IsActive = perms.IsActive
	user.IsAdmin = perms.IsAdmin
	user.IsEditor = perms.IsEditor

	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	resolveLogger(s.Logger).Info("user permissions changed",
		"event", "user_permissions_changed",
		"module", "identity/account-service",
		"layer", "application",
		"username", user.Username,
		"is_admin", user.IsAdmin,
		"is_editor", user.IsEditor,
		"is_active", user.IsActive,
	)
	return user, nil
}

// UpdateEmail changes the account email after re-checking the password.
func (s Service) UpdateEmail(ctx context.Context, actor entities.User, username string, password string, email string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username != actor.Username && !actor.IsAdmin {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}

	user, err := s.Users.GetUserByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if !s.Hasher.Verify(user.PasswordHash, password) {
		return entities.User{}, domainerrors.ErrInvalidCredentials
	}
	if other, err := s.Users.GetUserByEmail(ctx, email); err == nil && other.ID != user.ID {
		return entities.User{}, domainerrors.ErrEmailTaken
	} else if err != nil && !errors.Is(err, domainerrors.ErrUserNotFound) {
		return entities.User{}, err
	}

	user.Email = email
	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// UpdatePassword replaces the password hash after verifying the current one.
func (s Service) UpdatePassword(ctx context.Context, actor entities.User, username string, current string, next string) error {
	username = strings.TrimSpace(username)
	if username != actor.Username && !actor.IsAdmin {
		return domainerrors.ErrUserNotFound
	}
	if next == "" {
		return domainerrors.ErrInvalidRequest
	}

	user, err := s.Users.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !s.Hasher.Verify(user.PasswordHash, current) {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := s.Hasher.Hash(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.Users.UpdateUser(ctx, user)
}
