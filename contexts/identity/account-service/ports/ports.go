package ports

import (
	"context"
	"time"

	"vershyna/contexts/identity/account-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// PasswordHasher hides the hashing scheme from the application layer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

// TokenCodec issues and parses bearer tokens. Parse returns the subject
// username of a valid, unexpired token.
type TokenCodec interface {
	Issue(username string, now time.Time) (string, error)
	Parse(token string) (string, error)
}

type NewUser struct {
	Username   string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	MiddleName string
}

// ProfilePatch applies only non-nil fields.
type ProfilePatch struct {
	FirstName  *string
	LastName   *string
	MiddleName *string
}

type Permissions struct {
	IsActive bool
	IsAdmin  bool
	IsEditor bool
}

type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) error
	UpdateUser(ctx context.Context, user entities.User) error
}
