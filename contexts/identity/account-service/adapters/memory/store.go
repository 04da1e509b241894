package memory

import (
	"context"
	"sync"
	"time"

	"vershyna/contexts/identity/account-service/domain/entities"
	domainerrors "vershyna/contexts/identity/account-service/domain/errors"
)

// Store is an in-memory account repository for tests and local runs.
type Store struct {
	mu     sync.RWMutex
	users  map[int64]entities.User
	nextID int64
}

func NewStore() *Store {
	return &Store{
		users:  make(map[int64]entities.User),
		nextID: 1,
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) GetUserByID(_ context.Context, id int64) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return entities.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entities.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) CreateUser(_ context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return domainerrors.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *Store) UpdateUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	s.users[user.ID] = user
	return nil
}
