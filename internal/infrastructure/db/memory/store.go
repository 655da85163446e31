// Package memory provides a transient in-process store used when the
// Postgres connection cannot be established at startup. It satisfies the
// same repository ports as the Postgres implementations; data does not
// survive a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/herovault/hero-api/internal/core/domain"
)

type Store struct {
	mu         sync.Mutex
	heroes     map[int64]domain.Hero
	users      map[int64]domain.User
	nextHeroID int64
	nextUserID int64
}

func NewStore() *Store {
	return &Store{
		heroes: make(map[int64]domain.Hero),
		users:  make(map[int64]domain.User),
	}
}

// Ping always succeeds; the fallback store is reachable by construction.
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// --- ports.HeroRepository ---

func (s *Store) ListByOwner(_ context.Context, ownerID string) ([]domain.Hero, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	heroes := []domain.Hero{}
	for _, h := range s.heroes {
		if h.OwnerID == ownerID {
			heroes = append(heroes, h)
		}
	}
	sort.Slice(heroes, func(i, j int) bool {
		if heroes[i].CreatedAt.Equal(heroes[j].CreatedAt) {
			return heroes[i].ID < heroes[j].ID
		}
		return heroes[i].CreatedAt.Before(heroes[j].CreatedAt)
	})
	return heroes, nil
}

func (s *Store) Create(_ context.Context, h *domain.Hero) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextHeroID++
	h.ID = s.nextHeroID
	s.heroes[h.ID] = *h
	return nil
}

func (s *Store) Update(_ context.Context, h *domain.Hero) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.heroes[h.ID]
	if !ok || stored.OwnerID != h.OwnerID {
		return domain.ErrHeroNotFound
	}

	h.CreatedAt = stored.CreatedAt
	s.heroes[h.ID] = *h
	return nil
}

func (s *Store) Delete(_ context.Context, id int64, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.heroes[id]
	if !ok || stored.OwnerID != ownerID {
		return domain.ErrHeroNotFound
	}
	delete(s.heroes, id)
	return nil
}

// --- ports.AuthRepository ---

func (s *Store) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}

	s.nextUserID++
	user.ID = s.nextUserID
	s.users[user.ID] = *user
	return user, nil
}

func (s *Store) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
