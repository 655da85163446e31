package ports

import (
	"context"

	"github.com/herovault/hero-api/internal/core/domain"
)

// CreateHeroInput carries a validated candidate hero. Fields arrive already
// type-coerced by the transport layer (health/damage truncated to int).
type CreateHeroInput struct {
	OwnerID    string
	Name       string
	Style      string
	Health     int
	Damage     int
	Resistance float64
}

// UpdateHeroInput carries a full replacement for an existing hero.
type UpdateHeroInput struct {
	ID         int64
	OwnerID    string
	Name       string
	Style      string
	Health     int
	Damage     int
	Resistance float64
}

// HeroService defines the use-case operations for the hero collection. All
// operations are scoped to the resolved owner identity.
type HeroService interface {
	ListHeroes(ctx context.Context, ownerID string) ([]domain.Hero, error)
	CreateHero(ctx context.Context, input CreateHeroInput) (*domain.Hero, error)
	UpdateHero(ctx context.Context, input UpdateHeroInput) (*domain.Hero, error)
	DeleteHero(ctx context.Context, id int64, ownerID string) error
}
