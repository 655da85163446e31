package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/herovault/hero-api/internal/api/metrics"
	"github.com/herovault/hero-api/internal/core/domain"
	"github.com/herovault/hero-api/internal/core/ports"
)

type HeroService struct {
	repo   ports.HeroRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewHeroService(repo ports.HeroRepository, logger zerolog.Logger) *HeroService {
	return &HeroService{repo: repo, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// ListHeroes returns every hero owned by ownerID, ordered by creation time.
func (s *HeroService) ListHeroes(ctx context.Context, ownerID string) ([]domain.Hero, error) {
	heroes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list heroes")
		return nil, err
	}
	return heroes, nil
}

// CreateHero inserts a new hero owned by input.OwnerID. CreatedAt and
// UpdatedAt are both set to the same instant.
func (s *HeroService) CreateHero(ctx context.Context, input ports.CreateHeroInput) (*domain.Hero, error) {
	now := s.now()
	hero := &domain.Hero{
		OwnerID:    input.OwnerID,
		Name:       input.Name,
		Style:      input.Style,
		Health:     input.Health,
		Damage:     input.Damage,
		Resistance: input.Resistance,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, hero); err != nil {
		s.logger.Error().Err(err).Msg("failed to create hero")
		return nil, err
	}

	metrics.HeroesCreatedTotal.Inc()
	s.logger.Info().Int64("hero_id", hero.ID).Msg("hero created")
	return hero, nil
}

// UpdateHero rewrites the hero matching input.ID and input.OwnerID in a
// single statement. A zero-row match surfaces as domain.ErrHeroNotFound, so
// "not yours" and "does not exist" are indistinguishable to the caller.
func (s *HeroService) UpdateHero(ctx context.Context, input ports.UpdateHeroInput) (*domain.Hero, error) {
	hero := &domain.Hero{
		ID:         input.ID,
		OwnerID:    input.OwnerID,
		Name:       input.Name,
		Style:      input.Style,
		Health:     input.Health,
		Damage:     input.Damage,
		Resistance: input.Resistance,
		UpdatedAt:  s.now(),
	}

	if err := s.repo.Update(ctx, hero); err != nil {
		if err != domain.ErrHeroNotFound {
			s.logger.Error().Err(err).Int64("hero_id", input.ID).Msg("failed to update hero")
		}
		return nil, err
	}

	metrics.HeroesUpdatedTotal.Inc()
	s.logger.Info().Int64("hero_id", hero.ID).Msg("hero updated")
	return hero, nil
}

// DeleteHero removes the hero matching id and ownerID.
func (s *HeroService) DeleteHero(ctx context.Context, id int64, ownerID string) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		if err != domain.ErrHeroNotFound {
			s.logger.Error().Err(err).Int64("hero_id", id).Msg("failed to delete hero")
		}
		return err
	}

	metrics.HeroesDeletedTotal.Inc()
	s.logger.Info().Int64("hero_id", id).Msg("hero deleted")
	return nil
}
