package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/herovault/hero-api/internal/core/domain"
)

// HeroRepository implements ports.HeroRepository against Postgres. Every
// operation is a single statement; Update and Delete carry the ownership
// check inside the WHERE clause so there is no read-then-check window.
type HeroRepository struct {
	db *pgxpool.Pool
}

func NewHeroRepository(db *pgxpool.Pool) *HeroRepository {
	return &HeroRepository{db: db}
}

func (r *HeroRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Hero, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, style, health, damage, resistance, created_at, updated_at
		FROM heroes
		WHERE owner_id = $1
		ORDER BY created_at ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}
	defer rows.Close()

	heroes := []domain.Hero{}
	for rows.Next() {
		var h domain.Hero
		if err := rows.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Style, &h.Health, &h.Damage, &h.Resistance, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hero: %w", err)
		}
		heroes = append(heroes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}
	return heroes, nil
}

func (r *HeroRepository) Create(ctx context.Context, h *domain.Hero) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO heroes (owner_id, name, style, health, damage, resistance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		h.OwnerID, h.Name, h.Style, h.Health, h.Damage, h.Resistance, h.CreatedAt, h.UpdatedAt,
	).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("insert hero: %w", err)
	}
	return nil
}

func (r *HeroRepository) Update(ctx context.Context, h *domain.Hero) error {
	err := r.db.QueryRow(ctx, `
		UPDATE heroes
		SET name = $1, style = $2, health = $3, damage = $4, resistance = $5, updated_at = $6
		WHERE id = $7 AND owner_id = $8
		RETURNING created_at`,
		h.Name, h.Style, h.Health, h.Damage, h.Resistance, h.UpdatedAt, h.ID, h.OwnerID,
	).Scan(&h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrHeroNotFound
		}
		return fmt.Errorf("update hero: %w", err)
	}
	return nil
}

func (r *HeroRepository) Delete(ctx context.Context, id int64, ownerID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM heroes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete hero: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHeroNotFound
	}
	return nil
}
