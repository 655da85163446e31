package ports

import (
	"context"

	"github.com/herovault/hero-api/internal/core/domain"
)

// HeroRepository defines persistence operations for heroes. Every write is a
// single atomic statement; Update and Delete embed the ownership check in the
// statement's predicate (id AND owner_id) rather than read-then-check.
type HeroRepository interface {
	// ListByOwner returns all heroes owned by ownerID, ordered by created_at ascending.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Hero, error)
	// Create inserts h and fills in the store-assigned ID.
	Create(ctx context.Context, h *domain.Hero) error
	// Update rewrites the row matching h.ID and h.OwnerID and refreshes h from
	// the stored row. Returns domain.ErrHeroNotFound when no row matched.
	Update(ctx context.Context, h *domain.Hero) error
	// Delete removes the row matching id and ownerID.
	// Returns domain.ErrHeroNotFound when no row matched.
	Delete(ctx context.Context, id int64, ownerID string) error
}
