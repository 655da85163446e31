package ports

import (
	"context"

	"github.com/herovault/hero-api/internal/core/domain"
)

// AuthRepository defines persistence for user accounts.
type AuthRepository interface {
	// CreateUser inserts the user and returns it with the store-assigned ID.
	// Returns domain.ErrUserExists on a username/email collision.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
