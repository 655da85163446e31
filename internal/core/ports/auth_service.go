package ports

import (
	"context"

	"github.com/herovault/hero-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token.
	// Unknown users and wrong passwords both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
