package service

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/herovault/hero-api/internal/core/domain"
	"github.com/herovault/hero-api/internal/core/ports"
)

// AuthService implements registration and credential login. Session tokens
// carry the user's id as the subject claim; everything downstream treats the
// subject as an opaque string.
type AuthService struct {
	repo   ports.AuthRepository
	issuer ports.TokenIssuer
}

func NewAuthService(repo ports.AuthRepository, issuer ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.CreateUser(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// Collapse into the same failure as a wrong password so login
			// responses never reveal whether an account exists.
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
