package ports

import (
	"context"

	"github.com/securebase/user-api/internal/core/domain"
)

// TokenPair bundles the two credentials issued on registration and login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
