package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/securebase/user-api/internal/api/metrics"
	"github.com/securebase/user-api/internal/core/domain"
	"github.com/securebase/user-api/internal/core/ports"
)

// AuthService orchestrates registration, login and access-token refresh.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	policy domain.PasswordPolicy
	log    zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	policy domain.PasswordPolicy,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		policy: policy,
		log:    log,
	}
}

// Register creates a USER-role record and issues a token pair for it.
// The FindByEmail pre-check is best effort; the unique index on email is the
// final authority under concurrent duplicate registrations, and the
// repository surfaces its violation as domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error) {
	if !s.policy.IsAcceptable(password) {
		metrics.RegistrationsTotal.WithLabelValues("weak_password").Inc()
		return nil, nil, domain.ErrWeakPassword
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return nil, nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, nil, err
	}

	pair, err := s.issuePair(created.ID)
	if err != nil {
		return nil, nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, pair, nil
}

// Login verifies credentials and issues a fresh token pair. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return pair, nil
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token itself is not rotated or invalidated; a leaked one stays usable for
// its full lifetime.
func (s *AuthService) Refresh(_ context.Context, refreshToken string) (string, error) {
	userID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidToken
	}
	return s.tokens.IssueAccessToken(userID)
}

func (s *AuthService) issuePair(userID string) (*ports.TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
