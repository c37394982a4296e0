package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/securebase/user-api/internal/core/domain"
	"github.com/securebase/user-api/internal/core/ports"
)

// UserService implements admin-gated user management. Every operation runs
// the access policy against the resolved actor before touching storage.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	access domain.AccessPolicy
	policy domain.PasswordPolicy
	log    zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	policy domain.PasswordPolicy,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		policy: policy,
		log:    log,
	}
}

func (s *UserService) List(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	if err := s.access.CanPerform(actor, domain.ActionListUsers, nil); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	if err := s.access.CanPerform(actor, domain.ActionGetUser, nil); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Create adds a user on behalf of an admin. The new record is always
// USER-role; there is no escalation path through this operation.
func (s *UserService) Create(ctx context.Context, actor *domain.User, email, password string) (*domain.User, error) {
	if err := s.access.CanPerform(actor, domain.ActionCreateUser, nil); err != nil {
		return nil, err
	}
	if !s.policy.IsAcceptable(password) {
		return nil, domain.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
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
		return nil, err
	}

	s.log.Info().Str("actor_id", actor.ID).Str("user_id", created.ID).Msg("admin created user")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if err := s.access.CanPerform(actor, domain.ActionUpdateUser, nil); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		if !s.policy.IsAcceptable(*input.Password) {
			return nil, domain.ErrWeakPassword
		}
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("actor_id", actor.ID).Str("user_id", updated.ID).Msg("admin updated user")
	return updated, nil
}

// Delete removes a user. Existence is checked before the guards, so a
// missing target reports NotFound rather than Forbidden.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.access.CanPerform(actor, domain.ActionDeleteUser, target); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("actor_id", actor.ID).Str("user_id", id).Msg("admin deleted user")
	return nil
}
