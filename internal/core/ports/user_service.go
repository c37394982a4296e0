package ports

import (
	"context"

	"github.com/securebase/user-api/internal/core/domain"
)

// UpdateUserInput carries the optional fields of an admin update. Nil means
// "leave unchanged".
type UpdateUserInput struct {
	Email    *string
	Password *string
}

// UserService orchestrates admin-gated user management. Every method takes
// the resolved actor so the access policy can be applied before any
// repository call.
type UserService interface {
	List(ctx context.Context, actor *domain.User) ([]*domain.User, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error)
	Create(ctx context.Context, actor *domain.User, email, password string) (*domain.User, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
