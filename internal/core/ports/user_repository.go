package ports

import (
	"context"

	"github.com/securebase/user-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user records.
// Implementations own atomicity; in particular, Create must surface an
// email uniqueness violation as domain.ErrUserExists so the storage-level
// constraint remains the final authority under concurrent registration.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
