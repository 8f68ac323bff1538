package ports

import (
	"context"

	"github.com/storekit/catalog-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must report domain.ErrUserExists when the username or email is
// already taken (enforced through unique indexes).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Update applies the non-nil fields of input and returns the updated user.
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
