package ports

import (
	"context"

	"github.com/storekit/catalog-api/internal/core/domain"
)

// UpdateUserInput carries a partial user update. Nil fields are left untouched.
type UpdateUserInput struct {
	Email    *string
	FullName *string
	IsActive *bool
}

// UserService defines account management use cases.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
