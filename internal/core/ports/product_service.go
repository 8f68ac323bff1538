package ports

import (
	"context"

	"github.com/storekit/catalog-api/internal/core/domain"
)

// Actor identifies the authenticated caller of a mutating operation.
type Actor struct {
	UserID string
	Role   string
}

// CreateProductInput carries the data needed to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// UpdateProductInput carries a partial product update. Nil fields are left
// untouched, which lets PUT and PATCH share one code path.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	IsActive    *bool
}

// Empty reports whether the input contains no fields to apply.
func (i UpdateProductInput) Empty() bool {
	return i.Name == nil && i.Description == nil && i.Price == nil &&
		i.Stock == nil && i.IsActive == nil
}

// ProductService defines catalog use cases. Mutations enforce that the actor
// owns the product or holds the admin role.
type ProductService interface {
	Create(ctx context.Context, ownerID string, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	SearchByName(ctx context.Context, name string) ([]*domain.Product, error)
	Update(ctx context.Context, id string, actor Actor, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string, actor Actor) error
}
