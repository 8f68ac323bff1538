package ports

import (
	"context"

	"github.com/storekit/catalog-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	// FindByName performs a case-insensitive partial match on the product name.
	FindByName(ctx context.Context, name string) ([]*domain.Product, error)
	// Update applies the non-nil fields of input and returns the updated product.
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
