package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storekit/catalog-api/internal/core/domain"
	"github.com/storekit/catalog-api/internal/core/ports"
)

// ProductService implements catalog use cases. Mutations are restricted to the
// product owner or an admin.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, ownerID string, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		OwnerID:     ownerID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("owner_id", ownerID).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) SearchByName(ctx context.Context, name string) ([]*domain.Product, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *ProductService) Update(ctx context.Context, id string, actor ports.Actor, input ports.UpdateProductInput) (*domain.Product, error) {
	if err := s.authorize(ctx, id, actor); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Str("actor_id", actor.UserID).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string, actor ports.Actor) error {
	if err := s.authorize(ctx, id, actor); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("product_id", id).Str("actor_id", actor.UserID).Msg("product deleted")
	return nil
}

// authorize loads the product and checks the actor may mutate it. Admins may
// touch anything; everyone else only their own products.
func (s *ProductService) authorize(ctx context.Context, id string, actor ports.Actor) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role != domain.RoleAdmin && product.OwnerID != actor.UserID {
		return domain.ErrForbidden
	}
	return nil
}
