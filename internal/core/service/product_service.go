package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// ProductService composes products with their category from the local store.
type ProductService struct {
	repo       ports.ProductRepository
	categories ports.CategoryRepository
	policy     DeletePolicy
	log        zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, policy DeletePolicy, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, policy: policy, log: log}
}

func (s *ProductService) FindAll(ctx context.Context) ([]ports.ProductDetail, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.ProductDetail, 0, len(products))
	for _, p := range products {
		detail, err := s.enrich(ctx, p)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *ProductService) FindByID(ctx context.Context, id int) (*ports.ProductDetail, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *p)
}

func (s *ProductService) Create(ctx context.Context, p domain.Product) (*ports.ProductDetail, error) {
	created, err := s.repo.Create(ctx, &p)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("product_id", created.ID).Str("sku", created.SKU).Msg("product created")
	return s.enrich(ctx, *created)
}

func (s *ProductService) Update(ctx context.Context, p domain.Product) (*ports.ProductDetail, error) {
	updated, err := s.repo.Update(ctx, &p)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *updated)
}

func (s *ProductService) DeleteByID(ctx context.Context, id int) error {
	if s.policy == DeleteVerify {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) enrich(ctx context.Context, p domain.Product) (*ports.ProductDetail, error) {
	detail := &ports.ProductDetail{Product: p}
	if p.CategoryID == 0 {
		return detail, nil
	}

	category, err := s.categories.FindByID(ctx, p.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.Category = category
	return detail, nil
}
