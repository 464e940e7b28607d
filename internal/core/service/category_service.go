package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// CategoryService composes categories with their parent category. Root
// categories have no parent and compose nothing.
type CategoryService struct {
	repo   ports.CategoryRepository
	policy DeletePolicy
	log    zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, policy DeletePolicy, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, policy: policy, log: log}
}

func (s *CategoryService) FindAll(ctx context.Context) ([]ports.CategoryDetail, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.CategoryDetail, 0, len(categories))
	for _, c := range categories {
		detail, err := s.enrich(ctx, c)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *CategoryService) FindByID(ctx context.Context, id int) (*ports.CategoryDetail, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *c)
}

func (s *CategoryService) Create(ctx context.Context, c domain.Category) (*ports.CategoryDetail, error) {
	created, err := s.repo.Create(ctx, &c)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("category_id", created.ID).Str("title", created.Title).Msg("category created")
	return s.enrich(ctx, *created)
}

func (s *CategoryService) Update(ctx context.Context, c domain.Category) (*ports.CategoryDetail, error) {
	updated, err := s.repo.Update(ctx, &c)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *updated)
}

func (s *CategoryService) DeleteByID(ctx context.Context, id int) error {
	if s.policy == DeleteVerify {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("category_id", id).Msg("category deleted")
	return nil
}

func (s *CategoryService) enrich(ctx context.Context, c domain.Category) (*ports.CategoryDetail, error) {
	detail := &ports.CategoryDetail{Category: c}
	if c.ParentCategoryID == 0 {
		return detail, nil
	}

	parent, err := s.repo.FindByID(ctx, c.ParentCategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.ParentCategory = parent
	return detail, nil
}
