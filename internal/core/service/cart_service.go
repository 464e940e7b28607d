package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// CartService composes carts with their owning user from the user service.
// An anonymous cart (UserID zero) performs no remote call at all.
type CartService struct {
	repo   ports.CartRepository
	users  ports.UserLookup
	policy DeletePolicy
	log    zerolog.Logger
}

func NewCartService(repo ports.CartRepository, users ports.UserLookup, policy DeletePolicy, log zerolog.Logger) *CartService {
	return &CartService{repo: repo, users: users, policy: policy, log: log}
}

func (s *CartService) FindAll(ctx context.Context) ([]ports.CartDetail, error) {
	carts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.CartDetail, 0, len(carts))
	for _, c := range carts {
		detail, err := s.enrich(ctx, c)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *CartService) FindByID(ctx context.Context, id int) (*ports.CartDetail, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *c)
}

func (s *CartService) Create(ctx context.Context, c domain.Cart) (*ports.CartDetail, error) {
	created, err := s.repo.Create(ctx, &c)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("cart_id", created.ID).Int("user_id", created.UserID).Msg("cart created")
	return s.enrich(ctx, *created)
}

func (s *CartService) Update(ctx context.Context, c domain.Cart) (*ports.CartDetail, error) {
	updated, err := s.repo.Update(ctx, &c)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *updated)
}

func (s *CartService) DeleteByID(ctx context.Context, id int) error {
	if s.policy == DeleteVerify {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("cart_id", id).Msg("cart deleted")
	return nil
}

func (s *CartService) enrich(ctx context.Context, c domain.Cart) (*ports.CartDetail, error) {
	detail := &ports.CartDetail{Cart: c}
	if c.UserID == 0 {
		return detail, nil
	}

	user, err := s.users.FetchUser(ctx, c.UserID)
	if err != nil {
		s.log.Error().Err(err).Int("cart_id", c.ID).Int("user_id", c.UserID).Msg("cart enrichment failed")
		return nil, err
	}
	detail.User = user
	return detail, nil
}
