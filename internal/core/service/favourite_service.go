package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// FavouriteService composes favourites with their user and product, each
// fetched from the owning service. Both lookups run concurrently; the first
// failure aborts the whole read — no partial composite is ever returned.
type FavouriteService struct {
	repo     ports.FavouriteRepository
	users    ports.UserLookup
	products ports.ProductLookup
	policy   DeletePolicy
	log      zerolog.Logger
}

func NewFavouriteService(
	repo ports.FavouriteRepository,
	users ports.UserLookup,
	products ports.ProductLookup,
	policy DeletePolicy,
	log zerolog.Logger,
) *FavouriteService {
	return &FavouriteService{repo: repo, users: users, products: products, policy: policy, log: log}
}

func (s *FavouriteService) FindAll(ctx context.Context) ([]ports.FavouriteDetail, error) {
	favourites, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.FavouriteDetail, 0, len(favourites))
	for _, f := range favourites {
		detail, err := s.enrich(ctx, f)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *FavouriteService) FindByKey(ctx context.Context, userID, productID int) (*ports.FavouriteDetail, error) {
	f, err := s.repo.FindByKey(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *f)
}

func (s *FavouriteService) Create(ctx context.Context, f domain.Favourite) (*ports.FavouriteDetail, error) {
	created, err := s.repo.Create(ctx, &f)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("user_id", created.UserID).Int("product_id", created.ProductID).Msg("favourite created")
	return s.enrich(ctx, *created)
}

func (s *FavouriteService) Update(ctx context.Context, f domain.Favourite) (*ports.FavouriteDetail, error) {
	updated, err := s.repo.Update(ctx, &f)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *updated)
}

func (s *FavouriteService) DeleteByKey(ctx context.Context, userID, productID int) error {
	if s.policy == DeleteVerify {
		if _, err := s.repo.FindByKey(ctx, userID, productID); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByKey(ctx, userID, productID); err != nil {
		return err
	}
	s.log.Info().Int("user_id", userID).Int("product_id", productID).Msg("favourite deleted")
	return nil
}

// enrich resolves both foreign references concurrently. The lookups are
// independent; neither result depends on the other. Any failure cancels the
// sibling fetch and fails the read.
func (s *FavouriteService) enrich(ctx context.Context, f domain.Favourite) (*ports.FavouriteDetail, error) {
	detail := &ports.FavouriteDetail{Favourite: f}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := s.users.FetchUser(gctx, f.UserID)
		if err != nil {
			return err
		}
		detail.User = user
		return nil
	})
	g.Go(func() error {
		product, err := s.products.FetchProduct(gctx, f.ProductID)
		if err != nil {
			return err
		}
		detail.Product = product
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Int("user_id", f.UserID).Int("product_id", f.ProductID).Msg("favourite enrichment failed")
		return nil, err
	}
	return detail, nil
}
