package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// OrderItemService composes order items with the product and order they
// link, fetched concurrently from the product and order services.
type OrderItemService struct {
	repo     ports.OrderItemRepository
	products ports.ProductLookup
	orders   ports.OrderLookup
	policy   DeletePolicy
	log      zerolog.Logger
}

func NewOrderItemService(
	repo ports.OrderItemRepository,
	products ports.ProductLookup,
	orders ports.OrderLookup,
	policy DeletePolicy,
	log zerolog.Logger,
) *OrderItemService {
	return &OrderItemService{repo: repo, products: products, orders: orders, policy: policy, log: log}
}

func (s *OrderItemService) FindAll(ctx context.Context) ([]ports.OrderItemDetail, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.OrderItemDetail, 0, len(items))
	for _, oi := range items {
		detail, err := s.enrich(ctx, oi)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *OrderItemService) FindByKey(ctx context.Context, orderID, productID int) (*ports.OrderItemDetail, error) {
	oi, err := s.repo.FindByKey(ctx, orderID, productID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *oi)
}

func (s *OrderItemService) Create(ctx context.Context, oi domain.OrderItem) (*ports.OrderItemDetail, error) {
	created, err := s.repo.Create(ctx, &oi)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("order_id", created.OrderID).Int("product_id", created.ProductID).Msg("order item created")
	return s.enrich(ctx, *created)
}

func (s *OrderItemService) Update(ctx context.Context, oi domain.OrderItem) (*ports.OrderItemDetail, error) {
	updated, err := s.repo.Update(ctx, &oi)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *updated)
}

func (s *OrderItemService) DeleteByKey(ctx context.Context, orderID, productID int) error {
	if s.policy == DeleteVerify {
		if _, err := s.repo.FindByKey(ctx, orderID, productID); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByKey(ctx, orderID, productID); err != nil {
		return err
	}
	s.log.Info().Int("order_id", orderID).Int("product_id", productID).Msg("order item deleted")
	return nil
}

func (s *OrderItemService) enrich(ctx context.Context, oi domain.OrderItem) (*ports.OrderItemDetail, error) {
	detail := &ports.OrderItemDetail{OrderItem: oi}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		product, err := s.products.FetchProduct(gctx, oi.ProductID)
		if err != nil {
			return err
		}
		detail.Product = product
		return nil
	})
	g.Go(func() error {
		order, err := s.orders.FetchOrder(gctx, oi.OrderID)
		if err != nil {
			return err
		}
		detail.Order = order
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Int("order_id", oi.OrderID).Int("product_id", oi.ProductID).Msg("order item enrichment failed")
		return nil, err
	}
	return detail, nil
}
