package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// OrderService composes orders with their cart from the local store. A cart
// deleted after the order was written leaves the fragment empty rather than
// failing the read; the bare cart_id is still present on the record.
type OrderService struct {
	repo   ports.OrderRepository
	carts  ports.CartRepository
	policy DeletePolicy
	log    zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, carts ports.CartRepository, policy DeletePolicy, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, carts: carts, policy: policy, log: log}
}

func (s *OrderService) FindAll(ctx context.Context) ([]ports.OrderDetail, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.OrderDetail, 0, len(orders))
	for _, o := range orders {
		detail, err := s.enrich(ctx, o)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *OrderService) FindByID(ctx context.Context, id int) (*ports.OrderDetail, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *o)
}

func (s *OrderService) Create(ctx context.Context, o domain.Order) (*ports.OrderDetail, error) {
	created, err := s.repo.Create(ctx, &o)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("order_id", created.ID).Int("cart_id", created.CartID).Msg("order created")
	return s.enrich(ctx, *created)
}

func (s *OrderService) Update(ctx context.Context, o domain.Order) (*ports.OrderDetail, error) {
	updated, err := s.repo.Update(ctx, &o)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *updated)
}

func (s *OrderService) DeleteByID(ctx context.Context, id int) error {
	if s.policy == DeleteVerify {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("order_id", id).Msg("order deleted")
	return nil
}

func (s *OrderService) enrich(ctx context.Context, o domain.Order) (*ports.OrderDetail, error) {
	detail := &ports.OrderDetail{Order: o}
	if o.CartID == 0 {
		return detail, nil
	}

	cart, err := s.carts.FindByID(ctx, o.CartID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.Cart = cart
	return detail, nil
}
