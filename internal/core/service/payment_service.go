package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// PaymentService composes payments with the order they settle, fetched from
// the order service on every read. A failed order lookup fails the read.
type PaymentService struct {
	repo   ports.PaymentRepository
	orders ports.OrderLookup
	policy DeletePolicy
	log    zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, orders ports.OrderLookup, policy DeletePolicy, log zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, orders: orders, policy: policy, log: log}
}

func (s *PaymentService) FindAll(ctx context.Context) ([]ports.PaymentDetail, error) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.PaymentDetail, 0, len(payments))
	for _, p := range payments {
		detail, err := s.enrich(ctx, p)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *PaymentService) FindByID(ctx context.Context, id int) (*ports.PaymentDetail, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *p)
}

// Create persists the bare record, then re-runs enrichment on the stored
// row so the response carries freshly resolved order data rather than
// anything the caller supplied.
func (s *PaymentService) Create(ctx context.Context, p domain.Payment) (*ports.PaymentDetail, error) {
	created, err := s.repo.Create(ctx, &p)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("payment_id", created.ID).Int("order_id", created.OrderID).Msg("payment created")
	return s.enrich(ctx, *created)
}

func (s *PaymentService) Update(ctx context.Context, p domain.Payment) (*ports.PaymentDetail, error) {
	updated, err := s.repo.Update(ctx, &p)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *updated)
}

func (s *PaymentService) DeleteByID(ctx context.Context, id int) error {
	if s.policy == DeleteVerify {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("payment_id", id).Msg("payment deleted")
	return nil
}

func (s *PaymentService) enrich(ctx context.Context, p domain.Payment) (*ports.PaymentDetail, error) {
	detail := &ports.PaymentDetail{Payment: p}
	if p.OrderID == 0 {
		return detail, nil
	}

	order, err := s.orders.FetchOrder(ctx, p.OrderID)
	if err != nil {
		s.log.Error().Err(err).Int("payment_id", p.ID).Int("order_id", p.OrderID).Msg("payment enrichment failed")
		return nil, err
	}
	detail.Order = order
	return detail, nil
}
