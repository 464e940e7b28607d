package ports

import (
	"context"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

type PaymentRepository interface {
	FindAll(ctx context.Context) ([]domain.Payment, error)
	FindByID(ctx context.Context, id int) (*domain.Payment, error)
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	DeleteByID(ctx context.Context, id int) error
}

// PaymentDetail is a payment composed with the order it settles, fetched
// from the order service on every read.
type PaymentDetail struct {
	domain.Payment
	Order *domain.OrderFragment `json:"order,omitempty"`
}

type PaymentService interface {
	FindAll(ctx context.Context) ([]PaymentDetail, error)
	FindByID(ctx context.Context, id int) (*PaymentDetail, error)
	Create(ctx context.Context, p domain.Payment) (*PaymentDetail, error)
	Update(ctx context.Context, p domain.Payment) (*PaymentDetail, error)
	DeleteByID(ctx context.Context, id int) error
}
