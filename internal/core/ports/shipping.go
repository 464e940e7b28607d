package ports

import (
	"context"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

type OrderItemRepository interface {
	FindAll(ctx context.Context) ([]domain.OrderItem, error)
	FindByKey(ctx context.Context, orderID, productID int) (*domain.OrderItem, error)
	Create(ctx context.Context, oi *domain.OrderItem) (*domain.OrderItem, error)
	Update(ctx context.Context, oi *domain.OrderItem) (*domain.OrderItem, error)
	DeleteByKey(ctx context.Context, orderID, productID int) error
}

// OrderItemDetail is an order item composed with the product and order it
// links, each fetched from its owning service.
type OrderItemDetail struct {
	domain.OrderItem
	Product *domain.ProductFragment `json:"product,omitempty"`
	Order   *domain.OrderFragment   `json:"order,omitempty"`
}

type OrderItemService interface {
	FindAll(ctx context.Context) ([]OrderItemDetail, error)
	FindByKey(ctx context.Context, orderID, productID int) (*OrderItemDetail, error)
	Create(ctx context.Context, oi domain.OrderItem) (*OrderItemDetail, error)
	Update(ctx context.Context, oi domain.OrderItem) (*OrderItemDetail, error)
	DeleteByKey(ctx context.Context, orderID, productID int) error
}
