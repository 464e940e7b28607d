package ports

import (
	"context"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

type CartRepository interface {
	FindAll(ctx context.Context) ([]domain.Cart, error)
	FindByID(ctx context.Context, id int) (*domain.Cart, error)
	Create(ctx context.Context, c *domain.Cart) (*domain.Cart, error)
	Update(ctx context.Context, c *domain.Cart) (*domain.Cart, error)
	DeleteByID(ctx context.Context, id int) error
}

type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) (*domain.Order, error)
	DeleteByID(ctx context.Context, id int) error
}

// CartDetail is a cart composed with its user fetched from the user service.
// A cart with UserID zero is anonymous and composes no fragment.
type CartDetail struct {
	domain.Cart
	User *domain.UserFragment `json:"user,omitempty"`
}

type CartService interface {
	FindAll(ctx context.Context) ([]CartDetail, error)
	FindByID(ctx context.Context, id int) (*CartDetail, error)
	Create(ctx context.Context, c domain.Cart) (*CartDetail, error)
	Update(ctx context.Context, c domain.Cart) (*CartDetail, error)
	DeleteByID(ctx context.Context, id int) error
}

// OrderDetail is an order composed with its cart from the local store.
type OrderDetail struct {
	domain.Order
	Cart *domain.Cart `json:"cart,omitempty"`
}

type OrderService interface {
	FindAll(ctx context.Context) ([]OrderDetail, error)
	FindByID(ctx context.Context, id int) (*OrderDetail, error)
	Create(ctx context.Context, o domain.Order) (*OrderDetail, error)
	Update(ctx context.Context, o domain.Order) (*OrderDetail, error)
	DeleteByID(ctx context.Context, id int) error
}
