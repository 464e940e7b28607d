package ports

import (
	"context"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	DeleteByID(ctx context.Context, id int) error
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	DeleteByID(ctx context.Context, id int) error
}

// ProductDetail is a product composed with its category from the local store.
type ProductDetail struct {
	domain.Product
	Category *domain.Category `json:"category,omitempty"`
}

type ProductService interface {
	FindAll(ctx context.Context) ([]ProductDetail, error)
	FindByID(ctx context.Context, id int) (*ProductDetail, error)
	Create(ctx context.Context, p domain.Product) (*ProductDetail, error)
	Update(ctx context.Context, p domain.Product) (*ProductDetail, error)
	DeleteByID(ctx context.Context, id int) error
}

// CategoryDetail is a category composed with its parent, when it has one.
type CategoryDetail struct {
	domain.Category
	ParentCategory *domain.Category `json:"parent_category,omitempty"`
}

type CategoryService interface {
	FindAll(ctx context.Context) ([]CategoryDetail, error)
	FindByID(ctx context.Context, id int) (*CategoryDetail, error)
	Create(ctx context.Context, c domain.Category) (*CategoryDetail, error)
	Update(ctx context.Context, c domain.Category) (*CategoryDetail, error)
	DeleteByID(ctx context.Context, id int) error
}
