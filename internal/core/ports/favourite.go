package ports

import (
	"context"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

type FavouriteRepository interface {
	FindAll(ctx context.Context) ([]domain.Favourite, error)
	FindByKey(ctx context.Context, userID, productID int) (*domain.Favourite, error)
	Create(ctx context.Context, f *domain.Favourite) (*domain.Favourite, error)
	Update(ctx context.Context, f *domain.Favourite) (*domain.Favourite, error)
	DeleteByKey(ctx context.Context, userID, productID int) error
}

// FavouriteDetail is a favourite composed with both of its referents. The
// two lookups are independent; neither waits on the other.
type FavouriteDetail struct {
	domain.Favourite
	User    *domain.UserFragment    `json:"user,omitempty"`
	Product *domain.ProductFragment `json:"product,omitempty"`
}

type FavouriteService interface {
	FindAll(ctx context.Context) ([]FavouriteDetail, error)
	FindByKey(ctx context.Context, userID, productID int) (*FavouriteDetail, error)
	Create(ctx context.Context, f domain.Favourite) (*FavouriteDetail, error)
	Update(ctx context.Context, f domain.Favourite) (*FavouriteDetail, error)
	DeleteByKey(ctx context.Context, userID, productID int) error
}
