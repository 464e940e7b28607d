package ports

import (
	"context"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

// Lookup ports cover the synchronous id-based fetches composers make against
// peer services. Implementations must bound connect and read time; a hung
// peer must fail the call, never hang the caller.

type UserLookup interface {
	FetchUser(ctx context.Context, id int) (*domain.UserFragment, error)
}

type ProductLookup interface {
	FetchProduct(ctx context.Context, id int) (*domain.ProductFragment, error)
}

type OrderLookup interface {
	FetchOrder(ctx context.Context, id int) (*domain.OrderFragment, error)
}
