package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

type stubFavouriteRepo struct {
	favourites []domain.Favourite
	deleted    int
}

func (r *stubFavouriteRepo) FindAll(_ context.Context) ([]domain.Favourite, error) {
	return append([]domain.Favourite(nil), r.favourites...), nil
}

func (r *stubFavouriteRepo) FindByKey(_ context.Context, userID, productID int) (*domain.Favourite, error) {
	for _, f := range r.favourites {
		if f.UserID == userID && f.ProductID == productID {
			clone := f
			return &clone, nil
		}
	}
	return nil, domain.ErrFavouriteNotFound
}

func (r *stubFavouriteRepo) Create(_ context.Context, f *domain.Favourite) (*domain.Favourite, error) {
	if f.LikeDate.IsZero() {
		f.LikeDate = time.Now().UTC()
	}
	r.favourites = append(r.favourites, *f)
	clone := *f
	return &clone, nil
}

func (r *stubFavouriteRepo) Update(_ context.Context, f *domain.Favourite) (*domain.Favourite, error) {
	for i, existing := range r.favourites {
		if existing.UserID == f.UserID && existing.ProductID == f.ProductID {
			r.favourites[i] = *f
			clone := *f
			return &clone, nil
		}
	}
	return nil, domain.ErrFavouriteNotFound
}

func (r *stubFavouriteRepo) DeleteByKey(_ context.Context, userID, productID int) error {
	for i, f := range r.favourites {
		if f.UserID == userID && f.ProductID == productID {
			r.favourites = append(r.favourites[:i], r.favourites[i+1:]...)
			r.deleted++
			return nil
		}
	}
	r.deleted++
	return nil
}

type stubUserLookup struct {
	calls []int
	err   error
}

func (l *stubUserLookup) FetchUser(_ context.Context, id int) (*domain.UserFragment, error) {
	l.calls = append(l.calls, id)
	if l.err != nil {
		return nil, l.err
	}
	return &domain.UserFragment{ID: id, FirstName: "user", Email: "user@example.com"}, nil
}

type stubProductLookup struct {
	calls []int
	err   error
}

func (l *stubProductLookup) FetchProduct(_ context.Context, id int) (*domain.ProductFragment, error) {
	l.calls = append(l.calls, id)
	if l.err != nil {
		return nil, l.err
	}
	return &domain.ProductFragment{ID: id, Title: "product", PriceUnit: 9.99}, nil
}

func TestFavouriteService_FindByKey_EnrichesBothSides(t *testing.T) {
	repo := &stubFavouriteRepo{favourites: []domain.Favourite{{UserID: 1, ProductID: 2, LikeDate: time.Now()}}}
	users := &stubUserLookup{}
	products := &stubProductLookup{}
	svc := NewFavouriteService(repo, users, products, DeleteVerify, zerolog.Nop())

	detail, err := svc.FindByKey(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if detail.User == nil || detail.User.ID != 1 {
		t.Fatalf("expected user fragment for id 1, got %+v", detail.User)
	}
	if detail.Product == nil || detail.Product.ID != 2 {
		t.Fatalf("expected product fragment for id 2, got %+v", detail.Product)
	}
	if len(users.calls) != 1 || users.calls[0] != 1 {
		t.Fatalf("expected exactly one user lookup for id 1, got %v", users.calls)
	}
	if len(products.calls) != 1 || products.calls[0] != 2 {
		t.Fatalf("expected exactly one product lookup for id 2, got %v", products.calls)
	}
}

func TestFavouriteService_FindByKey_LookupFailureFailsWholeRead(t *testing.T) {
	repo := &stubFavouriteRepo{favourites: []domain.Favourite{{UserID: 1, ProductID: 2}}}
	users := &stubUserLookup{}
	products := &stubProductLookup{err: domain.ErrRemoteLookup}
	svc := NewFavouriteService(repo, users, products, DeleteVerify, zerolog.Nop())

	detail, err := svc.FindByKey(context.Background(), 1, 2)
	if !errors.Is(err, domain.ErrRemoteLookup) {
		t.Fatalf("expected ErrRemoteLookup, got %v", err)
	}
	if detail != nil {
		t.Fatalf("expected no partial composite, got %+v", detail)
	}
}

func TestFavouriteService_FindByKey_NotFound(t *testing.T) {
	repo := &stubFavouriteRepo{}
	svc := NewFavouriteService(repo, &stubUserLookup{}, &stubProductLookup{}, DeleteVerify, zerolog.Nop())

	if _, err := svc.FindByKey(context.Background(), 9, 9); !errors.Is(err, domain.ErrFavouriteNotFound) {
		t.Fatalf("expected ErrFavouriteNotFound, got %v", err)
	}
}

func TestFavouriteService_FindAll_FanOutPerRecord(t *testing.T) {
	repo := &stubFavouriteRepo{favourites: []domain.Favourite{
		{UserID: 1, ProductID: 10},
		{UserID: 2, ProductID: 20},
		{UserID: 3, ProductID: 30},
	}}
	users := &stubUserLookup{}
	products := &stubProductLookup{}
	svc := NewFavouriteService(repo, users, products, DeleteVerify, zerolog.Nop())

	details, err := svc.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(details) != 3 {
		t.Fatalf("expected 3 composites, got %d", len(details))
	}
	if len(users.calls) != 3 || len(products.calls) != 3 {
		t.Fatalf("expected 3 lookups per side, got %d users, %d products", len(users.calls), len(products.calls))
	}
	for _, d := range details {
		if d.User == nil || d.Product == nil {
			t.Fatalf("composite missing fragment: %+v", d)
		}
	}
}

// Create persists bare ids and re-resolves the referents; the response
// fragments come from the lookups, not from anything the caller supplied.
func TestFavouriteService_Create_RoundTrip(t *testing.T) {
	repo := &stubFavouriteRepo{}
	users := &stubUserLookup{}
	products := &stubProductLookup{}
	svc := NewFavouriteService(repo, users, products, DeleteVerify, zerolog.Nop())

	created, err := svc.Create(context.Background(), domain.Favourite{UserID: 7, ProductID: 8})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.User == nil || created.User.ID != 7 {
		t.Fatalf("expected resolved user fragment, got %+v", created.User)
	}
	if created.Product == nil || created.Product.ID != 8 {
		t.Fatalf("expected resolved product fragment, got %+v", created.Product)
	}

	got, err := svc.FindByKey(context.Background(), 7, 8)
	if err != nil {
		t.Fatalf("find after create: %v", err)
	}
	if got.UserID != 7 || got.ProductID != 8 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestFavouriteService_DeletePolicies(t *testing.T) {
	verify := NewFavouriteService(&stubFavouriteRepo{}, &stubUserLookup{}, &stubProductLookup{}, DeleteVerify, zerolog.Nop())
	if err := verify.DeleteByKey(context.Background(), 1, 2); !errors.Is(err, domain.ErrFavouriteNotFound) {
		t.Fatalf("verify policy: expected ErrFavouriteNotFound, got %v", err)
	}

	directRepo := &stubFavouriteRepo{}
	direct := NewFavouriteService(directRepo, &stubUserLookup{}, &stubProductLookup{}, DeleteDirect, zerolog.Nop())
	if err := direct.DeleteByKey(context.Background(), 1, 2); err != nil {
		t.Fatalf("direct policy: expected nil, got %v", err)
	}
	if directRepo.deleted != 1 {
		t.Fatalf("direct policy: expected delete to reach repo")
	}
}
