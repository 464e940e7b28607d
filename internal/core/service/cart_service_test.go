package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

type stubCartRepo struct {
	carts  map[int]*domain.Cart
	nextID int
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: make(map[int]*domain.Cart), nextID: 1}
}

func (r *stubCartRepo) FindAll(_ context.Context) ([]domain.Cart, error) {
	out := make([]domain.Cart, 0, len(r.carts))
	for i := 1; i < r.nextID; i++ {
		if c, ok := r.carts[i]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCartRepo) FindByID(_ context.Context, id int) (*domain.Cart, error) {
	c, ok := r.carts[id]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCartRepo) Create(_ context.Context, c *domain.Cart) (*domain.Cart, error) {
	clone := *c
	clone.ID = r.nextID
	r.nextID++
	r.carts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCartRepo) Update(_ context.Context, c *domain.Cart) (*domain.Cart, error) {
	if _, ok := r.carts[c.ID]; !ok {
		return nil, domain.ErrCartNotFound
	}
	clone := *c
	r.carts[c.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCartRepo) DeleteByID(_ context.Context, id int) error {
	delete(r.carts, id)
	return nil
}

// A record with no foreign reference set performs zero remote calls and the
// response equals the raw record.
func TestCartService_AnonymousCart_NoRemoteCalls(t *testing.T) {
	repo := newStubCartRepo()
	users := &stubUserLookup{}
	svc := NewCartService(repo, users, DeleteVerify, zerolog.Nop())

	created, err := svc.Create(context.Background(), domain.Cart{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	detail, err := svc.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(users.calls) != 0 {
		t.Fatalf("expected zero user lookups, got %v", users.calls)
	}
	if detail.User != nil {
		t.Fatalf("expected no user fragment, got %+v", detail.User)
	}
	if detail.Cart != (domain.Cart{ID: created.ID}) {
		t.Fatalf("expected raw record back, got %+v", detail.Cart)
	}
}

func TestCartService_OwnedCart_SingleLookup(t *testing.T) {
	repo := newStubCartRepo()
	users := &stubUserLookup{}
	svc := NewCartService(repo, users, DeleteVerify, zerolog.Nop())

	created, err := svc.Create(context.Background(), domain.Cart{UserID: 42})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	users.calls = nil

	detail, err := svc.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(users.calls) != 1 || users.calls[0] != 42 {
		t.Fatalf("expected exactly one lookup for id 42, got %v", users.calls)
	}
	if detail.User == nil || detail.User.ID != 42 {
		t.Fatalf("expected user fragment for id 42, got %+v", detail.User)
	}
}

func TestCartService_LookupFailureAbortsRead(t *testing.T) {
	repo := newStubCartRepo()
	users := &stubUserLookup{err: domain.ErrRemoteLookup}
	svc := NewCartService(repo, users, DeleteVerify, zerolog.Nop())

	if _, err := svc.Create(context.Background(), domain.Cart{UserID: 1}); !errors.Is(err, domain.ErrRemoteLookup) {
		t.Fatalf("expected ErrRemoteLookup, got %v", err)
	}
}

func TestCartService_DeleteVerify_Missing(t *testing.T) {
	svc := NewCartService(newStubCartRepo(), &stubUserLookup{}, DeleteVerify, zerolog.Nop())
	if err := svc.DeleteByID(context.Background(), 7); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}
