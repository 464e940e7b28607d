package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

type stubPaymentRepo struct {
	payments map[int]*domain.Payment
	nextID   int
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[int]*domain.Payment), nextID: 1}
}

func (r *stubPaymentRepo) FindAll(_ context.Context) ([]domain.Payment, error) {
	out := make([]domain.Payment, 0, len(r.payments))
	for i := 1; i < r.nextID; i++ {
		if p, ok := r.payments[i]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id int) (*domain.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	clone := *p
	clone.ID = r.nextID
	r.nextID++
	r.payments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPaymentRepo) Update(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	if _, ok := r.payments[p.ID]; !ok {
		return nil, domain.ErrPaymentNotFound
	}
	clone := *p
	r.payments[p.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPaymentRepo) DeleteByID(_ context.Context, id int) error {
	delete(r.payments, id)
	return nil
}

type stubOrderLookup struct {
	calls []int
	err   error
}

func (l *stubOrderLookup) FetchOrder(_ context.Context, id int) (*domain.OrderFragment, error) {
	l.calls = append(l.calls, id)
	if l.err != nil {
		return nil, l.err
	}
	return &domain.OrderFragment{ID: id, OrderFee: 42.5}, nil
}

func TestPaymentService_FindByID_EnrichesOrder(t *testing.T) {
	repo := newStubPaymentRepo()
	orders := &stubOrderLookup{}
	svc := NewPaymentService(repo, orders, DeleteDirect, zerolog.Nop())

	created, err := svc.Create(context.Background(), domain.Payment{OrderID: 5, Status: domain.PaymentInProgress})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	detail, err := svc.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if detail.Order == nil || detail.Order.ID != 5 {
		t.Fatalf("expected order fragment for id 5, got %+v", detail.Order)
	}
	// one lookup from Create's re-enrichment, one from FindByID
	if len(orders.calls) != 2 {
		t.Fatalf("expected 2 order lookups, got %v", orders.calls)
	}
}

func TestPaymentService_FindAll_OneLookupPerRecord(t *testing.T) {
	repo := newStubPaymentRepo()
	orders := &stubOrderLookup{}
	svc := NewPaymentService(repo, orders, DeleteDirect, zerolog.Nop())

	for i := 1; i <= 4; i++ {
		if _, err := svc.Create(context.Background(), domain.Payment{OrderID: i * 10}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	orders.calls = nil

	details, err := svc.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(details) != 4 {
		t.Fatalf("expected 4 composites, got %d", len(details))
	}
	if len(orders.calls) != 4 {
		t.Fatalf("expected 4 order lookups, got %v", orders.calls)
	}
}

func TestPaymentService_LookupFailureAbortsRead(t *testing.T) {
	repo := newStubPaymentRepo()
	orders := &stubOrderLookup{}
	svc := NewPaymentService(repo, orders, DeleteDirect, zerolog.Nop())

	created, err := svc.Create(context.Background(), domain.Payment{OrderID: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	orders.err = domain.ErrRemoteLookup
	if _, err := svc.FindByID(context.Background(), created.ID); !errors.Is(err, domain.ErrRemoteLookup) {
		t.Fatalf("expected ErrRemoteLookup, got %v", err)
	}
	if _, err := svc.FindAll(context.Background()); !errors.Is(err, domain.ErrRemoteLookup) {
		t.Fatalf("expected list to fail as a whole, got %v", err)
	}
}

func TestPaymentService_DeleteDirect_MissingRecordSucceeds(t *testing.T) {
	svc := NewPaymentService(newStubPaymentRepo(), &stubOrderLookup{}, DeleteDirect, zerolog.Nop())
	if err := svc.DeleteByID(context.Background(), 99); err != nil {
		t.Fatalf("direct delete of missing record: %v", err)
	}
}
