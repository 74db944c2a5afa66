package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
)

func newDisputeUC(disputes *fakeDisputeRepo, sales *fakeSaleRepo, outbox *fakeOutboxRepo) (*DisputeUseCase, *fakePool) {
	pool := &fakePool{}
	return NewDisputeUC(disputes, sales, outbox, &fakeCacheRepo{}, pool, noopLogger{}), pool
}

func TestDisputeCreate(t *testing.T) {
	sales := &fakeSaleRepo{sales: map[int64]*domain.Sale{
		10: {ID: 10, SellerID: 1, CustomerID: 7, Amount: 5000, Status: domain.SaleCompleted},
	}}
	outbox := &fakeOutboxRepo{}
	uc, pool := newDisputeUC(&fakeDisputeRepo{}, sales, outbox)

	dispute, err := uc.Create(context.Background(), &CreateDisputeReq{
		SellerID:   1,
		SaleID:     10,
		CustomerID: 7,
		Reason:     "item not as described",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if dispute.Status != domain.DisputeOpen {
		t.Errorf("expected open status, got %s", dispute.Status)
	}
	if dispute.SaleID != 10 || dispute.CustomerID != 7 {
		t.Errorf("expected dispute linked to sale 10 and customer 7, got %+v", dispute)
	}
	if dispute.CreatedAt.IsZero() {
		t.Errorf("expected creation time to be set")
	}

	// Продажа при открытии спора не меняется
	if len(sales.statusCalls) != 0 {
		t.Errorf("expected no sale status updates, got %d", len(sales.statusCalls))
	}

	if len(outbox.events) != 1 {
		t.Fatalf("expected one outbox event, got %d", len(outbox.events))
	}
	event := outbox.events[0]
	if event.EventType != EventDisputeOpened || event.SaleID != 10 {
		t.Errorf("expected dispute.opened event for sale 10, got %+v", event)
	}

	var payload DisputeEventPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		t.Fatalf("expected JSON payload, got %v", err)
	}
	if payload.CustomerID != 7 || payload.Reason != "item not as described" {
		t.Errorf("unexpected payload %+v", payload)
	}

	if pool.tx == nil || !pool.tx.committed {
		t.Errorf("expected transaction commit")
	}
}

func TestDisputeCreate_ReasonRequired(t *testing.T) {
	uc, _ := newDisputeUC(&fakeDisputeRepo{}, &fakeSaleRepo{}, &fakeOutboxRepo{})

	_, err := uc.Create(context.Background(), &CreateDisputeReq{
		SellerID:   1,
		SaleID:     10,
		CustomerID: 7,
		Reason:     "",
	})
	if !errors.Is(err, e.ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
}

func TestDisputeCreate_CustomerMismatch(t *testing.T) {
	sales := &fakeSaleRepo{sales: map[int64]*domain.Sale{
		10: {ID: 10, SellerID: 1, CustomerID: 7, Status: domain.SaleCompleted},
	}}
	disputes := &fakeDisputeRepo{}
	uc, _ := newDisputeUC(disputes, sales, &fakeOutboxRepo{})

	_, err := uc.Create(context.Background(), &CreateDisputeReq{
		SellerID:   1,
		SaleID:     10,
		CustomerID: 8,
		Reason:     "chargeback",
	})
	if !errors.Is(err, e.ErrCustomerMismatch) {
		t.Fatalf("expected ErrCustomerMismatch, got %v", err)
	}
	if len(disputes.disputes) != 0 {
		t.Errorf("expected no dispute created, got %d", len(disputes.disputes))
	}
}

func TestDisputeCreate_ForeignSale(t *testing.T) {
	sales := &fakeSaleRepo{sales: map[int64]*domain.Sale{
		10: {ID: 10, SellerID: 2, CustomerID: 7, Status: domain.SaleCompleted},
	}}
	uc, _ := newDisputeUC(&fakeDisputeRepo{}, sales, &fakeOutboxRepo{})

	_, err := uc.Create(context.Background(), &CreateDisputeReq{
		SellerID:   1,
		SaleID:     10,
		CustomerID: 7,
		Reason:     "chargeback",
	})
	if !errors.Is(err, e.ErrSaleNotFound) {
		t.Fatalf("expected ErrSaleNotFound for foreign sale, got %v", err)
	}
}

type fakeDisputeRepo struct {
	disputes []*domain.Dispute
	nextID   int64
}

func (f *fakeDisputeRepo) Create(_ context.Context, dispute *domain.Dispute) (*domain.Dispute, error) {
	f.nextID++
	stored := *dispute
	stored.ID = f.nextID
	f.disputes = append(f.disputes, &stored)

	out := stored
	return &out, nil
}

func (f *fakeDisputeRepo) List(_ context.Context, sellerID int64) ([]domain.Dispute, error) {
	var out []domain.Dispute
	for _, d := range f.disputes {
		if d.SellerID == sellerID {
			out = append(out, *d)
		}
	}
	return out, nil
}
