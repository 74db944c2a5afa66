package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRefundUC(refunds *fakeRefundRepo, sales *fakeSaleRepo, outbox *fakeOutboxRepo) (*RefundUseCase, *fakePool) {
	pool := &fakePool{}
	return NewRefundUC(refunds, sales, outbox, &fakeCacheRepo{}, pool, noopLogger{}), pool
}

func TestRefundCreate_AmountBounds(t *testing.T) {
	sales := &fakeSaleRepo{sales: map[int64]*domain.Sale{
		10: {ID: 10, SellerID: 1, CustomerID: 7, Amount: 5000, Status: domain.SaleCompleted},
	}}

	cases := []struct {
		name    string
		amount  int64
		wantErr error
	}{
		{name: "zero amount", amount: 0, wantErr: e.ErrAmountOutOfRange},
		{name: "negative amount", amount: -100, wantErr: e.ErrAmountOutOfRange},
		{name: "equal to sale amount", amount: 5000, wantErr: nil},
		{name: "one cent over", amount: 5001, wantErr: e.ErrAmountOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newRefundUC(&fakeRefundRepo{}, sales, &fakeOutboxRepo{})

			refund, err := uc.Create(context.Background(), &CreateRefundReq{
				SellerID: 1,
				SaleID:   10,
				Amount:   tc.amount,
				Reason:   "defective download",
			})

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
			if refund.Status != domain.RefundPending {
				t.Errorf("expected pending status, got %s", refund.Status)
			}
			if refund.CreatedAt.IsZero() {
				t.Errorf("expected creation time to be set")
			}
		})
	}
}

func TestRefundCreate_ReasonRequired(t *testing.T) {
	uc, _ := newRefundUC(&fakeRefundRepo{}, &fakeSaleRepo{}, &fakeOutboxRepo{})

	_, err := uc.Create(context.Background(), &CreateRefundReq{
		SellerID: 1,
		SaleID:   10,
		Amount:   100,
		Reason:   "   ",
	})

	if !errors.Is(err, e.ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
}

func TestRefundCreate_DoesNotTouchSale(t *testing.T) {
	sales := &fakeSaleRepo{sales: map[int64]*domain.Sale{
		10: {ID: 10, SellerID: 1, Amount: 5000, Status: domain.SaleCompleted},
	}}
	uc, pool := newRefundUC(&fakeRefundRepo{}, sales, &fakeOutboxRepo{})

	_, err := uc.Create(context.Background(), &CreateRefundReq{
		SellerID: 1,
		SaleID:   10,
		Amount:   2500,
		Reason:   "partial refund",
	})

	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(sales.statusCalls) != 0 {
		t.Errorf("expected no sale status updates, got %d", len(sales.statusCalls))
	}
	if pool.tx == nil || !pool.tx.committed {
		t.Errorf("expected transaction commit")
	}
}

func TestRefundApprove_UpdatesSaleInSameTransaction(t *testing.T) {
	refunds := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		5: {ID: 5, SaleID: 10, SellerID: 1, Amount: 5000, Status: domain.RefundPending},
	}}
	sales := &fakeSaleRepo{sales: map[int64]*domain.Sale{
		10: {ID: 10, SellerID: 1, Amount: 5000, Status: domain.SaleCompleted},
	}}
	outbox := &fakeOutboxRepo{}
	uc, pool := newRefundUC(refunds, sales, outbox)

	updated, err := uc.Approve(context.Background(), &RefundDecisionReq{SellerID: 1, RefundID: 5})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if updated.Status != domain.RefundApproved {
		t.Errorf("expected approved status, got %s", updated.Status)
	}
	if updated.RefundDate == nil {
		t.Errorf("expected refund date to be set on approval")
	}

	if len(sales.statusCalls) != 1 {
		t.Fatalf("expected one sale status update, got %d", len(sales.statusCalls))
	}
	if got := sales.statusCalls[0]; got.id != 10 || got.status != domain.SaleRefunded {
		t.Errorf("expected sale 10 -> refunded, got sale %d -> %s", got.id, got.status)
	}

	if len(outbox.events) != 1 || outbox.events[0].EventType != EventRefundApproved {
		t.Errorf("expected one refund.approved outbox event, got %+v", outbox.events)
	}
	if pool.tx == nil || !pool.tx.committed {
		t.Errorf("expected transaction commit")
	}
}

func TestRefundApprove_SaleUpdateFailureRollsBack(t *testing.T) {
	refunds := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		5: {ID: 5, SaleID: 10, SellerID: 1, Amount: 5000, Status: domain.RefundPending},
	}}
	sales := &fakeSaleRepo{statusErr: e.ErrSaleNotFound}
	uc, pool := newRefundUC(refunds, sales, &fakeOutboxRepo{})

	_, err := uc.Approve(context.Background(), &RefundDecisionReq{SellerID: 1, RefundID: 5})
	if !errors.Is(err, e.ErrSaleNotFound) {
		t.Fatalf("expected ErrSaleNotFound, got %v", err)
	}

	if pool.tx == nil {
		t.Fatalf("expected transaction to be created")
	}
	if pool.tx.committed {
		t.Errorf("expected commit to be skipped")
	}
	if !pool.tx.rolled {
		t.Errorf("expected rollback on sale update failure")
	}
}

func TestRefundApprove_OnlyFromPending(t *testing.T) {
	for _, status := range []domain.RefundStatus{domain.RefundApproved, domain.RefundRejected} {
		t.Run(string(status), func(t *testing.T) {
			refunds := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
				5: {ID: 5, SaleID: 10, SellerID: 1, Status: status},
			}}
			uc, _ := newRefundUC(refunds, &fakeSaleRepo{}, &fakeOutboxRepo{})

			_, err := uc.Approve(context.Background(), &RefundDecisionReq{SellerID: 1, RefundID: 5})
			if !errors.Is(err, e.ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestRefundReject_LeavesSaleUntouched(t *testing.T) {
	refunds := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		5: {ID: 5, SaleID: 10, SellerID: 1, Status: domain.RefundPending},
	}}
	sales := &fakeSaleRepo{sales: map[int64]*domain.Sale{
		10: {ID: 10, SellerID: 1, Status: domain.SaleCompleted},
	}}
	outbox := &fakeOutboxRepo{}
	uc, _ := newRefundUC(refunds, sales, outbox)

	updated, err := uc.Reject(context.Background(), &RefundDecisionReq{SellerID: 1, RefundID: 5})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if updated.Status != domain.RefundRejected {
		t.Errorf("expected rejected status, got %s", updated.Status)
	}
	if updated.RefundDate != nil {
		t.Errorf("expected no refund date on rejection")
	}
	if len(sales.statusCalls) != 0 {
		t.Errorf("expected sale to stay untouched, got %d status update(s)", len(sales.statusCalls))
	}
	if len(outbox.events) != 1 || outbox.events[0].EventType != EventRefundRejected {
		t.Errorf("expected one refund.rejected outbox event, got %+v", outbox.events)
	}
}

func TestRefundUpdateNotes_AllowedInAnyStatus(t *testing.T) {
	for _, status := range []domain.RefundStatus{domain.RefundPending, domain.RefundApproved, domain.RefundRejected} {
		t.Run(string(status), func(t *testing.T) {
			refunds := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
				5: {ID: 5, SaleID: 10, SellerID: 1, Status: status},
			}}
			sales := &fakeSaleRepo{}
			uc, pool := newRefundUC(refunds, sales, &fakeOutboxRepo{})

			updated, err := uc.UpdateNotes(context.Background(), &UpdateRefundNotesReq{
				SellerID: 1,
				RefundID: 5,
				Notes:    "customer contacted",
			})
			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}

			if updated.Notes == nil || *updated.Notes != "customer contacted" {
				t.Errorf("expected notes to be updated, got %+v", updated.Notes)
			}
			// Чистое обновление метаданных: статус и продажа не меняются
			if updated.Status != status {
				t.Errorf("expected status %s to be preserved, got %s", status, updated.Status)
			}
			if len(sales.statusCalls) != 0 {
				t.Errorf("expected no sale status updates, got %d", len(sales.statusCalls))
			}
			if pool.tx == nil || !pool.tx.committed {
				t.Errorf("expected transaction commit")
			}
		})
	}
}

func TestRefundDelete_DoesNotRevertSale(t *testing.T) {
	refunds := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		5: {ID: 5, SaleID: 10, SellerID: 1, Status: domain.RefundApproved},
	}}
	sales := &fakeSaleRepo{sales: map[int64]*domain.Sale{
		10: {ID: 10, SellerID: 1, Status: domain.SaleRefunded},
	}}
	uc, pool := newRefundUC(refunds, sales, &fakeOutboxRepo{})

	if err := uc.Delete(context.Background(), 1, 5); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if _, ok := refunds.refunds[5]; ok {
		t.Errorf("expected refund to be removed")
	}
	// Удаление заявки не откатывает ранее одобренный возврат
	if len(sales.statusCalls) != 0 {
		t.Errorf("expected no sale status updates, got %d", len(sales.statusCalls))
	}
	if sales.sales[10].Status != domain.SaleRefunded {
		t.Errorf("expected sale to stay refunded, got %s", sales.sales[10].Status)
	}
	if pool.tx == nil || !pool.tx.committed {
		t.Errorf("expected transaction commit")
	}
}

func TestRefundDelete_OwnershipIsolation(t *testing.T) {
	refunds := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		5: {ID: 5, SaleID: 10, SellerID: 1, Status: domain.RefundPending},
	}}
	uc, _ := newRefundUC(refunds, &fakeSaleRepo{}, &fakeOutboxRepo{})

	if err := uc.Delete(context.Background(), 2, 5); !errors.Is(err, e.ErrRefundNotFound) {
		t.Fatalf("expected ErrRefundNotFound for foreign seller, got %v", err)
	}
	if _, ok := refunds.refunds[5]; !ok {
		t.Errorf("expected refund to survive foreign delete")
	}
}

func TestRefundApprove_OwnershipIsolation(t *testing.T) {
	refunds := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		5: {ID: 5, SaleID: 10, SellerID: 1, Status: domain.RefundPending},
	}}
	uc, _ := newRefundUC(refunds, &fakeSaleRepo{}, &fakeOutboxRepo{})

	_, err := uc.Approve(context.Background(), &RefundDecisionReq{SellerID: 2, RefundID: 5})
	if !errors.Is(err, e.ErrRefundNotFound) {
		t.Fatalf("expected ErrRefundNotFound for foreign seller, got %v", err)
	}
}

func TestComputeRefundStats(t *testing.T) {
	refunds := []domain.Refund{
		{Status: domain.RefundApproved, Amount: 1000},
		{Status: domain.RefundApproved, Amount: 500},
		{Status: domain.RefundRejected, Amount: 2000},
		{Status: domain.RefundPending, Amount: 700},
	}

	stats := ComputeRefundStats(refunds)

	if stats.TotalRefunds != 4 {
		t.Errorf("expected 4 total, got %d", stats.TotalRefunds)
	}
	if stats.ApprovedRefunds != 2 {
		t.Errorf("expected 2 approved, got %d", stats.ApprovedRefunds)
	}
	if stats.RejectedRefunds != 1 {
		t.Errorf("expected 1 rejected, got %d", stats.RejectedRefunds)
	}
	if stats.PendingRefunds != 1 {
		t.Errorf("expected 1 pending, got %d", stats.PendingRefunds)
	}
	if stats.TotalAmount != 1500 {
		t.Errorf("expected total amount 1500 (approved only), got %d", stats.TotalAmount)
	}
}

// FAKES

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any)        {}
func (noopLogger) Infof(string, ...any)         {}
func (noopLogger) Warnf(string, ...any)         {}
func (noopLogger) Errorf(error, string, ...any) {}

type fakeRefundRepo struct {
	refunds map[int64]*domain.Refund
	nextID  int64
}

func (f *fakeRefundRepo) Create(_ context.Context, refund *domain.Refund) (*domain.Refund, error) {
	if f.refunds == nil {
		f.refunds = make(map[int64]*domain.Refund)
	}
	f.nextID++
	stored := *refund
	stored.ID = f.nextID
	f.refunds[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (f *fakeRefundRepo) GetByID(_ context.Context, id, sellerID int64) (*domain.Refund, error) {
	r, ok := f.refunds[id]
	if !ok || r.SellerID != sellerID {
		return nil, e.ErrRefundNotFound
	}

	out := *r
	return &out, nil
}

func (f *fakeRefundRepo) Update(_ context.Context, refund *domain.Refund) (*domain.Refund, error) {
	if _, ok := f.refunds[refund.ID]; !ok {
		return nil, e.ErrRefundNotFound
	}
	stored := *refund
	f.refunds[refund.ID] = &stored

	out := stored
	return &out, nil
}

func (f *fakeRefundRepo) Delete(_ context.Context, id, sellerID int64) error {
	r, ok := f.refunds[id]
	if !ok || r.SellerID != sellerID {
		return e.ErrRefundNotFound
	}
	delete(f.refunds, id)
	return nil
}

func (f *fakeRefundRepo) List(_ context.Context, filter ListRefundsFilter) ([]domain.Refund, error) {
	var out []domain.Refund
	for _, r := range f.refunds {
		if r.SellerID != filter.SellerID {
			continue
		}
		if filter.SaleID != nil && r.SaleID != *filter.SaleID {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

type statusCall struct {
	id       int64
	sellerID int64
	status   domain.SaleStatus
}

type fakeSaleRepo struct {
	sales       map[int64]*domain.Sale
	statusErr   error
	statusCalls []statusCall
}

func (f *fakeSaleRepo) GetByID(_ context.Context, id, sellerID int64) (*domain.Sale, error) {
	s, ok := f.sales[id]
	if !ok || s.SellerID != sellerID {
		return nil, e.ErrSaleNotFound
	}

	out := *s
	return &out, nil
}

func (f *fakeSaleRepo) List(_ context.Context, sellerID int64) ([]domain.Sale, error) {
	var out []domain.Sale
	for _, s := range f.sales {
		if s.SellerID == sellerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) UpdateStatus(_ context.Context, id, sellerID int64, status domain.SaleStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusCalls = append(f.statusCalls, statusCall{id: id, sellerID: sellerID, status: status})
	if s, ok := f.sales[id]; ok {
		s.Status = status
	}
	return nil
}

type fakeOutboxRepo struct {
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	panic("not implemented")
}

func (f *fakeOutboxRepo) MarkAsProcessed(context.Context, int64) error {
	panic("not implemented")
}

// fakeCacheRepo всегда промахивается; записи и инвалидации только фиксируются.
type fakeCacheRepo struct {
	mu      sync.Mutex
	deleted []int64
}

func (f *fakeCacheRepo) GetSales(context.Context, []int64) (map[int64]domain.Sale, error) {
	return map[int64]domain.Sale{}, nil
}

func (f *fakeCacheRepo) SetSales(context.Context, []domain.Sale) error {
	return nil
}

func (f *fakeCacheRepo) DeleteSales(_ context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ids...)
	return nil
}

type fakePool struct {
	tx *fakeTx
}

func (f *fakePool) Begin(ctx context.Context) (pgx.Tx, error) {
	return f.BeginTx(ctx, pgx.TxOptions{})
}

func (f *fakePool) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	f.tx = &fakeTx{}
	return f.tx, nil
}

type fakeTx struct {
	rolled    bool
	committed bool
}

func (f *fakeTx) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("fakeTx does not support nested transactions")
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolled = true
	return nil
}

func (f *fakeTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	panic("not implemented")
}

func (f *fakeTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	panic("not implemented")
}

func (f *fakeTx) LargeObjects() pgx.LargeObjects {
	panic("not implemented")
}

func (f *fakeTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	panic("not implemented")
}

func (f *fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	panic("not implemented")
}

func (f *fakeTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("not implemented")
}

func (f *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("not implemented")
}

func (f *fakeTx) Conn() *pgx.Conn {
	panic("not implemented")
}
