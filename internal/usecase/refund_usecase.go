package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// RefundUseCase реализует жизненный цикл заявок на возврат:
// pending -> approved (терминальный), pending -> rejected (терминальный).
// Одобрение дополнительно переводит связанную продажу в статус refunded.
type RefundUseCase struct {
	refundRepo RefundRepository
	saleRepo   SaleRepository
	outboxRepo OutboxRepository
	cacheRepo  CacheRepository
	dbPool     transaction.Transactional
	logger     logger.Logger
}

func NewRefundUC(
	refundRepo RefundRepository,
	saleRepo SaleRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *RefundUseCase {
	return &RefundUseCase{
		refundRepo: refundRepo,
		saleRepo:   saleRepo,
		outboxRepo: outboxRepo,
		cacheRepo:  cacheRepo,
		dbPool:     dbPool,
		logger:     logger,
	}
}

// Create проверяет причину и сумму относительно текущей суммы продажи
// и сохраняет новую заявку в статусе pending. Продажа не изменяется.
func (u *RefundUseCase) Create(ctx context.Context, req *CreateRefundReq) (*domain.Refund, error) {
	const op = "RefundUseCase.Create"

	if strings.TrimSpace(req.Reason) == "" {
		return nil, e.Wrap(op, e.ErrReasonRequired)
	}

	sale, err := fetchSale(ctx, u.cacheRepo, u.saleRepo, u.logger, req.SaleID, req.SellerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Amount <= 0 || req.Amount > sale.Amount {
		return nil, e.Wrap(op, amountOutOfRange(sale.Amount))
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	refund, err := u.refundRepo.Create(ctx, domain.NewRefund(req.SaleID, req.SellerID, req.Amount, req.Reason))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return refund, nil
}

// Approve переводит заявку из pending в approved, проставляет дату возврата
// и в той же транзакции переводит связанную продажу в статус refunded
// вместе с записью события в outbox.
func (u *RefundUseCase) Approve(ctx context.Context, req *RefundDecisionReq) (*domain.Refund, error) {
	const op = "RefundUseCase.Approve"

	refund, err := u.refundRepo.GetByID(ctx, req.RefundID, req.SellerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !refund.CanTransition(domain.RefundApproved) {
		return nil, e.Wrap(op, e.ErrInvalidTransition)
	}

	now := time.Now().UTC()
	refund.Status = domain.RefundApproved
	refund.RefundDate = &now
	if req.Notes != nil {
		refund.Notes = req.Notes
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Сначала мутация заявки, затем зависимая мутация продажи
	updated, err := u.refundRepo.Update(ctx, refund)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = u.saleRepo.UpdateStatus(ctx, refund.SaleID, req.SellerID, domain.SaleRefunded); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = u.writeRefundEvent(ctx, EventRefundApproved, updated); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Удаление устаревшей продажи из кэша
	if err := u.cacheRepo.DeleteSales(ctx, []int64{refund.SaleID}); err != nil {
		u.logger.Warnf("Failed to delete sale from cache: %v", e.Wrap(op, err))
	}

	return updated, nil
}

// Reject переводит заявку из pending в rejected. Продажа не изменяется.
func (u *RefundUseCase) Reject(ctx context.Context, req *RefundDecisionReq) (*domain.Refund, error) {
	const op = "RefundUseCase.Reject"

	refund, err := u.refundRepo.GetByID(ctx, req.RefundID, req.SellerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !refund.CanTransition(domain.RefundRejected) {
		return nil, e.Wrap(op, e.ErrInvalidTransition)
	}

	refund.Status = domain.RefundRejected
	if req.Notes != nil {
		refund.Notes = req.Notes
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := u.refundRepo.Update(ctx, refund)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = u.writeRefundEvent(ctx, EventRefundRejected, updated); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// UpdateNotes обновляет заметки заявки; допустимо в любом статусе.
func (u *RefundUseCase) UpdateNotes(ctx context.Context, req *UpdateRefundNotesReq) (*domain.Refund, error) {
	const op = "RefundUseCase.UpdateNotes"

	refund, err := u.refundRepo.GetByID(ctx, req.RefundID, req.SellerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	refund.Notes = &req.Notes

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := u.refundRepo.Update(ctx, refund)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// Delete удаляет заявку. Статус продажи, изменённый ранее одобрением, не откатывается.
func (u *RefundUseCase) Delete(ctx context.Context, sellerID, refundID int64) error {
	const op = "RefundUseCase.Delete"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = u.refundRepo.Delete(ctx, refundID, sellerID); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// List возвращает заявки продавца: все, по продаже или по покупателю, новые первыми.
func (u *RefundUseCase) List(ctx context.Context, req *ListRefundsReq) ([]domain.Refund, error) {
	const op = "RefundUseCase.List"

	refunds, err := u.refundRepo.List(ctx, ListRefundsFilter{
		SellerID:   req.SellerID,
		SaleID:     req.SaleID,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return refunds, nil
}

// Stats возвращает агрегированную статистику по всем заявкам продавца.
func (u *RefundUseCase) Stats(ctx context.Context, sellerID int64) (*RefundStats, error) {
	const op = "RefundUseCase.Stats"

	refunds, err := u.refundRepo.List(ctx, ListRefundsFilter{SellerID: sellerID})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return ComputeRefundStats(refunds), nil
}

// ComputeRefundStats считает количество заявок по статусам
// и сумму только одобренных возвратов.
func ComputeRefundStats(refunds []domain.Refund) *RefundStats {
	stats := &RefundStats{TotalRefunds: len(refunds)}
	for _, r := range refunds {
		switch r.Status {
		case domain.RefundApproved:
			stats.ApprovedRefunds++
			stats.TotalAmount += r.Amount
		case domain.RefundRejected:
			stats.RejectedRefunds++
		case domain.RefundPending:
			stats.PendingRefunds++
		}
	}

	return stats
}

// writeRefundEvent пишет событие жизненного цикла заявки в outbox в рамках текущей транзакции.
func (u *RefundUseCase) writeRefundEvent(ctx context.Context, eventType OutboxEventType, refund *domain.Refund) error {
	payload, err := json.Marshal(RefundEventPayload{
		RefundID:   refund.ID,
		SaleID:     refund.SaleID,
		SellerID:   refund.SellerID,
		Amount:     refund.Amount,
		Status:     string(refund.Status),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	_, err = u.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), eventType, refund.SaleID, payload))
	return err
}

// amountOutOfRange формирует ошибку валидации с допустимым диапазоном
// на основе текущей суммы продажи.
func amountOutOfRange(saleAmount int64) error {
	max := decimal.NewFromInt(saleAmount).Div(decimal.NewFromInt(100))
	return fmt.Errorf("%w: must be greater than 0 and at most %s", e.ErrAmountOutOfRange, max.StringFixed(2))
}
