package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DisputeUseCase создаёт споры по продажам. Единственный статус — open;
// дальнейшие переходы в текущей модели не определены. Продажа при открытии
// спора не изменяется.
type DisputeUseCase struct {
	disputeRepo DisputeRepository
	saleRepo    SaleRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewDisputeUC(
	disputeRepo DisputeRepository,
	saleRepo SaleRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *DisputeUseCase {
	return &DisputeUseCase{
		disputeRepo: disputeRepo,
		saleRepo:    saleRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// Create проверяет причину и привязку покупателя к продаже,
// затем сохраняет спор в статусе open и пишет событие в outbox.
func (u *DisputeUseCase) Create(ctx context.Context, req *CreateDisputeReq) (*domain.Dispute, error) {
	const op = "DisputeUseCase.Create"

	if strings.TrimSpace(req.Reason) == "" {
		return nil, e.Wrap(op, e.ErrReasonRequired)
	}

	sale, err := fetchSale(ctx, u.cacheRepo, u.saleRepo, u.logger, req.SaleID, req.SellerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if sale.CustomerID != req.CustomerID {
		return nil, e.Wrap(op, e.ErrCustomerMismatch)
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

	dispute, err := u.disputeRepo.Create(ctx, domain.NewDispute(req.SaleID, req.CustomerID, req.SellerID, req.Reason, req.Description))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = u.writeDisputeEvent(ctx, dispute); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return dispute, nil
}

// List возвращает споры продавца, новые первыми.
func (u *DisputeUseCase) List(ctx context.Context, sellerID int64) ([]domain.Dispute, error) {
	const op = "DisputeUseCase.List"

	disputes, err := u.disputeRepo.List(ctx, sellerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return disputes, nil
}

func (u *DisputeUseCase) writeDisputeEvent(ctx context.Context, dispute *domain.Dispute) error {
	payload, err := json.Marshal(DisputeEventPayload{
		DisputeID:  dispute.ID,
		SaleID:     dispute.SaleID,
		CustomerID: dispute.CustomerID,
		SellerID:   dispute.SellerID,
		Reason:     dispute.Reason,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	_, err = u.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), EventDisputeOpened, dispute.SaleID, payload))
	return err
}
