package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/seller-backend/internal/usecase"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// RefundRepo реализует репозиторий возвратов поверх PostgreSQL.
type RefundRepo struct {
	pool *pgxpool.Pool
	conv converter.RefundConverter
}

func NewRefundRepo(pool *pgxpool.Pool, conv converter.RefundConverter) *RefundRepo {
	return &RefundRepo{pool: pool, conv: conv}
}

func (r *RefundRepo) Create(ctx context.Context, refund *domain.Refund) (*domain.Refund, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := r.conv.ToModel(refund)
	query := `
		INSERT INTO refunds (sale_id, seller_id, amount, reason, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.SaleID,
		model.SellerID,
		model.Amount,
		model.Reason,
		model.Status,
		model.Notes,
		model.CreatedAt,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

func (r *RefundRepo) GetByID(ctx context.Context, id, sellerID int64) (*domain.Refund, error) {
	query := `
		SELECT id, sale_id, seller_id, amount, reason, status, notes, refund_date, created_at, updated_at
		FROM refunds
		WHERE id = $1 AND seller_id = $2;
	`

	var model converter.RefundModel
	err := r.pool.QueryRow(ctx, query, id, sellerID).Scan(
		&model.ID, &model.SaleID, &model.SellerID, &model.Amount,
		&model.Reason, &model.Status, &model.Notes, &model.RefundDate,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrRefundNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(&model), nil
}

func (r *RefundRepo) Update(ctx context.Context, refund *domain.Refund) (*domain.Refund, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := r.conv.ToModel(refund)
	query := `
		UPDATE refunds
		SET status = $1, notes = $2, refund_date = $3, updated_at = NOW()
		WHERE id = $4 AND seller_id = $5
		RETURNING updated_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.Status,
		model.Notes,
		model.RefundDate,
		model.ID,
		model.SellerID,
	).Scan(&model.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrRefundNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

func (r *RefundRepo) Delete(ctx context.Context, id, sellerID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM refunds WHERE id = $1 AND seller_id = $2;`, id, sellerID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrRefundNotFound)
	}

	return nil
}

// List возвращает возвраты продавца, отсортированные от новых к старым.
// Фильтр по покупателю идёт через связанную продажу.
func (r *RefundRepo) List(ctx context.Context, filter usecase.ListRefundsFilter) ([]domain.Refund, error) {
	query := `
		SELECT rf.id, rf.sale_id, rf.seller_id, rf.amount, rf.reason, rf.status,
		       rf.notes, rf.refund_date, rf.created_at, rf.updated_at
		FROM refunds rf
		WHERE rf.seller_id = $1
		  AND ($2::bigint IS NULL OR rf.sale_id = $2)
		  AND ($3::bigint IS NULL OR EXISTS (
		      SELECT 1 FROM sales s WHERE s.id = rf.sale_id AND s.customer_id = $3
		  ))
		ORDER BY rf.created_at DESC;
	`

	rows, err := r.pool.Query(ctx, query, filter.SellerID, filter.SaleID, filter.CustomerID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Refund, 0)
	for rows.Next() {
		var model converter.RefundModel
		if err := rows.Scan(
			&model.ID, &model.SaleID, &model.SellerID, &model.Amount,
			&model.Reason, &model.Status, &model.Notes, &model.RefundDate,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *r.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
