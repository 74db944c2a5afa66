package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// SaleRepo реализует репозиторий продаж поверх PostgreSQL.
// Продажи создаются платёжным контуром, поэтому здесь только чтение
// и смена статуса.
type SaleRepo struct {
	pool *pgxpool.Pool
	conv converter.SaleConverter
}

func NewSaleRepo(pool *pgxpool.Pool, conv converter.SaleConverter) *SaleRepo {
	return &SaleRepo{pool: pool, conv: conv}
}

func (s *SaleRepo) GetByID(ctx context.Context, id, sellerID int64) (*domain.Sale, error) {
	query := `
		SELECT id, seller_id, customer_id, product_id, membership_id, amount, status, created_at, updated_at
		FROM sales
		WHERE id = $1 AND seller_id = $2;
	`

	var model converter.SaleModel
	err := s.pool.QueryRow(ctx, query, id, sellerID).Scan(
		&model.ID, &model.SellerID, &model.CustomerID, &model.ProductID,
		&model.MembershipID, &model.Amount, &model.Status,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSaleNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

func (s *SaleRepo) List(ctx context.Context, sellerID int64) ([]domain.Sale, error) {
	query := `
		SELECT id, seller_id, customer_id, product_id, membership_id, amount, status, created_at, updated_at
		FROM sales
		WHERE seller_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := s.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Sale, 0)
	for rows.Next() {
		var model converter.SaleModel
		if err := rows.Scan(
			&model.ID, &model.SellerID, &model.CustomerID, &model.ProductID,
			&model.MembershipID, &model.Amount, &model.Status,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *s.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (s *SaleRepo) UpdateStatus(ctx context.Context, id, sellerID int64, status domain.SaleStatus) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE sales
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND seller_id = $3;
	`

	result, err := tx.Exec(ctx, query, status, id, sellerID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrSaleNotFound)
	}

	return nil
}
