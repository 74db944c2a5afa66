package pgdb

import (
	"context"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// DisputeRepo реализует репозиторий споров поверх PostgreSQL.
type DisputeRepo struct {
	pool *pgxpool.Pool
	conv converter.DisputeConverter
}

func NewDisputeRepo(pool *pgxpool.Pool, conv converter.DisputeConverter) *DisputeRepo {
	return &DisputeRepo{pool: pool, conv: conv}
}

func (d *DisputeRepo) Create(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := d.conv.ToModel(dispute)
	query := `
		INSERT INTO disputes (sale_id, customer_id, seller_id, reason, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.SaleID,
		model.CustomerID,
		model.SellerID,
		model.Reason,
		model.Description,
		model.Status,
		model.CreatedAt,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return d.conv.ToEntity(model), nil
}

func (d *DisputeRepo) List(ctx context.Context, sellerID int64) ([]domain.Dispute, error) {
	query := `
		SELECT id, sale_id, customer_id, seller_id, reason, description, status, created_at
		FROM disputes
		WHERE seller_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := d.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Dispute, 0)
	for rows.Next() {
		var model converter.DisputeModel
		if err := rows.Scan(
			&model.ID, &model.SaleID, &model.CustomerID, &model.SellerID,
			&model.Reason, &model.Description, &model.Status, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *d.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
