package pgdb

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// TagRepo реализует репозиторий тегов поверх PostgreSQL.
type TagRepo struct {
	pool *pgxpool.Pool
	conv converter.TagConverter
}

func NewTagRepo(pool *pgxpool.Pool, conv converter.TagConverter) *TagRepo {
	return &TagRepo{pool: pool, conv: conv}
}

func (t *TagRepo) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := t.conv.ToModel(tag)
	query := `
		INSERT INTO tags (seller_id, name, slug, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.SellerID,
		model.Name,
		model.Slug,
		model.CreatedAt,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: tag with slug %s already exists", whereami.WhereAmI(), tag.Slug)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return t.conv.ToEntity(model), nil
}

func (t *TagRepo) List(ctx context.Context, sellerID int64) ([]domain.Tag, error) {
	query := `
		SELECT id, seller_id, name, slug, created_at
		FROM tags
		WHERE seller_id = $1
		ORDER BY name;
	`

	rows, err := t.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Tag, 0)
	for rows.Next() {
		var model converter.TagModel
		if err := rows.Scan(
			&model.ID, &model.SellerID, &model.Name, &model.Slug, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *t.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (t *TagRepo) Delete(ctx context.Context, id, sellerID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM tags WHERE id = $1 AND seller_id = $2;`, id, sellerID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrTagNotFound)
	}

	return nil
}
