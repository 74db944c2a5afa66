package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := c.conv.ToModel(category)
	query := `
		INSERT INTO categories (seller_id, name, slug, parent_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.SellerID,
		model.Name,
		model.Slug,
		model.ParentID,
		model.Description,
		model.CreatedAt,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: category with slug %s already exists", whereami.WhereAmI(), category.Slug)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

// GetByID возвращает категорию без фильтра по продавцу:
// проверка владельца выполняется на уровне usecase.
func (c *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, seller_id, name, slug, parent_id, description, created_at, updated_at
		FROM categories
		WHERE id = $1;
	`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.SellerID, &model.Name, &model.Slug,
		&model.ParentID, &model.Description, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) List(ctx context.Context, sellerID int64) ([]domain.Category, error) {
	query := `
		SELECT id, seller_id, name, slug, parent_id, description, created_at, updated_at
		FROM categories
		WHERE seller_id = $1
		ORDER BY name;
	`

	rows, err := c.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(
			&model.ID, &model.SellerID, &model.Name, &model.Slug,
			&model.ParentID, &model.Description, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := c.conv.ToModel(category)
	query := `
		UPDATE categories
		SET name = $1, slug = $2, parent_id = $3, description = $4, updated_at = NOW()
		WHERE id = $5 AND seller_id = $6
		RETURNING updated_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.Name,
		model.Slug,
		model.ParentID,
		model.Description,
		model.ID,
		model.SellerID,
	).Scan(&model.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}

		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: category with slug %s already exists", whereami.WhereAmI(), category.Slug)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CategoryRepo) Delete(ctx context.Context, id, sellerID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND seller_id = $2;`, id, sellerID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	return nil
}
