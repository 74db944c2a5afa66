package pgdb

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// MappingRepo управляет связями продукта с категориями и тегами.
// Каждая операция выполняется отдельным запросом вне общей транзакции:
// частичный сбой одной связи не откатывает остальные.
type MappingRepo struct {
	pool *pgxpool.Pool
}

func NewMappingRepo(pool *pgxpool.Pool) *MappingRepo {
	return &MappingRepo{pool: pool}
}

type mappingTable struct {
	name   string
	column string
}

func tableFor(kind domain.MappingKind) (mappingTable, error) {
	switch kind {
	case domain.MappingCategory:
		return mappingTable{name: "product_categories", column: "category_id"}, nil
	case domain.MappingTag:
		return mappingTable{name: "product_tags", column: "tag_id"}, nil
	default:
		return mappingTable{}, fmt.Errorf("unknown mapping kind: %s", kind)
	}
}

func (m *MappingRepo) FetchMappings(ctx context.Context, productID int64, kind domain.MappingKind) (map[int64]struct{}, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE product_id = $1;`, table.column, table.name)

	rows, err := m.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[int64]struct{})
	for rows.Next() {
		var targetID int64
		if err := rows.Scan(&targetID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result[targetID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// AddMapping идемпотентен: существующая связь не считается ошибкой.
func (m *MappingRepo) AddMapping(ctx context.Context, productID int64, kind domain.MappingKind, targetID int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (product_id, %s)
		VALUES ($1, $2)
		ON CONFLICT (product_id, %s) DO NOTHING;
	`, table.name, table.column, table.column)

	if _, err := m.pool.Exec(ctx, query, productID, targetID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (m *MappingRepo) RemoveMapping(ctx context.Context, productID int64, kind domain.MappingKind, targetID int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE product_id = $1 AND %s = $2;`, table.name, table.column)

	if _, err := m.pool.Exec(ctx, query, productID, targetID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
