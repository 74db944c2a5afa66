package usecase

import (
	"context"

	"github.com/DRSN-tech/seller-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, sellerID int64) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id, sellerID int64) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context, sellerID int64) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id, sellerID int64) error
}

type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	List(ctx context.Context, sellerID int64) ([]domain.Tag, error)
	Delete(ctx context.Context, id, sellerID int64) error
}

// MappingRepository управляет связями многие-ко-многим продукта с категориями и тегами.
// AddMapping идемпотентен: повторное добавление существующей связи — no-op.
type MappingRepository interface {
	FetchMappings(ctx context.Context, productID int64, kind domain.MappingKind) (map[int64]struct{}, error)
	AddMapping(ctx context.Context, productID int64, kind domain.MappingKind, targetID int64) error
	RemoveMapping(ctx context.Context, productID int64, kind domain.MappingKind, targetID int64) error
}

type SaleRepository interface {
	GetByID(ctx context.Context, id, sellerID int64) (*domain.Sale, error)
	List(ctx context.Context, sellerID int64) ([]domain.Sale, error)
	UpdateStatus(ctx context.Context, id, sellerID int64, status domain.SaleStatus) error
}

// ListRefundsFilter задаёт область выборки возвратов. SellerID обязателен,
// SaleID и CustomerID опциональны (фильтр по покупателю идёт через продажу).
type ListRefundsFilter struct {
	SellerID   int64
	SaleID     *int64
	CustomerID *int64
}

type RefundRepository interface {
	Create(ctx context.Context, refund *domain.Refund) (*domain.Refund, error)
	GetByID(ctx context.Context, id, sellerID int64) (*domain.Refund, error)
	Update(ctx context.Context, refund *domain.Refund) (*domain.Refund, error)
	Delete(ctx context.Context, id, sellerID int64) error
	List(ctx context.Context, filter ListRefundsFilter) ([]domain.Refund, error)
}

type DisputeRepository interface {
	Create(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error)
	List(ctx context.Context, sellerID int64) ([]domain.Dispute, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type CacheRepository interface {
	GetSales(ctx context.Context, ids []int64) (map[int64]domain.Sale, error)
	SetSales(ctx context.Context, sales []domain.Sale) error
	DeleteSales(ctx context.Context, ids []int64) error
}
