package converter

import (
	"time"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/usecase"
)

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64                `db:"id"`
	SellerID    int64                `db:"seller_id"`
	Name        string               `db:"name"`
	Description string               `db:"description"`
	Price       int64                `db:"price"`
	Status      domain.ProductStatus `db:"status"`
	ImageKey    *string              `db:"image_key"`
	CreatedAt   time.Time            `db:"created_at"`
	UpdatedAt   *time.Time           `db:"updated_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          int64      `db:"id"`
	SellerID    int64      `db:"seller_id"`
	Name        string     `db:"name"`
	Slug        string     `db:"slug"`
	ParentID    *int64     `db:"parent_id"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// TagModel представляет запись таблицы tags в PostgreSQL.
type TagModel struct {
	ID        int64     `db:"id"`
	SellerID  int64     `db:"seller_id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

// SaleModel представляет запись таблицы sales в PostgreSQL.
type SaleModel struct {
	ID           int64             `db:"id"`
	SellerID     int64             `db:"seller_id"`
	CustomerID   int64             `db:"customer_id"`
	ProductID    *int64            `db:"product_id"`
	MembershipID *int64            `db:"membership_id"`
	Amount       int64             `db:"amount"`
	Status       domain.SaleStatus `db:"status"`
	CreatedAt    time.Time         `db:"created_at"`
	UpdatedAt    *time.Time        `db:"updated_at"`
}

// RefundModel представляет запись таблицы refunds в PostgreSQL.
type RefundModel struct {
	ID         int64               `db:"id"`
	SaleID     int64               `db:"sale_id"`
	SellerID   int64               `db:"seller_id"`
	Amount     int64               `db:"amount"`
	Reason     string              `db:"reason"`
	Status     domain.RefundStatus `db:"status"`
	Notes      *string             `db:"notes"`
	RefundDate *time.Time          `db:"refund_date"`
	CreatedAt  time.Time           `db:"created_at"`
	UpdatedAt  *time.Time          `db:"updated_at"`
}

// DisputeModel представляет запись таблицы disputes в PostgreSQL.
type DisputeModel struct {
	ID          int64                `db:"id"`
	SaleID      int64                `db:"sale_id"`
	CustomerID  int64                `db:"customer_id"`
	SellerID    int64                `db:"seller_id"`
	Reason      string               `db:"reason"`
	Description *string              `db:"description"`
	Status      domain.DisputeStatus `db:"status"`
	CreatedAt   time.Time            `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	SaleID      int64                   `db:"sale_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
