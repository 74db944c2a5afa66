package domain

import "time"

// SaleStatus описывает статус продажи
type SaleStatus string

const (
	SaleActive    SaleStatus = "active"
	SaleCompleted SaleStatus = "completed"
	SaleRefunded  SaleStatus = "refunded"
	SaleDisputed  SaleStatus = "disputed"
)

// Sale описывает продажу продукта или членства.
// Это внешний агрегат: данный сервис читает его и меняет только поле Status,
// и только в направлении refunded (при одобрении возврата).
type Sale struct {
	ID           int64
	SellerID     int64
	CustomerID   int64
	ProductID    *int64
	MembershipID *int64
	Amount       int64 // Сумма хранится в копейках
	Status       SaleStatus
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
