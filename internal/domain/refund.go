package domain

import "time"

// RefundStatus описывает статус заявки на возврат
type RefundStatus string

const (
	RefundPending  RefundStatus = "pending"
	RefundApproved RefundStatus = "approved"
	RefundRejected RefundStatus = "rejected"
)

// Refund описывает заявку на возврат по продаже.
// pending — начальный статус; approved и rejected — терминальные.
type Refund struct {
	ID         int64
	SaleID     int64 // Неизменяем после создания
	SellerID   int64
	Amount     int64 // Сумма хранится в копейках, фиксируется при создании
	Reason     string
	Status     RefundStatus
	Notes      *string
	RefundDate *time.Time // Устанавливается при одобрении
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func NewRefund(saleID, sellerID, amount int64, reason string) *Refund {
	return &Refund{
		SaleID:    saleID,
		SellerID:  sellerID,
		Amount:    amount,
		Reason:    reason,
		Status:    RefundPending,
		CreatedAt: time.Now().UTC(),
	}
}

// CanTransition проверяет допустимость перехода статуса заявки.
// Разрешены только переходы pending -> approved и pending -> rejected.
func (r *Refund) CanTransition(next RefundStatus) bool {
	if r.Status != RefundPending {
		return false
	}

	return next == RefundApproved || next == RefundRejected
}
