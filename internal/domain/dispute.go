package domain

import "time"

// DisputeStatus описывает статус спора
type DisputeStatus string

// Единственный статус в текущей модели; набор оставлен открытым для расширения.
const DisputeOpen DisputeStatus = "open"

// Dispute описывает спор покупателя по продаже
type Dispute struct {
	ID          int64
	SaleID      int64
	CustomerID  int64
	SellerID    int64
	Reason      string
	Description *string
	Status      DisputeStatus
	CreatedAt   time.Time
}

func NewDispute(saleID, customerID, sellerID int64, reason string, description *string) *Dispute {
	return &Dispute{
		SaleID:      saleID,
		CustomerID:  customerID,
		SellerID:    sellerID,
		Reason:      reason,
		Description: description,
		Status:      DisputeOpen,
		CreatedAt:   time.Now().UTC(),
	}
}
