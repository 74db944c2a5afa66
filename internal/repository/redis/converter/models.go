package converter

import (
	"time"

	"github.com/DRSN-tech/seller-backend/internal/domain"
)

type SaleRedisModel struct {
	ID           int64             `json:"id"`
	SellerID     int64             `json:"seller_id"`
	CustomerID   int64             `json:"customer_id"`
	ProductID    *int64            `json:"product_id,omitempty"`
	MembershipID *int64            `json:"membership_id,omitempty"`
	Amount       int64             `json:"amount"`
	Status       domain.SaleStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    *time.Time        `json:"updated_at,omitempty"`
}
