package http

import (
	"time"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// Денежные поля наружу отдаются строками с двумя знаками после запятой,
// внутри всё считается в копейках.

type CreateRefundRequest struct {
	SaleID int64  `json:"sale_id"`
	Amount string `json:"amount"`
	Reason string `json:"reason"`
}

type RefundDecisionRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type CreateDisputeRequest struct {
	SaleID      int64   `json:"sale_id"`
	CustomerID  int64   `json:"customer_id"`
	Reason      string  `json:"reason"`
	Description *string `json:"description,omitempty"`
}

// AssignmentsRequest — желаемые наборы категорий и тегов продукта.
type AssignmentsRequest struct {
	CategoryIDs []int64 `json:"category_ids"`
	TagIDs      []int64 `json:"tag_ids"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id,omitempty"`
}

type CreateTagRequest struct {
	Name string `json:"name"`
}

type RefundResponse struct {
	ID         int64      `json:"id"`
	SaleID     int64      `json:"sale_id"`
	Amount     string     `json:"amount"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	Notes      *string    `json:"notes,omitempty"`
	RefundDate *time.Time `json:"refund_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type DisputeResponse struct {
	ID          int64     `json:"id"`
	SaleID      int64     `json:"sale_id"`
	CustomerID  int64     `json:"customer_id"`
	Reason      string    `json:"reason"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type SaleResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	ProductID    *int64    `json:"product_id,omitempty"`
	MembershipID *int64    `json:"membership_id,omitempty"`
	Amount       string    `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Status      string    `json:"status"`
	ImageKey    *string   `json:"image_key,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	Description string `json:"description"`
}

type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type RefundStatsResponse struct {
	TotalRefunds    int    `json:"total_refunds"`
	ApprovedRefunds int    `json:"approved_refunds"`
	RejectedRefunds int    `json:"rejected_refunds"`
	PendingRefunds  int    `json:"pending_refunds"`
	TotalAmount     string `json:"total_amount"`
}

// centsToAmount форматирует сумму в копейках как строку рублей с копейками.
func centsToAmount(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func toRefundResponse(r *domain.Refund) *RefundResponse {
	return &RefundResponse{
		ID:         r.ID,
		SaleID:     r.SaleID,
		Amount:     centsToAmount(r.Amount),
		Reason:     r.Reason,
		Status:     string(r.Status),
		Notes:      r.Notes,
		RefundDate: r.RefundDate,
		CreatedAt:  r.CreatedAt,
	}
}

func toArrRefundResponse(refunds []domain.Refund) []RefundResponse {
	res := make([]RefundResponse, len(refunds))
	for i := range refunds {
		res[i] = *toRefundResponse(&refunds[i])
	}

	return res
}

func toDisputeResponse(d *domain.Dispute) *DisputeResponse {
	return &DisputeResponse{
		ID:          d.ID,
		SaleID:      d.SaleID,
		CustomerID:  d.CustomerID,
		Reason:      d.Reason,
		Description: d.Description,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

func toArrDisputeResponse(disputes []domain.Dispute) []DisputeResponse {
	res := make([]DisputeResponse, len(disputes))
	for i := range disputes {
		res[i] = *toDisputeResponse(&disputes[i])
	}

	return res
}

func toSaleResponse(s *domain.Sale) *SaleResponse {
	return &SaleResponse{
		ID:           s.ID,
		CustomerID:   s.CustomerID,
		ProductID:    s.ProductID,
		MembershipID: s.MembershipID,
		Amount:       centsToAmount(s.Amount),
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
	}
}

func toArrSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = *toSaleResponse(&sales[i])
	}

	return res
}

func toProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       centsToAmount(p.Price),
		Status:      string(p.Status),
		ImageKey:    p.ImageKey,
		CreatedAt:   p.CreatedAt,
	}
}

func toArrProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = *toProductResponse(&products[i])
	}

	return res
}

func toCategoryResponse(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		ParentID:    c.ParentID,
		Description: c.Description,
	}
}

func toArrCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = *toCategoryResponse(&categories[i])
	}

	return res
}

func toTagResponse(t *domain.Tag) *TagResponse {
	return &TagResponse{
		ID:   t.ID,
		Name: t.Name,
		Slug: t.Slug,
	}
}

func toArrTagResponse(tags []domain.Tag) []TagResponse {
	res := make([]TagResponse, len(tags))
	for i := range tags {
		res[i] = *toTagResponse(&tags[i])
	}

	return res
}

func toRefundStatsResponse(s *usecase.RefundStats) *RefundStatsResponse {
	return &RefundStatsResponse{
		TotalRefunds:    s.TotalRefunds,
		ApprovedRefunds: s.ApprovedRefunds,
		RejectedRefunds: s.RejectedRefunds,
		PendingRefunds:  s.PendingRefunds,
		TotalAmount:     centsToAmount(s.TotalAmount),
	}
}
