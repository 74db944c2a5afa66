package usecase

import (
	"context"

	"github.com/DRSN-tech/seller-backend/internal/domain"
)

type RefundUC interface {
	Create(ctx context.Context, req *CreateRefundReq) (*domain.Refund, error)
	Approve(ctx context.Context, req *RefundDecisionReq) (*domain.Refund, error)
	Reject(ctx context.Context, req *RefundDecisionReq) (*domain.Refund, error)
	UpdateNotes(ctx context.Context, req *UpdateRefundNotesReq) (*domain.Refund, error)
	Delete(ctx context.Context, sellerID, refundID int64) error
	List(ctx context.Context, req *ListRefundsReq) ([]domain.Refund, error)
	Stats(ctx context.Context, sellerID int64) (*RefundStats, error)
}

type DisputeUC interface {
	Create(ctx context.Context, req *CreateDisputeReq) (*domain.Dispute, error)
	List(ctx context.Context, sellerID int64) ([]domain.Dispute, error)
}

type AssignmentUC interface {
	Reconcile(ctx context.Context, req *ReconcileReq) (*ReconcileResult, error)
}

type ProductUC interface {
	Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	Get(ctx context.Context, sellerID, productID int64) (*domain.Product, error)
	List(ctx context.Context, sellerID int64) ([]domain.Product, error)
	Update(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	Delete(ctx context.Context, sellerID, productID int64) error
}

type TaxonomyUC interface {
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	UpdateCategory(ctx context.Context, req *UpdateCategoryReq) (*domain.Category, error)
	ListCategories(ctx context.Context, sellerID int64) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, sellerID, categoryID int64) error
	CreateTag(ctx context.Context, req *CreateTagReq) (*domain.Tag, error)
	ListTags(ctx context.Context, sellerID int64) ([]domain.Tag, error)
	DeleteTag(ctx context.Context, sellerID, tagID int64) error
}

type SaleUC interface {
	Get(ctx context.Context, sellerID, saleID int64) (*domain.Sale, error)
	List(ctx context.Context, sellerID int64) ([]domain.Sale, error)
}
