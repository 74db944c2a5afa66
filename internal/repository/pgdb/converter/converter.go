//go:generate goverter gen github.com/DRSN-tech/seller-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// TagConverter преобразует сущности Tag между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type TagConverter interface {
	ToModel(entity *domain.Tag) *TagModel
	ToEntity(model *TagModel) *domain.Tag
}

// SaleConverter преобразует сущности Sale между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type SaleConverter interface {
	ToModel(entity *domain.Sale) *SaleModel
	ToEntity(model *SaleModel) *domain.Sale
}

// RefundConverter преобразует сущности Refund между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type RefundConverter interface {
	ToModel(entity *domain.Refund) *RefundModel
	ToEntity(model *RefundModel) *domain.Refund
}

// DisputeConverter преобразует сущности Dispute между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type DisputeConverter interface {
	ToModel(entity *domain.Dispute) *DisputeModel
	ToEntity(model *DisputeModel) *domain.Dispute
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

func ConvertOutboxEventType(t usecase.OutboxEventType) usecase.OutboxEventType {
	return t
}
