//go:generate goverter gen github.com/DRSN-tech/seller-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/DRSN-tech/seller-backend/internal/domain"
)

// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type SaleConverter interface {
	ToRedisModel(entity *domain.Sale) *SaleRedisModel
	ToEntity(model *SaleRedisModel) *domain.Sale
	ToArrRedisModel(entities []domain.Sale) []SaleRedisModel
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}
