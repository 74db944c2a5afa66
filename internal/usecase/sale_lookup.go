package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
)

// fetchSale возвращает продажу по ID в пределах владения продавца (cache-aside).
// Промах кэша дочитывается из БД и кэшируется в фоне; ошибки кэша не фатальны.
func fetchSale(
	ctx context.Context,
	cache CacheRepository,
	repo SaleRepository,
	log logger.Logger,
	saleID, sellerID int64,
) (*domain.Sale, error) {
	cached, err := cache.GetSales(ctx, []int64{saleID})
	if err == nil {
		if sale, ok := cached[saleID]; ok {
			if sale.SellerID != sellerID {
				return nil, e.ErrSaleNotFound
			}
			return &sale, nil
		}
	}

	sale, err := repo.GetByID(ctx, saleID, sellerID)
	if err != nil {
		return nil, err
	}

	// Фоновое добавление продажи в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := cache.SetSales(bgCtx, []domain.Sale{*sale}); err != nil {
			log.Warnf("Failed to cache sale in background: %v", err)
		}
	}()

	return sale, nil
}
