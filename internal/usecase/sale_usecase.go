package usecase

import (
	"context"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
)

// SaleUseCase предоставляет чтение продаж продавца.
// Статус продажи меняет только RefundUseCase при одобрении возврата.
type SaleUseCase struct {
	saleRepo  SaleRepository
	cacheRepo CacheRepository
	logger    logger.Logger
}

func NewSaleUC(saleRepo SaleRepository, cacheRepo CacheRepository, logger logger.Logger) *SaleUseCase {
	return &SaleUseCase{
		saleRepo:  saleRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// Get возвращает продажу продавца по ID через кэш.
func (s *SaleUseCase) Get(ctx context.Context, sellerID, saleID int64) (*domain.Sale, error) {
	const op = "SaleUseCase.Get"

	sale, err := fetchSale(ctx, s.cacheRepo, s.saleRepo, s.logger, saleID, sellerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return sale, nil
}

// List возвращает продажи продавца, новые первыми.
func (s *SaleUseCase) List(ctx context.Context, sellerID int64) ([]domain.Sale, error) {
	const op = "SaleUseCase.List"

	sales, err := s.saleRepo.List(ctx, sellerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return sales, nil
}
