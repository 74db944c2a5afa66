package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// ProductUseCase реализует управление продуктами продавца,
// включая загрузку изображения в S3 с компенсацией при сбое записи в БД.
type ProductUseCase struct {
	productRepo ProductRepository
	imagesInfra ImagesInfra
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	imagesInfra ImagesInfra,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		imagesInfra: imagesInfra,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// Create валидирует данные, загружает изображение (если есть) и сохраняет продукт.
// Если запись в БД не удалась после загрузки, запускается очистка осиротевшего объекта.
func (p *ProductUseCase) Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Create"

	var err error
	if err = validateProductFields(req.Name, req.Price, req.Status); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		imageKey *string
		uploaded bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженного изображения
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded && imageKey != nil {
				p.logger.Warnf(
					"Cleaning up orphaned image after transaction failure. product_name: %s, error: %v",
					req.Name,
					e.Wrap(op, err),
				)

				p.imagesInfra.CleanupImages([]string{*imageKey})
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if req.Image != nil {
		var key string
		key, err = p.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.Name, *req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		imageKey = &key
		uploaded = true
	}

	status := req.Status
	if status == "" {
		status = domain.ProductDraft
	}

	product, err := p.productRepo.Create(ctx, domain.NewProduct(req.SellerID, req.Name, req.Description, req.Price, status, imageKey))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// Get возвращает продукт продавца по ID.
func (p *ProductUseCase) Get(ctx context.Context, sellerID, productID int64) (*domain.Product, error) {
	const op = "ProductUseCase.Get"

	product, err := p.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if product.SellerID != sellerID {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	return product, nil
}

// List возвращает продукты продавца, новые первыми.
func (p *ProductUseCase) List(ctx context.Context, sellerID int64) ([]domain.Product, error) {
	const op = "ProductUseCase.List"

	products, err := p.productRepo.List(ctx, sellerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// Update изменяет поля продукта; ключ изображения не затрагивается.
func (p *ProductUseCase) Update(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Update"

	var err error
	if err = validateProductFields(req.Name, req.Price, req.Status); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.Get(ctx, req.SellerID, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Status = req.Status

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := p.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// Delete удаляет продукт вместе со связями (каскадом на стороне БД)
// и запускает фоновую очистку изображения.
func (p *ProductUseCase) Delete(ctx context.Context, sellerID, productID int64) error {
	const op = "ProductUseCase.Delete"

	product, err := p.Get(ctx, sellerID, productID)
	if err != nil {
		return e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = p.productRepo.Delete(ctx, productID, sellerID); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	if product.ImageKey != nil {
		p.imagesInfra.CleanupImages([]string{*product.ImageKey})
	}

	return nil
}

// validateProductFields проверяет корректность входных данных продукта.
func validateProductFields(name string, price int64, status domain.ProductStatus) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrNameRequired
	}

	if price <= 0 {
		return e.ErrInvalidPrice
	}

	if status != "" && !domain.ValidProductStatus(status) {
		return e.ErrInvalidProductStatus
	}

	return nil
}
