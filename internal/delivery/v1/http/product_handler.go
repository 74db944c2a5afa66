package http

import (
	"net/http"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/usecase"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase    usecase.ProductUC
	assignmentUsecase usecase.AssignmentUC
	logger            logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, assignmentUsecase usecase.AssignmentUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{
		productUsecase:    productUsecase,
		assignmentUsecase: assignmentUsecase,
		logger:            logger,
	}
}

// createProduct
//
//	@Summary		Создание нового продукта
//	@Description	Создаёт цифровой продукт продавца, опционально с изображением
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название продукта"
//	@Param			description	formData	string	false	"Описание"
//	@Param			price		formData	number	true	"Цена"
//	@Param			status		formData	string	false	"Статус (draft/published/archived)"
//	@Param			image		formData	file	false	"Изображение продукта"
//	@Success		201			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
	)

	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	prMeta, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.Create(r.Context(), &usecase.CreateProductReq{
		SellerID:    sellerID,
		Name:        prMeta.Name,
		Description: prMeta.Description,
		Price:       prMeta.Price,
		Status:      prMeta.Status,
		Image:       image,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := urlParamInt64(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.Get(r.Context(), sellerID, productID)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := p.productUsecase.List(r.Context(), sellerID)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := urlParamInt64(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       string `json:"price"`
		Status      string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	priceCents, err := parseAmountToCents(req.Price)
	if err != nil {
		p.logger.Warnf("invalid price %q: %v", req.Price, err)
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.Update(r.Context(), &usecase.UpdateProductReq{
		SellerID:    sellerID,
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		Price:       priceCents,
		Status:      domain.ProductStatus(req.Status),
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := urlParamInt64(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.Delete(r.Context(), sellerID, productID); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": true})
}

// setAssignments
//
//	@Summary		Сверка категорий и тегов продукта
//	@Description	Приводит связи продукта к желаемым наборам минимальным числом операций.
//	@Description	Выполняется по принципу best-effort: при частичном сбое возвращается 500 с отчётом о выполненных и неудавшихся операциях.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int					true	"ID продукта"
//	@Param			request		body		AssignmentsRequest	true	"Желаемые наборы категорий и тегов"
//	@Success		200			{object}	usecase.ReconcileResult
//	@Failure		403			{object}	ErrorResponse	"Продукт принадлежит другому продавцу"
//	@Failure		404			{object}	ErrorResponse	"Продукт не найден"
//	@Failure		500			{object}	usecase.ReconcileResult	"Частичный сбой сверки"
//	@Router			/products/{productID}/assignments [put]
func (p *ProductHandler) setAssignments(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := urlParamInt64(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req AssignmentsRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	result, err := p.assignmentUsecase.Reconcile(r.Context(), &usecase.ReconcileReq{
		SellerID:    sellerID,
		ProductID:   productID,
		CategoryIDs: req.CategoryIDs,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	// Частичный сбой: отчёт отдаётся клиенту вместе с кодом 500,
	// чтобы он видел, какие операции уже применены.
	if !result.Clean() {
		WriteSuccess(w, http.StatusInternalServerError, result)
		return
	}

	WriteSuccess(w, http.StatusOK, result)
}
