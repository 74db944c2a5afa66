package http

import (
	"net/http"

	"github.com/DRSN-tech/seller-backend/internal/usecase"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
)

type TaxonomyHandler struct {
	taxonomyUsecase usecase.TaxonomyUC
	logger          logger.Logger
}

func NewTaxonomyHandler(taxonomyUsecase usecase.TaxonomyUC, logger logger.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyUsecase: taxonomyUsecase, logger: logger}
}

// createCategory
//
//	@Summary	Создание категории
//	@Tags		taxonomy
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateCategoryRequest	true	"Параметры категории"
//	@Success	201		{object}	CategoryResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router		/categories [post]
func (h *TaxonomyHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.taxonomyUsecase.CreateCategory(r.Context(), &usecase.CreateCategoryReq{
		SellerID:    sellerID,
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(category))
}

func (h *TaxonomyHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	categoryID, err := urlParamInt64(r, "categoryID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req UpdateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.taxonomyUsecase.UpdateCategory(r.Context(), &usecase.UpdateCategoryReq{
		SellerID:    sellerID,
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

func (h *TaxonomyHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	categories, err := h.taxonomyUsecase.ListCategories(r.Context(), sellerID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrCategoryResponse(categories))
}

func (h *TaxonomyHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	categoryID, err := urlParamInt64(r, "categoryID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.taxonomyUsecase.DeleteCategory(r.Context(), sellerID, categoryID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": true})
}

func (h *TaxonomyHandler) createTag(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CreateTagRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	tag, err := h.taxonomyUsecase.CreateTag(r.Context(), &usecase.CreateTagReq{
		SellerID: sellerID,
		Name:     req.Name,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toTagResponse(tag))
}

func (h *TaxonomyHandler) listTags(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	tags, err := h.taxonomyUsecase.ListTags(r.Context(), sellerID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrTagResponse(tags))
}

func (h *TaxonomyHandler) deleteTag(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	tagID, err := urlParamInt64(r, "tagID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.taxonomyUsecase.DeleteTag(r.Context(), sellerID, tagID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": true})
}
