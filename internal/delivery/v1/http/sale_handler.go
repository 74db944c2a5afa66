package http

import (
	"net/http"

	"github.com/DRSN-tech/seller-backend/internal/usecase"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
)

type SaleHandler struct {
	saleUsecase usecase.SaleUC
	logger      logger.Logger
}

func NewSaleHandler(saleUsecase usecase.SaleUC, logger logger.Logger) *SaleHandler {
	return &SaleHandler{saleUsecase: saleUsecase, logger: logger}
}

// getSale
//
//	@Summary	Продажа по ID
//	@Tags		sales
//	@Produce	json
//	@Param		saleID	path		int	true	"ID продажи"
//	@Success	200		{object}	SaleResponse
//	@Failure	404		{object}	ErrorResponse	"Продажа не найдена"
//	@Router		/sales/{saleID} [get]
func (h *SaleHandler) getSale(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	saleID, err := urlParamInt64(r, "saleID")
	if err != nil {
		WriteError(w, err)
		return
	}

	sale, err := h.saleUsecase.Get(r.Context(), sellerID, saleID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSaleResponse(sale))
}

func (h *SaleHandler) listSales(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	sales, err := h.saleUsecase.List(r.Context(), sellerID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrSaleResponse(sales))
}
