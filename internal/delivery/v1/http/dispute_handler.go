package http

import (
	"net/http"

	"github.com/DRSN-tech/seller-backend/internal/usecase"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
)

type DisputeHandler struct {
	disputeUsecase usecase.DisputeUC
	logger         logger.Logger
}

func NewDisputeHandler(disputeUsecase usecase.DisputeUC, logger logger.Logger) *DisputeHandler {
	return &DisputeHandler{disputeUsecase: disputeUsecase, logger: logger}
}

// createDispute
//
//	@Summary		Открытие спора по продаже
//	@Description	Регистрирует спор покупателя по продаже продавца
//	@Tags			disputes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateDisputeRequest	true	"Параметры спора"
//	@Success		201		{object}	DisputeResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Продажа не найдена"
//	@Router			/disputes [post]
func (h *DisputeHandler) createDispute(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CreateDisputeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	dispute, err := h.disputeUsecase.Create(r.Context(), &usecase.CreateDisputeReq{
		SellerID:    sellerID,
		SaleID:      req.SaleID,
		CustomerID:  req.CustomerID,
		Reason:      req.Reason,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toDisputeResponse(dispute))
}

func (h *DisputeHandler) listDisputes(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	disputes, err := h.disputeUsecase.List(r.Context(), sellerID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrDisputeResponse(disputes))
}
