package http

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/usecase"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
)

type RefundHandler struct {
	refundUsecase usecase.RefundUC
	logger        logger.Logger
}

func NewRefundHandler(refundUsecase usecase.RefundUC, logger logger.Logger) *RefundHandler {
	return &RefundHandler{refundUsecase: refundUsecase, logger: logger}
}

// createRefund
//
//	@Summary		Создание заявки на возврат
//	@Description	Создаёт заявку на возврат по продаже в статусе pending
//	@Tags			refunds
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRefundRequest	true	"Параметры заявки"
//	@Success		201		{object}	RefundResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Продажа не найдена"
//	@Router			/refunds [post]
func (h *RefundHandler) createRefund(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CreateRefundRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	amountCents, err := parseAmountToCents(req.Amount)
	if err != nil {
		h.logger.Warnf("invalid refund amount %q: %v", req.Amount, err)
		WriteError(w, err)
		return
	}

	refund, err := h.refundUsecase.Create(r.Context(), &usecase.CreateRefundReq{
		SellerID: sellerID,
		SaleID:   req.SaleID,
		Amount:   amountCents,
		Reason:   req.Reason,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toRefundResponse(refund))
}

// approveRefund
//
//	@Summary	Одобрение заявки на возврат
//	@Tags		refunds
//	@Produce	json
//	@Param		refundID	path		int						true	"ID заявки"
//	@Param		request		body		RefundDecisionRequest	false	"Комментарий к решению"
//	@Success	200			{object}	RefundResponse
//	@Failure	404			{object}	ErrorResponse	"Заявка не найдена"
//	@Failure	409			{object}	ErrorResponse	"Недопустимый переход статуса"
//	@Router		/refunds/{refundID}/approve [patch]
func (h *RefundHandler) approveRefund(w http.ResponseWriter, r *http.Request) {
	h.decideRefund(w, r, h.refundUsecase.Approve)
}

// rejectRefund
//
//	@Summary	Отклонение заявки на возврат
//	@Tags		refunds
//	@Produce	json
//	@Param		refundID	path		int						true	"ID заявки"
//	@Param		request		body		RefundDecisionRequest	false	"Комментарий к решению"
//	@Success	200			{object}	RefundResponse
//	@Failure	404			{object}	ErrorResponse	"Заявка не найдена"
//	@Failure	409			{object}	ErrorResponse	"Недопустимый переход статуса"
//	@Router		/refunds/{refundID}/reject [patch]
func (h *RefundHandler) rejectRefund(w http.ResponseWriter, r *http.Request) {
	h.decideRefund(w, r, h.refundUsecase.Reject)
}

func (h *RefundHandler) decideRefund(w http.ResponseWriter, r *http.Request, decide func(ctx context.Context, req *usecase.RefundDecisionReq) (*domain.Refund, error)) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	refundID, err := urlParamInt64(r, "refundID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req RefundDecisionRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			WriteError(w, err)
			return
		}
	}

	refund, err := decide(r.Context(), &usecase.RefundDecisionReq{
		SellerID: sellerID,
		RefundID: refundID,
		Notes:    req.Notes,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toRefundResponse(refund))
}

// updateRefundNotes обновляет комментарий продавца к заявке, статус не меняется.
func (h *RefundHandler) updateRefundNotes(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	refundID, err := urlParamInt64(r, "refundID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req UpdateNotesRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	refund, err := h.refundUsecase.UpdateNotes(r.Context(), &usecase.UpdateRefundNotesReq{
		SellerID: sellerID,
		RefundID: refundID,
		Notes:    req.Notes,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toRefundResponse(refund))
}

func (h *RefundHandler) deleteRefund(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	refundID, err := urlParamInt64(r, "refundID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.refundUsecase.Delete(r.Context(), sellerID, refundID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": true})
}

// listRefunds
//
//	@Summary	Список заявок продавца
//	@Tags		refunds
//	@Produce	json
//	@Param		sale_id		query		int	false	"Фильтр по продаже"
//	@Param		customer_id	query		int	false	"Фильтр по покупателю"
//	@Success	200			{array}		RefundResponse
//	@Router		/refunds [get]
func (h *RefundHandler) listRefunds(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	saleID, err := queryParamInt64(r, "sale_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	customerID, err := queryParamInt64(r, "customer_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	refunds, err := h.refundUsecase.List(r.Context(), &usecase.ListRefundsReq{
		SellerID:   sellerID,
		SaleID:     saleID,
		CustomerID: customerID,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrRefundResponse(refunds))
}

// refundStats
//
//	@Summary	Статистика по возвратам продавца
//	@Tags		refunds
//	@Produce	json
//	@Success	200	{object}	RefundStatsResponse
//	@Router		/refunds/stats [get]
func (h *RefundHandler) refundStats(w http.ResponseWriter, r *http.Request) {
	sellerID, err := sellerIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	stats, err := h.refundUsecase.Stats(r.Context(), sellerID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toRefundStatsResponse(stats))
}
