package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/seller-backend/pkg/e"
)

type ctxKey string

const sellerIDKey ctxKey = "seller_id"

// SellerAuth извлекает идентификатор продавца из заголовка X-Seller-ID.
// Заголовок проставляет внешний API-gateway после аутентификации,
// сервис доверяет ему и только изолирует данные по продавцу.
func SellerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-Seller-ID")
		sellerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || sellerID <= 0 {
			WriteSuccess(w, http.StatusUnauthorized, NewErrorResponse(http.StatusUnauthorized, "missing or invalid X-Seller-ID header"))
			return
		}

		ctx := context.WithValue(r.Context(), sellerIDKey, sellerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sellerIDFromCtx(ctx context.Context) (int64, error) {
	sellerID, ok := ctx.Value(sellerIDKey).(int64)
	if !ok {
		return 0, e.ErrUnauthorized
	}

	return sellerID, nil
}
