package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/usecase"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ProductMetadata struct {
	Name        string
	Description string
	Price       int64
	Status      domain.ProductStatus
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrNameRequired):
		return http.StatusBadRequest, e.ErrNameRequired.Error()
	case errors.Is(err, e.ErrReasonRequired):
		return http.StatusBadRequest, e.ErrReasonRequired.Error()
	case errors.Is(err, e.ErrAmountOutOfRange):
		return http.StatusBadRequest, errorMessage(err, e.ErrAmountOutOfRange)
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidProductStatus):
		return http.StatusBadRequest, e.ErrInvalidProductStatus.Error()
	case errors.Is(err, e.ErrCategoryCycle):
		return http.StatusBadRequest, e.ErrCategoryCycle.Error()
	case errors.Is(err, e.ErrParentNotOwned):
		return http.StatusBadRequest, e.ErrParentNotOwned.Error()
	case errors.Is(err, e.ErrCustomerMismatch):
		return http.StatusBadRequest, e.ErrCustomerMismatch.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusForbidden, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrTagNotFound):
		return http.StatusNotFound, e.ErrTagNotFound.Error()
	case errors.Is(err, e.ErrSaleNotFound):
		return http.StatusNotFound, e.ErrSaleNotFound.Error()
	case errors.Is(err, e.ErrRefundNotFound):
		return http.StatusNotFound, e.ErrRefundNotFound.Error()
	case errors.Is(err, e.ErrInvalidTransition):
		return http.StatusConflict, e.ErrInvalidTransition.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

// errorMessage возвращает наиболее информативное сообщение для клиента:
// текст обёрнутой ошибки без внутренних префиксов, либо текст sentinel.
func errorMessage(err, sentinel error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, sentinel.Error()); idx >= 0 {
		return msg[idx:]
	}

	return sentinel.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseAmountToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (e.g. 10^9 rubles)
func parseAmountToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	// Reject negative
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	// Enforce max value (1 billion rubles)
	maxAmount := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxAmount) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision // "price must have at most 2 decimal places"
	}

	// Convert to cents: multiply by 100 and round
	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

func parseProductForm(r *http.Request) (*ProductMetadata, error) {
	name := r.FormValue("name")
	description := r.FormValue("description")
	priceStr := r.FormValue("price")
	status := r.FormValue("status")

	if name == "" || priceStr == "" {
		return nil, e.Wrap(fmt.Sprintf("name: %s, price: %s", name, priceStr), e.ErrMissingFields)
	}

	priceCents, err := parseAmountToCents(priceStr)
	if err != nil {
		return nil, err
	}

	return &ProductMetadata{
		Name:        name,
		Description: description,
		Price:       priceCents,
		Status:      domain.ProductStatus(status),
	}, nil
}

// parseImage читает первый файл из multipart-формы.
// Отсутствие файла не ошибка: продукт может быть без изображения.
func parseImage(files []*multipart.FileHeader) (*usecase.ProductImage, error) {
	const maxFileSize = 15 << 20

	if len(files) == 0 {
		return nil, nil
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, maxFileSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}

func urlParamInt64(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(name, e.ErrStatusBadRequest)
	}

	return id, nil
}

func queryParamInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, e.Wrap(name, e.ErrStatusBadRequest)
	}

	return &id, nil
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}

	return nil
}
