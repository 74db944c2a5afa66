package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request — ошибки валидации
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrNameRequired         = fmt.Errorf("name is required")
	ErrReasonRequired       = fmt.Errorf("reason is required")
	ErrAmountOutOfRange     = fmt.Errorf("refund amount out of range")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidProductStatus = fmt.Errorf("invalid product status")
	ErrCategoryCycle        = fmt.Errorf("category parent introduces a cycle")
	ErrParentNotOwned       = fmt.Errorf("parent category does not belong to the seller")
	ErrCustomerMismatch     = fmt.Errorf("customer does not match the sale")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 403 Forbidden
	ErrUnauthorized = fmt.Errorf("not permitted")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrTagNotFound      = fmt.Errorf("tag not found")
	ErrSaleNotFound     = fmt.Errorf("sale not found")
	ErrRefundNotFound   = fmt.Errorf("refund not found")

	// 409 Conflict
	ErrInvalidTransition = fmt.Errorf("status transition not allowed")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
