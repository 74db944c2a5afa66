package domain

import "time"

// ProductStatus описывает статус публикации продукта
type ProductStatus string

const (
	ProductDraft     ProductStatus = "draft"
	ProductPublished ProductStatus = "published"
	ProductArchived  ProductStatus = "archived"
)

// ValidProductStatus проверяет, что значение статуса известно системе.
func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductDraft, ProductPublished, ProductArchived:
		return true
	default:
		return false
	}
}

// Product описывает цифровой продукт продавца
type Product struct {
	ID          int64
	SellerID    int64
	Name        string
	Description string
	Price       int64 // Цена хранится в копейках
	Status      ProductStatus
	ImageKey    *string // Ключ объекта в MinIO
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(sellerID int64, name, description string, price int64, status ProductStatus, imageKey *string) *Product {
	return &Product{
		SellerID:    sellerID,
		Name:        name,
		Description: description,
		Price:       price,
		Status:      status,
		ImageKey:    imageKey,
		CreatedAt:   time.Now().UTC(),
	}
}
