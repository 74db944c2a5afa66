package domain

import "time"

// Category описывает категорию продукта.
// Родительская категория, если задана, принадлежит тому же продавцу; дерево категорий образует лес.
type Category struct {
	ID          int64
	SellerID    int64
	Name        string
	Slug        string
	ParentID    *int64
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewCategory(sellerID int64, name, slug, description string, parentID *int64) *Category {
	return &Category{
		SellerID:    sellerID,
		Name:        name,
		Slug:        slug,
		ParentID:    parentID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
