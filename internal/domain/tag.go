package domain

import "time"

// Tag описывает тег продукта. Плоское пространство имён, без иерархии.
type Tag struct {
	ID        int64
	SellerID  int64
	Name      string
	Slug      string
	CreatedAt time.Time
}

func NewTag(sellerID int64, name, slug string) *Tag {
	return &Tag{
		SellerID:  sellerID,
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now().UTC(),
	}
}
