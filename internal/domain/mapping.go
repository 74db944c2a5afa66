package domain

// MappingKind различает вид связи продукта: категория или тег.
type MappingKind string

const (
	MappingCategory MappingKind = "category"
	MappingTag      MappingKind = "tag"
)
