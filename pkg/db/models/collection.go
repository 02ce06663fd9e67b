package models

// Collection is a curated grouping shown on the storefront home page.
// ProductCount is denormalized fixture data and is not recomputed.
type Collection struct {
	ID           string `gorm:"column:id;primaryKey"`
	Title        string `gorm:"column:title;not null"`
	Description  string `gorm:"column:description;not null"`
	Image        string `gorm:"column:image;not null"`
	ProductCount int    `gorm:"column:product_count;not null;default:0"`
}
