package models

// Product represents a catalog listing seeded from the fixture.
type Product struct {
	ID                  string    `gorm:"column:id;primaryKey"`
	Title               string    `gorm:"column:title;not null"`
	Description         string    `gorm:"column:description;not null"`
	PriceCents          int64     `gorm:"column:price_cents;not null"`
	CompareAtPriceCents *int64    `gorm:"column:compare_at_price_cents"`
	Images              []string  `gorm:"column:images;serializer:json"`
	Category            string    `gorm:"column:category;not null"`
	Tags                []string  `gorm:"column:tags;serializer:json"`
	Available           bool      `gorm:"column:available;not null;default:true"`
	Rating              float64   `gorm:"column:rating;not null;default:0"`
	ReviewCount         int       `gorm:"column:review_count;not null;default:0"`
	Variants            []Variant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// Variant is a purchasable option of a Product. Position preserves the
// fixture ordering when variants are preloaded.
type Variant struct {
	ID         string  `gorm:"column:id;primaryKey"`
	ProductID  string  `gorm:"column:product_id;not null;index"`
	Title      string  `gorm:"column:title;not null"`
	PriceCents int64   `gorm:"column:price_cents;not null"`
	Available  bool    `gorm:"column:available;not null;default:true"`
	Size       *string `gorm:"column:size"`
	Color      *string `gorm:"column:color"`
	Material   *string `gorm:"column:material"`
	Position   int     `gorm:"column:position;not null;default:0"`
}
