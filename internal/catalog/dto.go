package catalog

import "github.com/aryangupta0810/ecart-backend/pkg/db/models"

// SortKey selects the ordering applied to a filtered listing.
type SortKey string

const (
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortPopular   SortKey = "popular"
	SortNewest    SortKey = "newest"
)

// ProductFilter holds the optional listing constraints parsed from a request.
type ProductFilter struct {
	Category      string
	PriceMinCents *int64
	PriceMaxCents *int64
	Tags          []string
	AvailableOnly bool
	Search        string
	Sort          SortKey
}

// ProductDTO represents the catalog product payload returned to clients.
type ProductDTO struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	PriceCents          int64        `json:"price_cents"`
	CompareAtPriceCents *int64       `json:"compare_at_price_cents,omitempty"`
	Images              []string     `json:"images"`
	Variants            []VariantDTO `json:"variants"`
	Category            string       `json:"category"`
	Tags                []string     `json:"tags"`
	Available           bool         `json:"available"`
	Rating              float64      `json:"rating"`
	ReviewCount         int          `json:"review_count"`
}

// VariantDTO represents a purchasable variant of a product.
type VariantDTO struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	PriceCents int64   `json:"price_cents"`
	Available  bool    `json:"available"`
	Size       *string `json:"size,omitempty"`
	Color      *string `json:"color,omitempty"`
	Material   *string `json:"material,omitempty"`
}

// CollectionDTO represents a curated product grouping.
type CollectionDTO struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductCount int    `json:"product_count"`
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(product *models.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:                  product.ID,
		Title:               product.Title,
		Description:         product.Description,
		PriceCents:          product.PriceCents,
		CompareAtPriceCents: product.CompareAtPriceCents,
		Images:              append([]string{}, product.Images...),
		Category:            product.Category,
		Tags:                append([]string{}, product.Tags...),
		Available:           product.Available,
		Rating:              product.Rating,
		ReviewCount:         product.ReviewCount,
	}
	dto.Variants = make([]VariantDTO, 0, len(product.Variants))
	for _, variant := range product.Variants {
		dto.Variants = append(dto.Variants, VariantDTO{
			ID:         variant.ID,
			Title:      variant.Title,
			PriceCents: variant.PriceCents,
			Available:  variant.Available,
			Size:       variant.Size,
			Color:      variant.Color,
			Material:   variant.Material,
		})
	}
	return dto
}

// NewProductDTOs maps a slice of models preserving order.
func NewProductDTOs(products []models.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, *NewProductDTO(&products[i]))
	}
	return dtos
}

// NewCollectionDTO builds a DTO from the persisted model.
func NewCollectionDTO(collection *models.Collection) *CollectionDTO {
	return &CollectionDTO{
		ID:           collection.ID,
		Title:        collection.Title,
		Description:  collection.Description,
		Image:        collection.Image,
		ProductCount: collection.ProductCount,
	}
}

// NewCollectionDTOs maps a slice of models preserving order.
func NewCollectionDTOs(collections []models.Collection) []CollectionDTO {
	dtos := make([]CollectionDTO, 0, len(collections))
	for i := range collections {
		dtos = append(dtos, *NewCollectionDTO(&collections[i]))
	}
	return dtos
}
