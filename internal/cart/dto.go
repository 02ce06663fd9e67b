package cart

// CartItem is a single cart line. The unit price is a snapshot taken when
// the item was added and is not re-synced with the catalog.
type CartItem struct {
	ProductID      string `json:"product_id"`
	Title          string `json:"title"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Image          string `json:"image,omitempty"`
	Quantity       int    `json:"quantity"`
	VariantLabel   string `json:"variant_label,omitempty"`
}

// CartDTO is the cart payload returned to clients, with derived totals.
type CartDTO struct {
	Items         []CartItem `json:"items"`
	ItemCount     int        `json:"item_count"`
	SubtotalCents int64      `json:"subtotal_cents"`
}

// CheckoutEstimateDTO breaks a cart down into payable lines.
type CheckoutEstimateDTO struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	ShippingCents int64 `json:"shipping_cents"`
	TaxCents      int64 `json:"tax_cents"`
	TotalCents    int64 `json:"total_cents"`
	FreeShipping  bool  `json:"free_shipping"`
}

// newCartDTO derives the totals from the items in one pass.
func newCartDTO(items []CartItem) *CartDTO {
	dto := &CartDTO{Items: items}
	if dto.Items == nil {
		dto.Items = []CartItem{}
	}
	for _, item := range items {
		dto.ItemCount += item.Quantity
		dto.SubtotalCents += item.UnitPriceCents * int64(item.Quantity)
	}
	return dto
}
