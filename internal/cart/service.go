package cart

import (
	"context"
	"fmt"

	"github.com/aryangupta0810/ecart-backend/internal/catalog"
	"github.com/aryangupta0810/ecart-backend/pkg/config"
	pkgerrors "github.com/aryangupta0810/ecart-backend/pkg/errors"
)

// productLoader is the slice of the catalog the cart needs for price snapshots.
type productLoader interface {
	GetProduct(ctx context.Context, id string) (*catalog.ProductDTO, error)
}

// AddItemInput captures the payload to add a cart line.
type AddItemInput struct {
	ProductID string
	VariantID string
	Quantity  int
}

// Service exposes per-session cart operations.
type Service interface {
	GetCart(ctx context.Context, sessionID string) (*CartDTO, error)
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, sessionID, productID, variantLabel string, quantity int) (*CartDTO, error)
	RemoveItem(ctx context.Context, sessionID, productID, variantLabel string) (*CartDTO, error)
	ClearCart(ctx context.Context, sessionID string) error
	EstimateCheckout(ctx context.Context, sessionID string) (*CheckoutEstimateDTO, error)
}

type service struct {
	store    *Store
	products productLoader
	pricing  config.PricingConfig
}

// NewService builds a cart service backed by the provided stack.
func NewService(store *Store, products productLoader, pricing config.PricingConfig) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{store: store, products: products, pricing: pricing}, nil
}

// GetCart returns the session's cart with derived totals.
func (s *service) GetCart(_ context.Context, sessionID string) (*CartDTO, error) {
	return newCartDTO(s.store.Snapshot(sessionID)), nil
}

// AddItem snapshots the product price and merges the line into the cart.
// Lines are identified by (product id, variant label): adding an existing
// line increments its quantity instead of appending a duplicate row.
func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*CartDTO, error) {
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	product, err := s.products.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	line := CartItem{
		ProductID:      product.ID,
		Title:          product.Title,
		UnitPriceCents: product.PriceCents,
		Quantity:       input.Quantity,
	}
	if len(product.Images) > 0 {
		line.Image = product.Images[0]
	}
	if input.VariantID != "" {
		variant, err := findVariant(product, input.VariantID)
		if err != nil {
			return nil, err
		}
		line.UnitPriceCents = variant.PriceCents
		line.VariantLabel = variant.Title
	}

	items := s.store.Update(sessionID, func(items []CartItem) []CartItem {
		for i := range items {
			if sameLine(items[i], line.ProductID, line.VariantLabel) {
				items[i].Quantity += line.Quantity
				return items
			}
		}
		return append(items, line)
	})
	return newCartDTO(items), nil
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// less removes the line.
func (s *service) UpdateQuantity(_ context.Context, sessionID, productID, variantLabel string, quantity int) (*CartDTO, error) {
	found := false
	items := s.store.Update(sessionID, func(items []CartItem) []CartItem {
		out := items[:0]
		for _, item := range items {
			if sameLine(item, productID, variantLabel) {
				found = true
				if quantity <= 0 {
					continue
				}
				item.Quantity = quantity
			}
			out = append(out, item)
		}
		return out
	})
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return newCartDTO(items), nil
}

// RemoveItem drops the line from the cart.
func (s *service) RemoveItem(_ context.Context, sessionID, productID, variantLabel string) (*CartDTO, error) {
	found := false
	items := s.store.Update(sessionID, func(items []CartItem) []CartItem {
		out := items[:0]
		for _, item := range items {
			if sameLine(item, productID, variantLabel) {
				found = true
				continue
			}
			out = append(out, item)
		}
		return out
	})
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return newCartDTO(items), nil
}

// ClearCart empties the session's cart.
func (s *service) ClearCart(_ context.Context, sessionID string) error {
	s.store.Clear(sessionID)
	return nil
}

// EstimateCheckout prices the current cart contents.
func (s *service) EstimateCheckout(_ context.Context, sessionID string) (*CheckoutEstimateDTO, error) {
	dto := newCartDTO(s.store.Snapshot(sessionID))
	return estimateCheckout(dto.SubtotalCents, s.pricing), nil
}

// sameLine matches a cart line by product id and variant label.
func sameLine(item CartItem, productID, variantLabel string) bool {
	return item.ProductID == productID && item.VariantLabel == variantLabel
}

func findVariant(product *catalog.ProductDTO, variantID string) (*catalog.VariantDTO, error) {
	for i := range product.Variants {
		if product.Variants[i].ID == variantID {
			return &product.Variants[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown variant for product").
		WithDetails(map[string]any{"variant_id": variantID})
}
