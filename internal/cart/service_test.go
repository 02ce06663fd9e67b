package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/aryangupta0810/ecart-backend/internal/catalog"
	"github.com/aryangupta0810/ecart-backend/pkg/config"
	pkgerrors "github.com/aryangupta0810/ecart-backend/pkg/errors"
)

type stubProductLoader struct {
	products map[string]*catalog.ProductDTO
}

func (s *stubProductLoader) GetProduct(_ context.Context, id string) (*catalog.ProductDTO, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func testPricing() config.PricingConfig {
	return config.PricingConfig{
		FreeShippingMinCents: 2000,
		ShippingFlatCents:    299,
		TaxPercent:           18,
	}
}

func newTestService(t *testing.T) Service {
	t.Helper()

	loader := &stubProductLoader{products: map[string]*catalog.ProductDTO{
		"A": {
			ID:         "A",
			Title:      "Product A",
			PriceCents: 100,
			Images:     []string{"https://example.com/a.jpg"},
			Variants: []catalog.VariantDTO{
				{ID: "A-1", Title: "Small", PriceCents: 100, Available: true},
				{ID: "A-2", Title: "Large", PriceCents: 150, Available: true},
			},
		},
		"B": {ID: "B", Title: "Product B", PriceCents: 50},
	}}
	svc, err := NewService(NewStore(), loader, testPricing())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func assertTotals(t *testing.T, dto *CartDTO, itemCount int, subtotal int64) {
	t.Helper()
	if dto.ItemCount != itemCount || dto.SubtotalCents != subtotal {
		t.Fatalf("expected count=%d subtotal=%d, got count=%d subtotal=%d",
			itemCount, subtotal, dto.ItemCount, dto.SubtotalCents)
	}
}

func TestCartLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	dto, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	assertTotals(t, dto, 0, 0)

	dto, err = svc.AddItem(ctx, "s1", AddItemInput{ProductID: "A", Quantity: 2})
	if err != nil {
		t.Fatalf("add A: %v", err)
	}
	assertTotals(t, dto, 2, 200)

	dto, err = svc.AddItem(ctx, "s1", AddItemInput{ProductID: "B", Quantity: 1})
	if err != nil {
		t.Fatalf("add B: %v", err)
	}
	assertTotals(t, dto, 3, 250)

	dto, err = svc.RemoveItem(ctx, "s1", "A", "")
	if err != nil {
		t.Fatalf("remove A: %v", err)
	}
	assertTotals(t, dto, 1, 50)
	if len(dto.Items) != 1 || dto.Items[0].ProductID != "B" {
		t.Fatalf("unexpected items after removal: %+v", dto.Items)
	}
}

func TestAddItemMergesByProductAndVariant(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "A", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	dto, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "A", Quantity: 2})
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if len(dto.Items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(dto.Items))
	}
	assertTotals(t, dto, 3, 300)

	// A different variant of the same product is its own line.
	dto, err = svc.AddItem(ctx, "s1", AddItemInput{ProductID: "A", VariantID: "A-2", Quantity: 1})
	if err != nil {
		t.Fatalf("add variant: %v", err)
	}
	if len(dto.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(dto.Items))
	}
	assertTotals(t, dto, 4, 450)
}

func TestAddItemSnapshotsVariantPrice(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.AddItem(context.Background(), "s1", AddItemInput{ProductID: "A", VariantID: "A-2", Quantity: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if dto.Items[0].UnitPriceCents != 150 || dto.Items[0].VariantLabel != "Large" {
		t.Fatalf("variant snapshot wrong: %+v", dto.Items[0])
	}
}

func TestAddItemUnknownVariant(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddItem(context.Background(), "s1", AddItemInput{ProductID: "A", VariantID: "A-9"})
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "A", Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	dto, err := svc.UpdateQuantity(ctx, "s1", "A", "", 0)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	assertTotals(t, dto, 0, 0)
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "A", Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	dto, err := svc.UpdateQuantity(ctx, "s1", "A", "", 5)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	assertTotals(t, dto, 5, 500)
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateQuantity(context.Background(), "s1", "missing", "", 2)
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "A", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	dto, err := svc.GetCart(ctx, "s2")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	assertTotals(t, dto, 0, 0)
}

func TestClearCart(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "A", Quantity: 3}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.ClearCart(ctx, "s1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	dto, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	assertTotals(t, dto, 0, 0)
}

func TestEstimateCheckout(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Empty cart prices to zero with no shipping or tax.
	estimate, err := svc.EstimateCheckout(ctx, "s1")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if estimate.TotalCents != 0 || estimate.ShippingCents != 0 || estimate.TaxCents != 0 {
		t.Fatalf("empty cart should price to zero: %+v", estimate)
	}

	// Below threshold: flat shipping plus 18% tax on the subtotal.
	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "A", Quantity: 10}); err != nil {
		t.Fatalf("add: %v", err)
	}
	estimate, err = svc.EstimateCheckout(ctx, "s1")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if estimate.SubtotalCents != 1000 || estimate.ShippingCents != 299 || estimate.TaxCents != 180 {
		t.Fatalf("unexpected estimate: %+v", estimate)
	}
	if estimate.TotalCents != 1479 || estimate.FreeShipping {
		t.Fatalf("unexpected estimate: %+v", estimate)
	}

	// At the threshold shipping is free.
	if _, err := svc.UpdateQuantity(ctx, "s1", "A", "", 20); err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	estimate, err = svc.EstimateCheckout(ctx, "s1")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if !estimate.FreeShipping || estimate.ShippingCents != 0 {
		t.Fatalf("expected free shipping: %+v", estimate)
	}
	if estimate.SubtotalCents != 2000 || estimate.TaxCents != 360 || estimate.TotalCents != 2360 {
		t.Fatalf("unexpected estimate: %+v", estimate)
	}
}
