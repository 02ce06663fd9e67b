package catalog

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/aryangupta0810/ecart-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	svc, err := NewService(seededRepository(t))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestListProductsNoFilterReturnsCatalog(t *testing.T) {
	svc := newTestService(t)

	products, err := svc.ListProducts(context.Background(), ProductFilter{})
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 27 {
		t.Fatalf("expected 27 products, got %d", len(products))
	}
}

func TestListProductsFilterIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	max := int64(9000)

	products, err := svc.ListProducts(context.Background(), ProductFilter{
		Category:      "footwear",
		PriceMaxCents: &max,
	})
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	for _, p := range products {
		if p.Category != "Footwear" || p.PriceCents > max {
			t.Fatalf("filter leaked product %s (%s, %d)", p.ID, p.Category, p.PriceCents)
		}
	}
}

func TestListProductsSortPriceLow(t *testing.T) {
	svc := newTestService(t)

	products, err := svc.ListProducts(context.Background(), ProductFilter{Sort: SortPriceLow})
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	for i := 1; i < len(products); i++ {
		if products[i-1].PriceCents > products[i].PriceCents {
			t.Fatalf("products not sorted ascending at index %d", i)
		}
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetProduct(context.Background(), "999")
	if err == nil {
		t.Fatal("expected error for unknown product")
	}
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSearchProductsBlankQuery(t *testing.T) {
	svc := newTestService(t)

	products, err := svc.SearchProducts(context.Background(), "   ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no suggestions for blank query, got %d", len(products))
	}
}

func TestSearchProductsMatchesTagsCaseInsensitively(t *testing.T) {
	svc := newTestService(t)

	products, err := svc.SearchProducts(context.Background(), "DENIM")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected at least one match for denim")
	}
	found := false
	for _, p := range products {
		if p.ID == "1" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the denim jacket in the results")
	}
}

func TestRelatedProductsShareCategoryOrTag(t *testing.T) {
	svc := newTestService(t)

	related, err := svc.RelatedProducts(context.Background(), "5", 0)
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	// Footwear plus shared athletic tags: the boots and the running shoes.
	if len(related) != 2 || related[0].ID != "6" || related[1].ID != "7" {
		t.Fatalf("unexpected related listing: %+v", related)
	}
	target, err := svc.GetProduct(context.Background(), "5")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	for _, p := range related {
		if p.ID == target.ID {
			t.Fatal("related listing must exclude the product itself")
		}
		if p.Category != target.Category && !hasAnyTag(p.Tags, target.Tags) {
			t.Fatalf("product %s shares neither category nor tag", p.ID)
		}
	}
}

func TestRelatedProductsUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RelatedProducts(context.Background(), "999", 2)
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
