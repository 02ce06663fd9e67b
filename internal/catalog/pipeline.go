package catalog

import (
	"sort"

	"github.com/aryangupta0810/ecart-backend/pkg/db/models"
)

// CategoryAll disables the category predicate.
const CategoryAll = "All"

// FilterState captures the listing constraints a shopper has selected.
// A PriceMaxCents of zero means no upper bound, so the zero value keeps
// every product.
type FilterState struct {
	Category      string
	PriceMinCents int64
	PriceMaxCents int64
	Tags          []string
	AvailableOnly bool
}

// ApplyPipeline filters and sorts a listing. It is a pure function of its
// inputs: the source slice is never mutated and the result is freshly
// allocated. Filters are ANDed; the sort runs last over the surviving rows.
func ApplyPipeline(products []models.Product, state FilterState, key SortKey) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if state.Category != "" && state.Category != CategoryAll && p.Category != state.Category {
			continue
		}
		if p.PriceCents < state.PriceMinCents {
			continue
		}
		if state.PriceMaxCents > 0 && p.PriceCents > state.PriceMaxCents {
			continue
		}
		if len(state.Tags) > 0 && !hasAnyTag(p.Tags, state.Tags) {
			continue
		}
		if state.AvailableOnly && !p.Available {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, key)
	return out
}

// hasAnyTag reports whether the product carries at least one selected tag.
func hasAnyTag(productTags, selected []string) bool {
	for _, want := range selected {
		for _, have := range productTags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// sortProducts orders the slice in place. SortNewest keeps catalog order,
// there being no timestamp to sort by. The sort is stable so ties preserve
// input order.
func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents < products[j].PriceCents
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents > products[j].PriceCents
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewCount > products[j].ReviewCount
		})
	case SortNewest:
	}
}
