package catalog

import (
	"testing"

	"github.com/aryangupta0810/ecart-backend/pkg/db/models"
)

func pipelineFixture() []models.Product {
	return []models.Product{
		{ID: "a", Title: "Tee", Category: "Tops", PriceCents: 100, Tags: []string{"casual"}, Available: true, Rating: 4.2, ReviewCount: 10},
		{ID: "b", Title: "Boot", Category: "Footwear", PriceCents: 500, Tags: []string{"leather"}, Available: true, Rating: 4.9, ReviewCount: 50},
		{ID: "c", Title: "Sneaker", Category: "Footwear", PriceCents: 900, Tags: []string{"casual", "athletic"}, Available: false, Rating: 4.5, ReviewCount: 30},
	}
}

func idsOf(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func assertIDs(t *testing.T, got []models.Product, want ...string) {
	t.Helper()
	ids := idsOf(got)
	if len(ids) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, ids)
		}
	}
}

func TestPipelineCategoryAndPrice(t *testing.T) {
	result := ApplyPipeline(pipelineFixture(), FilterState{Category: "Footwear", PriceMaxCents: 600}, SortNewest)
	assertIDs(t, result, "b")
}

func TestPipelineCategoryAllKeepsEverything(t *testing.T) {
	result := ApplyPipeline(pipelineFixture(), FilterState{Category: CategoryAll}, SortNewest)
	assertIDs(t, result, "a", "b", "c")
}

func TestPipelineTagsMatchAny(t *testing.T) {
	result := ApplyPipeline(pipelineFixture(), FilterState{Tags: []string{"athletic", "leather"}}, SortNewest)
	assertIDs(t, result, "b", "c")
}

func TestPipelineAvailabilityOnly(t *testing.T) {
	result := ApplyPipeline(pipelineFixture(), FilterState{AvailableOnly: true}, SortNewest)
	assertIDs(t, result, "a", "b")
}

func TestPipelineSortKeys(t *testing.T) {
	cases := []struct {
		key  SortKey
		want []string
	}{
		{SortPriceLow, []string{"a", "b", "c"}},
		{SortPriceHigh, []string{"c", "b", "a"}},
		{SortRating, []string{"b", "c", "a"}},
		{SortPopular, []string{"b", "c", "a"}},
		{SortNewest, []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		result := ApplyPipeline(pipelineFixture(), FilterState{}, tc.key)
		assertIDs(t, result, tc.want...)
	}
}

func TestPipelinePriceSortsAreExactReverses(t *testing.T) {
	low := ApplyPipeline(pipelineFixture(), FilterState{}, SortPriceLow)
	high := ApplyPipeline(pipelineFixture(), FilterState{}, SortPriceHigh)
	if len(low) != len(high) {
		t.Fatalf("length mismatch: %d vs %d", len(low), len(high))
	}
	for i := range low {
		if low[i].ID != high[len(high)-1-i].ID {
			t.Fatalf("price sorts are not reverses: %v vs %v", idsOf(low), idsOf(high))
		}
	}
}

func TestPipelineIsIdempotent(t *testing.T) {
	state := FilterState{Category: "Footwear", Tags: []string{"casual", "leather"}}
	once := ApplyPipeline(pipelineFixture(), state, SortPriceLow)
	twice := ApplyPipeline(once, state, SortPriceLow)
	assertIDs(t, twice, idsOf(once)...)
}

func TestPipelineDoesNotMutateInput(t *testing.T) {
	input := pipelineFixture()
	ApplyPipeline(input, FilterState{}, SortPriceHigh)
	assertIDs(t, input, "a", "b", "c")
}
