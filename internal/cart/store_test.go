package cart

import (
	"sync"
	"testing"
)

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := NewStore()
	store.Update("s1", func(items []CartItem) []CartItem {
		return append(items, CartItem{ProductID: "A", Quantity: 1, UnitPriceCents: 100})
	})

	snapshot := store.Snapshot("s1")
	snapshot[0].Quantity = 99

	again := store.Snapshot("s1")
	if again[0].Quantity != 1 {
		t.Fatalf("snapshot mutation leaked into the store: %+v", again[0])
	}
}

func TestStoreConcurrentUpdates(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update("s1", func(items []CartItem) []CartItem {
				if len(items) == 0 {
					return append(items, CartItem{ProductID: "A", Quantity: 1})
				}
				items[0].Quantity++
				return items
			})
		}()
	}
	wg.Wait()

	items := store.Snapshot("s1")
	if len(items) != 1 || items[0].Quantity != 50 {
		t.Fatalf("expected a single line with quantity 50, got %+v", items)
	}
}

func TestStoreDropsEmptyCarts(t *testing.T) {
	store := NewStore()
	store.Update("s1", func(items []CartItem) []CartItem {
		return append(items, CartItem{ProductID: "A", Quantity: 1})
	})
	result := store.Update("s1", func(items []CartItem) []CartItem { return items[:0] })
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
	if got := store.Snapshot("s1"); len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", got)
	}
}
