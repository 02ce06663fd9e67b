package cart

import "sync"

// Store holds cart lines per session in memory. Carts are deliberately
// volatile: a process restart empties them. All reads hand out copies so
// callers never share slices with the store.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]CartItem
}

// NewStore builds an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[string][]CartItem)}
}

// Snapshot returns a copy of the session's cart lines.
func (s *Store) Snapshot(sessionID string) []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.carts[sessionID])
}

// Update applies fn to the session's cart under the write lock and returns
// a copy of the resulting lines. fn receives its own copy, so it may mutate
// or reslice freely.
func (s *Store) Update(sessionID string, fn func(items []CartItem) []CartItem) []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(copyItems(s.carts[sessionID]))
	if len(next) == 0 {
		delete(s.carts, sessionID)
		return []CartItem{}
	}
	s.carts[sessionID] = next
	return copyItems(next)
}

// Clear drops the session's cart entirely.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func copyItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
