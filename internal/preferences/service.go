package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aryangupta0810/ecart-backend/pkg/logger"
	pkgredis "github.com/aryangupta0810/ecart-backend/pkg/redis"
)

// snapshotStore is the key/value surface the service persists through.
type snapshotStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	PreferencesKey(sessionID string) string
}

// Service exposes per-session preference operations. Every mutation commits
// a full snapshot back to the store.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Preferences, error)
	SetBudget(ctx context.Context, sessionID string, min, max int64) (*Preferences, error)
	SetSize(ctx context.Context, sessionID, size string) (*Preferences, error)
	AddStyleTag(ctx context.Context, sessionID, tag string) (*Preferences, error)
	RemoveStyleTag(ctx context.Context, sessionID, tag string) (*Preferences, error)
	SetPreferredCategories(ctx context.Context, sessionID string, categories []string) (*Preferences, error)
	AddToHistory(ctx context.Context, sessionID, productID string) (*Preferences, error)
	SetFavoriteColors(ctx context.Context, sessionID string, colors []string) (*Preferences, error)
	SetOccasion(ctx context.Context, sessionID, occasion string) (*Preferences, error)
	Reset(ctx context.Context, sessionID string) (*Preferences, error)
}

// sessionState caches the loaded snapshot. Mutations are suppressed from
// persisting until the stored snapshot has been read, so defaults never
// clobber data that has not been loaded yet.
type sessionState struct {
	prefs  Preferences
	loaded bool
}

type service struct {
	kv   snapshotStore
	logg *logger.Logger

	mu       sync.Mutex
	sessions map[string]*sessionState
}

// NewService builds a preferences service over the provided snapshot store.
func NewService(kv snapshotStore, logg *logger.Logger) (Service, error) {
	if kv == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		kv:       kv,
		logg:     logg,
		sessions: make(map[string]*sessionState),
	}, nil
}

// Get returns the session's preferences, loading the stored snapshot on
// first touch.
func (s *service) Get(ctx context.Context, sessionID string) (*Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load(ctx, sessionID)
	prefs := state.prefs.clone()
	return &prefs, nil
}

// SetBudget replaces the budget band. Bounds are stored as given; the
// source of record performs no min/max validation.
func (s *service) SetBudget(ctx context.Context, sessionID string, min, max int64) (*Preferences, error) {
	return s.mutate(ctx, sessionID, func(p *Preferences) {
		p.Budget = BudgetRange{Min: min, Max: max}
	})
}

// SetSize replaces the preferred size.
func (s *service) SetSize(ctx context.Context, sessionID, size string) (*Preferences, error) {
	return s.mutate(ctx, sessionID, func(p *Preferences) {
		p.Size = size
	})
}

// AddStyleTag appends the tag once; adding a present tag is a no-op.
func (s *service) AddStyleTag(ctx context.Context, sessionID, tag string) (*Preferences, error) {
	return s.mutate(ctx, sessionID, func(p *Preferences) {
		for _, existing := range p.StyleTags {
			if existing == tag {
				return
			}
		}
		p.StyleTags = append(p.StyleTags, tag)
	})
}

// RemoveStyleTag drops the tag if present.
func (s *service) RemoveStyleTag(ctx context.Context, sessionID, tag string) (*Preferences, error) {
	return s.mutate(ctx, sessionID, func(p *Preferences) {
		out := p.StyleTags[:0]
		for _, existing := range p.StyleTags {
			if existing != tag {
				out = append(out, existing)
			}
		}
		p.StyleTags = out
	})
}

// SetPreferredCategories replaces the category set wholesale.
func (s *service) SetPreferredCategories(ctx context.Context, sessionID string, categories []string) (*Preferences, error) {
	return s.mutate(ctx, sessionID, func(p *Preferences) {
		p.PreferredCategories = append([]string{}, categories...)
	})
}

// AddToHistory pushes the product id to the front, removes any earlier
// occurrence, and truncates to the most recent entries.
func (s *service) AddToHistory(ctx context.Context, sessionID, productID string) (*Preferences, error) {
	return s.mutate(ctx, sessionID, func(p *Preferences) {
		history := make([]string, 0, len(p.ShoppingHistory)+1)
		history = append(history, productID)
		for _, existing := range p.ShoppingHistory {
			if existing != productID {
				history = append(history, existing)
			}
		}
		if len(history) > historyLimit {
			history = history[:historyLimit]
		}
		p.ShoppingHistory = history
	})
}

// SetFavoriteColors replaces the color set wholesale.
func (s *service) SetFavoriteColors(ctx context.Context, sessionID string, colors []string) (*Preferences, error) {
	return s.mutate(ctx, sessionID, func(p *Preferences) {
		p.FavoriteColors = append([]string{}, colors...)
	})
}

// SetOccasion replaces the occasion.
func (s *service) SetOccasion(ctx context.Context, sessionID, occasion string) (*Preferences, error) {
	return s.mutate(ctx, sessionID, func(p *Preferences) {
		p.Occasion = occasion
	})
}

// Reset restores defaults and commits them.
func (s *service) Reset(ctx context.Context, sessionID string) (*Preferences, error) {
	return s.mutate(ctx, sessionID, func(p *Preferences) {
		*p = DefaultPreferences()
	})
}

// load returns the cached session state, reading the stored snapshot on
// first touch. A missing or unreadable snapshot falls back to defaults and
// still marks the session loaded. A store read failure serves defaults
// without caching or marking the session loaded: the stored snapshot may
// still exist, so writes stay suppressed and the read retries on the next
// touch.
func (s *service) load(ctx context.Context, sessionID string) *sessionState {
	if state, ok := s.sessions[sessionID]; ok {
		return state
	}

	state := &sessionState{prefs: DefaultPreferences()}
	raw, err := s.kv.Get(ctx, s.kv.PreferencesKey(sessionID))
	switch {
	case err == nil:
		var stored Preferences
		if unmarshalErr := json.Unmarshal([]byte(raw), &stored); unmarshalErr != nil {
			s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "discarding unreadable preferences snapshot", unmarshalErr)
		} else {
			state.prefs = stored
		}
	case errors.Is(err, pkgredis.ErrNotFound):
	default:
		s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "failed to read preferences snapshot, serving defaults", err)
		return state
	}

	state.loaded = true
	s.sessions[sessionID] = state
	return state
}

// mutate applies fn under the lock and commits the snapshot when loaded.
func (s *service) mutate(ctx context.Context, sessionID string, fn func(p *Preferences)) (*Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load(ctx, sessionID)
	fn(&state.prefs)
	if state.loaded {
		if err := s.save(ctx, sessionID, state.prefs); err != nil {
			return nil, err
		}
	}
	prefs := state.prefs.clone()
	return &prefs, nil
}

func (s *service) save(ctx context.Context, sessionID string, prefs Preferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	return s.kv.Set(ctx, s.kv.PreferencesKey(sessionID), string(payload), 0)
}
