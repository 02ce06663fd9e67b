package preferences

// historyLimit bounds the browsing history to the most recent entries.
const historyLimit = 20

// BudgetRange is the shopper's price band in minor units.
type BudgetRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Preferences is the persisted snapshot of a shopper's settings. Field names
// match the stored JSON document.
type Preferences struct {
	Budget              BudgetRange `json:"budget"`
	Size                string      `json:"size"`
	StyleTags           []string    `json:"styleTags"`
	PreferredCategories []string    `json:"preferredCategories"`
	ShoppingHistory     []string    `json:"shoppingHistory"`
	FavoriteColors      []string    `json:"favoriteColors"`
	Occasion            string      `json:"occasion"`
}

// DefaultPreferences returns the settings a new shopper starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Budget:              BudgetRange{Min: 0, Max: 10000},
		Size:                "M",
		StyleTags:           []string{},
		PreferredCategories: []string{},
		ShoppingHistory:     []string{},
		FavoriteColors:      []string{},
		Occasion:            "casual",
	}
}

// clone deep-copies the snapshot so callers never share slices with the store.
func (p Preferences) clone() Preferences {
	out := p
	out.StyleTags = append([]string{}, p.StyleTags...)
	out.PreferredCategories = append([]string{}, p.PreferredCategories...)
	out.ShoppingHistory = append([]string{}, p.ShoppingHistory...)
	out.FavoriteColors = append([]string{}, p.FavoriteColors...)
	return out
}
