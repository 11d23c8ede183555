package entities

// SortOption describes one ordering a search UI may offer.
type SortOption struct {
	Field            string `json:"field"`
	Label            string `json:"label"`
	Order            string `json:"order"`
	Default          bool   `json:"default,omitempty"`
	RequiresLocation bool   `json:"requires_location,omitempty"`
}

// FilterOption describes one filter control a search UI may offer.
type FilterOption struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// SearchConfig is the per-post-type search surface: which sorts, filters
// and location levels apply.
type SearchConfig struct {
	PostType       string         `json:"post_type"`
	SortOptions    []SortOption   `json:"sort_options"`
	FilterOptions  []FilterOption `json:"filter_options"`
	LocationLevels []string       `json:"location_levels"`
}
