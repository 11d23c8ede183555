package services

import (
	"github.com/bebond/concierge-search/internal/domain/entities"
	apperrors "github.com/bebond/concierge-search/pkg/errors"
)

// ConfigService serves the per-post-type search surface the listing UI
// renders its controls from: sort options, filter options and location
// levels.
type ConfigService struct {
	configs map[string]entities.SearchConfig
}

// NewConfigService creates a config service with the built-in post types.
func NewConfigService() *ConfigService {
	return &ConfigService{configs: defaultConfigs()}
}

// Get returns the search configuration for a post type. An empty post
// type resolves to "restaurant".
func (s *ConfigService) Get(postType string) (*entities.SearchConfig, error) {
	if postType == "" {
		postType = "restaurant"
	}
	cfg, ok := s.configs[postType]
	if !ok {
		return nil, apperrors.NewNotFoundError("no search config for post type " + postType)
	}
	return &cfg, nil
}

func defaultConfigs() map[string]entities.SearchConfig {
	restaurantSorts := []entities.SortOption{
		{Field: "sort_rating", Label: "Rating", Order: "desc", Default: true},
		{Field: "sort_title", Label: "Name", Order: "asc"},
		{Field: "sort_expense", Label: "Price", Order: "asc"},
		{Field: "sort_date", Label: "Newest", Order: "desc"},
		{Field: SortFieldDistance, Label: "Distance", Order: "asc", RequiresLocation: true},
	}
	restaurantFilters := []entities.FilterOption{
		{Field: "cuisine", Label: "Cuisine", Type: "multiselect"},
		{Field: "expense_level", Label: "Price Level", Type: "multiselect"},
		{Field: "meals_served", Label: "Meals Served", Type: "multiselect"},
		{Field: "features", Label: "Features", Type: "multiselect"},
		{Field: "is_featured", Label: "Featured Only", Type: "toggle"},
	}
	levels := []string{
		entities.LevelCountry,
		entities.LevelRegion,
		entities.LevelCity,
		entities.LevelNeighbourhood,
	}

	return map[string]entities.SearchConfig{
		"restaurant": {
			PostType:       "restaurant",
			SortOptions:    restaurantSorts,
			FilterOptions:  restaurantFilters,
			LocationLevels: levels,
		},
		"winery": {
			PostType: "winery",
			SortOptions: []entities.SortOption{
				{Field: "sort_rating", Label: "Rating", Order: "desc", Default: true},
				{Field: "sort_title", Label: "Name", Order: "asc"},
				{Field: SortFieldDistance, Label: "Distance", Order: "asc", RequiresLocation: true},
			},
			FilterOptions: []entities.FilterOption{
				{Field: "features", Label: "Features", Type: "multiselect"},
				{Field: "is_featured", Label: "Featured Only", Type: "toggle"},
			},
			LocationLevels: levels,
		},
	}
}
