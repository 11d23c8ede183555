package services

import (
	"sort"

	"github.com/bebond/concierge-search/internal/domain/entities"
)

// LocationService answers hierarchical location queries over a
// precomputed hierarchy snapshot. Like the search engine it holds no
// state and is safe for concurrent use.
type LocationService struct{}

// NewLocationService creates a new location resolver.
func NewLocationService() *LocationService {
	return &LocationService{}
}

// Resolve walks the hierarchy down the supplied parent chain and returns
// the next level's options. Parameters are honored in strict order; the
// walk stops at the shallowest missing ancestor. An unknown parent yields
// the next level with empty options, never an error.
func (s *LocationService) Resolve(h *entities.LocationHierarchy, params entities.LocationParams) entities.LocationResponse {
	if params.Country == "" {
		options := make([]entities.LocationOption, 0, len(h.Countries))
		for name, node := range h.Countries {
			options = append(options, entities.LocationOption{Value: name, Count: node.Count})
		}
		return response(entities.LevelCountry, "", options)
	}

	country := h.Countries[params.Country]
	if country == nil {
		return response(entities.LevelRegion, params.Country, nil)
	}

	if params.Region == "" {
		options := make([]entities.LocationOption, 0, len(country.Regions))
		for name, node := range country.Regions {
			options = append(options, entities.LocationOption{Value: name, Count: node.Count})
		}
		return response(entities.LevelRegion, params.Country, options)
	}

	region := country.Regions[params.Region]
	if region == nil {
		return response(entities.LevelCity, params.Region, nil)
	}

	if params.City == "" {
		options := make([]entities.LocationOption, 0, len(region.Cities))
		for name, node := range region.Cities {
			options = append(options, entities.LocationOption{Value: name, Count: node.Count})
		}
		return response(entities.LevelCity, params.Region, options)
	}

	city := region.Cities[params.City]
	if city == nil {
		return response(entities.LevelNeighbourhood, params.City, nil)
	}

	options := make([]entities.LocationOption, 0, len(city.Neighbourhoods))
	for name, count := range city.Neighbourhoods {
		options = append(options, entities.LocationOption{Value: name, Count: count})
	}
	return response(entities.LevelNeighbourhood, params.City, options)
}

// response orders options by value so identical hierarchies always
// produce identical output; the backing maps have no stable order.
func response(level, parent string, options []entities.LocationOption) entities.LocationResponse {
	if options == nil {
		options = []entities.LocationOption{}
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Value < options[j].Value
	})
	return entities.LocationResponse{Level: level, Parent: parent, Options: options}
}
