package memory

import (
	"context"

	"github.com/bebond/concierge-search/internal/domain/entities"
	"github.com/bebond/concierge-search/internal/domain/providers"
)

// Adapter is the in-memory catalog backend used for local development and
// tests. It implements both CatalogProvider and LocationProvider over a
// fixed listing set; the hierarchy is derived from the active listings so
// its counts, neighbourhoods included, are real.
type Adapter struct {
	listings []entities.Listing
}

var (
	_ providers.CatalogProvider  = (*Adapter)(nil)
	_ providers.LocationProvider = (*Adapter)(nil)
)

// NewAdapter creates an adapter over the given listings. The slice is
// copied so later mutation by the caller cannot leak into served
// snapshots.
func NewAdapter(listings []entities.Listing) *Adapter {
	owned := make([]entities.Listing, len(listings))
	copy(owned, listings)
	return &Adapter{listings: owned}
}

// Listings returns a fresh snapshot of the catalog scoped to the
// organization and, when non-empty, the post type.
func (a *Adapter) Listings(_ context.Context, orgKey, postType string) ([]entities.Listing, error) {
	snapshot := make([]entities.Listing, 0, len(a.listings))
	for _, l := range a.listings {
		if l.OrgKey != orgKey {
			continue
		}
		if postType != "" && l.PostType != postType {
			continue
		}
		snapshot = append(snapshot, l)
	}
	return snapshot, nil
}

// Hierarchy derives the location tree from the organization's active
// listings.
func (a *Adapter) Hierarchy(_ context.Context, orgKey string) (*entities.LocationHierarchy, error) {
	h := &entities.LocationHierarchy{Countries: make(map[string]*entities.CountryNode)}

	for _, l := range a.listings {
		if l.OrgKey != orgKey || !l.IsActive {
			continue
		}

		country := h.Countries[l.Location.Country]
		if country == nil {
			country = &entities.CountryNode{Regions: make(map[string]*entities.RegionNode)}
			h.Countries[l.Location.Country] = country
		}
		country.Count++

		region := country.Regions[l.Location.Region]
		if region == nil {
			region = &entities.RegionNode{Cities: make(map[string]*entities.CityNode)}
			country.Regions[l.Location.Region] = region
		}
		region.Count++

		city := region.Cities[l.Location.City]
		if city == nil {
			city = &entities.CityNode{Neighbourhoods: make(map[string]int)}
			region.Cities[l.Location.City] = city
		}
		city.Count++

		if l.Location.Neighbourhood != "" {
			city.Neighbourhoods[l.Location.Neighbourhood]++
		}
	}

	return h, nil
}
