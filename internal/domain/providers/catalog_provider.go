package providers

import (
	"context"

	"github.com/bebond/concierge-search/internal/domain/entities"
)

// CatalogProvider supplies the full listing catalog for one organization
// and, optionally, one post type. The returned slice is a snapshot: the
// provider must not mutate it after handing it out, and callers treat it
// as read-only for the duration of the request.
type CatalogProvider interface {
	Listings(ctx context.Context, orgKey, postType string) ([]entities.Listing, error)
}

// LocationProvider supplies the precomputed location hierarchy for one
// organization.
type LocationProvider interface {
	Hierarchy(ctx context.Context, orgKey string) (*entities.LocationHierarchy, error)
}
