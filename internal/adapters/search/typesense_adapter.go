package search

import (
	"context"
	"fmt"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/bebond/concierge-search/internal/domain/entities"
	tsclient "github.com/bebond/concierge-search/internal/infrastructure/clients/typesense"
)

const collectionName = "listings"

// TypesenseAdapter mirrors the listing catalog into a Typesense
// collection so a hosted search deployment can serve the same filter and
// facet surface. The engine never reads from it; cmd/indexer writes
// through it.
type TypesenseAdapter struct {
	client *tsclient.Client
}

// NewTypesenseAdapter creates a Typesense listings adapter.
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the listings collection exists. Facet fields match
// the engine's facet categories.
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "org_key", Type: "string"},
			{Name: "post_type", Type: "string", Facet: pointer.True()},
			{Name: "title", Type: "string"},
			{Name: "excerpt", Type: "string"},
			{Name: "country", Type: "string", Facet: pointer.True()},
			{Name: "region", Type: "string", Facet: pointer.True()},
			{Name: "city", Type: "string", Facet: pointer.True()},
			{Name: "neighbourhood", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "location", Type: "geopoint"},
			{Name: "cuisine", Type: "string[]", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "expense_level", Type: "string", Facet: pointer.True()},
			{Name: "meals_served", Type: "string[]", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "features", Type: "string[]", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "sort_rating", Type: "float"},
			{Name: "sort_expense", Type: "float"},
			{Name: "is_featured", Type: "bool"},
			{Name: "is_active", Type: "bool"},
			{Name: "created_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("sort_rating"),
	}

	if _, err := a.client.Client().Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// Index upserts one listing document.
func (a *TypesenseAdapter) Index(ctx context.Context, l *entities.Listing) error {
	document := map[string]interface{}{
		"id":            l.ID,
		"org_key":       l.OrgKey,
		"post_type":     l.PostType,
		"title":         l.Title,
		"excerpt":       l.Excerpt,
		"country":       l.Location.Country,
		"region":        l.Location.Region,
		"city":          l.Location.City,
		"neighbourhood": l.Location.Neighbourhood,
		"location":      []float64{l.Location.Lat, l.Location.Lng},
		"cuisine":       l.Cuisine,
		"expense_level": l.ExpenseLevel,
		"meals_served":  l.MealsServed,
		"features":      l.Features,
		"sort_rating":   l.SortRating,
		"sort_expense":  l.SortExpense,
		"is_featured":   l.IsFeatured,
		"is_active":     l.IsActive,
		"created_at":    l.CreatedAt.Unix(),
	}

	if _, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document); err != nil {
		return fmt.Errorf("failed to index listing %s: %w", l.ID, err)
	}
	return nil
}

// Delete removes one listing from the index.
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	if _, err := a.client.Client().Collection(collectionName).Document(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete listing %s from index: %w", id, err)
	}
	return nil
}
