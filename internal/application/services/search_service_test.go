package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bebond/concierge-search/internal/domain/entities"
	apperrors "github.com/bebond/concierge-search/pkg/errors"
)

func listing(id string, mutate func(*entities.Listing)) entities.Listing {
	l := entities.Listing{
		ID:       id,
		OrgKey:   "BB_vrconcierge",
		PostType: "restaurant",
		Title:    "Listing " + id,
		IsActive: true,
		Location: entities.ListingLocation{
			Country: "United States",
			Region:  "New Jersey",
			City:    "Hoboken",
			Lat:     40.7440,
			Lng:     -74.0324,
		},
		SortRating:   5.0,
		ExpenseLevel: "$$",
	}
	if mutate != nil {
		mutate(&l)
	}
	return l
}

func TestSearch_ActiveGateExcludesEverywhere(t *testing.T) {
	catalog := []entities.Listing{
		listing("a", func(l *entities.Listing) { l.Cuisine = []string{"Italian"} }),
		listing("b", func(l *entities.Listing) {
			l.IsActive = false
			l.Cuisine = []string{"Italian"}
		}),
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{OrgKey: "BB_vrconcierge"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "a", resp.Results[0].ID)
	require.Len(t, resp.Facets.Cuisine, 1)
	assert.Equal(t, entities.FacetItem{Value: "Italian", Count: 1}, resp.Facets.Cuisine[0])
}

func TestSearch_AndAcrossCategoriesOrWithin(t *testing.T) {
	catalog := []entities.Listing{
		listing("italian-mid", func(l *entities.Listing) { l.Cuisine = []string{"Italian"} }),
		listing("thai-mid", func(l *entities.Listing) { l.Cuisine = []string{"Thai"} }),
		listing("italian-high", func(l *entities.Listing) {
			l.Cuisine = []string{"Italian"}
			l.ExpenseLevel = "$$$"
		}),
		listing("french-mid", func(l *entities.Listing) { l.Cuisine = []string{"French"} }),
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey: "BB_vrconcierge",
		Filters: &entities.SearchFilters{
			Cuisine:      []string{"Italian", "Thai"},
			ExpenseLevel: []string{"$$"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	for _, r := range resp.Results {
		assert.True(t, r.Cuisine[0] == "Italian" || r.Cuisine[0] == "Thai")
		assert.Equal(t, "$$", r.ExpenseLevel)
	}
}

func TestSearch_UnknownFilterValueMatchesNothing(t *testing.T) {
	catalog := []entities.Listing{
		listing("a", func(l *entities.Listing) { l.Cuisine = []string{"Italian"} }),
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey:  "BB_vrconcierge",
		Filters: &entities.SearchFilters{Cuisine: []string{"Martian"}},
	})
	require.NoError(t, err)

	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Results)
}

func TestSearch_FacetsComputedBeforePagination(t *testing.T) {
	catalog := make([]entities.Listing, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		catalog = append(catalog, listing(id, func(l *entities.Listing) {
			l.Cuisine = []string{"Italian", "Pizza"}
			l.MealsServed = []string{"Dinner"}
		}))
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey:     "BB_vrconcierge",
		Pagination: &entities.SearchPagination{Page: 1, PerPage: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Total)
	assert.Len(t, resp.Results, 2)

	// Facet counts describe all five filtered listings, not the page slice:
	// 5 listings x 2 cuisine values = one count of 5 per value.
	pairs := 0
	for _, item := range resp.Facets.Cuisine {
		pairs += item.Count
	}
	assert.Equal(t, 10, pairs)
	for _, item := range resp.Facets.MealsServed {
		assert.Equal(t, 5, item.Count)
	}
}

func TestSearch_FacetOrderingDescendingStableTies(t *testing.T) {
	catalog := []entities.Listing{
		listing("a", func(l *entities.Listing) { l.Cuisine = []string{"Thai", "Italian"} }),
		listing("b", func(l *entities.Listing) { l.Cuisine = []string{"Italian"} }),
		listing("c", func(l *entities.Listing) { l.Cuisine = []string{"French"} }),
	}

	svc := NewSearchService()
	first, err := svc.Search(catalog, &entities.SearchRequest{OrgKey: "BB_vrconcierge"})
	require.NoError(t, err)
	second, err := svc.Search(catalog, &entities.SearchRequest{OrgKey: "BB_vrconcierge"})
	require.NoError(t, err)

	require.Len(t, first.Facets.Cuisine, 3)
	assert.Equal(t, "Italian", first.Facets.Cuisine[0].Value)
	assert.Equal(t, 2, first.Facets.Cuisine[0].Count)
	// Thai and French tie at 1; discovery order breaks the tie the same
	// way on every run.
	assert.Equal(t, "Thai", first.Facets.Cuisine[1].Value)
	assert.Equal(t, "French", first.Facets.Cuisine[2].Value)
	assert.Equal(t, first.Facets, second.Facets)
}

func TestSearch_TextMatchIsCaseInsensitiveContainment(t *testing.T) {
	catalog := []entities.Listing{
		listing("match", func(l *entities.Listing) { l.Cuisine = []string{"Italian"} }),
		listing("other", func(l *entities.Listing) { l.Cuisine = []string{"Thai"} }),
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey: "BB_vrconcierge",
		Query:  "italian",
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "match", resp.Results[0].ID)
}

func TestSearch_TextMatchCoversLocationFields(t *testing.T) {
	catalog := []entities.Listing{
		listing("hoboken", nil),
		listing("elsewhere", func(l *entities.Listing) { l.Location.City = "Newark" }),
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey: "BB_vrconcierge",
		Query:  "HOBOKEN",
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "hoboken", resp.Results[0].ID)
}

func TestSearch_LocationFiltersAreExactMatch(t *testing.T) {
	catalog := []entities.Listing{
		listing("hoboken", func(l *entities.Listing) { l.Location.Neighbourhood = "Waterfront" }),
		listing("newark", func(l *entities.Listing) { l.Location.City = "Newark" }),
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey: "BB_vrconcierge",
		Filters: &entities.SearchFilters{
			Country: "United States",
			Region:  "New Jersey",
			City:    "Hoboken",
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "hoboken", resp.Results[0].ID)

	// Case differs: exact match keeps nothing.
	resp, err = NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey:  "BB_vrconcierge",
		Filters: &entities.SearchFilters{City: "hoboken"},
	})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
}

func TestSearch_FeaturedGate(t *testing.T) {
	featured := true
	catalog := []entities.Listing{
		listing("plain", nil),
		listing("starred", func(l *entities.Listing) { l.IsFeatured = true }),
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey:  "BB_vrconcierge",
		Filters: &entities.SearchFilters{IsFeatured: &featured},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "starred", resp.Results[0].ID)
}

func TestSearch_PaginationClampsAndOverruns(t *testing.T) {
	catalog := make([]entities.Listing, 0, 7)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		catalog = append(catalog, listing(id, nil))
	}
	svc := NewSearchService()

	cases := []struct {
		name       string
		pagination *entities.SearchPagination
		wantPer    int
		wantLen    int
		wantPage   int
	}{
		{"zero per_page falls back to default", &entities.SearchPagination{Page: 1, PerPage: 0}, 20, 7, 1},
		{"negative per_page falls back to default", &entities.SearchPagination{Page: 1, PerPage: -3}, 20, 7, 1},
		{"huge per_page clamps to 100", &entities.SearchPagination{Page: 1, PerPage: 1000}, 100, 7, 1},
		{"page past the end is empty, not an error", &entities.SearchPagination{Page: 9, PerPage: 2}, 2, 0, 9},
		{"non-positive page defaults to 1", &entities.SearchPagination{Page: 0, PerPage: 3}, 3, 3, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.Search(catalog, &entities.SearchRequest{
				OrgKey:     "BB_vrconcierge",
				Pagination: tc.pagination,
			})
			require.NoError(t, err)
			assert.Equal(t, 7, resp.Total)
			assert.Equal(t, tc.wantPer, resp.PerPage)
			assert.Equal(t, tc.wantPage, resp.Page)
			assert.Len(t, resp.Results, tc.wantLen)
		})
	}
}

func TestSearch_SortStabilityAndReversal(t *testing.T) {
	catalog := []entities.Listing{
		listing("a", func(l *entities.Listing) { l.SortRating = 7.0 }),
		listing("b", func(l *entities.Listing) { l.SortRating = 9.0 }),
		listing("c", func(l *entities.Listing) { l.SortRating = 7.0 }),
		listing("d", func(l *entities.Listing) { l.SortRating = 8.5 }),
	}
	svc := NewSearchService()

	desc := &entities.SearchRequest{
		OrgKey: "BB_vrconcierge",
		Sort:   &entities.SearchSort{Field: "sort_rating", Order: "desc"},
	}
	first, err := svc.Search(catalog, desc)
	require.NoError(t, err)
	second, err := svc.Search(catalog, desc)
	require.NoError(t, err)

	assert.Equal(t, ids(first.Results), ids(second.Results))
	// Equal ratings keep filtered order: a before c.
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(first.Results))

	asc, err := svc.Search(catalog, &entities.SearchRequest{
		OrgKey: "BB_vrconcierge",
		Sort:   &entities.SearchSort{Field: "sort_rating", Order: "asc"},
	})
	require.NoError(t, err)

	descRatings := ratings(first.Results)
	ascRatings := ratings(asc.Results)
	for i := range descRatings {
		assert.Equal(t, descRatings[i], ascRatings[len(ascRatings)-1-i])
	}
}

func TestSearch_DefaultSortIsRatingDescending(t *testing.T) {
	catalog := []entities.Listing{
		listing("low", func(l *entities.Listing) { l.SortRating = 2.0 }),
		listing("high", func(l *entities.Listing) { l.SortRating = 9.9 }),
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{OrgKey: "BB_vrconcierge"})
	require.NoError(t, err)

	assert.Equal(t, []string{"high", "low"}, ids(resp.Results))
}

func TestSearch_UnknownSortFieldKeepsFilteredOrder(t *testing.T) {
	catalog := []entities.Listing{
		listing("first", func(l *entities.Listing) { l.SortRating = 1.0 }),
		listing("second", func(l *entities.Listing) { l.SortRating = 9.0 }),
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey: "BB_vrconcierge",
		Sort:   &entities.SearchSort{Field: "sort_popularity", Order: "desc"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, ids(resp.Results))
}

func TestSearch_TitleSortIsLexical(t *testing.T) {
	catalog := []entities.Listing{
		listing("z", func(l *entities.Listing) { l.SortTitle = "Zafferano" }),
		listing("a", func(l *entities.Listing) { l.SortTitle = "Amanda's" }),
		listing("m", func(l *entities.Listing) { l.SortTitle = "Moran's" }),
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey: "BB_vrconcierge",
		Sort:   &entities.SearchSort{Field: "sort_title", Order: "asc"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "m", "z"}, ids(resp.Results))
}

func TestSearch_DistanceSortOrdersByProximity(t *testing.T) {
	catalog := []entities.Listing{
		listing("far", func(l *entities.Listing) {
			l.Location.Lat, l.Location.Lng = 34.0522, -118.2437 // Los Angeles
		}),
		listing("near", func(l *entities.Listing) {
			l.Location.Lat, l.Location.Lng = 40.7357, -74.0286 // Hoboken
		}),
		listing("mid", func(l *entities.Listing) {
			l.Location.Lat, l.Location.Lng = 39.9526, -75.1652 // Philadelphia
		}),
	}

	origin := &entities.GeoPoint{Lat: 40.7128, Lng: -74.0060} // Manhattan
	svc := NewSearchService()

	asc, err := svc.Search(catalog, &entities.SearchRequest{
		OrgKey:   "BB_vrconcierge",
		Sort:     &entities.SearchSort{Field: SortFieldDistance, Order: "asc"},
		Location: origin,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"near", "mid", "far"}, ids(asc.Results))

	desc, err := svc.Search(catalog, &entities.SearchRequest{
		OrgKey:   "BB_vrconcierge",
		Sort:     &entities.SearchSort{Field: SortFieldDistance, Order: "desc"},
		Location: origin,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"far", "mid", "near"}, ids(desc.Results))
}

func TestSearch_DistanceSortWithoutOriginFailsFast(t *testing.T) {
	catalog := []entities.Listing{listing("a", nil)}

	_, err := NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey: "BB_vrconcierge",
		Sort:   &entities.SearchSort{Field: SortFieldDistance, Order: "asc"},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestSearch_EndToEndScenario(t *testing.T) {
	catalog := []entities.Listing{
		listing("A", func(l *entities.Listing) {
			l.Cuisine = []string{"Italian"}
			l.ExpenseLevel = "$$"
			l.SortRating = 9.0
		}),
		listing("B", func(l *entities.Listing) {
			l.Cuisine = []string{"Thai"}
			l.ExpenseLevel = "$$$"
			l.SortRating = 7.5
		}),
		listing("C", func(l *entities.Listing) {
			l.IsActive = false
			l.Cuisine = []string{"Italian"}
			l.ExpenseLevel = "$$"
			l.SortRating = 10.0
		}),
	}

	resp, err := NewSearchService().Search(catalog, &entities.SearchRequest{
		OrgKey:  "BB_vrconcierge",
		Filters: &entities.SearchFilters{Cuisine: []string{"Italian"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "A", resp.Results[0].ID)
	assert.Equal(t, []entities.FacetItem{{Value: "Italian", Count: 1}}, resp.Facets.Cuisine)
}

func TestSearch_DoesNotMutateCatalog(t *testing.T) {
	catalog := []entities.Listing{
		listing("a", func(l *entities.Listing) { l.SortRating = 1.0 }),
		listing("b", func(l *entities.Listing) { l.SortRating = 9.0 }),
	}

	_, err := NewSearchService().Search(catalog, &entities.SearchRequest{OrgKey: "BB_vrconcierge"})
	require.NoError(t, err)

	assert.Equal(t, "a", catalog[0].ID)
	assert.Equal(t, "b", catalog[1].ID)
}

func TestFacets_CatalogWideSkipsInactive(t *testing.T) {
	catalog := []entities.Listing{
		listing("a", func(l *entities.Listing) { l.Cuisine = []string{"Italian"} }),
		listing("b", func(l *entities.Listing) {
			l.IsActive = false
			l.Cuisine = []string{"Italian"}
		}),
	}

	facets := NewSearchService().Facets(catalog)

	require.Len(t, facets.Cuisine, 1)
	assert.Equal(t, 1, facets.Cuisine[0].Count)
}

func ids(listings []entities.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func ratings(listings []entities.Listing) []float64 {
	out := make([]float64, len(listings))
	for i, l := range listings {
		out[i] = l.SortRating
	}
	return out
}
