package services

import (
	"sort"
	"strings"

	"github.com/bebond/concierge-search/internal/domain/entities"
	apperrors "github.com/bebond/concierge-search/pkg/errors"
)

// Pagination bounds. A per_page outside [1, maxPerPage] is clamped, never
// rejected.
const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// SearchService is the query-resolution and faceting engine. It is
// stateless and safe for concurrent use: every call reads the supplied
// catalog snapshot and allocates fresh output.
type SearchService struct{}

// NewSearchService creates a new search engine.
func NewSearchService() *SearchService {
	return &SearchService{}
}

// Search filters the catalog, computes facet counts over the filtered set,
// sorts and returns one page. The catalog is never mutated. The only error
// condition is a distance sort requested without a geo-origin; malformed
// filter values narrow the result set instead of failing the request.
func (s *SearchService) Search(catalog []entities.Listing, req *entities.SearchRequest) (*entities.SearchResponse, error) {
	if req.Sort != nil && req.Sort.Field == SortFieldDistance && req.Location == nil {
		return nil, apperrors.NewValidationError("sort by distance requires a location origin")
	}

	results := make([]entities.Listing, 0, len(catalog))
	for _, l := range catalog {
		if l.IsActive {
			results = append(results, l)
		}
	}

	if q := strings.ToLower(strings.TrimSpace(req.Query)); q != "" {
		results = keep(results, func(l entities.Listing) bool {
			return matchesQuery(l, q)
		})
	}

	if f := req.Filters; f != nil {
		results = applyFilters(results, f)
	}

	// Facets are taken over the filtered set before sort and pagination
	// so counts describe the whole population behind Total.
	facets := buildFacets(results)
	total := len(results)

	sortListings(results, req.Sort, req.Location)

	page, perPage := normalizePagination(req.Pagination)
	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &entities.SearchResponse{
		Results: results[start:end],
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Facets:  facets,
	}, nil
}

// Facets computes catalog-wide facet counts over the active listings, as
// served by the facets endpoint.
func (s *SearchService) Facets(catalog []entities.Listing) entities.SearchFacets {
	active := make([]entities.Listing, 0, len(catalog))
	for _, l := range catalog {
		if l.IsActive {
			active = append(active, l)
		}
	}
	return buildFacets(active)
}

func applyFilters(results []entities.Listing, f *entities.SearchFilters) []entities.Listing {
	if f.Country != "" {
		results = keep(results, func(l entities.Listing) bool { return l.Location.Country == f.Country })
	}
	if f.Region != "" {
		results = keep(results, func(l entities.Listing) bool { return l.Location.Region == f.Region })
	}
	if f.City != "" {
		results = keep(results, func(l entities.Listing) bool { return l.Location.City == f.City })
	}
	if f.Neighbourhood != "" {
		results = keep(results, func(l entities.Listing) bool { return l.Location.Neighbourhood == f.Neighbourhood })
	}

	if len(f.Cuisine) > 0 {
		results = keep(results, func(l entities.Listing) bool { return intersects(l.Cuisine, f.Cuisine) })
	}
	if len(f.ExpenseLevel) > 0 {
		results = keep(results, func(l entities.Listing) bool { return contains(f.ExpenseLevel, l.ExpenseLevel) })
	}
	if len(f.MealsServed) > 0 {
		results = keep(results, func(l entities.Listing) bool { return intersects(l.MealsServed, f.MealsServed) })
	}
	if len(f.Features) > 0 {
		results = keep(results, func(l entities.Listing) bool { return intersects(l.Features, f.Features) })
	}

	if f.IsFeatured != nil && *f.IsFeatured {
		results = keep(results, func(l entities.Listing) bool { return l.IsFeatured })
	}

	return results
}

// matchesQuery reports whether the lower-cased query appears as a
// substring of the listing's searchable text. No tokenization, no ranking.
func matchesQuery(l entities.Listing, loweredQuery string) bool {
	var b strings.Builder
	b.WriteString(l.Title)
	b.WriteByte(' ')
	b.WriteString(l.Excerpt)
	for _, c := range l.Cuisine {
		b.WriteByte(' ')
		b.WriteString(c)
	}
	for _, f := range l.Features {
		b.WriteByte(' ')
		b.WriteString(f)
	}
	b.WriteByte(' ')
	b.WriteString(l.Location.City)
	b.WriteByte(' ')
	b.WriteString(l.Location.Region)
	b.WriteByte(' ')
	b.WriteString(l.Location.Neighbourhood)

	return strings.Contains(strings.ToLower(b.String()), loweredQuery)
}

// buildFacets tallies value frequencies per category across the filtered
// set. Items are ordered by descending count; ties keep first-discovery
// order so repeated runs over the same catalog are identical.
func buildFacets(results []entities.Listing) entities.SearchFacets {
	cuisine := newFacetTally()
	expense := newFacetTally()
	meals := newFacetTally()
	features := newFacetTally()

	for _, l := range results {
		for _, v := range l.Cuisine {
			cuisine.add(v)
		}
		expense.add(l.ExpenseLevel)
		for _, v := range l.MealsServed {
			meals.add(v)
		}
		for _, v := range l.Features {
			features.add(v)
		}
	}

	return entities.SearchFacets{
		Cuisine:      cuisine.items(),
		ExpenseLevel: expense.items(),
		MealsServed:  meals.items(),
		Features:     features.items(),
	}
}

type facetTally struct {
	counts map[string]int
	order  []string
}

func newFacetTally() *facetTally {
	return &facetTally{counts: make(map[string]int)}
}

func (t *facetTally) add(value string) {
	if value == "" {
		return
	}
	if _, seen := t.counts[value]; !seen {
		t.order = append(t.order, value)
	}
	t.counts[value]++
}

func (t *facetTally) items() []entities.FacetItem {
	items := make([]entities.FacetItem, 0, len(t.order))
	for _, v := range t.order {
		items = append(items, entities.FacetItem{Value: v, Count: t.counts[v]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	return items
}

func normalizePagination(p *entities.SearchPagination) (page, perPage int) {
	page = 1
	perPage = defaultPerPage
	if p == nil {
		return page, perPage
	}
	if p.Page >= 1 {
		page = p.Page
	}
	if p.PerPage >= 1 {
		perPage = p.PerPage
		if perPage > maxPerPage {
			perPage = maxPerPage
		}
	}
	return page, perPage
}

func keep(listings []entities.Listing, pred func(entities.Listing) bool) []entities.Listing {
	kept := listings[:0]
	for _, l := range listings {
		if pred(l) {
			kept = append(kept, l)
		}
	}
	return kept
}

func intersects(have, want []string) bool {
	for _, w := range want {
		if contains(have, w) {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
