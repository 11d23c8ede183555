package entities

// SearchRequest is the wire shape of a search call. OrgKey is the only
// required field; everything else narrows, orders or slices the result set.
type SearchRequest struct {
	OrgKey     string            `json:"org_key"`
	PostType   string            `json:"post_type,omitempty"`
	Query      string            `json:"query,omitempty"`
	Filters    *SearchFilters    `json:"filters,omitempty"`
	Sort       *SearchSort       `json:"sort,omitempty"`
	Pagination *SearchPagination `json:"pagination,omitempty"`

	// Location is the geo-origin for distance sorting. It is required
	// whenever Sort.Field is "distance" and ignored otherwise.
	Location *GeoPoint `json:"location,omitempty"`
}

// SearchFilters narrows the catalog. The single-valued location fields are
// AND-combined with each other and with every other filter; each
// multi-valued set matches a listing when the listing carries any of the
// requested values (OR within the set).
type SearchFilters struct {
	Country       string   `json:"country,omitempty"`
	Region        string   `json:"region,omitempty"`
	City          string   `json:"city,omitempty"`
	Neighbourhood string   `json:"neighbourhood,omitempty"`
	Cuisine       []string `json:"cuisine,omitempty"`
	ExpenseLevel  []string `json:"expense_level,omitempty"`
	MealsServed   []string `json:"meals_served,omitempty"`
	Features      []string `json:"features,omitempty"`
	IsFeatured    *bool    `json:"is_featured,omitempty"`
}

// SearchSort selects the ordering of the filtered set.
type SearchSort struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// SearchPagination selects one page of the sorted set.
type SearchPagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FacetItem is one value of a multi-valued attribute together with the
// number of listings in the filtered, unpaginated result set carrying it.
type FacetItem struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SearchFacets groups facet counts per filterable category. Counts always
// reflect the filtered set, not what-if-removed populations.
type SearchFacets struct {
	Cuisine      []FacetItem `json:"cuisine"`
	ExpenseLevel []FacetItem `json:"expense_level"`
	MealsServed  []FacetItem `json:"meals_served"`
	Features     []FacetItem `json:"features"`
}

// SearchResponse is one page of results plus the pre-pagination total and
// the facet counts over the whole filtered set.
type SearchResponse struct {
	Results []Listing    `json:"results"`
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
	Facets  SearchFacets `json:"facets"`
}
