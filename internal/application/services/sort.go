package services

import (
	"math"
	"sort"
	"strings"

	"github.com/bebond/concierge-search/internal/domain/entities"
)

// SortFieldDistance orders results by great-circle distance from the
// request's geo-origin.
const SortFieldDistance = "distance"

const (
	defaultSortField = "sort_rating"
	orderAsc         = "asc"
	orderDesc        = "desc"
)

type fieldKind int

const (
	fieldUnknown fieldKind = iota
	fieldNumeric
	fieldString
)

// sortFields is the declared registry of sortable fields. Unknown fields
// resolve to a no-op comparator, so a malformed sort degrades to the
// filtered order instead of failing the request.
var sortFields = map[string]fieldKind{
	"sort_rating":  fieldNumeric,
	"sort_expense": fieldNumeric,
	"sort_title":   fieldString,
	"sort_date":    fieldString,
}

func numericValue(l *entities.Listing, field string) float64 {
	switch field {
	case "sort_rating":
		return l.SortRating
	case "sort_expense":
		return l.SortExpense
	}
	return 0
}

func stringValue(l *entities.Listing, field string) string {
	switch field {
	case "sort_title":
		return l.SortTitle
	case "sort_date":
		return l.SortDate
	}
	return ""
}

// sortListings orders the filtered set in place. Sorting is stable: equal
// keys keep their filtered order. The distance guard has already run by
// the time this is called.
func sortListings(listings []entities.Listing, spec *entities.SearchSort, origin *entities.GeoPoint) {
	field := defaultSortField
	order := orderDesc
	if spec != nil {
		if spec.Field != "" {
			field = spec.Field
		}
		if spec.Order == orderAsc {
			order = orderAsc
		}
	}

	if field == SortFieldDistance {
		sortByDistance(listings, origin, order)
		return
	}

	switch sortFields[field] {
	case fieldNumeric:
		sort.SliceStable(listings, func(i, j int) bool {
			a, b := numericValue(&listings[i], field), numericValue(&listings[j], field)
			if order == orderAsc {
				return a < b
			}
			return a > b
		})
	case fieldString:
		sort.SliceStable(listings, func(i, j int) bool {
			cmp := strings.Compare(stringValue(&listings[i], field), stringValue(&listings[j], field))
			if order == orderAsc {
				return cmp < 0
			}
			return cmp > 0
		})
	}
}

func sortByDistance(listings []entities.Listing, origin *entities.GeoPoint, order string) {
	distances := make([]float64, len(listings))
	for i, l := range listings {
		distances[i] = haversineMiles(origin.Lat, origin.Lng, l.Location.Lat, l.Location.Lng)
	}

	indexes := make([]int, len(listings))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(i, j int) bool {
		if order == orderAsc {
			return distances[indexes[i]] < distances[indexes[j]]
		}
		return distances[indexes[i]] > distances[indexes[j]]
	})

	ordered := make([]entities.Listing, len(listings))
	for i, idx := range indexes {
		ordered[i] = listings[idx]
	}
	copy(listings, ordered)
}

// haversineMiles computes the great-circle distance between two points.
// Earth radius in miles matches the upstream search service contract.
func haversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusMiles = 3959.0

	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
