package memory

import (
	"time"

	"github.com/bebond/concierge-search/internal/domain/entities"
)

// Fixtures returns the sample catalog the memory backend serves by
// default. The data mirrors a small slice of the production directory:
// enough variety in location, cuisine and price level to exercise every
// filter and facet.
func Fixtures() []entities.Listing {
	created := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 11, 2, 16, 30, 0, 0, time.UTC)

	return []entities.Listing{
		{
			ID:            "rest-amandas",
			OrgKey:        "BB_vrconcierge",
			PostType:      "restaurant",
			Title:         "Amanda's",
			Excerpt:       "Elegant New American dining in a restored brownstone.",
			ContentHTML:   "<p>Elegant New American dining in a restored 1890s brownstone.</p>",
			URL:           "https://example.com/restaurants/amandas",
			FeaturedImage: "https://cdn.example.com/img/amandas.jpg",
			Location: entities.ListingLocation{
				Country: "United States", Region: "New Jersey", City: "Hoboken",
				Neighbourhood: "Uptown", Street: "908 Washington St", Zip: "07030",
				Lat: 40.7484, Lng: -74.0268,
			},
			Contact: entities.Contact{
				Phone: "201-798-0101", Email: "info@amandas.example.com",
				Website: "https://amandas.example.com", ReservationURL: "https://reserve.example.com/amandas",
			},
			SortRating: 9.2, SortExpense: 3, SortTitle: "amandas", SortDate: "2024-03-12",
			Cuisine:        []string{"New American"},
			MealsServed:    []string{"Dinner", "Brunch"},
			Features:       []string{"Outdoor Seating", "Private Dining"},
			PaymentMethods: []string{"Visa", "Mastercard", "Amex"},
			DressCode:      []string{"Smart Casual"},
			AlcoholPolicy:  []string{"Full Bar"},
			Parking:        []string{"Street"},
			Awards:         []string{"Best Brunch 2024"},
			IsFeatured:     true, IsActive: true,
			ExpenseLevel:  "$$$",
			Categories:    []int{12},
			CategoryNames: []string{"Fine Dining"},
			Tags:          []string{"date-night"},
			CreatedAt:     created, UpdatedAt: updated,
		},
		{
			ID:       "rest-la-isola",
			OrgKey:   "BB_vrconcierge",
			PostType: "restaurant",
			Title:    "La Isola",
			Excerpt:  "Family-run trattoria with handmade pasta.",
			URL:      "https://example.com/restaurants/la-isola",
			Location: entities.ListingLocation{
				Country: "United States", Region: "New Jersey", City: "Hoboken",
				Neighbourhood: "Waterfront", Street: "104 Washington St", Zip: "07030",
				Lat: 40.7369, Lng: -74.0301,
			},
			Contact:    entities.Contact{Phone: "201-659-1230", Website: "https://laisola.example.com"},
			SortRating: 8.7, SortExpense: 2, SortTitle: "la isola", SortDate: "2024-05-01",
			Cuisine:       []string{"Italian"},
			MealsServed:   []string{"Lunch", "Dinner"},
			Features:      []string{"BYOB", "Kid Friendly"},
			AlcoholPolicy: []string{"BYOB"},
			Parking:       []string{"Street"},
			IsActive:      true,
			ExpenseLevel:  "$$",
			CategoryNames: []string{"Casual Dining"},
			CreatedAt:     created, UpdatedAt: updated,
		},
		{
			ID:       "rest-siri-thai",
			OrgKey:   "BB_vrconcierge",
			PostType: "restaurant",
			Title:    "Siri Thai Kitchen",
			Excerpt:  "Northern Thai classics and a long vegetarian menu.",
			URL:      "https://example.com/restaurants/siri-thai",
			Location: entities.ListingLocation{
				Country: "United States", Region: "New Jersey", City: "Jersey City",
				Street: "331 Grove St", Zip: "07302",
				Lat: 40.7195, Lng: -74.0430,
			},
			Contact:    entities.Contact{Phone: "201-435-9980"},
			SortRating: 8.1, SortExpense: 1, SortTitle: "siri thai kitchen", SortDate: "2024-06-20",
			Cuisine:       []string{"Thai"},
			MealsServed:   []string{"Lunch", "Dinner"},
			Features:      []string{"Vegetarian Friendly", "Takeout"},
			IsActive:      true,
			ExpenseLevel:  "$",
			CategoryNames: []string{"Casual Dining"},
			CreatedAt:     created, UpdatedAt: updated,
		},
		{
			ID:       "rest-blue-eyes",
			OrgKey:   "BB_vrconcierge",
			PostType: "restaurant",
			Title:    "Blue Eyes Steakhouse",
			Excerpt:  "Dry-aged steaks and a Sinatra-era dining room.",
			URL:      "https://example.com/restaurants/blue-eyes",
			Location: entities.ListingLocation{
				Country: "United States", Region: "New Jersey", City: "Hoboken",
				Neighbourhood: "Uptown", Street: "1200 Park Ave", Zip: "07030",
				Lat: 40.7512, Lng: -74.0282,
			},
			Contact:    entities.Contact{Phone: "201-420-4440", ReservationURL: "https://reserve.example.com/blue-eyes"},
			SortRating: 8.9, SortExpense: 4, SortTitle: "blue eyes steakhouse", SortDate: "2024-01-15",
			Cuisine:       []string{"Steakhouse", "New American"},
			MealsServed:   []string{"Dinner"},
			Features:      []string{"Full Bar", "Private Dining", "Live Music"},
			DressCode:     []string{"Business Casual"},
			AlcoholPolicy: []string{"Full Bar"},
			Parking:       []string{"Valet"},
			IsFeatured:    true, IsActive: true,
			ExpenseLevel:  "$$$$",
			CategoryNames: []string{"Fine Dining"},
			Tags:          []string{"steak", "date-night"},
			CreatedAt:     created, UpdatedAt: updated,
		},
		{
			ID:       "rest-taqueria-centro",
			OrgKey:   "BB_vrconcierge",
			PostType: "restaurant",
			Title:    "Taqueria Centro",
			Excerpt:  "Counter-service tacos off the light rail.",
			URL:      "https://example.com/restaurants/taqueria-centro",
			Location: entities.ListingLocation{
				Country: "United States", Region: "New Jersey", City: "Jersey City",
				Street: "190 Newark Ave", Zip: "07302",
				Lat: 40.7212, Lng: -74.0452,
			},
			SortRating: 7.8, SortExpense: 1, SortTitle: "taqueria centro", SortDate: "2024-08-02",
			Cuisine:      []string{"Mexican"},
			MealsServed:  []string{"Lunch", "Dinner", "Late Night"},
			Features:     []string{"Takeout", "Kid Friendly"},
			IsActive:     true,
			ExpenseLevel: "$",
			CreatedAt:    created, UpdatedAt: updated,
		},
		{
			ID:       "winery-ventimiglia",
			OrgKey:   "BB_vrconcierge",
			PostType: "winery",
			Title:    "Ventimiglia Vineyard",
			Excerpt:  "Estate-grown reds in the Skylands region.",
			URL:      "https://example.com/wineries/ventimiglia",
			Location: entities.ListingLocation{
				Country: "United States", Region: "New Jersey", City: "Wantage",
				Street: "101 Layton Rd", Zip: "07461",
				Lat: 41.2290, Lng: -74.6340,
			},
			SortRating: 8.4, SortExpense: 2, SortTitle: "ventimiglia vineyard", SortDate: "2024-04-18",
			Features:     []string{"Tastings", "Outdoor Seating"},
			IsActive:     true,
			ExpenseLevel: "$$",
			CreatedAt:    created, UpdatedAt: updated,
		},
		{
			ID:       "rest-osteria-roma",
			OrgKey:   "BB_vrconcierge",
			PostType: "restaurant",
			Title:    "Osteria Roma",
			Excerpt:  "Roman classics near the Trevi fountain.",
			URL:      "https://example.com/restaurants/osteria-roma",
			Location: entities.ListingLocation{
				Country: "Italy", Region: "Lazio", City: "Rome",
				Neighbourhood: "Trevi", Street: "Via delle Muratte 8", Zip: "00187",
				Lat: 41.9009, Lng: 12.4833,
			},
			SortRating: 9.0, SortExpense: 2, SortTitle: "osteria roma", SortDate: "2024-02-10",
			Cuisine:       []string{"Italian", "Roman"},
			MealsServed:   []string{"Lunch", "Dinner"},
			Features:      []string{"Outdoor Seating"},
			IsActive:      true,
			ExpenseLevel:  "$$",
			CategoryNames: []string{"Casual Dining"},
			CreatedAt:     created, UpdatedAt: updated,
		},
		{
			// Retired listing kept to verify the active gate end to end.
			ID:       "rest-closed-bistro",
			OrgKey:   "BB_vrconcierge",
			PostType: "restaurant",
			Title:    "Corner Bistro",
			Excerpt:  "Closed since 2025.",
			URL:      "https://example.com/restaurants/corner-bistro",
			Location: entities.ListingLocation{
				Country: "United States", Region: "New Jersey", City: "Hoboken",
				Neighbourhood: "Waterfront", Street: "2 Hudson Pl", Zip: "07030",
				Lat: 40.7355, Lng: -74.0295,
			},
			SortRating: 9.9, SortExpense: 2, SortTitle: "corner bistro", SortDate: "2023-09-30",
			Cuisine:      []string{"French"},
			MealsServed:  []string{"Dinner"},
			IsActive:     false,
			ExpenseLevel: "$$",
			CreatedAt:    created, UpdatedAt: updated,
		},
	}
}
