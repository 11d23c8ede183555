package entities

import "time"

// Listing represents one searchable directory record (restaurant, winery,
// hotel and so on). Listings are read-only: the catalog provider hands the
// engine an immutable snapshot and nothing in the search path mutates it.
type Listing struct {
	ID            string `json:"id" db:"id"`
	OrgKey        string `json:"org_key" db:"org_key"`
	PostType      string `json:"post_type" db:"post_type"`
	Title         string `json:"title" db:"title"`
	Excerpt       string `json:"excerpt" db:"excerpt"`
	ContentHTML   string `json:"content_html" db:"content_html"`
	URL           string `json:"url" db:"url"`
	FeaturedImage string `json:"featured_image" db:"featured_image"`

	Location ListingLocation `json:"location" db:"-"`
	Contact  Contact         `json:"contact" db:"-"`

	// Rankable attributes. SortDate is kept as the ISO-8601 string the
	// upstream CMS emits so it sorts lexically.
	SortRating  float64 `json:"sort_rating" db:"sort_rating"`
	SortExpense float64 `json:"sort_expense" db:"sort_expense"`
	SortTitle   string  `json:"sort_title" db:"sort_title"`
	SortDate    string  `json:"sort_date" db:"sort_date"`

	Cuisine        []string `json:"cuisine" db:"-"`
	MealsServed    []string `json:"meals_served" db:"-"`
	Features       []string `json:"features" db:"-"`
	PaymentMethods []string `json:"payment_methods" db:"-"`
	DressCode      []string `json:"dress_code" db:"-"`
	AlcoholPolicy  []string `json:"alcohol_policy" db:"-"`
	Parking        []string `json:"parking" db:"-"`
	Awards         []string `json:"awards" db:"-"`

	IsFeatured bool `json:"is_featured" db:"is_featured"`
	IsActive   bool `json:"is_active" db:"is_active"`

	// ExpenseLevel is the bucketed tier label ("$", "$$", ...), distinct
	// from the numeric SortExpense.
	ExpenseLevel string `json:"expense_level" db:"expense_level"`

	Categories    []int    `json:"categories" db:"-"`
	CategoryNames []string `json:"category_names" db:"-"`
	Tags          []string `json:"tags" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ListingLocation is the hierarchical address embedded in every listing.
// Neighbourhood is the only optional level.
type ListingLocation struct {
	Country       string  `json:"country" db:"country"`
	Region        string  `json:"region" db:"region"`
	City          string  `json:"city" db:"city"`
	Neighbourhood string  `json:"neighbourhood,omitempty" db:"neighbourhood"`
	Street        string  `json:"street" db:"street"`
	Zip           string  `json:"zip" db:"zip"`
	Lat           float64 `json:"lat" db:"lat"`
	Lng           float64 `json:"lng" db:"lng"`
}

// Contact holds the ways a visitor can reach a listing.
type Contact struct {
	Phone          string `json:"phone" db:"phone"`
	Email          string `json:"email" db:"email"`
	Website        string `json:"website" db:"website"`
	Facebook       string `json:"facebook,omitempty" db:"facebook"`
	ReservationURL string `json:"reservation_url,omitempty" db:"reservation_url"`
}
