package postgres

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/bebond/concierge-search/internal/domain/entities"
	"github.com/bebond/concierge-search/internal/domain/providers"
	pgclient "github.com/bebond/concierge-search/internal/infrastructure/clients/postgres"
	apperrors "github.com/bebond/concierge-search/pkg/errors"
)

const listingsTable = "listings"

var listingColumns = []interface{}{
	"id", "org_key", "post_type", "title", "excerpt", "content_html",
	"url", "featured_image",
	"country", "region", "city", "neighbourhood", "street", "zip", "lat", "lng",
	"phone", "email", "website", "facebook", "reservation_url",
	"sort_rating", "sort_expense", "sort_title", "sort_date",
	"cuisine", "meals_served", "features", "payment_methods",
	"dress_code", "alcohol_policy", "parking", "awards",
	"is_featured", "is_active", "expense_level",
	"categories", "category_names", "tags",
	"created_at", "updated_at",
}

// Adapter implements CatalogProvider and LocationProvider over a
// PostgreSQL listings table. This is the "remote" backend: the canonical
// catalog lives outside the process and every call reads a fresh
// snapshot.
type Adapter struct {
	client *pgclient.Client
	db     *goqu.Database
}

var (
	_ providers.CatalogProvider  = (*Adapter)(nil)
	_ providers.LocationProvider = (*Adapter)(nil)
)

// NewAdapter creates a Postgres-backed catalog adapter.
func NewAdapter(client *pgclient.Client) *Adapter {
	return &Adapter{
		client: client,
		db:     goqu.Dialect("postgres").DB(client.DB()),
	}
}

// Listings loads the organization's catalog, optionally narrowed to one
// post type. Provider failures surface as EXTERNAL errors so the
// transport can distinguish them from caller mistakes.
func (a *Adapter) Listings(ctx context.Context, orgKey, postType string) ([]entities.Listing, error) {
	ds := a.db.From(listingsTable).
		Select(listingColumns...).
		Where(goqu.Ex{"org_key": orgKey}).
		Order(goqu.I("id").Asc())
	if postType != "" {
		ds = ds.Where(goqu.Ex{"post_type": postType})
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build listings query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to load listings", err)
	}
	defer rows.Close()

	var listings []entities.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, apperrors.NewExternalError("failed to scan listing row", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewExternalError("failed to iterate listings", err)
	}

	return listings, nil
}

// Hierarchy aggregates the organization's active listings into the
// location tree. Neighbourhood counts come from the same aggregate, so
// they are as authoritative as every other level.
func (a *Adapter) Hierarchy(ctx context.Context, orgKey string) (*entities.LocationHierarchy, error) {
	query, args, err := a.db.From(listingsTable).
		Select("country", "region", "city", "neighbourhood", goqu.COUNT("*").As("count")).
		Where(goqu.Ex{"org_key": orgKey, "is_active": true}).
		GroupBy("country", "region", "city", "neighbourhood").
		Order(goqu.I("country").Asc(), goqu.I("region").Asc(), goqu.I("city").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build hierarchy query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to load location hierarchy", err)
	}
	defer rows.Close()

	h := &entities.LocationHierarchy{Countries: make(map[string]*entities.CountryNode)}
	for rows.Next() {
		var country, region, city string
		var neighbourhood sql.NullString
		var count int
		if err := rows.Scan(&country, &region, &city, &neighbourhood, &count); err != nil {
			return nil, apperrors.NewExternalError("failed to scan hierarchy row", err)
		}
		addToHierarchy(h, country, region, city, neighbourhood.String, count)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewExternalError("failed to iterate hierarchy", err)
	}

	return h, nil
}

func addToHierarchy(h *entities.LocationHierarchy, country, region, city, neighbourhood string, count int) {
	c := h.Countries[country]
	if c == nil {
		c = &entities.CountryNode{Regions: make(map[string]*entities.RegionNode)}
		h.Countries[country] = c
	}
	c.Count += count

	r := c.Regions[region]
	if r == nil {
		r = &entities.RegionNode{Cities: make(map[string]*entities.CityNode)}
		c.Regions[region] = r
	}
	r.Count += count

	ct := r.Cities[city]
	if ct == nil {
		ct = &entities.CityNode{Neighbourhoods: make(map[string]int)}
		r.Cities[city] = ct
	}
	ct.Count += count

	if neighbourhood != "" {
		ct.Neighbourhoods[neighbourhood] += count
	}
}

func scanListing(rows *sql.Rows) (entities.Listing, error) {
	var l entities.Listing
	var neighbourhood, facebook, reservationURL sql.NullString
	var categories pq.Int64Array

	err := rows.Scan(
		&l.ID, &l.OrgKey, &l.PostType, &l.Title, &l.Excerpt, &l.ContentHTML,
		&l.URL, &l.FeaturedImage,
		&l.Location.Country, &l.Location.Region, &l.Location.City, &neighbourhood,
		&l.Location.Street, &l.Location.Zip, &l.Location.Lat, &l.Location.Lng,
		&l.Contact.Phone, &l.Contact.Email, &l.Contact.Website, &facebook, &reservationURL,
		&l.SortRating, &l.SortExpense, &l.SortTitle, &l.SortDate,
		pq.Array(&l.Cuisine), pq.Array(&l.MealsServed), pq.Array(&l.Features), pq.Array(&l.PaymentMethods),
		pq.Array(&l.DressCode), pq.Array(&l.AlcoholPolicy), pq.Array(&l.Parking), pq.Array(&l.Awards),
		&l.IsFeatured, &l.IsActive, &l.ExpenseLevel,
		&categories, pq.Array(&l.CategoryNames), pq.Array(&l.Tags),
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return entities.Listing{}, err
	}

	l.Location.Neighbourhood = neighbourhood.String
	l.Contact.Facebook = facebook.String
	l.Contact.ReservationURL = reservationURL.String
	l.Categories = make([]int, len(categories))
	for i, v := range categories {
		l.Categories[i] = int(v)
	}

	return l, nil
}
