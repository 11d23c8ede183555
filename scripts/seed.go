package main

import (
	"context"
	"log"
	"os"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/bebond/concierge-search/internal/adapters/catalog/memory"
	"github.com/bebond/concierge-search/internal/domain/entities"
	"github.com/bebond/concierge-search/internal/infrastructure/clients/postgres"
	"github.com/bebond/concierge-search/pkg/config"
)

const createListingsTable = `
CREATE TABLE IF NOT EXISTS listings (
	id              TEXT PRIMARY KEY,
	org_key         TEXT NOT NULL,
	post_type       TEXT NOT NULL,
	title           TEXT NOT NULL,
	excerpt         TEXT NOT NULL DEFAULT '',
	content_html    TEXT NOT NULL DEFAULT '',
	url             TEXT NOT NULL DEFAULT '',
	featured_image  TEXT NOT NULL DEFAULT '',
	country         TEXT NOT NULL DEFAULT '',
	region          TEXT NOT NULL DEFAULT '',
	city            TEXT NOT NULL DEFAULT '',
	neighbourhood   TEXT,
	street          TEXT NOT NULL DEFAULT '',
	zip             TEXT NOT NULL DEFAULT '',
	lat             DOUBLE PRECISION NOT NULL DEFAULT 0,
	lng             DOUBLE PRECISION NOT NULL DEFAULT 0,
	phone           TEXT NOT NULL DEFAULT '',
	email           TEXT NOT NULL DEFAULT '',
	website         TEXT NOT NULL DEFAULT '',
	facebook        TEXT,
	reservation_url TEXT,
	sort_rating     DOUBLE PRECISION NOT NULL DEFAULT 0,
	sort_expense    DOUBLE PRECISION NOT NULL DEFAULT 0,
	sort_title      TEXT NOT NULL DEFAULT '',
	sort_date       TEXT NOT NULL DEFAULT '',
	cuisine         TEXT[] NOT NULL DEFAULT '{}',
	meals_served    TEXT[] NOT NULL DEFAULT '{}',
	features        TEXT[] NOT NULL DEFAULT '{}',
	payment_methods TEXT[] NOT NULL DEFAULT '{}',
	dress_code      TEXT[] NOT NULL DEFAULT '{}',
	alcohol_policy  TEXT[] NOT NULL DEFAULT '{}',
	parking         TEXT[] NOT NULL DEFAULT '{}',
	awards          TEXT[] NOT NULL DEFAULT '{}',
	is_featured     BOOLEAN NOT NULL DEFAULT FALSE,
	is_active       BOOLEAN NOT NULL DEFAULT TRUE,
	expense_level   TEXT NOT NULL DEFAULT '',
	categories      INTEGER[] NOT NULL DEFAULT '{}',
	category_names  TEXT[] NOT NULL DEFAULT '{}',
	tags            TEXT[] NOT NULL DEFAULT '{}',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_listings_org_post ON listings (org_key, post_type);
CREATE INDEX IF NOT EXISTS idx_listings_location ON listings (org_key, country, region, city);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()
	db := goqu.Dialect("postgres").DB(pgClient.DB())

	if _, err := pgClient.DB().ExecContext(ctx, createListingsTable); err != nil {
		log.Fatalf("Failed to create listings table: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating listings before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, "TRUNCATE TABLE listings"); err != nil {
			log.Fatalf("Failed to reset listings: %v", err)
		}
	}

	seeded := 0
	for _, l := range memory.Fixtures() {
		if err := insertListing(ctx, db, l); err != nil {
			log.Printf("Failed to seed listing %s: %v", l.Title, err)
			continue
		}
		seeded++
	}

	log.Printf("Seeding complete: %d listings", seeded)
}

func insertListing(ctx context.Context, db *goqu.Database, l entities.Listing) error {
	categories := make(pq.Int64Array, len(l.Categories))
	for i, v := range l.Categories {
		categories[i] = int64(v)
	}

	record := goqu.Record{
		"id":              l.ID,
		"org_key":         l.OrgKey,
		"post_type":       l.PostType,
		"title":           l.Title,
		"excerpt":         l.Excerpt,
		"content_html":    l.ContentHTML,
		"url":             l.URL,
		"featured_image":  l.FeaturedImage,
		"country":         l.Location.Country,
		"region":          l.Location.Region,
		"city":            l.Location.City,
		"neighbourhood":   nullable(l.Location.Neighbourhood),
		"street":          l.Location.Street,
		"zip":             l.Location.Zip,
		"lat":             l.Location.Lat,
		"lng":             l.Location.Lng,
		"phone":           l.Contact.Phone,
		"email":           l.Contact.Email,
		"website":         l.Contact.Website,
		"facebook":        nullable(l.Contact.Facebook),
		"reservation_url": nullable(l.Contact.ReservationURL),
		"sort_rating":     l.SortRating,
		"sort_expense":    l.SortExpense,
		"sort_title":      l.SortTitle,
		"sort_date":       l.SortDate,
		"cuisine":         pq.Array(l.Cuisine),
		"meals_served":    pq.Array(l.MealsServed),
		"features":        pq.Array(l.Features),
		"payment_methods": pq.Array(l.PaymentMethods),
		"dress_code":      pq.Array(l.DressCode),
		"alcohol_policy":  pq.Array(l.AlcoholPolicy),
		"parking":         pq.Array(l.Parking),
		"awards":          pq.Array(l.Awards),
		"is_featured":     l.IsFeatured,
		"is_active":       l.IsActive,
		"expense_level":   l.ExpenseLevel,
		"categories":      categories,
		"category_names":  pq.Array(l.CategoryNames),
		"tags":            pq.Array(l.Tags),
		"created_at":      l.CreatedAt,
		"updated_at":      l.UpdatedAt,
	}

	query, args, err := db.Insert("listings").
		Rows(record).
		OnConflict(goqu.DoUpdate("id", record)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, query, args...)
	return err
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
