package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/bebond/concierge-search/pkg/config"
	"github.com/bebond/concierge-search/pkg/retry"
)

// Client represents a PostgreSQL database client.
type Client struct {
	db *sql.DB
}

// NewClient creates a PostgreSQL client, waiting for the database with
// exponential backoff.
func NewClient(cfg *config.DatabaseConfig) (*Client, error) {
	db, err := sql.Open("postgres", cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	err = retry.Do(
		context.Background(),
		retry.DefaultConfig(),
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return db.PingContext(ctx)
		},
		func(attempt int, err error, nextDelay time.Duration) {
			log.Warn().Err(err).Int("attempt", attempt).Dur("next_delay", nextDelay).
				Msg("postgres connection failed, retrying")
		},
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL after retries: %w", err)
	}

	log.Info().Msg("connected to PostgreSQL")
	return &Client{db: db}, nil
}

// DB returns the underlying database handle.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Close closes the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping verifies the connection to the database.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
