package typesense

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/typesense/typesense-go/v2/typesense"

	"github.com/bebond/concierge-search/pkg/config"
	"github.com/bebond/concierge-search/pkg/retry"
)

// Client represents a Typesense client.
type Client struct {
	client *typesense.Client
}

// NewClient creates a Typesense client, waiting for a healthy node with
// exponential backoff.
func NewClient(cfg *config.TypesenseConfig) (*Client, error) {
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)

	err := retry.Do(
		context.Background(),
		retry.DefaultConfig(),
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_, err := client.Health(ctx, 2*time.Second)
			return err
		},
		func(attempt int, err error, nextDelay time.Duration) {
			log.Warn().Err(err).Int("attempt", attempt).Dur("next_delay", nextDelay).
				Msg("typesense connection failed, retrying")
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Typesense after retries: %w", err)
	}

	log.Info().Msg("connected to Typesense")
	return &Client{client: client}, nil
}

// Client returns the underlying Typesense client.
func (c *Client) Client() *typesense.Client {
	return c.client
}
