package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bebond/concierge-search/internal/adapters/catalog/memory"
	catalogpg "github.com/bebond/concierge-search/internal/adapters/catalog/postgres"
	"github.com/bebond/concierge-search/internal/adapters/search"
	"github.com/bebond/concierge-search/internal/domain/providers"
	"github.com/bebond/concierge-search/internal/infrastructure/clients/postgres"
	"github.com/bebond/concierge-search/internal/infrastructure/clients/typesense"
	"github.com/bebond/concierge-search/internal/infrastructure/observability"
	"github.com/bebond/concierge-search/pkg/config"
)

// The indexer mirrors the catalog into Typesense so deployments that want
// typo-tolerant full-text search can point a future backend at it. It is
// run after every catalog sync.
func main() {
	postType := flag.String("post-type", "", "restrict indexing to one post type")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall indexing timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName+"-indexer", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var catalog providers.CatalogProvider
	switch cfg.Search.Backend {
	case config.BackendPostgres:
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		catalog = catalogpg.NewAdapter(pgClient)
	default:
		catalog = memory.NewAdapter(memory.Fixtures())
	}

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Typesense client")
	}

	adapter := search.NewTypesenseAdapter(tsClient)
	if err := adapter.InitSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to init Typesense schema")
	}

	listings, err := catalog.Listings(ctx, cfg.Search.DefaultOrgKey, *postType)
	if err != nil {
		log.Fatal().Err(err).Str("org_key", cfg.Search.DefaultOrgKey).Msg("failed to load listings")
	}

	indexed := 0
	for i := range listings {
		if !listings[i].IsActive {
			continue
		}
		if err := adapter.Index(ctx, &listings[i]); err != nil {
			log.Error().Err(err).Str("id", listings[i].ID).Msg("failed to index listing")
			continue
		}
		indexed++
	}

	log.Info().Int("indexed", indexed).Int("total", len(listings)).Msg("indexing complete")
}
