package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/bebond/concierge-search/internal/application/services"
	"github.com/bebond/concierge-search/internal/domain/entities"
	"github.com/bebond/concierge-search/internal/domain/providers"
	"github.com/bebond/concierge-search/internal/infrastructure/observability"
)

// SearchHandler serves listing search and catalog-wide facet queries.
type SearchHandler struct {
	catalog providers.CatalogProvider
	engine  *services.SearchService
	metrics *observability.Metrics
}

func NewSearchHandler(catalog providers.CatalogProvider, engine *services.SearchService, metrics *observability.Metrics) *SearchHandler {
	return &SearchHandler{
		catalog: catalog,
		engine:  engine,
		metrics: metrics,
	}
}

// Search handles POST /api/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entities.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OrgKey == "" {
		respondWithError(w, http.StatusBadRequest, "org_key is required")
		return
	}

	listings, err := h.catalog.Listings(ctx, req.OrgKey, req.PostType)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("org_key", req.OrgKey).Msg("failed to load listings")
		respondWithAppError(w, err)
		return
	}

	resp, err := h.engine.Search(listings, &req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if h.metrics != nil {
		observability.RecordSearchResults(ctx, h.metrics, req.PostType, resp.Total)
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// Facets handles GET /api/facets. It reports attribute counts across the
// whole active catalog, independent of any search in flight, so clients can
// render filter menus before the first query.
func (h *SearchHandler) Facets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgKey := r.URL.Query().Get("org_key")
	if orgKey == "" {
		respondWithError(w, http.StatusBadRequest, "org_key is required")
		return
	}
	postType := r.URL.Query().Get("post_type")

	listings, err := h.catalog.Listings(ctx, orgKey, postType)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("org_key", orgKey).Msg("failed to load listings")
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, h.engine.Facets(listings))
}
