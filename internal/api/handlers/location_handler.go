package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/bebond/concierge-search/internal/application/services"
	"github.com/bebond/concierge-search/internal/domain/entities"
	"github.com/bebond/concierge-search/internal/domain/providers"
)

// LocationHandler serves the drill-down location options used to populate
// cascading country/region/city/neighbourhood selectors.
type LocationHandler struct {
	locations providers.LocationProvider
	resolver  *services.LocationService
}

func NewLocationHandler(locations providers.LocationProvider, resolver *services.LocationService) *LocationHandler {
	return &LocationHandler{
		locations: locations,
		resolver:  resolver,
	}
}

// Options handles GET /api/locations.
func (h *LocationHandler) Options(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	params := entities.LocationParams{
		OrgKey:  q.Get("org_key"),
		Country: q.Get("country"),
		Region:  q.Get("region"),
		City:    q.Get("city"),
	}
	if params.OrgKey == "" {
		respondWithError(w, http.StatusBadRequest, "org_key is required")
		return
	}

	hierarchy, err := h.locations.Hierarchy(ctx, params.OrgKey)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("org_key", params.OrgKey).Msg("failed to load location hierarchy")
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, h.resolver.Resolve(hierarchy, params))
}
