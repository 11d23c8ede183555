package handlers

import (
	"net/http"

	"github.com/bebond/concierge-search/internal/application/services"
)

// ConfigHandler serves the per-post-type search configuration that drives
// client-side sort and filter controls.
type ConfigHandler struct {
	configs *services.ConfigService
}

func NewConfigHandler(configs *services.ConfigService) *ConfigHandler {
	return &ConfigHandler{configs: configs}
}

// Get handles GET /api/search-config.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configs.Get(r.URL.Query().Get("post_type"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, cfg)
}
