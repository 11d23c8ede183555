package routes

import (
	"net/http"

	"github.com/bebond/concierge-search/internal/api/handlers"
	"github.com/bebond/concierge-search/internal/api/middleware"
	"github.com/bebond/concierge-search/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	searchHandler   *handlers.SearchHandler
	locationHandler *handlers.LocationHandler
	configHandler   *handlers.ConfigHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	searchHandler *handlers.SearchHandler,
	locationHandler *handlers.LocationHandler,
	configHandler *handlers.ConfigHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		searchHandler:   searchHandler,
		locationHandler: locationHandler,
		configHandler:   configHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Search endpoints
	r.mux.HandleFunc("POST /api/search", r.searchHandler.Search)
	r.mux.HandleFunc("GET /api/facets", r.searchHandler.Facets)

	// Location drill-down endpoint
	r.mux.HandleFunc("GET /api/locations", r.locationHandler.Options)

	// Search configuration endpoint
	r.mux.HandleFunc("GET /api/search-config", r.configHandler.Get)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
