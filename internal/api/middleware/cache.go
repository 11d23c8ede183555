package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/bebond/concierge-search/internal/domain/providers"
	"github.com/bebond/concierge-search/internal/infrastructure/observability"
)

// CacheConfig holds the cache policy for one route.
type CacheConfig struct {
	TTLSeconds int
	Enabled    bool
}

// CacheMiddleware caches GET responses in Redis. Location options, search
// config and catalog-wide facets change only when the catalog is re-synced,
// so they tolerate generous TTLs; search itself is a POST and never cached.
type CacheMiddleware struct {
	cache        providers.CacheProvider
	metrics      *observability.Metrics
	routeConfigs map[string]CacheConfig
}

func NewCacheMiddleware(cache providers.CacheProvider, metrics *observability.Metrics) *CacheMiddleware {
	return &CacheMiddleware{
		cache:   cache,
		metrics: metrics,
		routeConfigs: map[string]CacheConfig{
			"/api/locations":     {TTLSeconds: 600, Enabled: true},
			"/api/search-config": {TTLSeconds: 3600, Enabled: true},
			"/api/facets":        {TTLSeconds: 300, Enabled: true},
		},
	}
}

func (m *CacheMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || m.cache == nil {
			next.ServeHTTP(w, r)
			return
		}

		config, ok := m.routeConfigs[r.URL.Path]
		if !ok || !config.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		cacheKey := cacheKeyFor(r)

		if cached, err := m.cache.Get(r.Context(), cacheKey); err == nil {
			if m.metrics != nil {
				observability.RecordCacheHit(r.Context(), m.metrics, r.URL.Path)
			}
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		if m.metrics != nil {
			observability.RecordCacheMiss(r.Context(), m.metrics, r.URL.Path)
		}
		w.Header().Set("X-Cache", "MISS")

		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           &bytes.Buffer{},
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode == http.StatusOK && recorder.body.Len() > 0 {
			if err := m.cache.Set(r.Context(), cacheKey, recorder.body.Bytes(), config.TTLSeconds); err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache response")
			}
		}
	})
}

// cacheKeyFor hashes method, path and query so keys stay a fixed length and
// distinct org keys never collide.
func cacheKeyFor(r *http.Request) string {
	key := r.Method + ":" + r.URL.Path
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}
	hash := sha256.Sum256([]byte(key))
	return "http:cache:" + hex.EncodeToString(hash[:])
}

// responseRecorder captures the response body so a successful reply can be
// stored after it has been written to the client.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
	written    bool
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	if !r.written {
		r.statusCode = statusCode
		r.ResponseWriter.WriteHeader(statusCode)
		r.written = true
	}
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}
