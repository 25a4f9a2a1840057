package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterConfig struct {
	CORSOrigins []string
	Limiter     Limiter // nil disables rate limiting
}

// NewRouter wires the projection API. Only the calculate endpoint is rate limited.
func NewRouter(
	projection *ProjectionHandler,
	catalog *CatalogHandler,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", Health)

	var calculate http.Handler = http.HandlerFunc(projection.Calculate)
	if cfg.Limiter != nil {
		calculate = RateLimitMiddleware(cfg.Limiter, calculate)
	}
	r.Handle("/projection/calculate", calculate)
	r.Get("/projection/catalog", catalog.GetCatalog)

	return r
}
