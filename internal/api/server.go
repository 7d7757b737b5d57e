package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/megagoal/megagoal-data/internal/api/handler"
	"github.com/megagoal/megagoal-data/internal/cache"
	"github.com/megagoal/megagoal-data/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(pool *pgxpool.Pool, appCache *cache.Cache, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handler.TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip
	r.Use(handler.IdentityMiddleware)

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control", "X-Username"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "Link", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(handler.RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(pool, appCache, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Real match catalog
		r.Get("/real_matches", h.GetRealMatches)
		r.Get("/real_matches/date/{date}", h.GetRealMatchesByDate)
		r.Get("/real_matches/without_statistics", h.GetRealMatchesWithoutStatistics)
		r.Get("/real_matches/{fixtureID:[0-9]+}", h.GetRealMatchByID)

		// Tracked matches
		r.Get("/matches", h.GetMatches)
		r.Post("/matches", h.CreateMatch)
		r.Patch("/matches/location", h.ChangeMatchLocation)
		r.Delete("/matches/{fixtureID}", h.DeleteMatch)

		// Locations
		r.Get("/locations", h.GetLocations)
		r.Post("/locations", h.CreateLocation)

		// League settings
		r.Get("/leagues_settings", h.GetLeaguesSettings)
		r.Patch("/leagues_settings/update_frequency", h.ChangeUpdateFrequency)
		r.Patch("/leagues_settings/is_active", h.ChangeIsActive)
	})

	return r
}
