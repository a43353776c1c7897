package api

import (
	"net/http"
	"time"

	analyticsapi "github.com/futig/sitegen-backend/internal/api/analytics"
	"github.com/futig/sitegen-backend/internal/api/docs"
	generationapi "github.com/futig/sitegen-backend/internal/api/generation"
	"github.com/futig/sitegen-backend/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Generation calls wait on several upstream model calls; the request timeout
// has to cover the whole fan-out.
const requestTimeout = 180 * time.Second

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	generationHandler *generationapi.Handler,
	analyticsHandler *analyticsapi.Handler,
	rateLimiter *middleware.RateLimiter,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)
	r.Use(rateLimiter.Middleware)
	r.Use(chimiddleware.Timeout(requestTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	generationapi.RegisterRoutes(r, generationHandler)
	analyticsapi.RegisterRoutes(r, analyticsHandler)

	return r
}
