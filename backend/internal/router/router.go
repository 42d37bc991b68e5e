package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/traden-dev/traden/backend/internal/setup"
	mw "github.com/traden-dev/traden/shared/middleware"
	"github.com/traden-dev/traden/shared/middleware/metrics"
)

// New creates and configures the API router.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(mw.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// CORS for the web frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{deps.Config.Public.Api.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	h := deps.Handler

	r.Get("/", h.Health)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/threads", h.ListThreads)
		r.Post("/threads", h.CreateThread)
		r.Get("/threads/{thread}", h.GetThread)
		r.Put("/threads/{thread}", h.UpdateThread)
		r.Delete("/threads/{thread}", h.DeleteThread)
		r.Post("/threads/{thread}/replies", h.CreateReply)

		r.Put("/replies/{reply}", h.UpdateReply)
		r.Delete("/replies/{reply}", h.DeleteReply)
	})

	// Avoid 404s for CORS preflight requests
	r.MethodFunc("OPTIONS", "/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
