// Package http assembles the chi router and its middleware stack.
package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	corslib "github.com/rs/cors"

	"github.com/jayala/vex-stats-service/internal/http/handlers"
	"github.com/jayala/vex-stats-service/internal/http/middleware"
	"github.com/jayala/vex-stats-service/internal/metrics"
)

// NewRouter registers all routes behind the logging/metrics middleware
// and a permissive read-mostly CORS policy.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(logger, recorder))
	r.Use(corslib.New(corslib.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}).Handler)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Get("/teams/lookup", h.TeamLookup)
	r.Route("/teams/{id}", func(r chi.Router) {
		r.Get("/dashboard", h.Dashboard)
		r.Get("/skills", h.Skills)
		r.Get("/awards", h.Awards)
		r.Get("/events", h.EventsList)
		r.Get("/events/{eventID}", h.EventDetail)
	})

	r.Route("/session", func(r chi.Router) {
		r.Get("/team", h.SessionTeam)
		r.Put("/team", h.SelectSessionTeam)
		r.Delete("/team", h.ClearSessionTeam)

		r.Get("/favorites", h.Favorites)
		r.Post("/favorites", h.AddFavorite)
		r.Delete("/favorites", h.ClearFavorites)
		r.Delete("/favorites/{id}", h.RemoveFavorite)
	})

	return r
}
