package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"sports-gateway/internal/http/handlers"
	"sports-gateway/internal/http/middleware"
	"sports-gateway/internal/metrics"
)

// RouterOptions configures cross-cutting router behaviour.
type RouterOptions struct {
	Admin       *handlers.AdminHandler
	CORSOrigins []string
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(opts.Logger, opts.Metrics))
	r.Use(corsHandler(opts.CORSOrigins).Handler)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/leagues", handler.Leagues)
		r.Get("/games", handler.Games)
		r.Get("/games/schedule", handler.TeamSchedule)
		r.Get("/highlights", handler.Highlights)
		r.Get("/teams", handler.Teams)
		r.Get("/teams/search", handler.SearchTeams)
		r.Get("/teams/{id}", handler.TeamByID)
	})

	if opts.Admin != nil {
		r.Post("/admin/cache/refresh", opts.Admin.RefreshCache)
	}
	return r
}

func corsHandler(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Data-Provenance"},
		MaxAge:         300,
	})
}
