package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/preston-bernstein/league-fixtures-service/internal/http/handlers"
	"github.com/preston-bernstein/league-fixtures-service/internal/http/middleware"
	"github.com/preston-bernstein/league-fixtures-service/internal/metrics"
)

// RouterConfig holds the cross-cutting pieces the router wraps around handlers.
type RouterConfig struct {
	Logger       *slog.Logger
	Recorder     *metrics.Recorder
	AllowOrigins []string
}

// NewRouter registers the fixture form routes.
func NewRouter(h *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(cfg.Logger, cfg.Recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowOrigins,
		AllowedMethods:   []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodPut, nethttp.MethodPatch, nethttp.MethodDelete, nethttp.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)

	r.Get("/health", h.Health)
	r.Route("/forms", func(r chi.Router) {
		r.Post("/", h.CreateForm)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetForm)
			r.Delete("/", h.DeleteForm)
			r.Patch("/draft", h.PatchDraft)
			r.Put("/mode", h.SetMode)
			r.Post("/submit", h.Submit)
		})
	})
	return r
}
