package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"allergy-assistant/internal/config"
	"allergy-assistant/internal/handlers"
	"allergy-assistant/internal/metrics"
	"allergy-assistant/internal/middleware"
)

func New(cfg *config.Config, chatHandler *handlers.ChatHandler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	if cfg.Debug {
		r.Use(chimiddleware.Logger)
	}
	r.Use(middleware.Metrics)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	r.Get("/health", handlers.Health)
	r.Post("/chat", chatHandler.Chat)

	if cfg.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	return r
}
