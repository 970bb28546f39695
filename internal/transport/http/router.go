package httptransport

import (
	"net/http"

	"cabo-replay/internal/config"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(cfg config.ServerConfig) *chi.Mux {
	handlers := NewBoardHandlers(cfg)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", handlers.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Post("/board/project", handlers.Project())
		r.Post("/board/capture", handlers.Capture())
	})
	return r
}

func LogRoutes(r chi.Router) {
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		log.Info().Str("method", method).Str("route", route).Msg("route registered")
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Msg("route walk failed")
	}
}
