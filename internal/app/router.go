package app

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/middleware"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, tokens middleware.TokenValidator, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Gzip(logger))

	authMiddleware := middleware.NewAuthMiddleware(tokens, logger)

	// Routes
	r.Get("/ping", h.Ping)
	r.Get("/{code}", h.GetURL)
	r.Post("/api/auth/token", h.IssueToken)
	r.Get("/api/range", h.RangeInfo)

	// Создание доступно анонимно; алиас требует владельца
	r.With(authMiddleware.OptionalAuth).Post("/api/shorten", h.CreateURL)
	r.With(authMiddleware.OptionalAuth).Post("/shorten", h.CreateURL)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Get("/api/user/urls", h.GetUserURLs)
		r.Put("/api/urls/{code}/alias", h.AddAlias)
		r.Delete("/api/urls/{code}", h.DeactivateURL)
	})

	return r
}
