package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/code-optimizer/internal/config"
	"github.com/sevigo/code-optimizer/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(cfg config.ServerConfig, optimizer handler.Optimizer, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Configure middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors(cfg.AllowedOrigin))

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteJSON(w, http.StatusMethodNotAllowed, handler.ErrorResponse{Error: "Method not allowed"})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		optimizeHandler := handler.NewOptimizeHandler(optimizer, logger)
		r.Post("/optimize-code", optimizeHandler.OptimizeCode)
		r.Options("/optimize-code", preflight)
		r.Post("/optimize-repo", optimizeHandler.OptimizeRepo)
		r.Options("/optimize-repo", preflight)
	})

	return r
}

// cors sets the cross-origin headers on every response.
func cors(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowedOrigin)
			h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			next.ServeHTTP(w, r)
		})
	}
}

func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
