// Package server implements the HTTP server for the application.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sevigo/code-optimizer/internal/config"
	"github.com/sevigo/code-optimizer/internal/server/handler"
)

// writeGrace is added to the request timeout so the timeout middleware can
// still write its response before the connection deadline.
const writeGrace = 10 * time.Second

// Server wraps an HTTP server with graceful shutdown capabilities.
type Server struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// NewServer creates a new HTTP server serving the optimizer API.
func NewServer(cfg *config.Config, optimizer handler.Optimizer, logger *slog.Logger) *Server {
	router := NewRouter(cfg.Server, optimizer, logger)

	return &Server{
		server: &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      cfg.Server.RequestTimeout + writeGrace,
			IdleTimeout:       120 * time.Second,
		},
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		logger:          logger,
	}
}

// Start starts the HTTP server and blocks until shutdown or error.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", "address", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server, waiting for in-flight reviews up to
// the configured shutdown timeout.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
