// Package app initializes and orchestrates the main components of the code
// optimizer. It ties together the configuration, the review service and the
// HTTP server.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/code-optimizer/internal/config"
	"github.com/sevigo/code-optimizer/internal/review"
	"github.com/sevigo/code-optimizer/internal/server"
)

// App holds the main application components. The CLI uses Service directly
// and never starts the server.
type App struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Service *review.Service
	server  *server.Server
}

// NewApp bundles the wired components.
func NewApp(cfg *config.Config, service *review.Service, httpServer *server.Server, logger *slog.Logger) *App {
	logger.Info("code optimizer initialized",
		"llm_provider", cfg.AI.LLMProvider,
		"generator_model", cfg.AI.GeneratorModel,
		"github_credentials", cfg.GitHub.HasCredentials())

	return &App{
		Cfg:     cfg,
		Logger:  logger,
		Service: service,
		server:  httpServer,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.Logger.Info("starting code optimizer", "server_port", a.Cfg.Server.Port)

	if err := a.server.Start(); err != nil {
		a.Logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the HTTP server, letting in-flight reviews finish.
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("shutting down code optimizer")

	if err := a.server.Stop(ctx); err != nil {
		a.Logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.Logger.Info("code optimizer stopped successfully")
	return nil
}
