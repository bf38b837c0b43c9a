package wire

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/code-optimizer/internal/app"
	"github.com/sevigo/code-optimizer/internal/config"
	"github.com/sevigo/code-optimizer/internal/core"
	"github.com/sevigo/code-optimizer/internal/github"
	"github.com/sevigo/code-optimizer/internal/llm"
	"github.com/sevigo/code-optimizer/internal/logger"
	"github.com/sevigo/code-optimizer/internal/review"
	"github.com/sevigo/code-optimizer/internal/server"
	"github.com/sevigo/code-optimizer/internal/server/handler"
)

var AppSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	review.NewService,
	config.LoadConfig,
	llm.NewPromptManager,
	llm.NewCompleter,
	llm.NewReviewer,
	provideAIConfig,
	provideGitHubConfig,
	provideCodeStore,
	provideLoggerConfig,
	provideLogWriter,
	provideSlogLogger,
	wire.Bind(new(core.Reviewer), new(*llm.Reviewer)),
	wire.Bind(new(handler.Optimizer), new(*review.Service)),
)

func provideAIConfig(cfg *config.Config) config.AIConfig {
	return cfg.AI
}

func provideGitHubConfig(cfg *config.Config) config.GitHubConfig {
	return cfg.GitHub
}

// provideCodeStore returns a nil CodeStore, not a typed nil, when no GitHub
// credential is configured.
func provideCodeStore(ctx context.Context, cfg config.GitHubConfig, logger *slog.Logger) (core.CodeStore, error) {
	client, err := github.NewClientFromConfig(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	if client == nil {
		logger.Warn("no GitHub credential configured, repository reviews are disabled")
		return nil, nil
	}
	return github.NewStore(client, logger), nil
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg *config.Config) io.Writer {
	return logger.OpenOutput(cfg.Logging.Output)
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}
