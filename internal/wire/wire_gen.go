// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/sevigo/code-optimizer/internal/app"
	"github.com/sevigo/code-optimizer/internal/config"
	"github.com/sevigo/code-optimizer/internal/llm"
	"github.com/sevigo/code-optimizer/internal/review"
	"github.com/sevigo/code-optimizer/internal/server"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	loggerConfig := provideLoggerConfig(cfg)
	logWriter := provideLogWriter(cfg)
	slogLogger := provideSlogLogger(loggerConfig, logWriter)

	// Language model
	aiConfig := provideAIConfig(cfg)
	promptManager, err := llm.NewPromptManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt manager: %w", err)
	}
	completer, err := llm.NewCompleter(ctx, aiConfig, slogLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM completer: %w", err)
	}
	reviewer := llm.NewReviewer(completer, promptManager, aiConfig, slogLogger)

	// GitHub
	gitHubConfig := provideGitHubConfig(cfg)
	codeStore, err := provideCodeStore(ctx, gitHubConfig, slogLogger)
	if err != nil {
		return nil, err
	}

	// Review service and HTTP server
	service := review.NewService(reviewer, codeStore, slogLogger)
	httpServer := server.NewServer(cfg, service, slogLogger)

	return app.NewApp(cfg, service, httpServer, slogLogger), nil
}
