package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/sevigo/code-optimizer/internal/config"
)

// Completer sends one system and one user instruction to a language model and
// returns its raw text answer.
//
//go:generate mockgen -destination=../../mocks/mock_completer.go -package=mocks . Completer
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// NewCompleter builds the Completer selected by cfg.LLMProvider. It returns
// (nil, nil) when the provider needs an API key that is not configured, so the
// service can still start and report the missing credential per request.
func NewCompleter(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (Completer, error) {
	if key, required := cfg.APIKey(); required && key == "" {
		logger.Warn("LLM API key not configured, reviews will fail until it is set", "provider", cfg.LLMProvider)
		return nil, nil
	}

	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return NewOpenAICompleter(cfg, logger), nil
	case config.ProviderGemini:
		model, err := gemini.New(ctx,
			gemini.WithModel(cfg.GeneratorModel),
			gemini.WithAPIKey(cfg.GeminiAPIKey),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini model: %w", err)
		}
		return NewModelCompleter(model), nil
	case config.ProviderOllama:
		model, err := ollama.New(
			ollama.WithServerURL(cfg.OllamaHost),
			ollama.WithHTTPClient(newOllamaHTTPClient(cfg.Timeout)),
			ollama.WithModel(cfg.GeneratorModel),
			ollama.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama model: %w", err)
		}
		return NewModelCompleter(model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}

// modelCompleter adapts a goframe llms.Model, which takes a single prompt, to
// the Completer interface.
type modelCompleter struct {
	model llms.Model
}

// NewModelCompleter wraps a goframe model. The system and user instructions
// are joined into one prompt.
func NewModelCompleter(model llms.Model) Completer {
	return &modelCompleter{model: model}
}

func (m *modelCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return m.model.Call(ctx, systemPrompt+"\n\n"+userPrompt)
}

func newOllamaHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
