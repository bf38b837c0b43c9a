package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sevigo/code-optimizer/internal/config"
	"github.com/sevigo/code-optimizer/internal/core"
)

const openAIServiceName = "openai"

// OpenAICompleter calls the OpenAI chat completions endpoint, or any server
// compatible with it, with a system and a user message.
type OpenAICompleter struct {
	apiKey      string
	model       string
	endpoint    string
	temperature float64
	client      *http.Client
	logger      *slog.Logger
}

// NewOpenAICompleter builds a completer from the OpenAI settings in cfg.
func NewOpenAICompleter(cfg config.AIConfig, logger *slog.Logger) *OpenAICompleter {
	return &OpenAICompleter{
		apiKey:      cfg.OpenAIAPIKey,
		model:       cfg.GeneratorModel,
		endpoint:    cfg.OpenAIBaseURL + "/chat/completions",
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
	}
}

// Complete sends one chat completion request and returns the first choice's content.
func (o *OpenAICompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	temperature := o.temperature
	payload, err := json.Marshal(openaiRequest{
		Model: o.model,
		Messages: []openaiMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	// The status stays in the message only: model failures surface as 500
	// on both endpoints, unlike GitHub failures.
	if resp.StatusCode != http.StatusOK {
		o.logger.Error("chat completion failed", "model", o.model, "status", resp.StatusCode)
		return "", fmt.Errorf("%s API error (status %d): %s", openAIServiceName, resp.StatusCode, apiErrorMessage(body))
	}

	var result openaiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("no choices in response")
	}

	o.logger.Debug("chat completion finished", "model", o.model, "total_tokens", result.Usage.TotalTokens)
	return result.Choices[0].Message.Content, nil
}

// apiErrorMessage prefers the structured error message OpenAI returns and
// falls back to a truncated body.
func apiErrorMessage(body []byte) string {
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return core.Truncate(string(body), 200)
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	Temperature *float64        `json:"temperature,omitempty"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []openaiChoice `json:"choices"`
	Usage   openaiUsage    `json:"usage"`
}

type openaiChoice struct {
	Message openaiMessage `json:"message"`
}

type openaiUsage struct {
	TotalTokens int `json:"total_tokens"`
}
