package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sevigo/code-optimizer/internal/config"
	"github.com/sevigo/code-optimizer/internal/core"
)

// Reviewer implements core.Reviewer by prompting a Completer and validating
// its answer.
type Reviewer struct {
	completer  Completer
	prompts    *PromptManager
	provider   ModelProvider
	credential string
	timeout    time.Duration
	logger     *slog.Logger
}

var _ core.Reviewer = (*Reviewer)(nil)

// NewReviewer creates a Reviewer. A nil completer is allowed: every review then
// fails with core.ErrMissingCredential.
func NewReviewer(completer Completer, prompts *PromptManager, cfg config.AIConfig, logger *slog.Logger) *Reviewer {
	return &Reviewer{
		completer:  completer,
		prompts:    prompts,
		provider:   ModelProvider(cfg.LLMProvider),
		credential: strings.ToUpper(cfg.LLMProvider) + "_API_KEY",
		timeout:    cfg.Timeout,
		logger:     logger,
	}
}

// ReviewCode asks the model for a structured review of code. The code is sent
// verbatim; the caller is responsible for trimming.
func (r *Reviewer) ReviewCode(ctx context.Context, code, language string) (*core.ReviewReport, error) {
	if r.completer == nil {
		return nil, core.NewUserError(core.ErrMissingCredential, r.credential+" is not configured on the server.")
	}

	systemPrompt, err := r.prompts.Render(ReviewSystemPrompt, r.provider, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to render system prompt: %w", err)
	}
	userPrompt, err := r.prompts.Render(ReviewUserPrompt, r.provider, ReviewPromptData{Language: language, Code: code})
	if err != nil {
		return nil, fmt.Errorf("failed to render user prompt: %w", err)
	}

	start := time.Now()
	raw, err := r.completeWithTimeout(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	report, err := parseReviewReport(raw)
	if err != nil {
		r.logger.Warn("model returned an unusable review", "language", language, "error", err)
		return nil, err
	}

	r.logger.Info("review completed",
		"language", language,
		"score", report.Score,
		"severity", report.Severity,
		"issues", len(report.Issues),
		"duration", time.Since(start))
	return report, nil
}

// completeWithTimeout bounds the model call even when the backend ignores
// context cancellation.
func (r *Reviewer) completeWithTimeout(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	type result struct {
		resp string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		resp, err := r.completer.Complete(ctx, systemPrompt, userPrompt)
		resultCh <- result{resp, err}
	}()

	select {
	case res := <-resultCh:
		return res.resp, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
