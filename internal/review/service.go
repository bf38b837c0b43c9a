// Package review sequences the snippet and repository review flows.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sevigo/code-optimizer/internal/core"
)

// Caller-facing validation messages.
const (
	MsgCodeRequired        = "Code is required."
	MsgLanguageRequired    = "Language is required."
	MsgRepoURLRequired     = "Repository URL is required."
	MsgFilePathRequired    = "File path is required."
	MsgGitHubNotConfigured = "GitHub token not configured on server."
)

// Service runs review requests against a Reviewer and, for repository files,
// a CodeStore. It holds no per-request state.
type Service struct {
	reviewer core.Reviewer
	store    core.CodeStore
	logger   *slog.Logger
}

// NewService creates a Service. store may be nil when no GitHub credential is
// configured; repository reviews then fail with core.ErrMissingCredential.
func NewService(reviewer core.Reviewer, store core.CodeStore, logger *slog.Logger) *Service {
	return &Service{reviewer: reviewer, store: store, logger: logger}
}

// ReviewSnippet validates and reviews a pasted snippet. The code is trimmed
// before it is sent to the model.
func (s *Service) ReviewSnippet(ctx context.Context, code, language string) (*core.ReviewReport, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, core.NewUserError(core.ErrInvalidInput, MsgCodeRequired)
	}
	if language == "" {
		return nil, core.NewUserError(core.ErrInvalidInput, MsgLanguageRequired)
	}

	return s.reviewer.ReviewCode(ctx, trimmed, language)
}

// ReviewRepositoryFile fetches filePath from the repository at repoURL, reviews
// it and commits the optimized code to a dedicated branch. The steps run
// strictly in order and the first failure aborts the rest.
func (s *Service) ReviewRepositoryFile(ctx context.Context, repoURL, filePath string) (*core.RepoReviewResult, error) {
	if repoURL == "" {
		return nil, core.NewUserError(core.ErrInvalidInput, MsgRepoURLRequired)
	}
	if filePath == "" {
		return nil, core.NewUserError(core.ErrInvalidInput, MsgFilePathRequired)
	}
	if s.store == nil {
		return nil, core.NewUserError(core.ErrMissingCredential, MsgGitHubNotConfigured)
	}

	file, err := s.store.FetchFileContent(ctx, repoURL, filePath)
	if err != nil {
		return nil, err
	}
	loc := file.Location

	language := InferLanguage(filePath)
	s.logger.Info("reviewing repository file", "repo", loc.FullName(), "path", filePath, "language", language)

	report, err := s.reviewer.ReviewCode(ctx, file.Content, language)
	if err != nil {
		return nil, err
	}

	baseBranch, err := s.store.GetDefaultBranch(ctx, loc.Owner, loc.Repo)
	if err != nil {
		return nil, err
	}

	commit, err := s.store.CreateBranchAndCommit(ctx, loc.Owner, loc.Repo, filePath, report.OptimizedCode, baseBranch)
	if err != nil {
		return nil, fmt.Errorf("failed to commit optimized %s: %w", filePath, err)
	}

	return &core.RepoReviewResult{
		ReviewReport: *report,
		Branch:       commit.BranchName,
		Message:      "Optimized code committed to branch: " + commit.BranchName,
	}, nil
}
