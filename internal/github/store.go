package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/code-optimizer/internal/core"
	"github.com/sevigo/code-optimizer/internal/gitutil"
)

const (
	contentEncoding       = "base64"
	fallbackDefaultBranch = "main"
)

// Store implements core.CodeStore on top of a Client.
type Store struct {
	client Client
	logger *slog.Logger
}

var _ core.CodeStore = (*Store)(nil)

// NewStore creates a Store that issues all calls through client.
func NewStore(client Client, logger *slog.Logger) *Store {
	return &Store{client: client, logger: logger}
}

// FetchFileContent resolves repoURL and returns the decoded content of path on
// the default branch.
func (s *Store) FetchFileContent(ctx context.Context, repoURL, path string) (*core.FileContent, error) {
	loc, err := gitutil.ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	file, err := s.client.GetContents(ctx, loc.Owner, loc.Repo, path, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from %s: %w", path, loc.FullName(), err)
	}
	if file.GetEncoding() != contentEncoding {
		return nil, fmt.Errorf("%w: %q for %s", core.ErrUnsupportedEncoding, file.GetEncoding(), path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	s.logger.Debug("fetched file", "repo", loc.FullName(), "path", path, "bytes", len(content))
	return &core.FileContent{
		Location: loc,
		Path:     path,
		Content:  content,
		SHA:      file.GetSHA(),
	}, nil
}

// GetDefaultBranch returns the repository's default branch, or "main" when
// the metadata does not name one.
func (s *Store) GetDefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	repository, err := s.client.GetRepository(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("failed to read repository %s/%s: %w", owner, repo, err)
	}
	if branch := repository.GetDefaultBranch(); branch != "" {
		return branch, nil
	}
	return fallbackDefaultBranch, nil
}

// GetBranchHeadCommit returns the SHA of the commit branch points at.
func (s *Store) GetBranchHeadCommit(ctx context.Context, owner, repo, branch string) (string, error) {
	ref, err := s.client.GetRef(ctx, owner, repo, "heads/"+branch)
	if err != nil {
		return "", fmt.Errorf("failed to read head of %s in %s/%s: %w", branch, owner, repo, err)
	}
	sha := ref.GetObject().GetSHA()
	if sha == "" {
		return "", fmt.Errorf("ref heads/%s in %s/%s has no commit", branch, owner, repo)
	}
	return sha, nil
}

// CreateBranchAndCommit commits content to path on BranchName(path), branching
// from baseBranch. Re-running it is safe: an existing branch is reused and the
// file is updated against its latest blob SHA, so the final state matches a
// single run.
func (s *Store) CreateBranchAndCommit(ctx context.Context, owner, repo, path, content, baseBranch string) (*core.CommitResult, error) {
	branch := BranchName(path)

	headSHA, err := s.GetBranchHeadCommit(ctx, owner, repo, baseBranch)
	if err != nil {
		return nil, err
	}

	if err := s.ensureBranch(ctx, owner, repo, branch, headSHA); err != nil {
		return nil, err
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr(CommitMessage(path)),
		Content: []byte(content),
		Branch:  github.Ptr(branch),
	}
	if sha := s.currentFileSHA(ctx, owner, repo, path, branch); sha != "" {
		opts.SHA = github.Ptr(sha)
	}

	if _, err := s.client.PutFile(ctx, owner, repo, path, opts); err != nil {
		return nil, fmt.Errorf("failed to commit %s to %s: %w", path, branch, err)
	}

	s.logger.Info("committed optimized file", "owner", owner, "repo", repo, "path", path, "branch", branch)
	return &core.CommitResult{BranchName: branch}, nil
}

// ensureBranch creates refs/heads/<branch> at sha. GitHub answers 422 when the
// ref already exists, which counts as success.
func (s *Store) ensureBranch(ctx context.Context, owner, repo, branch, sha string) error {
	_, err := s.client.CreateRef(ctx, owner, repo, "refs/heads/"+branch, sha)
	if err == nil {
		s.logger.Info("created branch", "owner", owner, "repo", repo, "branch", branch, "base_sha", sha)
		return nil
	}
	if core.HTTPStatus(err, 0) == http.StatusUnprocessableEntity {
		s.logger.Debug("branch already exists, reusing it", "owner", owner, "repo", repo, "branch", branch)
		return nil
	}
	return fmt.Errorf("failed to create branch %s in %s/%s: %w", branch, owner, repo, err)
}

// currentFileSHA returns the blob SHA of path on branch, or "" when the file
// does not exist there yet.
func (s *Store) currentFileSHA(ctx context.Context, owner, repo, path, branch string) string {
	file, err := s.client.GetContents(ctx, owner, repo, path, branch)
	if err != nil {
		s.logger.Debug("no existing file on branch, creating it", "path", path, "branch", branch, "error", err)
		return ""
	}
	return file.GetSHA()
}
