// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/code-optimizer/internal/core"
)

const serviceName = "github"

// Client defines the small set of GitHub REST operations the optimizer needs:
// contents by path, repository metadata and git refs.
//
//go:generate mockgen -destination=../../mocks/mock_github_client.go -package=mocks . Client
type Client interface {
	GetContents(ctx context.Context, owner, repo, path, ref string) (*github.RepositoryContent, error)
	GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error)
	GetRef(ctx context.Context, owner, repo, ref string) (*github.Reference, error)
	CreateRef(ctx context.Context, owner, repo, ref, sha string) (*github.Reference, error)
	PutFile(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentFileOptions) (*github.RepositoryContentResponse, error)
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewGitHubClient wraps the official go-github client to provide a focused,
// testable interface for application-specific GitHub operations.
func NewGitHubClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// GetContents fetches a single file. An empty ref reads the default branch.
func (g *gitHubClient) GetContents(ctx context.Context, owner, repo, path, ref string) (*github.RepositoryContent, error) {
	var opts *github.RepositoryContentGetOptions
	if ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	file, _, resp, err := g.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		g.logger.Debug("failed to get contents", "owner", owner, "repo", repo, "path", path, "ref", ref, "error", err)
		return nil, wrapError(resp, err)
	}
	if file == nil {
		return nil, fmt.Errorf("path %q in %s/%s is a directory, not a file", path, owner, repo)
	}
	return file, nil
}

// GetRepository retrieves repository metadata.
func (g *gitHubClient) GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error) {
	repository, resp, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		g.logger.Error("failed to get repository", "owner", owner, "repo", repo, "error", err)
		return nil, wrapError(resp, err)
	}
	return repository, nil
}

// GetRef reads a git reference such as "heads/main".
func (g *gitHubClient) GetRef(ctx context.Context, owner, repo, ref string) (*github.Reference, error) {
	reference, resp, err := g.client.Git.GetRef(ctx, owner, repo, ref)
	if err != nil {
		g.logger.Error("failed to get ref", "owner", owner, "repo", repo, "ref", ref, "error", err)
		return nil, wrapError(resp, err)
	}
	return reference, nil
}

// CreateRef creates a fully qualified reference (refs/heads/...) pointing at sha.
func (g *gitHubClient) CreateRef(ctx context.Context, owner, repo, ref, sha string) (*github.Reference, error) {
	reference, resp, err := g.client.Git.CreateRef(ctx, owner, repo, &github.Reference{
		Ref:    github.Ptr(ref),
		Object: &github.GitObject{SHA: github.Ptr(sha)},
	})
	if err != nil {
		g.logger.Debug("failed to create ref", "owner", owner, "repo", repo, "ref", ref, "error", err)
		return nil, wrapError(resp, err)
	}
	return reference, nil
}

// PutFile creates the file, or updates it when opts carries the current blob SHA.
func (g *gitHubClient) PutFile(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentFileOptions) (*github.RepositoryContentResponse, error) {
	var (
		result *github.RepositoryContentResponse
		resp   *github.Response
		err    error
	)
	if opts.SHA == nil {
		result, resp, err = g.client.Repositories.CreateFile(ctx, owner, repo, path, opts)
	} else {
		result, resp, err = g.client.Repositories.UpdateFile(ctx, owner, repo, path, opts)
	}
	if err != nil {
		g.logger.Error("failed to write file", "owner", owner, "repo", repo, "path", path, "branch", opts.GetBranch(), "error", err)
		return nil, wrapError(resp, err)
	}
	return result, nil
}

// wrapError attaches the HTTP status of a failed call so callers can relay it.
func wrapError(resp *github.Response, err error) error {
	if resp == nil || resp.Response == nil {
		return err
	}
	return &core.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Err: err}
}
