package core

import "context"

// Reviewer turns source code into a structured review report. Implementations
// talk to a language model and must validate its output before returning it.
//
//go:generate mockgen -destination=../../mocks/mock_reviewer.go -package=mocks . Reviewer
type Reviewer interface {
	// ReviewCode reviews code written in the given language.
	ReviewCode(ctx context.Context, code, language string) (*ReviewReport, error)
}

// CodeStore is the remote hosted-repository API used by the repository flow.
// All operations are authenticated with a credential bound at construction.
//
//go:generate mockgen -destination=../../mocks/mock_code_store.go -package=mocks . CodeStore
type CodeStore interface {
	// FetchFileContent resolves repoURL and returns the decoded file at path.
	FetchFileContent(ctx context.Context, repoURL, path string) (*FileContent, error)
	// GetDefaultBranch returns the repository's default branch name.
	GetDefaultBranch(ctx context.Context, owner, repo string) (string, error)
	// GetBranchHeadCommit returns the commit SHA the branch points at.
	GetBranchHeadCommit(ctx context.Context, owner, repo, branch string) (string, error)
	// CreateBranchAndCommit writes content to path on a branch derived from
	// path, creating the branch from baseBranch if it does not exist yet.
	CreateBranchAndCommit(ctx context.Context, owner, repo, path, content, baseBranch string) (*CommitResult, error)
}
