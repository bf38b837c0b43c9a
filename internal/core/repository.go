package core

// RepoLocation identifies a hosted repository. It is derived once from the
// submitted URL and never changes for the lifetime of a request.
type RepoLocation struct {
	Owner string
	Repo  string
}

// FullName returns "owner/repo".
func (l RepoLocation) FullName() string {
	return l.Owner + "/" + l.Repo
}

// FileContent is a decoded file fetched from the remote code store.
type FileContent struct {
	Location RepoLocation
	Path     string
	Content  string
	SHA      string
}

// CommitResult describes where an optimized rewrite was committed.
type CommitResult struct {
	BranchName string
}
