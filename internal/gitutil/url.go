// Package gitutil holds helpers for working with hosted git repository references.
package gitutil

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sevigo/code-optimizer/internal/core"
)

var repoURLRegex = regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?(?:/|$)`)

// ParseRepoURL extracts the owner and repository name from a GitHub URL.
// Supported forms include https://github.com/{owner}/{repo}, an optional .git
// suffix, and any trailing path such as /tree/main/src.
func ParseRepoURL(url string) (core.RepoLocation, error) {
	matches := repoURLRegex.FindStringSubmatch(strings.TrimSpace(url))
	if len(matches) != 3 {
		return core.RepoLocation{}, fmt.Errorf("%w: %s", core.ErrInvalidLocation, url)
	}

	return core.RepoLocation{Owner: matches[1], Repo: matches[2]}, nil
}
