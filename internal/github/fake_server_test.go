package github

import (
	"context"
	"crypto/sha1" //nolint:gosec // git blob ids are SHA-1
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sevigo/code-optimizer/internal/config"
)

const (
	fakeRepoPrefix      = "/repos/acme/widgets"
	enterpriseAPIPrefix = "/api/v3"
	testToken           = "ghp_test"
)

// fakeGitHub is an in-memory stand-in for the subset of the GitHub REST API
// used by Store. Branches are copied from their base on creation.
type fakeGitHub struct {
	mu sync.Mutex

	defaultBranch string
	encoding      string
	createRefCode int
	branches      map[string]string
	files         map[string]map[string]string
	calls         []string
	puts          []putBody
	authHeaders   []string
}

type putBody struct {
	Message string `json:"message"`
	Content []byte `json:"content"`
	SHA     string `json:"sha"`
	Branch  string `json:"branch"`
}

func newFakeGitHub() *fakeGitHub {
	return &fakeGitHub{
		defaultBranch: "main",
		encoding:      "base64",
		branches:      map[string]string{"main": "abc123"},
		files:         map[string]map[string]string{"main": {}},
	}
}

func blobSHA(content string) string {
	sum := sha1.Sum([]byte(content)) //nolint:gosec // matches git blob ids
	return hex.EncodeToString(sum[:])
}

func (f *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.authHeaders = append(f.authHeaders, r.Header.Get("Authorization"))
	path := strings.TrimPrefix(r.URL.Path, fakeRepoPrefix)
	switch {
	case r.Method == http.MethodGet && path == "":
		f.calls = append(f.calls, "get-repo")
		writeFakeJSON(w, http.StatusOK, map[string]any{"name": "widgets", "default_branch": f.defaultBranch})

	case r.Method == http.MethodGet && (strings.HasPrefix(path, "/git/ref/heads/") || strings.HasPrefix(path, "/git/refs/heads/")):
		branch := path[strings.Index(path, "heads/")+len("heads/"):]
		f.calls = append(f.calls, "get-ref "+branch)
		sha, ok := f.branches[branch]
		if !ok {
			writeFakeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
			return
		}
		writeFakeJSON(w, http.StatusOK, map[string]any{
			"ref":    "refs/heads/" + branch,
			"object": map[string]any{"sha": sha, "type": "commit"},
		})

	case r.Method == http.MethodPost && path == "/git/refs":
		var body struct {
			Ref string `json:"ref"`
			SHA string `json:"sha"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		branch := strings.TrimPrefix(body.Ref, "refs/heads/")
		f.calls = append(f.calls, "create-ref "+branch)
		if f.createRefCode != 0 {
			writeFakeJSON(w, f.createRefCode, map[string]any{"message": "Forbidden"})
			return
		}
		if _, exists := f.branches[branch]; exists {
			writeFakeJSON(w, http.StatusUnprocessableEntity, map[string]any{"message": "Reference already exists"})
			return
		}
		f.branches[branch] = body.SHA
		files := make(map[string]string)
		for p, c := range f.files[f.defaultBranch] {
			files[p] = c
		}
		f.files[branch] = files
		writeFakeJSON(w, http.StatusCreated, map[string]any{
			"ref":    body.Ref,
			"object": map[string]any{"sha": body.SHA, "type": "commit"},
		})

	case r.Method == http.MethodGet && strings.HasPrefix(path, "/contents/"):
		filePath := strings.TrimPrefix(path, "/contents/")
		ref := r.URL.Query().Get("ref")
		if ref == "" {
			ref = f.defaultBranch
		}
		f.calls = append(f.calls, "get-contents "+ref)
		content, ok := f.files[ref][filePath]
		if !ok {
			writeFakeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
			return
		}
		encoded := ""
		if f.encoding == "base64" {
			encoded = base64.StdEncoding.EncodeToString([]byte(content))
		}
		writeFakeJSON(w, http.StatusOK, map[string]any{
			"type":     "file",
			"path":     filePath,
			"encoding": f.encoding,
			"content":  encoded,
			"sha":      blobSHA(content),
		})

	case r.Method == http.MethodPut && strings.HasPrefix(path, "/contents/"):
		filePath := strings.TrimPrefix(path, "/contents/")
		var body putBody
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.calls = append(f.calls, "put-contents "+body.Branch)
		f.puts = append(f.puts, body)

		files, ok := f.files[body.Branch]
		if !ok {
			writeFakeJSON(w, http.StatusNotFound, map[string]any{"message": "Branch not found"})
			return
		}
		if current, exists := files[filePath]; exists {
			if body.SHA == "" {
				writeFakeJSON(w, http.StatusUnprocessableEntity, map[string]any{"message": `"sha" wasn't supplied.`})
				return
			}
			if body.SHA != blobSHA(current) {
				writeFakeJSON(w, http.StatusConflict, map[string]any{"message": "sha does not match"})
				return
			}
		}
		files[filePath] = string(body.Content)
		writeFakeJSON(w, http.StatusOK, map[string]any{
			"content": map[string]any{"path": filePath, "sha": blobSHA(string(body.Content))},
			"commit":  map[string]any{"sha": "commit-" + blobSHA(string(body.Content))[:7]},
		})

	default:
		writeFakeJSON(w, http.StatusNotFound, map[string]any{"message": "unexpected " + r.Method + " " + r.URL.Path})
	}
}

func (f *fakeGitHub) recordedCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeGitHub) recordedAuth() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.authHeaders...)
}

func writeFakeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newTestStore starts fake behind an httptest server mounted the way GitHub
// Enterprise serves the REST API, and returns a Store talking to it through a
// token-authenticated client.
func newTestStore(t *testing.T, fake *fakeGitHub) *Store {
	t.Helper()

	srv := httptest.NewServer(http.StripPrefix(enterpriseAPIPrefix, fake))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.DiscardHandler)
	client, err := NewClientFromConfig(context.Background(), config.GitHubConfig{
		Token:      testToken,
		APIBaseURL: srv.URL,
		Timeout:    5 * time.Second,
	}, logger)
	require.NoError(t, err)
	require.NotNil(t, client)
	return NewStore(client, logger)
}
