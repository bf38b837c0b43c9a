package review

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	gh "github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/code-optimizer/internal/core"
	"github.com/sevigo/code-optimizer/internal/github"
	"github.com/sevigo/code-optimizer/mocks"
)

var testLogger = slog.New(slog.DiscardHandler)

func sampleReport() *core.ReviewReport {
	return &core.ReviewReport{
		Score:    64,
		Severity: core.SeverityMinor,
		Summary:  "Fine overall.",
		Issues: []core.Issue{{
			Category: core.CategoryReadability,
			Severity: core.SeverityMinor,
			Title:    "Naming",
		}},
		Complexity:    core.Complexity{Time: "O(n)", Space: "O(1)"},
		OptimizedCode: "x = 1",
	}
}

func TestService_ReviewSnippet(t *testing.T) {
	ctrl := gomock.NewController(t)
	reviewer := mocks.NewMockReviewer(ctrl)
	reviewer.EXPECT().ReviewCode(gomock.Any(), "x=1", "Python").Return(sampleReport(), nil)

	svc := NewService(reviewer, nil, testLogger)
	report, err := svc.ReviewSnippet(context.Background(), "\n  x=1 \t\n", "Python")
	require.NoError(t, err)
	assert.Equal(t, sampleReport(), report)
}

func TestService_ReviewSnippet_Validation(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		language string
		wantMsg  string
	}{
		{name: "empty code", code: "", language: "Go", wantMsg: MsgCodeRequired},
		{name: "whitespace code", code: " \n\t ", language: "Go", wantMsg: MsgCodeRequired},
		{name: "empty language", code: "x := 1", language: "", wantMsg: MsgLanguageRequired},
		{name: "both empty reports code first", code: "", language: "", wantMsg: MsgCodeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reviewer := mocks.NewMockReviewer(ctrl)
			reviewer.EXPECT().ReviewCode(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := NewService(reviewer, nil, testLogger).ReviewSnippet(context.Background(), tt.code, tt.language)
			require.ErrorIs(t, err, core.ErrInvalidInput)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestService_ReviewRepositoryFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	reviewer := mocks.NewMockReviewer(ctrl)
	store := mocks.NewMockCodeStore(ctrl)
	ctx := context.Background()
	loc := core.RepoLocation{Owner: "acme", Repo: "widgets"}

	gomock.InOrder(
		store.EXPECT().FetchFileContent(ctx, "https://github.com/acme/widgets", "src/app.py").
			Return(&core.FileContent{Location: loc, Path: "src/app.py", Content: "x=1\n", SHA: "s1"}, nil),
		reviewer.EXPECT().ReviewCode(ctx, "x=1\n", "Python").Return(sampleReport(), nil),
		store.EXPECT().GetDefaultBranch(ctx, "acme", "widgets").Return("main", nil),
		store.EXPECT().CreateBranchAndCommit(ctx, "acme", "widgets", "src/app.py", "x = 1", "main").
			Return(&core.CommitResult{BranchName: "optimized/src_app.py"}, nil),
	)

	result, err := NewService(reviewer, store, testLogger).ReviewRepositoryFile(ctx, "https://github.com/acme/widgets", "src/app.py")
	require.NoError(t, err)

	assert.Equal(t, *sampleReport(), result.ReviewReport)
	assert.Equal(t, "optimized/src_app.py", result.Branch)
	assert.Equal(t, "Optimized code committed to branch: optimized/src_app.py", result.Message)
}

func TestService_ReviewRepositoryFile_Validation(t *testing.T) {
	tests := []struct {
		name     string
		repoURL  string
		filePath string
		noStore  bool
		wantErr  error
		wantMsg  string
	}{
		{name: "missing URL", filePath: "a.js", wantErr: core.ErrInvalidInput, wantMsg: MsgRepoURLRequired},
		{name: "missing path", repoURL: "https://github.com/a/b", wantErr: core.ErrInvalidInput, wantMsg: MsgFilePathRequired},
		{name: "no credential", repoURL: "https://github.com/a/b", filePath: "a.js", noStore: true, wantErr: core.ErrMissingCredential, wantMsg: MsgGitHubNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reviewer := mocks.NewMockReviewer(ctrl)
			reviewer.EXPECT().ReviewCode(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			var store core.CodeStore
			if !tt.noStore {
				mockStore := mocks.NewMockCodeStore(ctrl)
				mockStore.EXPECT().FetchFileContent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				store = mockStore
			}

			_, err := NewService(reviewer, store, testLogger).ReviewRepositoryFile(context.Background(), tt.repoURL, tt.filePath)
			require.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestService_ReviewRepositoryFile_AbortsOnFailure(t *testing.T) {
	upstream := &core.UpstreamError{Service: "github", StatusCode: http.StatusNotFound, Err: errors.New("Not Found")}

	t.Run("fetch failure skips the model", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reviewer := mocks.NewMockReviewer(ctrl)
		store := mocks.NewMockCodeStore(ctrl)
		store.EXPECT().FetchFileContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstream)
		reviewer.EXPECT().ReviewCode(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := NewService(reviewer, store, testLogger).ReviewRepositoryFile(context.Background(), "https://github.com/a/b", "x.js")
		assert.Equal(t, http.StatusNotFound, core.HTTPStatus(err, http.StatusInternalServerError))
	})

	t.Run("malformed model output skips the commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reviewer := mocks.NewMockReviewer(ctrl)
		store := mocks.NewMockCodeStore(ctrl)
		store.EXPECT().FetchFileContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&core.FileContent{Location: core.RepoLocation{Owner: "a", Repo: "b"}, Content: "x"}, nil)
		reviewer.EXPECT().ReviewCode(gomock.Any(), "x", "JavaScript").
			Return(nil, core.NewMalformedResponseError("no JSON object found", "nope"))
		store.EXPECT().GetDefaultBranch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		store.EXPECT().CreateBranchAndCommit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := NewService(reviewer, store, testLogger).ReviewRepositoryFile(context.Background(), "https://github.com/a/b", "x.xyz")
		var malformed *core.MalformedResponseError
		assert.ErrorAs(t, err, &malformed)
	})
}

// TestService_RepositoryFlowOverGitHubClient drives the real github.Store over
// a mocked REST client and checks the complete call order.
func TestService_RepositoryFlowOverGitHubClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)
	ctx := context.Background()

	const path = "src/utils/helper!.js"
	const branch = "optimized/src_utils_helper_.js"

	gomock.InOrder(
		client.EXPECT().GetContents(ctx, "acme", "widgets", path, "").
			Return(&gh.RepositoryContent{Encoding: gh.Ptr("base64"), Content: gh.Ptr("eD0x"), SHA: gh.Ptr("base-sha")}, nil),
		reviewer.EXPECT().ReviewCode(ctx, "x=1", "JavaScript").Return(sampleReport(), nil),
		client.EXPECT().GetRepository(ctx, "acme", "widgets").
			Return(&gh.Repository{DefaultBranch: gh.Ptr("trunk")}, nil),
		client.EXPECT().GetRef(ctx, "acme", "widgets", "heads/trunk").
			Return(&gh.Reference{Object: &gh.GitObject{SHA: gh.Ptr("head-sha")}}, nil),
		client.EXPECT().CreateRef(ctx, "acme", "widgets", "refs/heads/"+branch, "head-sha").
			Return(nil, &core.UpstreamError{Service: "github", StatusCode: http.StatusUnprocessableEntity, Err: errors.New("Reference already exists")}),
		client.EXPECT().GetContents(ctx, "acme", "widgets", path, branch).
			Return(&gh.RepositoryContent{SHA: gh.Ptr("branch-sha")}, nil),
		client.EXPECT().PutFile(ctx, "acme", "widgets", path, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, opts *gh.RepositoryContentFileOptions) (*gh.RepositoryContentResponse, error) {
				assert.Equal(t, branch, opts.GetBranch())
				assert.Equal(t, "branch-sha", opts.GetSHA())
				assert.Equal(t, "chore: AI-optimized "+path, opts.GetMessage())
				assert.Equal(t, []byte("x = 1"), opts.Content)
				return &gh.RepositoryContentResponse{}, nil
			}),
	)

	store := github.NewStore(client, testLogger)
	result, err := NewService(reviewer, store, testLogger).ReviewRepositoryFile(ctx, "https://github.com/acme/widgets.git", path)
	require.NoError(t, err)
	assert.Equal(t, branch, result.Branch)
}
