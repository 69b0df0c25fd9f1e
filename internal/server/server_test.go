package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maxbolgarin/logze/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdenMGB/devtoolbox/internal/model"
	"github.com/AdenMGB/devtoolbox/internal/provider"
	"github.com/AdenMGB/devtoolbox/internal/tools/hash"
)

type mockProvider struct {
	GetCommitFunc   func(ctx context.Context, projectID, sha string) (*model.Commit, error)
	ListCommitsFunc func(ctx context.Context, projectID string, limit int) ([]*model.Commit, error)
}

func (m *mockProvider) GetCommit(ctx context.Context, projectID, sha string) (*model.Commit, error) {
	return m.GetCommitFunc(ctx, projectID, sha)
}

func (m *mockProvider) ListCommits(ctx context.Context, projectID string, limit int) ([]*model.Commit, error) {
	return m.ListCommitsFunc(ctx, projectID, limit)
}

func newTestServer(t *testing.T, commitProvider provider.CommitProvider) *Server {
	t.Helper()

	hasher, err := hash.NewPipeline()
	require.NoError(t, err)
	t.Cleanup(hasher.Close)

	s := &Server{
		hasher: hasher,
		log:    logze.With("module", "server-test"),
	}
	if commitProvider != nil {
		s.fetcher = provider.NewFetcher(commitProvider)
	}
	return s
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target, body string) (int, response) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler(rr, req)

	var resp response
	if rr.Body.Len() > 0 && strings.Contains(rr.Header().Get("Content-Type"), "json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	}
	return rr.Code, resp
}

func TestHandleColor(t *testing.T) {
	s := newTestServer(t, nil)

	code, resp := doJSON(t, s.handleColor, http.MethodPost, "/api/v1/color", `{"hex":"#1a2b3c"}`)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Error)

	result := resp.Result.(map[string]any)
	assert.Equal(t, "#1a2b3c", result["hex"])

	rgb := result["rgb"].(map[string]any)
	assert.EqualValues(t, 0x1a, rgb["r"])
	assert.EqualValues(t, 0x2b, rgb["g"])
	assert.EqualValues(t, 0x3c, rgb["b"])
}

func TestHandleColor_InvalidInput(t *testing.T) {
	s := newTestServer(t, nil)

	code, resp := doJSON(t, s.handleColor, http.MethodPost, "/api/v1/color", `{"hex":"nope"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, resp.Result)
	assert.Contains(t, resp.Error, "invalid format")
}

func TestHandleDiff(t *testing.T) {
	s := newTestServer(t, nil)

	code, resp := doJSON(t, s.handleDiff, http.MethodPost, "/api/v1/diff",
		`{"a":"one\ntwo\n","b":"one\nTWO\n","granularity":"lines"}`)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Error)

	segments := resp.Result.(map[string]any)["segments"].([]any)
	require.Len(t, segments, 3)
	first := segments[0].(map[string]any)
	assert.Equal(t, "one\n", first["value"])
	assert.Equal(t, "unchanged", first["kind"])
}

func TestHandleDiff_BadGranularity(t *testing.T) {
	s := newTestServer(t, nil)

	code, _ := doJSON(t, s.handleDiff, http.MethodPost, "/api/v1/diff",
		`{"a":"x","b":"y","granularity":"chars"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHandleHash(t *testing.T) {
	s := newTestServer(t, nil)

	code, resp := doJSON(t, s.handleHash, http.MethodPost, "/api/v1/hash", `{"text":""}`)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Error)

	digests := resp.Result.(map[string]any)["digests"].([]any)
	require.Len(t, digests, 5)
	first := digests[0].(map[string]any)
	assert.Equal(t, "MD5", first["algorithm"])
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", first["value"])
}

func TestHandleHashFile(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/hash/file", strings.NewReader("abc"))
	rr := httptest.NewRecorder()
	s.handleHashFile(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	digests := resp.Result.(map[string]any)["digests"].([]any)
	first := digests[0].(map[string]any)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", first["value"])
}

func TestHandleToken_InvalidFormat(t *testing.T) {
	s := newTestServer(t, nil)

	code, resp := doJSON(t, s.handleToken, http.MethodPost, "/api/v1/token", `{"token":"a.b"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, resp.Result)
	assert.Contains(t, resp.Error, "three dot-separated segments")
}

func TestHandleRepo(t *testing.T) {
	s := newTestServer(t, nil)

	code, resp := doJSON(t, s.handleRepo, http.MethodPost, "/api/v1/repo",
		`{"url":"https://github.com/acme/widgets"}`)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Error)

	ref := resp.Result.(map[string]any)
	assert.Equal(t, "github", ref["provider"])
	assert.Equal(t, "acme", ref["owner"])
	assert.Equal(t, "widgets", ref["repo"])
}

func TestHandleCommit_NoProvider(t *testing.T) {
	s := newTestServer(t, nil)

	code, resp := doJSON(t, s.handleCommit, http.MethodGet,
		"/api/v1/commit?repo=https://github.com/acme/widgets&sha=abc1234", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, resp.Error, "no hosting provider")
}

func TestHandleCommit(t *testing.T) {
	commit := &model.Commit{
		SHA:     "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0",
		Message: "fix lexer panic",
		Author:  model.User{Name: "Dev", Username: "dev"},
		URL:     "https://github.com/acme/widgets/commit/a1b2c3d",
		Files: []*model.FileDiff{
			{Path: "lexer.go", Patch: "@@ -1 +1 @@\n-old\n+new", Additions: 1, Deletions: 1},
		},
	}
	s := newTestServer(t, &mockProvider{
		GetCommitFunc: func(ctx context.Context, projectID, sha string) (*model.Commit, error) {
			assert.Equal(t, "acme/widgets", projectID)
			assert.Equal(t, commit.SHA, sha)
			return commit, nil
		},
	})

	code, resp := doJSON(t, s.handleCommit, http.MethodGet,
		"/api/v1/commit?repo=https://github.com/acme/widgets&sha="+commit.SHA, "")
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Error)

	view := resp.Result.(map[string]any)
	assert.Equal(t, "a1b2c3d", view["short_sha"])

	files := view["files"].([]any)
	require.Len(t, files, 1)
	file := files[0].(map[string]any)
	assert.Equal(t, "modified", file["status"], "missing status defaults to modified")

	lines := file["lines"].([]any)
	require.Len(t, lines, 3)
	assert.Equal(t, "removed", lines[1].(map[string]any)["kind"])
	assert.Equal(t, "added", lines[2].(map[string]any)["kind"])
}

func TestHandleCommits(t *testing.T) {
	s := newTestServer(t, &mockProvider{
		ListCommitsFunc: func(ctx context.Context, projectID string, limit int) ([]*model.Commit, error) {
			assert.Equal(t, "acme/widgets", projectID)
			assert.Equal(t, 5, limit)
			return []*model.Commit{
				{SHA: "a1b2c3d4e5f6", Message: "first", URL: "https://github.com/acme/widgets/commit/a1b2c3d"},
				{SHA: "b2c3d4e5f6a7", Message: "second"},
			}, nil
		},
	})

	code, resp := doJSON(t, s.handleCommits, http.MethodGet,
		"/api/v1/commits?repo=https://github.com/acme/widgets&limit=5", "")
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Error)

	commits := resp.Result.(map[string]any)["commits"].([]any)
	require.Len(t, commits, 2)
	first := commits[0].(map[string]any)
	assert.Equal(t, "a1b2c3d", first["short_sha"])
	assert.Equal(t, "first", first["message"])
}

func TestHandleCommits_NoProvider(t *testing.T) {
	s := newTestServer(t, nil)

	code, resp := doJSON(t, s.handleCommits, http.MethodGet,
		"/api/v1/commits?repo=https://github.com/acme/widgets", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, resp.Error, "no hosting provider")
}

func TestHandleCommits_BadLimit(t *testing.T) {
	s := newTestServer(t, &mockProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/commits?repo=https://github.com/acme/widgets&limit=lots", nil)
	rr := httptest.NewRecorder()
	s.handleCommits(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleCommit_MissingParams(t *testing.T) {
	s := newTestServer(t, &mockProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/commit", nil)
	rr := httptest.NewRecorder()
	s.handleCommit(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRenderCommit_Stats(t *testing.T) {
	commit := &model.Commit{
		SHA:   "1234567890",
		Stats: model.CommitStats{TotalFiles: 2, Additions: 3, Deletions: 1},
		Files: []*model.FileDiff{
			{Path: "a.go", Status: model.FileAdded},
			{Path: "b.go", Status: model.FileRemoved},
		},
	}

	view := renderCommit(commit)
	assert.Equal(t, "1234567", view.ShortSHA)
	assert.Equal(t, commit.Stats, view.Stats)
	require.Len(t, view.Files, 2)
	assert.Equal(t, model.FileAdded, view.Files[0].Status)
	assert.Equal(t, model.FileRemoved, view.Files[1].Status)
}
