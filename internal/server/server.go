// Package server exposes the developer tools as a JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/logze/v2"
	"github.com/maxbolgarin/servex/v2"

	"github.com/AdenMGB/devtoolbox/internal/model"
	"github.com/AdenMGB/devtoolbox/internal/provider"
	"github.com/AdenMGB/devtoolbox/internal/tools/color"
	"github.com/AdenMGB/devtoolbox/internal/tools/diff"
	"github.com/AdenMGB/devtoolbox/internal/tools/hash"
	"github.com/AdenMGB/devtoolbox/internal/tools/repo"
	"github.com/AdenMGB/devtoolbox/internal/tools/token"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Server serves the developer tool endpoints
type Server struct {
	hasher  *hash.Pipeline
	fetcher *provider.Fetcher
	config  Config
	log     logze.Logger
	server  *servex.Server
}

// New creates a new tool API server.
// The fetcher may be nil when no hosting provider is configured; the
// commit endpoint then reports that instead of fetching.
func New(cfg Config, hasher *hash.Pipeline, fetcher *provider.Fetcher) (*Server, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "validate config")
	}

	log := logze.With("module", "server")

	server, err := servex.NewServer(
		servex.WithReadTimeout(cfg.Timeout),
		servex.WithIdleTimeout(cfg.Timeout*2),
		servex.WithLogger(log),
		servex.WithHealthEndpoint(),
		servex.WithDefaultMetrics(),
		servex.WithCertificate(cfg.Certificate),
	)
	if err != nil {
		return nil, erro.Wrap(err, "failed to create server")
	}

	s := &Server{
		hasher:  hasher,
		fetcher: fetcher,
		config:  cfg,
		log:     log,
		server:  server,
	}

	server.HandleFunc("/api/v1/color", s.handleColor)
	server.HandleFunc("/api/v1/diff", s.handleDiff)
	server.HandleFunc("/api/v1/hash", s.handleHash)
	server.HandleFunc("/api/v1/hash/file", s.handleHashFile)
	server.HandleFunc("/api/v1/token", s.handleToken)
	server.HandleFunc("/api/v1/repo", s.handleRepo)
	server.HandleFunc("/api/v1/commit", s.handleCommit)
	server.HandleFunc("/api/v1/commits", s.handleCommits)

	return s, nil
}

// Start starts the API server
func (s *Server) Start(ctx context.Context) error {
	if s.config.EnableHTTPS {
		return s.server.StartHTTPS(s.config.Address)
	}
	return s.server.StartHTTP(s.config.Address)
}

// Stop stops the API server
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	var req colorRequest
	if !s.readRequest(w, r, &req) {
		return
	}

	c, err := color.Parse(req.Hex)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeResult(w, colorResult{
		RGB: c,
		Hex: color.Hex(c),
		HSL: color.ToHSL(c),
	})
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	ctx := servex.NewContext(w, r)

	var req diffRequest
	if !s.readRequest(w, r, &req) {
		return
	}

	granularity := diff.Granularity(req.Granularity)
	if granularity == "" {
		granularity = diff.Lines
	}
	if granularity != diff.Lines && granularity != diff.Words {
		ctx.BadRequest(errors.New("unknown granularity"), "granularity must be 'lines' or 'words'")
		return
	}

	segments := diff.Compute(req.A, req.B, granularity)
	s.writeResult(w, diffResult{Segments: segments})
}

func (s *Server) handleHash(w http.ResponseWriter, r *http.Request) {
	var req hashRequest
	if !s.readRequest(w, r, &req) {
		return
	}

	digests, err := s.hasher.Compute([]byte(req.Text))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResult(w, hashResult{Digests: digests})
}

// handleHashFile digests the raw request body as a binary blob
func (s *Server) handleHashFile(w http.ResponseWriter, r *http.Request) {
	ctx := servex.NewContext(w, r)

	body, err := ctx.Read()
	if err != nil {
		ctx.BadRequest(err, "failed to read request body")
		return
	}

	digests, err := s.hasher.Compute(body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResult(w, hashResult{Digests: digests})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !s.readRequest(w, r, &req) {
		return
	}

	decoded, err := token.Decode(req.Token)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeResult(w, tokenResult{
		Header:  decoded.Header,
		Payload: decoded.Payload,
		Expiry:  decoded.Expiry.String(),
	})
}

func (s *Server) handleRepo(w http.ResponseWriter, r *http.Request) {
	var req repoRequest
	if !s.readRequest(w, r, &req) {
		return
	}

	ref, err := repo.ParseReference(req.URL)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResult(w, ref)
}

func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	ctx := servex.NewContext(w, r)

	if s.fetcher == nil {
		s.writeError(w, errors.New("no hosting provider is configured"))
		return
	}

	repoURL := r.URL.Query().Get("repo")
	sha := r.URL.Query().Get("sha")
	if repoURL == "" || sha == "" {
		ctx.BadRequest(errors.New("missing query parameters"), "repo and sha query parameters are required")
		return
	}

	ref, err := repo.ParseReference(repoURL)
	if err != nil {
		s.writeError(w, err)
		return
	}

	timer := abstract.StartTimer()
	commit, err := s.fetcher.FetchCommit(r.Context(), ref, sha)
	if err != nil {
		s.writeError(w, err)
		return
	}

	view := renderCommit(commit)
	s.log.Info("rendered commit",
		"repo", ref.Owner+"/"+ref.Repo,
		"sha", view.ShortSHA,
		"files", len(view.Files),
		"elapsed_time", timer.ElapsedTime().String(),
	)
	s.writeResult(w, view)
}

// handleCommits lists the latest commits of a repository, without diffs
func (s *Server) handleCommits(w http.ResponseWriter, r *http.Request) {
	ctx := servex.NewContext(w, r)

	if s.fetcher == nil {
		s.writeError(w, errors.New("no hosting provider is configured"))
		return
	}

	repoURL := r.URL.Query().Get("repo")
	if repoURL == "" {
		ctx.BadRequest(errors.New("missing query parameters"), "repo query parameter is required")
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			ctx.BadRequest(err, "limit must be a non-negative integer")
			return
		}
	}

	ref, err := repo.ParseReference(repoURL)
	if err != nil {
		s.writeError(w, err)
		return
	}

	commits, err := s.fetcher.FetchRecentCommits(r.Context(), ref, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result := commitsResult{Commits: make([]commitSummary, 0, len(commits))}
	for _, commit := range commits {
		result.Commits = append(result.Commits, commitSummary{
			SHA:      commit.SHA,
			ShortSHA: repo.ShortSHA(commit.SHA),
			Message:  commit.Message,
			Author:   commit.Author,
			Date:     commit.Timestamp.Format(time.RFC3339),
			URL:      commit.URL,
		})
	}
	s.writeResult(w, result)
}

// renderCommit classifies files and renders their patches for display
func renderCommit(commit *model.Commit) commitView {
	view := commitView{
		SHA:      commit.SHA,
		ShortSHA: repo.ShortSHA(commit.SHA),
		Message:  commit.Message,
		Author:   commit.Author,
		Date:     commit.Timestamp.Format(time.RFC3339),
		URL:      commit.URL,
		Stats:    commit.Stats,
	}

	for _, file := range commit.Files {
		view.Files = append(view.Files, fileView{
			Path:      file.Path,
			OldPath:   file.OldPath,
			Status:    repo.ClassifyFile(file),
			Additions: file.Additions,
			Deletions: file.Deletions,
			Lines:     repo.RenderPatch(file),
		})
	}

	return view
}

// readRequest reads and unmarshals a JSON request body,
// responding with 400 itself when the body is unusable
func (s *Server) readRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	ctx := servex.NewContext(w, r)

	body, err := ctx.Read()
	if err != nil {
		ctx.BadRequest(err, "failed to read request body")
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		ctx.BadRequest(err, "failed to parse request body")
		return false
	}
	return true
}

func (s *Server) writeResult(w http.ResponseWriter, result any) {
	s.writeJSON(w, http.StatusOK, response{Result: result})
}

// writeError surfaces a domain failure as a message-carrying result,
// not a transport fault
func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusOK, response{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body response) {
	data, err := json.Marshal(body)
	if err != nil {
		s.log.Error("failed to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		s.log.Error("failed to write response", "error", err)
	}
}
