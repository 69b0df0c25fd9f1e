// Package provider fetches commit metadata from git hosting services.
// The tool cores never touch the network; they consume the finished
// model.Commit a provider hands back.
package provider

import (
	"context"

	"github.com/AdenMGB/devtoolbox/internal/model"
	"github.com/AdenMGB/devtoolbox/internal/provider/bitbucket"
	"github.com/AdenMGB/devtoolbox/internal/provider/github"
	"github.com/AdenMGB/devtoolbox/internal/provider/gitlab"
	"github.com/maxbolgarin/erro"
)

// CommitProvider retrieves commit metadata from a hosting service
type CommitProvider interface {
	// GetCommit returns one commit with its file diffs,
	// projectID is in "owner/repo" form
	GetCommit(ctx context.Context, projectID, sha string) (*model.Commit, error)

	// ListCommits returns the most recent commits of the default branch,
	// without file diffs
	ListCommits(ctx context.Context, projectID string, limit int) ([]*model.Commit, error)
}

// New creates a new hosting provider based on the configuration
func New(cfg Config) (CommitProvider, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "validate config")
	}

	cfgForProvider := model.ProviderConfig{
		BaseURL: cfg.BaseURL,
		Token:   cfg.Token,
	}

	var provider CommitProvider
	var err error

	switch cfg.Type {
	case GitLab:
		provider, err = gitlab.New(cfgForProvider)
	case GitHub:
		provider, err = github.New(cfgForProvider)
	case Bitbucket:
		provider, err = bitbucket.New(cfgForProvider)
	default:
		return nil, erro.New("unsupported provider type: %s", cfg.Type)
	}
	if err != nil {
		return nil, erro.Wrap(err, "failed to create provider")
	}

	return provider, nil
}
