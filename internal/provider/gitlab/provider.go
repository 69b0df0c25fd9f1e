package gitlab

import (
	"context"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/AdenMGB/devtoolbox/internal/model"
)

const defaultBaseURL = "https://gitlab.com"

// Provider fetches commit metadata from GitLab
type Provider struct {
	client *gitlab.Client
	config model.ProviderConfig
	logger logze.Logger
}

// New creates a new GitLab provider
func New(config model.ProviderConfig) (*Provider, error) {
	if config.Token == "" {
		return nil, errm.New("GitLab token is required")
	}
	logger := logze.With("provider", "gitlab")

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client, err := gitlab.NewClient(config.Token, gitlab.WithBaseURL(baseURL))
	if err != nil {
		return nil, errm.Wrap(err, "failed to create GitLab client")
	}

	return &Provider{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// GetCommit retrieves a single commit with its file diffs
func (p *Provider) GetCommit(ctx context.Context, projectID, sha string) (*model.Commit, error) {
	commit, _, err := p.client.Commits.GetCommit(projectID, sha, nil, gitlab.WithContext(ctx))
	if err != nil {
		return nil, errm.Wrap(err, "failed to get commit from GitLab")
	}

	result := convertCommit(commit)

	// File changes come from a separate diff endpoint
	diffs, _, err := p.client.Commits.GetCommitDiff(projectID, sha, nil, gitlab.WithContext(ctx))
	if err != nil {
		return nil, errm.Wrap(err, "failed to get commit diff from GitLab")
	}
	for _, diff := range diffs {
		result.Files = append(result.Files, convertDiff(diff))
	}
	result.Stats.TotalFiles = len(result.Files)

	return result, nil
}

// ListCommits retrieves recent commits of the default branch, without diffs
func (p *Provider) ListCommits(ctx context.Context, projectID string, limit int) ([]*model.Commit, error) {
	opts := &gitlab.ListCommitsOptions{
		ListOptions: gitlab.ListOptions{PerPage: limit},
	}
	commits, _, err := p.client.Commits.ListCommits(projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		return nil, errm.Wrap(err, "failed to list commits from GitLab")
	}

	result := make([]*model.Commit, 0, len(commits))
	for _, commit := range commits {
		result = append(result, convertCommit(commit))
	}
	return result, nil
}

// convertCommit converts a GitLab commit to our model
func convertCommit(commit *gitlab.Commit) *model.Commit {
	result := &model.Commit{
		SHA:       commit.ID,
		Message:   commit.Message,
		URL:       commit.WebURL,
		Timestamp: lang.Deref(commit.AuthoredDate),
		Author: model.User{
			Name:  commit.AuthorName,
			Email: commit.AuthorEmail,
		},
	}

	if commit.Stats != nil {
		result.Stats.Additions = commit.Stats.Additions
		result.Stats.Deletions = commit.Stats.Deletions
	}

	return result
}

func convertDiff(diff *gitlab.Diff) *model.FileDiff {
	result := &model.FileDiff{
		Path:   diff.NewPath,
		Status: model.FileModified,
		Patch:  diff.Diff,
	}

	switch {
	case diff.NewFile:
		result.Status = model.FileAdded
	case diff.DeletedFile:
		result.Status = model.FileRemoved
		result.Path = diff.OldPath
	case diff.RenamedFile:
		result.Status = model.FileRenamed
		result.OldPath = diff.OldPath
	}

	return result
}
