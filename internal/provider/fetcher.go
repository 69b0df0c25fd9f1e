package provider

import (
	"context"

	"github.com/AdenMGB/devtoolbox/internal/model"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

const defaultListLimit = 20

// Fetcher provides utility methods for fetching commits by repository reference
type Fetcher struct {
	provider CommitProvider
	log      logze.Logger
}

// NewFetcher creates a new commit fetcher instance
func NewFetcher(provider CommitProvider) *Fetcher {
	return &Fetcher{
		provider: provider,
		log:      logze.With("component", "fetcher"),
	}
}

// FetchCommit retrieves one commit with diffs for a parsed repository reference
func (f *Fetcher) FetchCommit(ctx context.Context, ref *model.RepositoryReference, sha string) (*model.Commit, error) {
	if ref == nil {
		return nil, errm.New("repository reference is required")
	}

	commit, err := f.provider.GetCommit(ctx, ref.Owner+"/"+ref.Repo, sha)
	if err != nil {
		return nil, errm.Wrap(err, "failed to fetch commit")
	}

	// Providers do not all report totals, derive them from the files
	if commit.Stats.TotalFiles == 0 {
		commit.Stats.TotalFiles = len(commit.Files)
	}
	if commit.Stats.Additions == 0 && commit.Stats.Deletions == 0 {
		for _, file := range commit.Files {
			commit.Stats.Additions += file.Additions
			commit.Stats.Deletions += file.Deletions
		}
	}

	return commit, nil
}

// FetchRecentCommits retrieves the latest commits of the default branch
func (f *Fetcher) FetchRecentCommits(ctx context.Context, ref *model.RepositoryReference, limit int) ([]*model.Commit, error) {
	if ref == nil {
		return nil, errm.New("repository reference is required")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	commits, err := f.provider.ListCommits(ctx, ref.Owner+"/"+ref.Repo, limit)
	if err != nil {
		return nil, errm.Wrap(err, "failed to list commits")
	}

	return commits, nil
}
