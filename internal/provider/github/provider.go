package github

import (
	"context"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
	"golang.org/x/oauth2"

	"github.com/AdenMGB/devtoolbox/internal/model"
)

const defaultBaseURL = "https://github.com"

// Provider fetches commit metadata from GitHub
type Provider struct {
	client *github.Client
	config model.ProviderConfig
	logger logze.Logger
}

// New creates a new GitHub provider
func New(config model.ProviderConfig) (*Provider, error) {
	if config.Token == "" {
		return nil, errm.New("GitHub token is required")
	}
	log := logze.With("provider", "github")

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: config.Token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(tc)

	// Set base URL if provided (for GitHub Enterprise)
	if config.BaseURL != "" && config.BaseURL != defaultBaseURL {
		var err error
		client, err = github.NewClient(tc).WithEnterpriseURLs(config.BaseURL, config.BaseURL)
		if err != nil {
			return nil, errm.Wrap(err, "failed to create GitHub Enterprise client")
		}
	}

	return &Provider{
		client: client,
		config: config,
		logger: log,
	}, nil
}

// GetCommit retrieves a single commit with its file diffs
func (p *Provider) GetCommit(ctx context.Context, projectID, sha string) (*model.Commit, error) {
	owner, repo, err := splitProjectID(projectID)
	if err != nil {
		return nil, err
	}

	commit, _, err := p.client.Repositories.GetCommit(ctx, owner, repo, sha, &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, errm.Wrap(err, "failed to get commit from GitHub")
	}

	return convertCommit(commit), nil
}

// ListCommits retrieves recent commits of the default branch, without diffs
func (p *Provider) ListCommits(ctx context.Context, projectID string, limit int) ([]*model.Commit, error) {
	owner, repo, err := splitProjectID(projectID)
	if err != nil {
		return nil, err
	}

	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: limit},
	}
	commits, _, err := p.client.Repositories.ListCommits(ctx, owner, repo, opts)
	if err != nil {
		return nil, errm.Wrap(err, "failed to list commits from GitHub")
	}

	result := make([]*model.Commit, 0, len(commits))
	for _, commit := range commits {
		result = append(result, convertCommit(commit))
	}
	return result, nil
}

func splitProjectID(projectID string) (owner, repo string, err error) {
	parts := strings.Split(projectID, "/")
	if len(parts) != 2 {
		return "", "", errm.New("invalid GitHub project ID format, expected 'owner/repo'")
	}
	return parts[0], parts[1], nil
}

// convertCommit converts a GitHub commit to our model
func convertCommit(rc *github.RepositoryCommit) *model.Commit {
	commit := &model.Commit{
		SHA: rc.GetSHA(),
		URL: rc.GetHTMLURL(),
	}

	if c := rc.GetCommit(); c != nil {
		commit.Message = c.GetMessage()
		if author := c.GetAuthor(); author != nil {
			commit.Author.Name = author.GetName()
			commit.Author.Email = author.GetEmail()
			commit.Timestamp = author.GetDate().Time
		}
	}
	if rc.Author != nil {
		commit.Author.Username = rc.Author.GetLogin()
	}
	if stats := rc.GetStats(); stats != nil {
		commit.Stats.Additions = stats.GetAdditions()
		commit.Stats.Deletions = stats.GetDeletions()
	}

	for _, file := range rc.Files {
		commit.Files = append(commit.Files, convertFile(file))
	}
	commit.Stats.TotalFiles = len(commit.Files)

	return commit
}

func convertFile(file *github.CommitFile) *model.FileDiff {
	diff := &model.FileDiff{
		Path:      file.GetFilename(),
		OldPath:   file.GetPreviousFilename(),
		Status:    convertStatus(file.GetStatus()),
		Patch:     file.GetPatch(),
		Additions: file.GetAdditions(),
		Deletions: file.GetDeletions(),
	}

	// Renamed files may come without the previous name
	if diff.Status == model.FileRenamed && diff.OldPath == "" {
		diff.OldPath = diff.Path
	}

	return diff
}

func convertStatus(status string) model.FileStatus {
	switch status {
	case "added":
		return model.FileAdded
	case "removed":
		return model.FileRemoved
	case "renamed":
		return model.FileRenamed
	default:
		return model.FileModified
	}
}
