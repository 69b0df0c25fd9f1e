package bitbucket

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maxbolgarin/cliex"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"

	"github.com/AdenMGB/devtoolbox/internal/model"
)

const defaultBaseURL = "https://api.bitbucket.org/2.0"

// Provider fetches commit metadata from Bitbucket
type Provider struct {
	config model.ProviderConfig
	logger logze.Logger
	client *cliex.HTTP
}

// New creates a new Bitbucket provider
func New(config model.ProviderConfig) (*Provider, error) {
	if config.Token == "" {
		return nil, errm.New("Bitbucket token is required")
	}
	log := logze.With("provider", "bitbucket")

	baseURL := defaultBaseURL
	if config.BaseURL != "" {
		baseURL = strings.TrimSuffix(config.BaseURL, "/")
	}

	cli, err := cliex.New(cliex.WithBaseURL(baseURL), cliex.WithLogger(log))
	if err != nil {
		return nil, errm.Wrap(err, "failed to create Bitbucket client")
	}
	cli.C().SetBasicAuth("x-auth-token", config.Token)

	return &Provider{
		client: cli,
		config: config,
		logger: log,
	}, nil
}

// GetCommit retrieves a single commit with its file diffs
func (p *Provider) GetCommit(ctx context.Context, projectID, sha string) (*model.Commit, error) {
	workspace, repoSlug, err := splitProjectID(projectID)
	if err != nil {
		return nil, err
	}

	var commit bitbucketCommit
	apiURL := fmt.Sprintf("repositories/%s/%s/commit/%s", workspace, repoSlug, sha)
	if _, err := p.client.Get(ctx, apiURL, &commit); err != nil {
		return nil, errm.Wrap(err, "failed to get commit from Bitbucket")
	}

	result := convertCommit(commit)

	// The diff endpoint returns one raw unified diff for the whole commit
	diffURL := fmt.Sprintf("repositories/%s/%s/diff/%s", workspace, repoSlug, sha)
	resp, err := p.client.Get(ctx, diffURL)
	if err != nil {
		return nil, errm.Wrap(err, "failed to get diff from Bitbucket")
	}
	result.Files = splitDiffContent(string(resp.Body()))
	result.Stats.TotalFiles = len(result.Files)

	return result, nil
}

// ListCommits retrieves recent commits of the default branch, without diffs
func (p *Provider) ListCommits(ctx context.Context, projectID string, limit int) ([]*model.Commit, error) {
	workspace, repoSlug, err := splitProjectID(projectID)
	if err != nil {
		return nil, err
	}

	var response bitbucketCommitList
	apiURL := fmt.Sprintf("repositories/%s/%s/commits?pagelen=%d", workspace, repoSlug, limit)
	if _, err := p.client.Get(ctx, apiURL, &response); err != nil {
		return nil, errm.Wrap(err, "failed to list commits from Bitbucket")
	}

	result := make([]*model.Commit, 0, len(response.Values))
	for _, commit := range response.Values {
		result = append(result, convertCommit(commit))
	}
	return result, nil
}

func splitProjectID(projectID string) (workspace, repoSlug string, err error) {
	parts := strings.Split(projectID, "/")
	if len(parts) != 2 {
		return "", "", errm.New("invalid Bitbucket project ID format, expected 'workspace/repo_slug'")
	}
	return parts[0], parts[1], nil
}

// convertCommit converts a Bitbucket commit to our model
func convertCommit(commit bitbucketCommit) *model.Commit {
	timestamp, _ := time.Parse(time.RFC3339, commit.Date)

	return &model.Commit{
		SHA:       commit.Hash,
		Message:   commit.Message,
		URL:       commit.Links.HTML.Href,
		Timestamp: timestamp,
		Author: model.User{
			Name:     commit.Author.User.DisplayName,
			Username: commit.Author.User.Nickname,
		},
	}
}

// splitDiffContent splits a raw unified diff into per-file entries
func splitDiffContent(diffContent string) []*model.FileDiff {
	var diffs []*model.FileDiff
	lines := strings.Split(diffContent, "\n")

	var current *model.FileDiff
	var isNew, isDeleted bool
	var diffLines []string

	flush := func() {
		if current == nil {
			return
		}
		current.Patch = strings.Join(diffLines, "\n")
		current.Additions, current.Deletions = countChanges(diffLines)
		switch {
		case isNew:
			current.Status = model.FileAdded
		case isDeleted:
			current.Status = model.FileRemoved
		case current.OldPath != "" && current.OldPath != current.Path:
			current.Status = model.FileRenamed
		default:
			current.Status = model.FileModified
			current.OldPath = ""
		}
		diffs = append(diffs, current)
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "diff --git"):
			flush()
			current = &model.FileDiff{}
			isNew, isDeleted = false, false
			diffLines = []string{line}

		case strings.HasPrefix(line, "--- ") && current != nil:
			if strings.Contains(line, "/dev/null") {
				isNew = true
			} else if path := strings.TrimPrefix(line, "--- a/"); path != "" {
				current.OldPath = path
			}
			diffLines = append(diffLines, line)

		case strings.HasPrefix(line, "+++ ") && current != nil:
			if strings.Contains(line, "/dev/null") {
				isDeleted = true
			} else if path := strings.TrimPrefix(line, "+++ b/"); path != "" {
				current.Path = path
			}
			diffLines = append(diffLines, line)

		case current != nil:
			diffLines = append(diffLines, line)
		}
	}
	flush()

	for _, diff := range diffs {
		if diff.Path == "" {
			diff.Path = diff.OldPath
		}
	}

	return diffs
}

func countChanges(lines []string) (additions, deletions int) {
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			additions++
		case strings.HasPrefix(line, "-"):
			deletions++
		}
	}
	return additions, deletions
}
