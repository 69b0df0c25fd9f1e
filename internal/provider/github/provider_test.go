package github

import (
	"testing"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdenMGB/devtoolbox/internal/model"
)

func TestConvertCommit(t *testing.T) {
	date := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	rc := &github.RepositoryCommit{
		SHA:     github.String("a1b2c3d4"),
		HTMLURL: github.String("https://github.com/acme/widgets/commit/a1b2c3d4"),
		Commit: &github.Commit{
			Message: github.String("add color converter"),
			Author: &github.CommitAuthor{
				Name:  github.String("Dev"),
				Email: github.String("dev@example.com"),
				Date:  &github.Timestamp{Time: date},
			},
		},
		Author: &github.User{Login: github.String("dev")},
		Stats:  &github.CommitStats{Additions: github.Int(10), Deletions: github.Int(2)},
		Files: []*github.CommitFile{
			{
				Filename:  github.String("color.go"),
				Status:    github.String("added"),
				Patch:     github.String("@@ -0,0 +1 @@\n+package color"),
				Additions: github.Int(1),
			},
			{
				Filename:         github.String("renamed.go"),
				PreviousFilename: github.String("original.go"),
				Status:           github.String("renamed"),
			},
			{
				Filename: github.String("untouched-status.go"),
			},
		},
	}

	commit := convertCommit(rc)

	assert.Equal(t, "a1b2c3d4", commit.SHA)
	assert.Equal(t, "add color converter", commit.Message)
	assert.Equal(t, "Dev", commit.Author.Name)
	assert.Equal(t, "dev", commit.Author.Username)
	assert.Equal(t, date, commit.Timestamp)
	assert.Equal(t, 10, commit.Stats.Additions)
	assert.Equal(t, 3, commit.Stats.TotalFiles)

	require.Len(t, commit.Files, 3)
	assert.Equal(t, model.FileAdded, commit.Files[0].Status)
	assert.Equal(t, model.FileRenamed, commit.Files[1].Status)
	assert.Equal(t, "original.go", commit.Files[1].OldPath)
	assert.Equal(t, model.FileModified, commit.Files[2].Status)
}

func TestConvertStatus(t *testing.T) {
	assert.Equal(t, model.FileAdded, convertStatus("added"))
	assert.Equal(t, model.FileRemoved, convertStatus("removed"))
	assert.Equal(t, model.FileRenamed, convertStatus("renamed"))
	assert.Equal(t, model.FileModified, convertStatus("modified"))
	assert.Equal(t, model.FileModified, convertStatus("changed"))
	assert.Equal(t, model.FileModified, convertStatus(""))
}

func TestSplitProjectID(t *testing.T) {
	owner, repo, err := splitProjectID("acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "widgets", repo)

	_, _, err = splitProjectID("not-a-project-id")
	assert.Error(t, err)

	_, _, err = splitProjectID("a/b/c")
	assert.Error(t, err)
}
