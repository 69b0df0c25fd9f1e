package gitlab

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/AdenMGB/devtoolbox/internal/model"
)

func TestConvertCommit(t *testing.T) {
	date := time.Date(2024, 7, 9, 8, 30, 0, 0, time.UTC)
	commit := &gitlab.Commit{
		ID:           "f00dfeed",
		Message:      "rework diff engine",
		AuthorName:   "Dev",
		AuthorEmail:  "dev@example.com",
		AuthoredDate: &date,
		WebURL:       "https://gitlab.com/group/project/-/commit/f00dfeed",
		Stats:        &gitlab.CommitStats{Additions: 5, Deletions: 2},
	}

	result := convertCommit(commit)
	assert.Equal(t, "f00dfeed", result.SHA)
	assert.Equal(t, "rework diff engine", result.Message)
	assert.Equal(t, "Dev", result.Author.Name)
	assert.Equal(t, date, result.Timestamp)
	assert.Equal(t, 5, result.Stats.Additions)
	assert.Equal(t, 2, result.Stats.Deletions)
}

func TestConvertCommit_NoOptionalFields(t *testing.T) {
	result := convertCommit(&gitlab.Commit{ID: "abc"})
	assert.Equal(t, "abc", result.SHA)
	assert.True(t, result.Timestamp.IsZero())
	assert.Zero(t, result.Stats.Additions)
}

func TestConvertDiff(t *testing.T) {
	tests := []struct {
		name string
		diff *gitlab.Diff
		want *model.FileDiff
	}{
		{
			"modified",
			&gitlab.Diff{NewPath: "a.go", OldPath: "a.go", Diff: "@@ -1 +1 @@"},
			&model.FileDiff{Path: "a.go", Status: model.FileModified, Patch: "@@ -1 +1 @@"},
		},
		{
			"added",
			&gitlab.Diff{NewPath: "b.go", NewFile: true},
			&model.FileDiff{Path: "b.go", Status: model.FileAdded},
		},
		{
			"removed",
			&gitlab.Diff{NewPath: "c.go", OldPath: "c.go", DeletedFile: true},
			&model.FileDiff{Path: "c.go", Status: model.FileRemoved},
		},
		{
			"renamed",
			&gitlab.Diff{NewPath: "new.go", OldPath: "old.go", RenamedFile: true},
			&model.FileDiff{Path: "new.go", OldPath: "old.go", Status: model.FileRenamed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertDiff(tt.diff))
		})
	}
}
