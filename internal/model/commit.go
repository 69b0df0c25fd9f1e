package model

import "time"

// ProviderConfig represents provider-specific configuration
type ProviderConfig struct {
	BaseURL string
	Token   string
}

// User represents a commit author across different providers
type User struct {
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// FileStatus classifies how a commit changed one file
type FileStatus string

const (
	FileAdded    FileStatus = "added"
	FileRemoved  FileStatus = "removed"
	FileRenamed  FileStatus = "renamed"
	FileModified FileStatus = "modified"
)

// FileDiff represents changes in a single file of a commit
type FileDiff struct {
	Path      string     `json:"path"`
	OldPath   string     `json:"old_path,omitempty"`
	Status    FileStatus `json:"status,omitempty"`
	Patch     string     `json:"patch,omitempty"`
	Additions int        `json:"additions,omitempty"`
	Deletions int        `json:"deletions,omitempty"`
}

// Commit represents a git commit across different providers
type Commit struct {
	SHA       string      `json:"sha"`
	Message   string      `json:"message"`
	Author    User        `json:"author"`
	Timestamp time.Time   `json:"timestamp"`
	URL       string      `json:"url"`
	Files     []*FileDiff `json:"files"`

	// Statistics
	Stats CommitStats `json:"stats"`
}

// CommitStats represents commit statistics
type CommitStats struct {
	TotalFiles int `json:"total_files"`
	Additions  int `json:"additions"`
	Deletions  int `json:"deletions"`
}
