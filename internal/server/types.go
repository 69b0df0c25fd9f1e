package server

import "github.com/AdenMGB/devtoolbox/internal/model"

// response is the envelope of every tool endpoint.
// Domain-level failures land in Error with no result, so the page can
// show the message without treating them as transport faults.
type response struct {
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type colorRequest struct {
	Hex string `json:"hex"`
}

type colorResult struct {
	RGB model.Color `json:"rgb"`
	Hex string      `json:"hex"`
	HSL model.HSL   `json:"hsl"`
}

type diffRequest struct {
	A           string `json:"a"`
	B           string `json:"b"`
	Granularity string `json:"granularity"`
}

type diffResult struct {
	Segments []model.DiffSegment `json:"segments"`
}

type hashRequest struct {
	Text string `json:"text"`
}

type hashResult struct {
	Digests []model.Digest `json:"digests"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type tokenResult struct {
	Header  map[string]any `json:"header"`
	Payload map[string]any `json:"payload"`
	Expiry  string         `json:"expiry,omitempty"`
}

type repoRequest struct {
	URL string `json:"url"`
}

// commitSummary is one entry of the recent-commits listing, without diffs
type commitSummary struct {
	SHA      string     `json:"sha"`
	ShortSHA string     `json:"short_sha"`
	Message  string     `json:"message"`
	Author   model.User `json:"author"`
	Date     string     `json:"date"`
	URL      string     `json:"url"`
}

type commitsResult struct {
	Commits []commitSummary `json:"commits"`
}

// commitView is a commit with its patches rendered for display
type commitView struct {
	SHA      string            `json:"sha"`
	ShortSHA string            `json:"short_sha"`
	Message  string            `json:"message"`
	Author   model.User        `json:"author"`
	Date     string            `json:"date"`
	URL      string            `json:"url"`
	Stats    model.CommitStats `json:"stats"`
	Files    []fileView        `json:"files"`
}

type fileView struct {
	Path      string            `json:"path"`
	OldPath   string            `json:"old_path,omitempty"`
	Status    model.FileStatus  `json:"status"`
	Additions int               `json:"additions"`
	Deletions int               `json:"deletions"`
	Lines     []model.PatchLine `json:"lines"`
}
