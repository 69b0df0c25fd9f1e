// Package repo parses repository URLs and renders per-file patch text.
package repo

import (
	"net/url"
	"strings"

	"github.com/AdenMGB/devtoolbox/internal/model"
	"github.com/maxbolgarin/errm"
)

// providerDomains maps hosting domains to provider names
var providerDomains = map[string]string{
	"github.com":    "github",
	"gitlab.com":    "gitlab",
	"bitbucket.org": "bitbucket",
}

const shortSHALength = 7

// ParseReference extracts provider, owner and repo from a hosting URL.
// URLs outside the known provider domains yield ErrUnrecognizedReference
// instead of a partial guess.
func ParseReference(rawURL string) (*model.RepositoryReference, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, errm.Wrap(model.ErrUnrecognizedReference, "not a valid URL")
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	provider, ok := providerDomains[host]
	if !ok {
		return nil, errm.Wrap(model.ErrUnrecognizedReference, "unknown hosting provider")
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, errm.Wrap(model.ErrUnrecognizedReference, "URL has no owner/repo path")
	}

	return &model.RepositoryReference{
		Provider: provider,
		Owner:    parts[0],
		Repo:     strings.TrimSuffix(parts[1], ".git"),
	}, nil
}

// ClassifyFile returns the change status of a file entry, defaulting to
// modified when the provider sent none
func ClassifyFile(entry *model.FileDiff) model.FileStatus {
	if entry == nil || entry.Status == "" {
		return model.FileModified
	}
	return entry.Status
}

// RenderPatch splits a file's patch text into classified display lines.
// A line starting with '+' is added and '-' removed, except the
// '+++'/'---' file headers which stay context; empty lines render as a
// single blank.
func RenderPatch(entry *model.FileDiff) []model.PatchLine {
	if entry == nil || entry.Patch == "" {
		return nil
	}

	lines := strings.Split(entry.Patch, "\n")
	rendered := make([]model.PatchLine, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, model.PatchLine{
			Content: line,
			Kind:    classifyLine(line),
		})
	}
	return rendered
}

func classifyLine(line string) model.PatchLineKind {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return model.PatchLineContext
	case strings.HasPrefix(line, "+"):
		return model.PatchLineAdded
	case strings.HasPrefix(line, "-"):
		return model.PatchLineRemoved
	}
	return model.PatchLineContext
}

// ShortSHA truncates a full commit hash for display
func ShortSHA(sha string) string {
	if len(sha) <= shortSHALength {
		return sha
	}
	return sha[:shortSHALength]
}
