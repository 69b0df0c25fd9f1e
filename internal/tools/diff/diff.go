// Package diff computes minimal edit scripts between two texts at line
// or word granularity.
package diff

import (
	"strings"
	"unicode"

	"github.com/AdenMGB/devtoolbox/internal/model"
)

// Granularity selects the tokenization unit of the diff
type Granularity string

const (
	Lines Granularity = "lines"
	Words Granularity = "words"
)

// Compute aligns the two texts with a longest-common-subsequence edit
// script and returns maximal runs of matched and unmatched text.
// Tokens keep their original bytes, so concatenating the segments with
// kind in {removed, unchanged} yields a and {added, unchanged} yields b.
// Equal-cost alignments resolve deterministically: the script advances
// through the original text before the modified one.
func Compute(a, b string, granularity Granularity) []model.DiffSegment {
	tokensA := tokenize(a, granularity)
	tokensB := tokenize(b, granularity)

	if len(tokensA) == 0 && len(tokensB) == 0 {
		return nil
	}

	return merge(align(tokensA, tokensB))
}

type edit struct {
	value string
	kind  model.SegmentKind
}

// align backtracks an LCS length table from the front, emitting one edit
// per token. Removals are taken before insertions when costs tie.
func align(tokensA, tokensB []string) []edit {
	n, m := len(tokensA), len(tokensB)

	// lcs[i][j] is the LCS length of tokensA[i:] and tokensB[j:]
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if tokensA[i] == tokensB[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	edits := make([]edit, 0, n+m)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case tokensA[i] == tokensB[j] && lcs[i][j] == lcs[i+1][j+1]+1:
			edits = append(edits, edit{tokensA[i], model.SegmentUnchanged})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			edits = append(edits, edit{tokensA[i], model.SegmentRemoved})
			i++
		default:
			edits = append(edits, edit{tokensB[j], model.SegmentAdded})
			j++
		}
	}
	for ; i < n; i++ {
		edits = append(edits, edit{tokensA[i], model.SegmentRemoved})
	}
	for ; j < m; j++ {
		edits = append(edits, edit{tokensB[j], model.SegmentAdded})
	}

	return edits
}

// merge collapses consecutive edits of the same kind into one segment
func merge(edits []edit) []model.DiffSegment {
	var segments []model.DiffSegment
	var sb strings.Builder

	for k, e := range edits {
		sb.WriteString(e.value)
		last := k == len(edits)-1
		if last || edits[k+1].kind != e.kind {
			segments = append(segments, model.DiffSegment{Value: sb.String(), Kind: e.kind})
			sb.Reset()
		}
	}

	return segments
}

func tokenize(text string, granularity Granularity) []string {
	if text == "" {
		return nil
	}
	if granularity == Words {
		return splitRuns(text)
	}

	tokens := strings.SplitAfter(text, "\n")
	if tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// splitRuns splits text into alternating runs of whitespace and
// non-whitespace, so word moves do not drag separators along
func splitRuns(text string) []string {
	var tokens []string
	start := 0
	runes := []rune(text)
	for k := 1; k < len(runes); k++ {
		if unicode.IsSpace(runes[k]) != unicode.IsSpace(runes[k-1]) {
			tokens = append(tokens, string(runes[start:k]))
			start = k
		}
	}
	return append(tokens, string(runes[start:]))
}
