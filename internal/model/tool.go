package model

import "fmt"

// Color represents an RGB color with channels in [0, 255]
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL represents a color in hue/saturation/lightness form,
// hue in degrees [0, 360], saturation and lightness in percent [0, 100]
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// SegmentKind defines how a diff segment relates to the compared texts
type SegmentKind string

const (
	SegmentUnchanged SegmentKind = "unchanged"
	SegmentAdded     SegmentKind = "added"
	SegmentRemoved   SegmentKind = "removed"
)

// DiffSegment is a maximal run of text sharing one segment kind.
// Concatenating segments with kind in {removed, unchanged} rebuilds the
// original text; {added, unchanged} rebuilds the modified text.
type DiffSegment struct {
	Value string      `json:"value"`
	Kind  SegmentKind `json:"kind"`
}

// HashAlgorithm identifies one digest algorithm of the hash pipeline
type HashAlgorithm string

const (
	HashMD5    HashAlgorithm = "MD5"
	HashSHA1   HashAlgorithm = "SHA-1"
	HashSHA256 HashAlgorithm = "SHA-256"
	HashSHA384 HashAlgorithm = "SHA-384"
	HashSHA512 HashAlgorithm = "SHA-512"
)

// HashAlgorithms is the fixed pipeline order
var HashAlgorithms = []HashAlgorithm{HashMD5, HashSHA1, HashSHA256, HashSHA384, HashSHA512}

// Digest represents one computed digest as a lowercase hex string
type Digest struct {
	Algorithm HashAlgorithm `json:"algorithm"`
	Value     string        `json:"value"`
}

// ExpiryState classifies the exp claim of a decoded token
type ExpiryState string

const (
	ExpiryValid   ExpiryState = "valid"
	ExpiryExpired ExpiryState = "expired"
	ExpiryUnknown ExpiryState = "unknown"
)

// Expiry is the evaluated expiration of a token at decode time
type Expiry struct {
	State ExpiryState `json:"state"`
	// Seconds is the whole seconds remaining until exp (valid)
	// or elapsed since exp (expired); zero when unknown
	Seconds int64 `json:"seconds,omitempty"`
}

// String renders the expiry for display, empty when no exp claim is present
func (e Expiry) String() string {
	switch e.State {
	case ExpiryValid:
		return fmt.Sprintf("Valid (%d seconds remaining)", e.Seconds)
	case ExpiryExpired:
		return fmt.Sprintf("Expired %d seconds ago", e.Seconds)
	}
	return ""
}

// DecodedToken holds the inspected parts of a compact token.
// The signature segment is never processed and nothing here implies the
// token is authentic.
type DecodedToken struct {
	Header  map[string]any `json:"header"`
	Payload map[string]any `json:"payload"`
	Expiry  Expiry         `json:"expiry"`
}

// RepositoryReference identifies a repository on a known hosting provider
type RepositoryReference struct {
	Provider string `json:"provider"`
	Owner    string `json:"owner"`
	Repo     string `json:"repo"`
}

// PatchLineKind classifies one rendered line of a unified patch
type PatchLineKind string

const (
	PatchLineAdded   PatchLineKind = "added"
	PatchLineRemoved PatchLineKind = "removed"
	PatchLineContext PatchLineKind = "context"
)

// PatchLine is a single display line of a rendered patch
type PatchLine struct {
	Content string        `json:"content"`
	Kind    PatchLineKind `json:"kind"`
}
