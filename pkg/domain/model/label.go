package model

import "github.com/m-mizutani/goerr/v2"

// ErrInvalidLabelKind is returned for a kind other than version or tag
var ErrInvalidLabelKind = goerr.New("invalid label kind")

// ReleaseRef is the only ref whose builds are published as full releases
const ReleaseRef RefContext = "refs/heads/master"

// PreReleaseSuffix is appended to labels built from any other ref
const PreReleaseSuffix = "-beta"

// RefContext is the branch reference a CI job is building, e.g. refs/heads/master.
// The zero value means the ref is unknown.
type RefContext string

// IsRelease reports whether the ref is exactly ReleaseRef
func (r RefContext) IsRelease() bool {
	return r == ReleaseRef
}

// Channel returns the release channel builds of this ref belong to
func (r RefContext) Channel() Channel {
	if r.IsRelease() {
		return ChannelRelease
	}
	return ChannelBeta
}

// Channel is the publication channel of a build
type Channel string

const (
	ChannelRelease Channel = "release"
	ChannelBeta    Channel = "beta"
)

// LabelKind tells what a candidate label is used for
type LabelKind string

const (
	LabelKindVersion LabelKind = "version"
	LabelKindTag     LabelKind = "tag"
)

// IsValid reports whether k is a known label kind
func (k LabelKind) IsValid() bool {
	switch k {
	case LabelKindVersion, LabelKindTag:
		return true
	default:
		return false
	}
}

// ResolveLabel returns candidate as-is for the release ref and with
// PreReleaseSuffix appended for every other ref, including an empty one.
// The candidate is opaque; kind does not affect the result.
func ResolveLabel(_ LabelKind, candidate string, ref RefContext) string {
	if ref.IsRelease() {
		return candidate
	}
	return candidate + PreReleaseSuffix
}

// ResolveVersionLabel resolves a semantic version string for publishing
func ResolveVersionLabel(candidate string, ref RefContext) string {
	return ResolveLabel(LabelKindVersion, candidate, ref)
}

// ResolveTagLabel resolves a git tag name
func ResolveTagLabel(candidate string, ref RefContext) string {
	return ResolveLabel(LabelKindTag, candidate, ref)
}

// LabelResult is the outcome of a single resolution
type LabelResult struct {
	Kind      LabelKind  `json:"kind"`
	Candidate string     `json:"candidate"`
	Ref       RefContext `json:"ref"`
	Label     string     `json:"label"`
	Channel   Channel    `json:"channel"`
}
