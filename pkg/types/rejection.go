// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RejectionReason classifies why a directory entry was left out of the
// output document.
type RejectionReason string

const (
	// ReasonExcluded marks entries matching a configured excluded prefix.
	ReasonExcluded RejectionReason = "excluded"
	// ReasonNotAFile marks entries that are not regular files.
	ReasonNotAFile RejectionReason = "not-a-file"
	// ReasonInvalidImage marks regular files that failed image decoding.
	ReasonInvalidImage RejectionReason = "invalid-image"
)

// Rejection is an audit record explaining why a candidate file was
// skipped. Rejections are accumulated in directory-sort order and
// surfaced only in the end-of-run report.
type Rejection struct {
	Name   string          `json:"name" yaml:"name"`
	Reason RejectionReason `json:"reason" yaml:"reason"`
}
