// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared configuration and record types for the
// proxysheet pipeline.
package types

// DefaultDPI is the scale factor applied when none is configured.
// Despite the name it is a linear scale factor for all page and card
// geometry, not a pixel-density value.
const DefaultDPI = 1000

// Verbosity controls how much diagnostic output a run produces.
type Verbosity int

const (
	// Quiet suppresses everything except errors and the rejection report.
	Quiet Verbosity = iota
	// Normal prints the startup banner and per-stage progress.
	Normal
	// Verbose additionally prints a diagnostic line per processed file.
	Verbose
)

// String returns the lowercase name of the verbosity level.
func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Verbose:
		return "verbose"
	default:
		return "normal"
	}
}

// JobConfig describes one proxysheet run. It is constructed once at
// startup from flags, the optional config file, and the optional job
// file, and is never mutated afterwards.
type JobConfig struct {
	// SourceDir is the folder containing the candidate card images.
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// OutputPath is the destination PDF path. It must not already exist.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// ExcludedPrefixes lists case-insensitive filename prefixes to skip.
	ExcludedPrefixes []string `json:"excluded_prefixes,omitempty" yaml:"excluded_prefixes,omitempty"`

	// DPI is the linear scale factor for card and page geometry
	// (default 1000).
	DPI int `json:"dpi" yaml:"dpi"`

	// Verbosity selects the diagnostic output level.
	Verbosity Verbosity `json:"verbosity" yaml:"verbosity"`
}
