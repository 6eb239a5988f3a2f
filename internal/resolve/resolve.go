// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns a source folder into an ordered sequence of
// decoded, card-sized images plus a rejection record for every entry
// that was skipped.
//
// Per-file problems never escape this package: an entry that is
// excluded, is not a regular file, or fails to decode becomes a
// Rejection and processing continues. Only folder-level failures
// (unreadable source directory) are returned as errors.
package resolve

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Decode support for the common card scan formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/feimaomiao/proxysheet/internal/layout"
	"github.com/feimaomiao/proxysheet/pkg/types"
)

// Pre-flight failures. Both are raised before any input file is read.
var (
	// ErrOutputExists means the destination file is already present.
	ErrOutputExists = errors.New("output file already exists")
	// ErrNotADirectory means the source path is missing or not a folder.
	ErrNotADirectory = errors.New("not a directory")
)

// Result holds the outcome of one resolver pass over the source folder.
// Accepted and AcceptedNames are parallel and in directory-sort order;
// every directory entry appears in exactly one of AcceptedNames or
// Rejected.
type Result struct {
	Accepted      []image.Image
	AcceptedNames []string
	Rejected      []types.Rejection
}

// Total returns the number of directory entries processed.
func (r *Result) Total() int {
	return len(r.AcceptedNames) + len(r.Rejected)
}

// Preflight validates the folder-level configuration. It fails with
// ErrNotADirectory if the source is not a directory and with
// ErrOutputExists if the destination already exists.
func Preflight(cfg types.JobConfig) error {
	info, err := os.Stat(cfg.SourceDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q: %w", cfg.SourceDir, ErrNotADirectory)
	}
	if _, err := os.Stat(cfg.OutputPath); err == nil {
		return fmt.Errorf("%q: %w", cfg.OutputPath, ErrOutputExists)
	}
	return nil
}

// Resolve lists the source folder in name order, classifies every entry,
// and returns the accepted images stretched to the card cell size
// alongside the rejection records.
func Resolve(cfg types.JobConfig, log zerolog.Logger) (*Result, error) {
	return resolve(cfg, log, true)
}

// Classify performs the same pass as Resolve but discards the decoded
// pixels, keeping only names and rejection records. Used for dry runs.
func Classify(cfg types.JobConfig, log zerolog.Logger) (*Result, error) {
	return resolve(cfg, log, false)
}

func resolve(cfg types.JobConfig, log zerolog.Logger, keep bool) (*Result, error) {
	// ReadDir returns entries sorted by name in byte order, which is the
	// canonical processing order and fixes final page placement.
	entries, err := os.ReadDir(cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("reading source folder: %w", err)
	}

	prefixes := make([]string, len(cfg.ExcludedPrefixes))
	for i, p := range cfg.ExcludedPrefixes {
		prefixes[i] = strings.ToLower(p)
	}

	cardW, cardH := layout.CardSize(cfg.DPI)
	res := &Result{}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(cfg.SourceDir, name)

		if matchesPrefix(name, prefixes) {
			log.Debug().Str("file", path).Msg("in excluded list, skipping")
			res.reject(name, types.ReasonExcluded)
			continue
		}

		if !entry.Type().IsRegular() {
			log.Debug().Str("file", path).Msg("not a file, skipping")
			res.reject(name, types.ReasonNotAFile)
			continue
		}

		log.Debug().Str("file", path).Msg("verifying image")
		img, err := decodeImage(path)
		if err != nil {
			log.Debug().Str("file", path).Err(err).Msg("not a valid image, skipping")
			res.reject(name, types.ReasonInvalidImage)
			continue
		}

		if keep {
			// Direct stretch: aspect ratio is intentionally not preserved.
			res.Accepted = append(res.Accepted, imaging.Resize(img, cardW, cardH, imaging.Lanczos))
		}
		res.AcceptedNames = append(res.AcceptedNames, name)
		log.Debug().Str("file", path).Msg("accepted")
	}

	log.Info().Int("accepted", len(res.AcceptedNames)).Int("rejected", len(res.Rejected)).Msg("loaded images")
	return res, nil
}

func (r *Result) reject(name string, reason types.RejectionReason) {
	r.Rejected = append(r.Rejected, types.Rejection{Name: name, Reason: reason})
}

// matchesPrefix reports whether the lowercased name starts with any of
// the (already lowercased) excluded prefixes.
func matchesPrefix(name string, prefixes []string) bool {
	lower := strings.ToLower(name)
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// decodeImage opens and fully decodes path. A full decode doubles as
// structural verification: truncated or corrupt files fail here.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
