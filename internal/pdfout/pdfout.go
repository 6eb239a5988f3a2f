// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfout serializes composed page canvases into a single
// multi-page PDF.
package pdfout

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/signintech/gopdf"
)

// Letter media box in printer points. Each canvas fills the page, so the
// effective resolution equals the run's scale factor (a 8500px-wide
// canvas on a 8.5in page prints at 1000 px/in).
const (
	pageWidthPt  = 612
	pageHeightPt = 792
)

// ErrNoPages means there were no canvases to serialize, i.e. no input
// image was accepted.
var ErrNoPages = errors.New("no pages to write")

// Encode writes the canvases to w as successive full-bleed letter pages.
func Encode(pages []image.Image, w io.Writer) error {
	if len(pages) == 0 {
		return ErrNoPages
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: pageWidthPt, H: pageHeightPt},
		Unit:     gopdf.UnitPT,
	})

	full := &gopdf.Rect{W: pageWidthPt, H: pageHeightPt}
	for i, page := range pages {
		pdf.AddPage()
		if err := pdf.ImageFrom(page, 0, 0, full); err != nil {
			return fmt.Errorf("embedding page %d: %w", i+1, err)
		}
	}

	if _, err := pdf.WriteTo(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// WriteDocument encodes the canvases to destPath via a temporary file in
// the same directory, renaming on success so a failed run never leaves a
// truncated document behind.
func WriteDocument(pages []image.Image, destPath string) error {
	if len(pages) == 0 {
		return ErrNoPages
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".proxysheet-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encErr := Encode(pages, tmpFile)
	closeErr := tmpFile.Close()
	if encErr != nil {
		os.Remove(tmpPath)
		return encErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
