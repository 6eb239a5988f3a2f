// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout computes the 3x3 sheet geometry and composes card
// images onto letter-sized page canvases.
//
// All geometry is a pure function of (index, dpi), where dpi is a linear
// scale factor: a page is 8.5x11 scale units, a card cell 2.5x3.5. The
// second and third grid columns and rows carry a small rounded offset so
// the cut margins stay balanced across the sheet.
package layout

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

const (
	// GridCols and GridRows define the fixed per-page grid.
	GridCols = 3
	GridRows = 3
	// CellsPerPage is the number of card slots on one page.
	CellsPerPage = GridCols * GridRows
)

// Page and card dimensions in scale units (inches at true DPI).
const (
	pageWidthUnits  = 8.5
	pageHeightUnits = 11.0
	cardWidthUnits  = 2.5
	cardHeightUnits = 3.5
)

// CardSize returns the pixel size every accepted image is stretched to.
func CardSize(dpi int) (w, h int) {
	return int(cardWidthUnits * float64(dpi)), int(cardHeightUnits * float64(dpi))
}

// PageSize returns the pixel size of one page canvas.
func PageSize(dpi int) (w, h int) {
	return int(pageWidthUnits * float64(dpi)), int(pageHeightUnits * float64(dpi))
}

// PageCount returns the number of pages needed for n accepted images:
// ceil(n / 9).
func PageCount(n int) int {
	return (n + CellsPerPage - 1) / CellsPerPage
}

// PageIndex returns the 0-based page an image at position index lands on.
func PageIndex(index int) int {
	return index / CellsPerPage
}

// Cell returns the 0-based (column, row) grid cell for an image at
// position index.
func Cell(index int) (col, row int) {
	cell := index % CellsPerPage
	return cell % GridCols, cell / GridCols
}

// CellPosition returns the top-left pixel coordinate at which the image
// at position index is pasted onto its page canvas.
func CellPosition(index, dpi int) (x, y int) {
	d := float64(dpi)
	xs := [GridCols]int{
		int(0.5 * d),
		int(3.0*d + math.Round(0.01*d)),
		int(5.5*d + math.Round(0.02*d)),
	}
	ys := [GridRows]int{
		int(0.25 * d),
		int(3.75*d + math.Round(0.01*d)),
		int(7.25*d + math.Round(0.02*d)),
	}
	col, row := Cell(index)
	return xs[col], ys[row]
}

// Compose pastes the accepted images, in order, onto white page
// canvases. Images must already be resized to CardSize(dpi). The
// returned pages are complete and are not mutated afterwards.
func Compose(images []image.Image, dpi int, log zerolog.Logger) []image.Image {
	pw, ph := PageSize(dpi)
	canvases := make([]*image.NRGBA, PageCount(len(images)))
	for i := range canvases {
		canvases[i] = imaging.New(pw, ph, color.White)
	}
	log.Debug().Int("pages", len(canvases)).Msg("created page canvases")

	for i, img := range images {
		x, y := CellPosition(i, dpi)
		p := PageIndex(i)
		canvases[p] = imaging.Paste(canvases[p], img, image.Pt(x, y))
		log.Debug().
			Int("image", i).
			Int("page", p).
			Int("x", x).
			Int("y", y).
			Msg("pasted image")
	}

	pages := make([]image.Image, len(canvases))
	for i, c := range canvases {
		pages[i] = c
	}
	return pages
}
