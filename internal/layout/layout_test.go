// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{8, 1},
		{9, 1},
		{10, 2},
		{20, 3},
		{27, 3},
		{28, 4},
	}
	for _, tt := range tests {
		if got := PageCount(tt.n); got != tt.want {
			t.Errorf("PageCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		index   int
		wantCol int
		wantRow int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 2, 0},
		{3, 0, 1},
		{5, 2, 1},
		{8, 2, 2},
		{9, 0, 0},  // wraps to the next page
		{19, 1, 0}, // second cell of page 3
	}
	for _, tt := range tests {
		col, row := Cell(tt.index)
		if col != tt.wantCol || row != tt.wantRow {
			t.Errorf("Cell(%d) = (%d,%d), want (%d,%d)", tt.index, col, row, tt.wantCol, tt.wantRow)
		}
	}
}

func TestPageIndex(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{0, 0},
		{8, 0},
		{9, 1},
		{17, 1},
		{18, 2},
	}
	for _, tt := range tests {
		if got := PageIndex(tt.index); got != tt.want {
			t.Errorf("PageIndex(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestCellPosition(t *testing.T) {
	tests := []struct {
		name  string
		index int
		dpi   int
		wantX int
		wantY int
	}{
		{"first cell dpi 100", 0, 100, 50, 25},
		{"second column dpi 100", 1, 100, 301, 25},
		{"third column dpi 100", 2, 100, 552, 25},
		{"second row dpi 100", 3, 100, 50, 376},
		{"last cell dpi 100", 8, 100, 552, 727},
		{"first cell dpi 1000", 0, 1000, 500, 250},
		{"second column dpi 1000", 1, 1000, 3010, 250},
		{"third column dpi 1000", 2, 1000, 5520, 250},
		{"middle cell dpi 1000", 4, 1000, 3010, 3760},
		{"last cell dpi 1000", 8, 1000, 5520, 7270},
		{"same cell on next page", 9, 1000, 500, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := CellPosition(tt.index, tt.dpi)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("CellPosition(%d, %d) = (%d,%d), want (%d,%d)",
					tt.index, tt.dpi, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSizes(t *testing.T) {
	if w, h := CardSize(100); w != 250 || h != 350 {
		t.Errorf("CardSize(100) = (%d,%d), want (250,350)", w, h)
	}
	if w, h := PageSize(100); w != 850 || h != 1100 {
		t.Errorf("PageSize(100) = (%d,%d), want (850,1100)", w, h)
	}
}

// TestComposeTwentyImages covers the overflow scenario: 20 accepted
// images fill two pages and leave exactly two cards on the third, at
// cells (0,0) and (1,0).
func TestComposeTwentyImages(t *testing.T) {
	const dpi = 4
	cardW, cardH := CardSize(dpi)

	red := color.NRGBA{R: 255, A: 255}
	images := make([]image.Image, 20)
	for i := range images {
		images[i] = imaging.New(cardW, cardH, red)
	}

	pages := Compose(images, dpi, zerolog.Nop())

	if len(pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(pages))
	}
	pw, ph := PageSize(dpi)
	for i, p := range pages {
		b := p.Bounds()
		if b.Dx() != pw || b.Dy() != ph {
			t.Errorf("page %d size = (%d,%d), want (%d,%d)", i, b.Dx(), b.Dy(), pw, ph)
		}
	}

	last := pages[2]
	x0, y0 := CellPosition(18, dpi)
	x1, y1 := CellPosition(19, dpi)
	if !isRed(last.At(x0, y0)) {
		t.Errorf("cell (0,0) of last page not covered at (%d,%d)", x0, y0)
	}
	if !isRed(last.At(x1, y1)) {
		t.Errorf("cell (1,0) of last page not covered at (%d,%d)", x1, y1)
	}
	// The bottom-right corner stays blank white.
	if !isWhite(last.At(pw-1, ph-1)) {
		t.Errorf("expected white background at (%d,%d)", pw-1, ph-1)
	}
	// The third column of the top row is empty on the last page.
	x2, y2 := CellPosition(20, dpi)
	if !isWhite(last.At(x2, y2)) {
		t.Errorf("cell (2,0) of last page should be empty at (%d,%d)", x2, y2)
	}
}

func TestComposeEmpty(t *testing.T) {
	pages := Compose(nil, 100, zerolog.Nop())
	if len(pages) != 0 {
		t.Fatalf("pages = %d, want 0", len(pages))
	}
}

func isRed(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0 && b == 0
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}
