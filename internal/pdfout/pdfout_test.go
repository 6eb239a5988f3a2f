// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfout

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPage() image.Image {
	return imaging.New(85, 110, color.White)
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(nil, &buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPages))
	assert.Zero(t, buf.Len())
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode([]image.Image{testPage(), testPage()}, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should start with a PDF header")
}

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.pdf")

	require.NoError(t, WriteDocument([]image.Image{testPage()}, dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	// No temp files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}

func TestWriteDocumentEmpty(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.pdf")
	err := WriteDocument(nil, dest)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPages))

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no output should be created for an empty run")
}
