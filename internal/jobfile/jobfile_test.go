// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jobfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feimaomiao/proxysheet/pkg/types"
)

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	content := `folder: cards
output: deck-a
excluded:
  - img_
  - back
dpi: 300
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	jf, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "cards", jf.Folder)
	assert.Equal(t, "deck-a", jf.Output)
	assert.Equal(t, []string{"img_", "back"}, jf.Excluded)
	assert.Equal(t, 300, jf.DPI)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte("folder: [unclosed"), 0o644))
	_, err := Read(path)
	require.Error(t, err)
}

func TestNewManifest(t *testing.T) {
	cfg := types.JobConfig{
		SourceDir:  "cards",
		OutputPath: "out.pdf",
		DPI:        100,
	}
	names := make([]string, 10)
	for i := range names {
		names[i] = string(rune('a'+i)) + ".png"
	}
	rejected := []types.Rejection{{Name: "junk.txt", Reason: types.ReasonInvalidImage}}

	m := NewManifest(cfg, names, rejected)

	assert.Equal(t, 2, m.Pages, "ten images need two pages")
	require.Len(t, m.Accepted, 10)

	first := m.Accepted[0]
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, 0, first.Column)
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, 50, first.X)
	assert.Equal(t, 25, first.Y)

	// The tenth image wraps onto page two at cell (0,0).
	last := m.Accepted[9]
	assert.Equal(t, 2, last.Page)
	assert.Equal(t, 0, last.Column)
	assert.Equal(t, 0, last.Row)
	assert.Equal(t, 50, last.X)
	assert.Equal(t, 25, last.Y)

	assert.Equal(t, rejected, m.Rejected)
	assert.False(t, m.GeneratedAt.IsZero())
}

func TestManifestRoundTrip(t *testing.T) {
	cfg := types.JobConfig{SourceDir: "cards", OutputPath: "out.pdf", DPI: 100}
	m := NewManifest(cfg, []string{"a.png"}, nil)

	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, WriteManifest(path, m))

	got, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, m.Pages, got.Pages)
	assert.Equal(t, m.DPI, got.DPI)
	require.Len(t, got.Accepted, 1)
	assert.Equal(t, m.Accepted[0], got.Accepted[0])
}
