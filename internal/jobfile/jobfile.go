// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jobfile reads saved job descriptions and writes run manifests,
// both as YAML. A job file lets a recurring print run be replayed
// without retyping flags; a manifest records where every accepted image
// landed and why the rest were skipped.
package jobfile

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/feimaomiao/proxysheet/internal/layout"
	"github.com/feimaomiao/proxysheet/pkg/types"
)

// JobFile is the on-disk representation of a run's parameters. Flags
// given on the command line override job-file values.
type JobFile struct {
	Folder   string   `yaml:"folder"`
	Output   string   `yaml:"output,omitempty"`
	Excluded []string `yaml:"excluded,omitempty"`
	DPI      int      `yaml:"dpi,omitempty"`
}

// Read loads a job file from disk.
func Read(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	return &jf, nil
}

// Manifest is the audit record of one completed run.
type Manifest struct {
	Folder      string            `yaml:"folder"`
	Output      string            `yaml:"output"`
	DPI         int               `yaml:"dpi"`
	Pages       int               `yaml:"pages"`
	GeneratedAt time.Time         `yaml:"generated_at"`
	Accepted    []Placement       `yaml:"accepted,omitempty"`
	Rejected    []types.Rejection `yaml:"rejected,omitempty"`
}

// Placement records the page and cell an accepted image was pasted into.
// Page is 1-based; Column and Row are 0-based grid coordinates; X and Y
// are the paste position in canvas pixels.
type Placement struct {
	Name   string `yaml:"name"`
	Page   int    `yaml:"page"`
	Column int    `yaml:"column"`
	Row    int    `yaml:"row"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

// NewManifest derives the full manifest from the run configuration and
// the resolver outcome. Placements follow the same pure geometry the
// compositor uses.
func NewManifest(cfg types.JobConfig, acceptedNames []string, rejected []types.Rejection) Manifest {
	m := Manifest{
		Folder:      cfg.SourceDir,
		Output:      cfg.OutputPath,
		DPI:         cfg.DPI,
		Pages:       layout.PageCount(len(acceptedNames)),
		GeneratedAt: time.Now().UTC(),
		Rejected:    rejected,
	}
	for i, name := range acceptedNames {
		col, row := layout.Cell(i)
		x, y := layout.CellPosition(i, cfg.DPI)
		m.Accepted = append(m.Accepted, Placement{
			Name:   name,
			Page:   layout.PageIndex(i) + 1,
			Column: col,
			Row:    row,
			X:      x,
			Y:      y,
		})
	}
	return m
}

// WriteManifest saves the manifest to path as YAML.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads a previously written manifest from disk.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
