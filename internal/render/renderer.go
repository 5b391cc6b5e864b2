// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

// Package render defines the renderer contract and registry.
package render

import (
	"fmt"
	"sort"

	"github.com/narreola/malloy/internal/render/vega"
	"github.com/narreola/malloy/internal/result"
)

// Options carries the sizing and styling inputs supplied by the embedding
// surface; everything else comes from the result itself.
type Options struct {
	// Width and Height size the chart frame in pixels. Zero means the
	// renderer's default.
	Width  int
	Height int

	// Scheme overrides the color scheme used for the data encoding.
	Scheme string

	// Map overrides the base-map palette for map renderers. Empty colors
	// keep the renderer defaults.
	Map MapPalette
}

// MapPalette holds the fixed fills of a map's non-data layers.
type MapPalette struct {
	Ocean  string
	Land   string
	Border string
}

// Renderer turns a tabular result into a vega-lite document.
type Renderer interface {
	// Name returns the renderer's identifier (e.g., "shape_map").
	Name() string

	// Render produces a complete, independent spec from the result.
	// It never mutates or retains the result.
	Render(res *result.Result, opts Options) (*vega.Spec, error)
}

var renderers = make(map[string]Renderer)

// Register adds a renderer to the registry.
func Register(r Renderer) {
	renderers[r.Name()] = r
}

// Get retrieves a renderer by name.
func Get(name string) (Renderer, error) {
	r, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown renderer: %s", name)
	}
	return r, nil
}

// Available returns all registered renderer names, sorted.
func Available() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
