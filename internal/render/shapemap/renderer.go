// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

// Package shapemap renders a two-field result (region, measure) as a
// layered choropleth world map.
package shapemap

import (
	"fmt"

	"github.com/narreola/malloy/internal/geo"
	"github.com/narreola/malloy/internal/render"
	"github.com/narreola/malloy/internal/render/style"
	"github.com/narreola/malloy/internal/render/vega"
	"github.com/narreola/malloy/internal/result"
)

func init() {
	render.Register(New())
}

const (
	defaultWidth  = 700
	defaultHeight = 450

	oceanColor  = "#e9f2f7"
	landColor   = "#ebebeb"
	borderColor = "#ffffff"
)

// Renderer implements the shape_map renderer.
type Renderer struct{}

// New returns a shape_map renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the renderer identifier.
func (r *Renderer) Name() string {
	return "shape_map"
}

// Render builds the three-layer choropleth spec: sphere background, base
// map of every country, and the data overlay joined on country id. Each
// call produces a complete, independent spec.
func (r *Renderer) Render(res *result.Result, opts render.Options) (*vega.Spec, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: result is null", result.ErrInvalidInputShape)
	}

	region, color, err := resolveRoles(res.Schema)
	if err != nil {
		return nil, err
	}

	rows, err := mapRows(res, region)
	if err != nil {
		return nil, err
	}

	colorType, err := classify(color, region)
	if err != nil {
		return nil, err
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = defaultHeight
	}

	ocean := opts.Map.Ocean
	if ocean == "" {
		ocean = oceanColor
	}
	land := opts.Map.Land
	if land == "" {
		land = landColor
	}
	border := opts.Map.Border
	if border == "" {
		border = borderColor
	}

	world := &vega.Data{
		Values: geo.World(),
		Format: &vega.Format{Type: "topojson", Feature: geo.CountryFeatureSet},
	}

	return &vega.Spec{
		Width:      width,
		Height:     height,
		Data:       &vega.Data{Values: rows},
		Projection: &vega.Projection{Type: "mercator"},
		Layer: []vega.Layer{
			{
				Data: &vega.Data{Sphere: true},
				Mark: &vega.Mark{Type: "geoshape", Fill: ocean},
			},
			{
				Data: world,
				Mark: &vega.Mark{Type: "geoshape", Fill: land, Stroke: border, StrokeWidth: 0.5},
			},
			{
				Transform: []vega.Transform{{
					Lookup: region.Name,
					From:   &vega.LookupFrom{Data: world, Key: "id"},
					As:     "geo",
				}},
				Mark: &vega.Mark{Type: "geoshape"},
				Encoding: &vega.Encoding{
					Shape: &vega.FieldDef{Field: "geo", Type: vega.GeoJSON},
					Color: &vega.ColorDef{
						Field: color.Name,
						Type:  colorType,
						Scale: style.ColorScale(colorType, opts.Scheme),
						Title: style.FormatTitle(color.Name),
					},
				},
			},
		},
	}, nil
}
