// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

// Package vega holds the declarative vega-lite document types emitted by
// renderers. Property names are part of the rendering engine contract and
// must not drift.
package vega

import "github.com/goccy/go-json"

// EncodingType is the visualization role assigned to a field.
type EncodingType string

const (
	// Ordinal encodes ordered categories.
	Ordinal EncodingType = "ordinal"
	// Quantitative encodes continuous numeric values.
	Quantitative EncodingType = "quantitative"
	// Nominal encodes unordered categories.
	Nominal EncodingType = "nominal"
	// GeoJSON marks a field holding joined geometry.
	GeoJSON EncodingType = "geojson"
)

// Spec is a complete layered vega-lite document.
type Spec struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Data       *Data       `json:"data"`
	Projection *Projection `json:"projection"`
	Layer      []Layer     `json:"layer"`
}

// Data is a vega-lite data block: inline values, the sphere generator, or
// values with a format directive.
type Data struct {
	Values any     `json:"values,omitempty"`
	Sphere bool    `json:"sphere,omitempty"`
	Format *Format `json:"format,omitempty"`
}

// Format tells the engine how to read a data block, e.g. which TopoJSON
// feature set to extract.
type Format struct {
	Type    string `json:"type"`
	Feature string `json:"feature"`
}

// Projection names the cartographic projection for geo marks.
type Projection struct {
	Type string `json:"type"`
}

// Layer is one entry of a layered spec, drawn back to front.
type Layer struct {
	Data      *Data       `json:"data,omitempty"`
	Transform []Transform `json:"transform,omitempty"`
	Mark      *Mark       `json:"mark"`
	Encoding  *Encoding   `json:"encoding,omitempty"`
}

// Mark describes how a layer is drawn.
type Mark struct {
	Type        string  `json:"type"`
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// Transform is a lookup join from row values to an external data block.
type Transform struct {
	Lookup string      `json:"lookup"`
	From   *LookupFrom `json:"from"`
	As     string      `json:"as"`
}

// LookupFrom is the right-hand side of a lookup transform.
type LookupFrom struct {
	Data *Data  `json:"data"`
	Key  string `json:"key"`
}

// Encoding maps row fields to visual channels.
type Encoding struct {
	Shape *FieldDef `json:"shape,omitempty"`
	Color *ColorDef `json:"color,omitempty"`
}

// FieldDef binds a field to a channel with an encoding type.
type FieldDef struct {
	Field string       `json:"field"`
	Type  EncodingType `json:"type"`
}

// ColorDef binds a field to the color channel.
type ColorDef struct {
	Field string       `json:"field"`
	Type  EncodingType `json:"type"`
	Scale *Scale       `json:"scale,omitempty"`
	Title string       `json:"title,omitempty"`
}

// Scale configures the color scale for a channel.
type Scale struct {
	Scheme string   `json:"scheme,omitempty"`
	Range  []string `json:"range,omitempty"`
}

// Marshal renders the spec as indented JSON for the rendering engine.
func (s *Spec) Marshal() ([]byte, error) {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
