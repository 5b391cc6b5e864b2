// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package shapemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narreola/malloy/internal/render"
	"github.com/narreola/malloy/internal/render/vega"
	"github.com/narreola/malloy/internal/result"
)

func TestRender_ThreeLayersInOrder(t *testing.T) {
	res := countryValueResult(
		result.Row{"country": result.String("France"), "value": result.Number(10)},
	)

	spec, err := New().Render(res, render.Options{})
	require.NoError(t, err)

	require.Len(t, spec.Layer, 3)

	sphere := spec.Layer[0]
	require.NotNil(t, sphere.Data)
	assert.True(t, sphere.Data.Sphere)
	assert.Equal(t, "geoshape", sphere.Mark.Type)
	assert.NotEmpty(t, sphere.Mark.Fill)

	base := spec.Layer[1]
	require.NotNil(t, base.Data)
	require.NotNil(t, base.Data.Format)
	assert.Equal(t, "topojson", base.Data.Format.Type)
	assert.Equal(t, "countries", base.Data.Format.Feature)
	assert.NotEmpty(t, base.Mark.Fill)
	assert.NotEmpty(t, base.Mark.Stroke)

	data := spec.Layer[2]
	require.Len(t, data.Transform, 1)
	assert.Equal(t, "country", data.Transform[0].Lookup)
	assert.Equal(t, "id", data.Transform[0].From.Key)
	assert.Equal(t, "geo", data.Transform[0].As)
	require.NotNil(t, data.Encoding)
	assert.Equal(t, vega.GeoJSON, data.Encoding.Shape.Type)
	assert.Equal(t, "value", data.Encoding.Color.Field)
	assert.Equal(t, vega.Quantitative, data.Encoding.Color.Type)
	assert.Equal(t, "Value", data.Encoding.Color.Title)
	require.NotNil(t, data.Encoding.Color.Scale)
}

func TestRender_ProjectionIsMercator(t *testing.T) {
	res := countryValueResult()
	spec, err := New().Render(res, render.Options{})
	require.NoError(t, err)
	assert.Equal(t, "mercator", spec.Projection.Type)
}

func TestRender_ZeroSurvivingRowsKeepsLayers(t *testing.T) {
	res := countryValueResult(
		result.Row{"country": result.String("Atlantis"), "value": result.Number(5)},
	)

	spec, err := New().Render(res, render.Options{})
	require.NoError(t, err)

	require.Len(t, spec.Layer, 3)
	rows, ok := spec.Data.Values.([]MappedRow)
	require.True(t, ok)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestRender_MappedRowsInDataBlock(t *testing.T) {
	res := countryValueResult(
		result.Row{"country": result.String("France"), "value": result.Number(10)},
		result.Row{"country": result.String("Atlantis"), "value": result.Number(5)},
		result.Row{"country": result.String("Japan"), "value": result.Null()},
	)

	spec, err := New().Render(res, render.Options{})
	require.NoError(t, err)

	rows := spec.Data.Values.([]MappedRow)
	require.Len(t, rows, 2)
	assert.Equal(t, MappedRow{"country": 250, "value": 10.0}, rows[0])
	assert.Equal(t, MappedRow{"country": 392}, rows[1])
}

func TestRender_FewerThanTwoFieldsFails(t *testing.T) {
	schema := result.NewSchema(&result.Field{Name: "country", Kind: result.KindString})
	res := &result.Result{Schema: schema}

	_, err := New().Render(res, render.Options{})
	require.ErrorIs(t, err, result.ErrInvalidInputShape)
}

func TestRender_NilResultFails(t *testing.T) {
	_, err := New().Render(nil, render.Options{})
	require.ErrorIs(t, err, result.ErrInvalidInputShape)
}

func TestRender_UnencodableColorKindFails(t *testing.T) {
	schema := result.NewSchema(
		&result.Field{Name: "country", Kind: result.KindString},
		&result.Field{Name: "stuff", Kind: result.KindAtomic},
	)
	res := &result.Result{Schema: schema}

	_, err := New().Render(res, render.Options{})
	var typeErr *result.InvalidFieldTypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestRender_SizingDefaultsAndOverrides(t *testing.T) {
	res := countryValueResult()

	spec, err := New().Render(res, render.Options{})
	require.NoError(t, err)
	assert.Equal(t, defaultWidth, spec.Width)
	assert.Equal(t, defaultHeight, spec.Height)

	spec, err = New().Render(res, render.Options{Width: 900, Height: 520})
	require.NoError(t, err)
	assert.Equal(t, 900, spec.Width)
	assert.Equal(t, 520, spec.Height)
}

func TestRender_Idempotent(t *testing.T) {
	res := countryValueResult(
		result.Row{"country": result.String("France"), "value": result.Number(10)},
		result.Row{"country": result.String("Brazil"), "value": result.Number(3)},
	)

	first, err := New().Render(res, render.Options{})
	require.NoError(t, err)
	second, err := New().Render(res, render.Options{})
	require.NoError(t, err)

	firstJSON, err := first.Marshal()
	require.NoError(t, err)
	secondJSON, err := second.Marshal()
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestRender_CustomPalette(t *testing.T) {
	res := countryValueResult()
	opts := render.Options{Map: render.MapPalette{Ocean: "#000011", Land: "#222222", Border: "#333333"}}

	spec, err := New().Render(res, opts)
	require.NoError(t, err)
	assert.Equal(t, "#000011", spec.Layer[0].Mark.Fill)
	assert.Equal(t, "#222222", spec.Layer[1].Mark.Fill)
	assert.Equal(t, "#333333", spec.Layer[1].Mark.Stroke)
}

func TestRenderer_Registered(t *testing.T) {
	r, err := render.Get("shape_map")
	require.NoError(t, err)
	assert.Equal(t, "shape_map", r.Name())
}
