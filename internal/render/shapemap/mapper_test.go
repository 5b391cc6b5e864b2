// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package shapemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narreola/malloy/internal/result"
)

func countryValueResult(rows ...result.Row) *result.Result {
	schema := result.NewSchema(
		&result.Field{Name: "country", Kind: result.KindString},
		&result.Field{Name: "value", Kind: result.KindNumber},
	)
	return &result.Result{Schema: schema, Rows: rows}
}

func TestMapRows_ResolvesAndFilters(t *testing.T) {
	res := countryValueResult(
		result.Row{"country": result.String("France"), "value": result.Number(10)},
		result.Row{"country": result.String("Atlantis"), "value": result.Number(5)},
		result.Row{"country": result.String("Japan"), "value": result.Null()},
	)

	mapped, err := mapRows(res, res.Schema.Fields[0])
	require.NoError(t, err)

	// the Atlantis row is dropped outright, not nulled
	require.Len(t, mapped, 2)
	assert.Equal(t, MappedRow{"country": 250, "value": 10.0}, mapped[0])
	assert.Equal(t, MappedRow{"country": 392}, mapped[1])
}

func TestMapRows_PreservesSurvivorOrder(t *testing.T) {
	res := countryValueResult(
		result.Row{"country": result.String("Japan"), "value": result.Number(1)},
		result.Row{"country": result.String("Narnia"), "value": result.Number(2)},
		result.Row{"country": result.String("France"), "value": result.Number(3)},
		result.Row{"country": result.String("Mordor"), "value": result.Number(4)},
		result.Row{"country": result.String("Brazil"), "value": result.Number(5)},
	)

	mapped, err := mapRows(res, res.Schema.Fields[0])
	require.NoError(t, err)

	require.Len(t, mapped, 3)
	assert.Equal(t, 392, mapped[0]["country"])
	assert.Equal(t, 250, mapped[1]["country"])
	assert.Equal(t, 76, mapped[2]["country"])
}

func TestMapRows_NonRegionStringPassesThrough(t *testing.T) {
	schema := result.NewSchema(
		&result.Field{Name: "country", Kind: result.KindString},
		&result.Field{Name: "label", Kind: result.KindString},
	)
	res := &result.Result{Schema: schema, Rows: []result.Row{
		{"country": result.String("France"), "label": result.String("high")},
	}}

	mapped, err := mapRows(res, schema.Fields[0])
	require.NoError(t, err)
	assert.Equal(t, MappedRow{"country": 250, "label": "high"}, mapped[0])
}

func TestMapRows_NullRegionDropsRow(t *testing.T) {
	res := countryValueResult(
		result.Row{"country": result.Null(), "value": result.Number(7)},
		result.Row{"country": result.String("France"), "value": result.Number(8)},
	)

	mapped, err := mapRows(res, res.Schema.Fields[0])
	require.NoError(t, err)
	require.Len(t, mapped, 1)
	assert.Equal(t, 250, mapped[0]["country"])
}

func TestMapRows_MissingCellTreatedAsNull(t *testing.T) {
	res := countryValueResult(
		result.Row{"country": result.String("France")},
	)

	mapped, err := mapRows(res, res.Schema.Fields[0])
	require.NoError(t, err)
	assert.Equal(t, MappedRow{"country": 250}, mapped[0])
}

func TestMapRows_ArrayCellFails(t *testing.T) {
	res := countryValueResult(
		result.Row{"country": result.String("France"), "value": result.Array(result.Number(1))},
	)

	_, err := mapRows(res, res.Schema.Fields[0])
	require.Error(t, err)

	var typeErr *result.InvalidFieldTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "value", typeErr.Field)
}

func TestMapRows_EmptyInput(t *testing.T) {
	res := countryValueResult()
	mapped, err := mapRows(res, res.Schema.Fields[0])
	require.NoError(t, err)
	assert.Empty(t, mapped)
	assert.NotNil(t, mapped)
}
