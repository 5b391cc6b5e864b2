// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package shapemap

import (
	"github.com/narreola/malloy/internal/geo"
	"github.com/narreola/malloy/internal/result"
)

// MappedRow is one flattened data row of the emitted spec: field name to
// number or string. An absent key is an absent value.
type MappedRow map[string]any

// mapRows converts result rows into MappedRows, substituting the numeric
// country id for the region label, then drops every row whose region could
// not be resolved. The drop is hard: an unmappable region never reaches
// the engine, it is not rendered as a default shade. Surviving rows keep
// their relative order.
func mapRows(res *result.Result, region *result.Field) ([]MappedRow, error) {
	mapped := make([]MappedRow, 0, len(res.Rows))
	for _, row := range res.Rows {
		out := make(MappedRow, len(res.Schema.Fields))
		for _, f := range res.Schema.Fields {
			cell := row[f.Name]
			switch cell.Kind() {
			case result.CellNumber:
				out[f.Name] = cell.Float()
			case result.CellString:
				if f == region {
					if code, ok := geo.LookupCountryCode(cell.Str()); ok {
						out[f.Name] = code
					}
				} else {
					out[f.Name] = cell.Str()
				}
			case result.CellNull:
				// nulls are dropped from the encoding, never faulted
			default:
				// nested structures are not scalar-encodable; this mapper
				// never recurses into them
				return nil, &result.InvalidFieldTypeError{Field: f.Name, Kind: "array"}
			}
		}
		if _, ok := out[region.Name]; ok {
			mapped = append(mapped, out)
		}
	}
	return mapped, nil
}
