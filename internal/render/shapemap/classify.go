// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package shapemap

import (
	"github.com/narreola/malloy/internal/render/vega"
	"github.com/narreola/malloy/internal/result"
)

// classify maps a field's declared kind (and its role) to the encoding
// type used in the emitted spec.
//
// A string region field classifies as quantitative even though its source
// values are text: after mapping, the column carries the numeric country
// id that the engine's lookup join keys on. Do not "fix" this to nominal;
// the join breaks.
func classify(field, region *result.Field) (vega.EncodingType, error) {
	switch field.Kind {
	case result.KindDate, result.KindTimestamp:
		return vega.Nominal, nil
	case result.KindString:
		if field == region {
			return vega.Quantitative, nil
		}
		return vega.Nominal, nil
	case result.KindNumber:
		return vega.Quantitative, nil
	default:
		return "", &result.InvalidFieldTypeError{Field: field.Name, Kind: field.Kind.String()}
	}
}
