// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

// Package style provides formatting helpers shared by renderers.
package style

import (
	"strings"
	"unicode"

	"github.com/narreola/malloy/internal/render/vega"
)

// FormatTitle turns a field name into an axis/legend title:
// "total_sales" becomes "Total Sales".
func FormatTitle(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// ColorScale returns the scale block for a color encoding. Quantitative
// encodings get a sequential scheme, categorical encodings a discrete one.
// A non-empty scheme overrides the default.
func ColorScale(t vega.EncodingType, scheme string) *vega.Scale {
	if scheme != "" {
		return &vega.Scale{Scheme: scheme}
	}
	switch t {
	case vega.Quantitative:
		return &vega.Scale{Scheme: "blues"}
	case vega.Ordinal:
		return &vega.Scale{Scheme: "blues"}
	default:
		return &vega.Scale{Scheme: "tableau10"}
	}
}
