// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package shapemap

import (
	"fmt"

	"github.com/narreola/malloy/internal/result"
)

// resolveRoles assigns field roles positionally: the first field names the
// region, the second the color measure. No name or type heuristics; the
// query layer guarantees this ordering. A shorter field list is a caller
// precondition violation and aborts the render.
func resolveRoles(schema *result.Schema) (region, color *result.Field, err error) {
	if schema == nil || len(schema.Fields) < 2 {
		return nil, nil, fmt.Errorf("%w: shape_map requires a region field and a color field", result.ErrInvalidInputShape)
	}
	return schema.Fields[0], schema.Fields[1], nil
}
