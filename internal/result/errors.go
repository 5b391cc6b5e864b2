// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package result

import (
	"errors"
	"fmt"
)

// ErrInvalidInputShape indicates a result document whose top-level value is
// null or not the expected fields-plus-rows shape. Raised before any row
// processing; the render is aborted.
var ErrInvalidInputShape = errors.New("invalid result shape")

// InvalidFieldTypeError indicates a cell or field kind outside the scalar
// set a renderer can encode (for example an array where a scalar was
// expected). It aborts the entire render.
type InvalidFieldTypeError struct {
	Field string
	Kind  string
}

func (e *InvalidFieldTypeError) Error() string {
	return fmt.Sprintf("invalid field type %s for field %q", e.Kind, e.Field)
}
