// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package result

// CellKind tags the variant held by a Cell. The set is closed: renderer
// logic switches exhaustively on it instead of probing runtime types.
type CellKind int

const (
	// CellNull is an absent value.
	CellNull CellKind = iota
	// CellNumber holds a float64.
	CellNumber
	// CellString holds a string.
	CellString
	// CellArray holds a nested list of cells.
	CellArray
)

// Cell is a tagged-variant data value: exactly one of null, number, string,
// or array. The zero value is the null cell.
type Cell struct {
	kind CellKind
	num  float64
	str  string
	arr  []Cell
}

// Null returns the null cell.
func Null() Cell {
	return Cell{kind: CellNull}
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{kind: CellNumber, num: v}
}

// String returns a string cell.
func String(s string) Cell {
	return Cell{kind: CellString, str: s}
}

// Array returns an array cell.
func Array(elems ...Cell) Cell {
	return Cell{kind: CellArray, arr: elems}
}

// Kind returns the variant tag.
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsNull reports whether the cell is the null variant.
func (c Cell) IsNull() bool { return c.kind == CellNull }

// IsNumber reports whether the cell holds a number.
func (c Cell) IsNumber() bool { return c.kind == CellNumber }

// IsString reports whether the cell holds a string.
func (c Cell) IsString() bool { return c.kind == CellString }

// IsArray reports whether the cell holds a nested array.
func (c Cell) IsArray() bool { return c.kind == CellArray }

// Float returns the numeric value. Valid only when IsNumber.
func (c Cell) Float() float64 { return c.num }

// Str returns the string value. Valid only when IsString.
func (c Cell) Str() string { return c.str }

// Elems returns the nested cells. Valid only when IsArray.
func (c Cell) Elems() []Cell { return c.arr }
