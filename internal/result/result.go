// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

// Package result models tabular query results consumed by renderers.
package result

// FieldKind is the declared semantic type of a result field.
type FieldKind int

const (
	// KindAtomic is a scalar field whose semantic type is unknown.
	KindAtomic FieldKind = iota
	// KindString is a text field.
	KindString
	// KindNumber is a numeric field.
	KindNumber
	// KindDate is a calendar date field.
	KindDate
	// KindTimestamp is a point-in-time field.
	KindTimestamp
)

// String returns the wire name of the kind, as used in result documents.
func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindTimestamp:
		return "timestamp"
	default:
		return "atomic"
	}
}

// ParseFieldKind maps a wire type name to a FieldKind.
// Unknown names map to KindAtomic.
func ParseFieldKind(s string) FieldKind {
	switch s {
	case "string":
		return KindString
	case "number":
		return KindNumber
	case "date":
		return KindDate
	case "timestamp":
		return KindTimestamp
	default:
		return KindAtomic
	}
}

// Field describes one top-level result field. Fields are immutable for the
// duration of a render.
type Field struct {
	Name   string
	Kind   FieldKind
	Parent *Schema // the schema this field belongs to
}

// Schema is the ordered field list of a result. Field order is declaration
// order and is significant: renderers assign roles positionally.
type Schema struct {
	Fields []*Field
}

// NewSchema builds a Schema from (name, kind) pairs, wiring parent
// back-references.
func NewSchema(fields ...*Field) *Schema {
	s := &Schema{Fields: fields}
	for _, f := range fields {
		f.Parent = s
	}
	return s
}

// Row maps a field name to its cell value for one result row.
type Row map[string]Cell

// Result is a tabular query result: a schema plus its rows. The renderer
// only reads it; ownership stays with the caller.
type Result struct {
	Schema *Schema
	Rows   []Row
}
