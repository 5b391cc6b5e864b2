// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package result

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Loader reads result documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a result document. The format is determined
// from the file extension (.json, .yaml, .yml).
func (l *Loader) LoadFile(filePath string) (*Result, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var doc any
	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInputShape, err)
		}
	case strings.HasSuffix(filePath, ".json"):
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInputShape, err)
		}
	default:
		return nil, fmt.Errorf("format not supported: %s", filePath)
	}

	return FromDocument(doc)
}

// FromDocument converts a decoded result document into a Result. The
// document is validated against the wire-format schema first, so a null or
// malformed top level fails before any row is touched.
func FromDocument(doc any) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is null", ErrInvalidInputShape)
	}
	if err := resolvedDocumentSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInputShape, err)
	}

	root := doc.(map[string]any)

	rawFields := root["fields"].([]any)
	fields := make([]*Field, 0, len(rawFields))
	for _, rf := range rawFields {
		fd := rf.(map[string]any)
		fields = append(fields, &Field{
			Name: fd["name"].(string),
			Kind: ParseFieldKind(fd["type"].(string)),
		})
	}
	schema := NewSchema(fields...)

	rawRows := root["rows"].([]any)
	rows := make([]Row, 0, len(rawRows))
	for _, rr := range rawRows {
		obj, ok := rr.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: row is not an object", ErrInvalidInputShape)
		}
		row := make(Row, len(obj))
		for name, v := range obj {
			cell, err := cellFromValue(name, v)
			if err != nil {
				return nil, err
			}
			row[name] = cell
		}
		rows = append(rows, row)
	}

	return &Result{Schema: schema, Rows: rows}, nil
}

// cellFromValue maps a decoded scalar to its cell variant. Nested arrays
// and objects become array cells; renderers fault them where a scalar is
// required. Anything outside the variant set (booleans, for one) is
// rejected here, at the wire boundary.
func cellFromValue(name string, v any) (Cell, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case float64:
		return Number(val), nil
	case int:
		return Number(float64(val)), nil
	case int64:
		return Number(float64(val)), nil
	case uint64:
		return Number(float64(val)), nil
	case string:
		return String(val), nil
	case []any:
		elems := make([]Cell, 0, len(val))
		for _, e := range val {
			cell, err := cellFromValue(name, e)
			if err != nil {
				return Cell{}, err
			}
			elems = append(elems, cell)
		}
		return Array(elems...), nil
	case map[string]any:
		elems := make([]Cell, 0, len(val))
		for _, e := range val {
			cell, err := cellFromValue(name, e)
			if err != nil {
				return Cell{}, err
			}
			elems = append(elems, cell)
		}
		return Array(elems...), nil
	default:
		return Cell{}, &InvalidFieldTypeError{Field: name, Kind: fmt.Sprintf("%T", v)}
	}
}
