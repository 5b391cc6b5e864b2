// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package result

import "github.com/google/jsonschema-go/jsonschema"

// documentSchema describes the result document wire format: an ordered
// field list and an array of row objects.
var documentSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"fields", "rows"},
	Properties: map[string]*jsonschema.Schema{
		"fields": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"name", "type"},
				Properties: map[string]*jsonschema.Schema{
					"name": {Type: "string"},
					"type": {
						Type: "string",
						Enum: []any{"string", "number", "date", "timestamp", "atomic"},
					},
				},
			},
		},
		"rows": {
			Type:  "array",
			Items: &jsonschema.Schema{Type: "object"},
		},
	},
}

var resolvedDocumentSchema = mustResolve(documentSchema)

func mustResolve(s *jsonschema.Schema) *jsonschema.Resolved {
	resolved, err := s.Resolve(nil)
	if err != nil {
		panic(err)
	}
	return resolved
}
