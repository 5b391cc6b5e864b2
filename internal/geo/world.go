// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package geo

import (
	_ "embed"
	"sync"

	"github.com/goccy/go-json"
)

// CountryFeatureSet is the TopoJSON object key holding the per-country
// geometries. Each geometry carries an ISO 3166-1 numeric id matching the
// country code table.
const CountryFeatureSet = "countries"

//go:embed world_countries.json
var worldData []byte

var (
	worldOnce sync.Once
	world     map[string]any
)

// World returns the embedded low-resolution world topology, decoded once.
// The returned document is shared across renders and must not be mutated.
func World() map[string]any {
	worldOnce.Do(func() {
		if err := json.Unmarshal(worldData, &world); err != nil {
			// The asset is compiled in; a decode failure is a build defect.
			panic(err)
		}
	})
	return world
}
