// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultJSON = `{
  "fields": [
    {"name": "country", "type": "string"},
    {"name": "value", "type": "number"}
  ],
  "rows": [
    {"country": "France", "value": 10},
    {"country": "Atlantis", "value": 5},
    {"country": "Japan", "value": null}
  ]
}`

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(dir))
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestRenderCommand_WritesSpec(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "result.json"), []byte(resultJSON), 0o644))
	chdir(t, dir)

	err := runCLI(t, "render", "-i", "result.json", "-r", "shape_map", "-o", "out.json")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)

	var spec map[string]any
	require.NoError(t, json.Unmarshal(data, &spec))

	assert.Equal(t, "mercator", spec["projection"].(map[string]any)["type"])
	assert.Len(t, spec["layer"].([]any), 3)

	rows := spec["data"].(map[string]any)["values"].([]any)
	require.Len(t, rows, 2)
	first := rows[0].(map[string]any)
	assert.Equal(t, float64(250), first["country"])
	assert.Equal(t, float64(10), first["value"])
	second := rows[1].(map[string]any)
	assert.Equal(t, float64(392), second["country"])
	_, hasValue := second["value"]
	assert.False(t, hasValue)
}

func TestRenderCommand_DefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sales.json"), []byte(resultJSON), 0o644))
	chdir(t, dir)

	err := runCLI(t, "render", "-i", "sales.json", "-r", "shape_map")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "sales.vl.json"))
	require.NoError(t, err)
}

func TestRenderCommand_UnknownRenderer(t *testing.T) {
	chdir(t, t.TempDir())
	err := runCLI(t, "render", "-i", "result.json", "-r", "pie")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown renderer")
}

func TestRenderCommand_MissingInputFile(t *testing.T) {
	chdir(t, t.TempDir())
	err := runCLI(t, "render", "-i", "missing.json", "-r", "shape_map")
	require.Error(t, err)
}

func TestRenderCommand_UsesConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "malloy.yaml"), []byte("version: 1\nrender:\n  width: 321\n  height: 123\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "result.json"), []byte(resultJSON), 0o644))
	chdir(t, dir)

	err := runCLI(t, "render", "-i", "result.json", "-r", "shape_map", "-o", "out.json")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)

	var spec map[string]any
	require.NoError(t, json.Unmarshal(data, &spec))
	assert.Equal(t, float64(321), spec["width"])
	assert.Equal(t, float64(123), spec["height"])
}

func TestVersionCommand(t *testing.T) {
	err := runCLI(t, "version")
	require.NoError(t, err)
}
