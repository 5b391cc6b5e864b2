// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/narreola/malloy/internal/prompts"
	"github.com/narreola/malloy/internal/render"
	"github.com/narreola/malloy/internal/result"
	"github.com/narreola/malloy/internal/session"
	"github.com/spf13/cobra"

	// Import renderers to auto-register.
	_ "github.com/narreola/malloy/internal/render/shapemap"
)

type renderOptions struct {
	input    string
	renderer string
	output   string
	width    int
	height   int
	scheme   string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a result document to a visualization spec",
		Long: fmt.Sprintf(`Render a result document to a visualization spec.

Available renderers: %s`, strings.Join(render.Available(), ", ")),
		Example: `  # Interactive mode
  malloy render

  # Render a result file as a choropleth map
  malloy render --input sales_by_country.json --renderer shape_map

  # Custom output path and sizing
  malloy render -i result.json -r shape_map -o map.vl.json --width 900 --height 520`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Result document (.json or .yaml)")
	cmd.Flags().StringVarP(&opts.renderer, "renderer", "r", "", fmt.Sprintf("Renderer (%s)", strings.Join(render.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (defaults to <input>.vl.json)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Chart width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Chart height in pixels")
	cmd.Flags().StringVar(&opts.scheme, "scheme", "", "Color scheme for the data encoding")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	// Prompt for any missing values
	if err := prompts.RunRenderForm(&opts.input, &opts.renderer, render.Available()); err != nil {
		return err
	}

	renderer, err := render.Get(opts.renderer)
	if err != nil {
		return err
	}

	dir, file := filepath.Split(opts.input)
	if dir == "" {
		dir = "."
	}
	loader := result.NewLoader(os.DirFS(dir))
	res, err := loader.LoadFile(file)
	if err != nil {
		return fmt.Errorf("failed to load result: %w", err)
	}

	renderOpts := render.Options{
		Width:  opts.width,
		Height: opts.height,
		Scheme: opts.scheme,
	}
	if renderOpts.Width == 0 {
		renderOpts.Width = sess.Config.Render.Width
	}
	if renderOpts.Height == 0 {
		renderOpts.Height = sess.Config.Render.Height
	}
	if renderOpts.Scheme == "" {
		renderOpts.Scheme = sess.Config.Render.Scheme
	}
	renderOpts.Map = render.MapPalette{
		Ocean:  sess.Config.Render.Map.Ocean,
		Land:   sess.Config.Render.Map.Land,
		Border: sess.Config.Render.Map.Border,
	}

	spec, err := renderer.Render(res, renderOpts)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	out, err := spec.Marshal()
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		ext := filepath.Ext(opts.input)
		outputPath = strings.TrimSuffix(opts.input, ext) + ".vl.json"
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil { //nolint:gosec // spec output is not sensitive
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Input", Value: opts.input},
		{Label: "Renderer", Value: renderer.Name()},
		{Label: "Rows", Value: fmt.Sprintf("%d", len(res.Rows))},
		{Label: "Output", Value: outputPath},
	}, "Spec written")

	return nil
}
