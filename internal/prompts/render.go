// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package prompts

import "github.com/charmbracelet/huh"

// RunRenderForm prompts for any missing render inputs: the result document
// path and the renderer name. Values already set are left untouched.
func RunRenderForm(input, renderer *string, renderers []string) error {
	var fields []huh.Field

	if *input == "" {
		fields = append(fields, huh.NewInput().
			Title("Result document").
			Description("Path to a result .json or .yaml file").
			Validate(requiredValidator("input")).
			Value(input))
	}

	if *renderer == "" {
		options := make([]huh.Option[string], len(renderers))
		for i, r := range renderers {
			options[i] = huh.NewOption(r, r)
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Renderer").
			Options(options...).
			Value(renderer))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
