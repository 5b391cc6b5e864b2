// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/narreola/malloy/internal/config"
	"github.com/narreola/malloy/internal/prompts"
	"github.com/narreola/malloy/internal/session"
	"github.com/spf13/cobra"
)

type initOptions struct {
	width  int
	height int
	scheme string
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a malloy project",
		Long:  `Initialize a malloy project with a malloy.yaml configuration file holding render defaults.`,
		Example: `  malloy init
  malloy init --width 900 --height 520 --scheme viridis`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Default chart width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Default chart height in pixels")
	cmd.Flags().StringVar(&opts.scheme, "scheme", "", "Default color scheme")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("malloy.yaml already exists; project already initialized")
	}

	cfg := config.Default()
	cfg.Render.Width = opts.width
	cfg.Render.Height = opts.height
	cfg.Render.Scheme = opts.scheme

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: configPath},
	}, "Project initialized")

	return nil
}
