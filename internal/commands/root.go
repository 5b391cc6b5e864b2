// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/narreola/malloy/internal/session"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "malloy",
		Short: "Render tabular query results as declarative visualizations",
	}

	rootCmd.AddCommand(newInitCmd())
	registerRenderCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerRenderCmd(parent *cobra.Command) {
	cmd := newRenderCmd()
	cmd.PersistentPreRunE = session.PreRunLoad
	parent.AddCommand(cmd)
}
