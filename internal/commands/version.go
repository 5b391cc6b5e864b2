// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

package commands

import (
	"fmt"

	"github.com/narreola/malloy/internal/version"
	"github.com/spf13/cobra"
)

func registerVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
	parent.AddCommand(cmd)
}
