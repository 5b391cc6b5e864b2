// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

// Package main is the entry point for the malloy CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/narreola/malloy/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
