// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/narreola/malloy/internal/config"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigFileName is the name of the malloy configuration file.
const ConfigFileName = "malloy.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration for a command run.
type Context struct {
	// Config is the loaded configuration, or the defaults when no
	// malloy.yaml exists in the working directory.
	Config *config.Config
}

// Load loads the project context from the current working directory and
// returns a new context.Context with it stored. A missing malloy.yaml is
// not an error; defaults apply.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg := config.Default()

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if validateErr := cfg.Validate(); validateErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
		}
	}

	return context.WithValue(ctx, contextKey{}, &Context{Config: cfg}), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessCtx
	}
	return nil
}
