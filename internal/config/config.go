// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Malloy Go Authors

// Package config handles malloy project configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the malloy.yaml project configuration file.
type Config struct {
	Version int    `yaml:"version"`
	Render  Render `yaml:"render,omitempty"`
}

// Render holds default rendering options applied when a command does not
// override them.
type Render struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Scheme string `yaml:"scheme,omitempty"`
	Map    Map    `yaml:"map,omitempty"`
}

// Map is the base-map palette: ocean background, land fill, border stroke.
type Map struct {
	Ocean  string `yaml:"ocean,omitempty"`
	Land   string `yaml:"land,omitempty"`
	Border string `yaml:"border,omitempty"`
}

// Default returns the configuration used when no malloy.yaml is present.
func Default() *Config {
	return &Config{Version: CurrentConfigVersion}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return errors.New("render size must not be negative")
	}
	return nil
}
