// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles the fakegen configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/dacolabs/fakegen/internal/codegen"
	"github.com/dacolabs/fakegen/internal/fieldset"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// MaxRecordCount is the largest record count accepted from users.
const MaxRecordCount = 10000

// Config represents the fakegen.yaml configuration file.
// Every setting except Version is a default that command line flags override.
type Config struct {
	Version  int                        `yaml:"version"`
	Language string                     `yaml:"language,omitempty"`
	Format   string                     `yaml:"format,omitempty"`
	Count    int                        `yaml:"count,omitempty"`
	LogLevel string                     `yaml:"logLevel,omitempty"`
	Presets  map[string][]codegen.Field `yaml:"presets,omitempty"`
}

// Default returns the configuration used when no file is present.
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
	if c.Count < 0 || c.Count > MaxRecordCount {
		return fmt.Errorf("count must be between 1 and %d", MaxRecordCount)
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid logLevel %q", c.LogLevel)
		}
	}
	for name, fields := range c.Presets {
		if name == "" {
			return errors.New("preset name is required")
		}
		if err := fieldset.Validate(fields); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return nil
}
