// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides configuration loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/dacolabs/fakegen/internal/config"
	"github.com/dacolabs/fakegen/internal/fieldset"
	"github.com/dacolabs/fakegen/internal/logging"
)

var (
	// ErrConfigNotFound indicates an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileName is the default name of the fakegen configuration file.
const ConfigFileName = "fakegen.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Options controls how Load locates the configuration.
type Options struct {
	// ConfigPath is the config file to read. Empty means ConfigFileName in the working directory.
	ConfigPath string
	// LogLevel overrides the config file's level when set.
	LogLevel string
	// LogOutput receives diagnostics. Defaults to os.Stderr.
	LogOutput io.Writer
}

// Context holds the resolved configuration shared by commands.
type Context struct {
	// Config is the loaded configuration, or the defaults when no file exists.
	Config *config.Config

	// ConfigPath is the file Config was read from; empty when defaults are used.
	ConfigPath string

	// Presets are the built-in field sets merged with those from the config file.
	Presets fieldset.Presets

	// Logger writes diagnostics.
	Logger zerolog.Logger
}

// Load resolves the configuration and returns a new context.Context with the
// fakegen Context stored in it. A missing default config file is not an error.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	path := opts.ConfigPath
	explicit := path != ""
	if !explicit {
		path = ConfigFileName
	}

	cfg := config.Default()
	loadedFrom := ""
	if _, statErr := os.Stat(path); statErr == nil {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg = loaded
		loadedFrom = path
	} else if explicit {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger, err := logging.New(out, level)
	if err != nil {
		return nil, err
	}

	fakegenCtx := &Context{
		Config:     cfg,
		ConfigPath: loadedFrom,
		Presets:    fieldset.Builtin().Merge(cfg.Presets),
		Logger:     logger,
	}
	logger.Debug().Str("config", loadedFrom).Int("presets", len(fakegenCtx.Presets)).Msg("session loaded")

	return context.WithValue(ctx, contextKey{}, fakegenCtx), nil
}

// From extracts the fakegen Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if fakegenCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return fakegenCtx
	}
	return nil
}
