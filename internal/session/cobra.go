// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// FromCommand extracts the fakegen Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	if cmd.Context() == nil {
		return nil
	}
	return From(cmd.Context())
}

// RequireFromCommand extracts the fakegen Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("session not loaded")
	}
	return ctx, nil
}

// PreRunLoad loads the session from the --config and --log-level flags and stores
// it in the command's context. Use it as a PersistentPreRunE.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	opts := Options{LogOutput: cmd.ErrOrStderr()}
	if f := cmd.Flags().Lookup("config"); f != nil {
		opts.ConfigPath = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		opts.LogLevel = f.Value.String()
	}

	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	ctx, err := Load(base, opts)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
