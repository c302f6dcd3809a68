// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/fakegen/internal/codegen/builtin"
	"github.com/dacolabs/fakegen/internal/commands"
)

// ConfigEnv names the environment variable that points at a config file.
const ConfigEnv = "FAKEGEN_CONFIG"

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	reg, err := builtin.New()
	if err != nil {
		return err
	}

	rootCmd := commands.NewRootCmd(reg)
	if path := getenv(ConfigEnv); path != "" {
		if err := rootCmd.PersistentFlags().Set("config", path); err != nil {
			return err
		}
	}
	return rootCmd.ExecuteContext(ctx)
}
