// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/dacolabs/fakegen/internal/codegen"
	"github.com/dacolabs/fakegen/internal/logging"
	"github.com/dacolabs/fakegen/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(reg *codegen.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fakegen",
		Short: "Generate typed declarations with realistic sample data",
		Long: `fakegen renders a list of typed fields as a Java, Python, JavaScript or
TypeScript declaration, optionally followed by a collection of sample records
whose values are chosen from each field's type and name.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: session.PreRunLoad,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ./"+session.ConfigFileName+" when present)")
	rootCmd.PersistentFlags().String("log-level", logging.DefaultLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newGenerateCmd(reg))
	rootCmd.AddCommand(newLanguagesCmd(reg))
	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newInitCmd(reg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
